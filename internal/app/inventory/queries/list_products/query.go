package list_products

import (
	"context"
	"strings"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// Request contains the optional filters of a product listing. Nil means "not filtered".
type Request struct {
	Category       *string
	PriceMin       *float64
	PriceMax       *float64
	Search         *string
	ManufacturerID *string
	Sort           string // "", "priceAsc" or "priceDesc"
	Limit          *int64 // default from config
}

// Query handles the list products query use case.
type Query struct {
	readModel    contracts.ReadModel
	defaultLimit int64
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel, defaultLimit int64) *Query {
	return &Query{
		readModel:    readModel,
		defaultLimit: defaultLimit,
	}
}

// Execute checks the filters and lists matching products.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductView, error) {
	filter, err := q.filter(req)
	if err != nil {
		return nil, err
	}
	return q.readModel.ListProducts(ctx, filter)
}

func (q *Query) filter(req *Request) (contracts.ProductFilter, error) {
	verr := domain.NewValidationError()
	filter := contracts.ProductFilter{
		Category: nonBlank(req.Category),
		PriceMin: req.PriceMin,
		PriceMax: req.PriceMax,
		Search:   nonBlank(req.Search),
		Limit:    q.defaultLimit,
	}

	switch contracts.SortOrder(req.Sort) {
	case contracts.SortNameAsc, contracts.SortPriceAsc, contracts.SortPriceDesc:
		filter.Sort = contracts.SortOrder(req.Sort)
	default:
		verr.Add("sort", "sort must be one of priceAsc, priceDesc")
	}

	if req.Limit != nil {
		if *req.Limit <= 0 {
			verr.Add("limit", "limit must be a positive integer")
		} else {
			filter.Limit = *req.Limit
		}
	}

	if req.PriceMin != nil && req.PriceMax != nil && *req.PriceMin > *req.PriceMax {
		verr.Add("priceMin", "priceMin must not exceed priceMax")
	}

	if id := nonBlank(req.ManufacturerID); id != nil {
		if err := domain.ValidateID(*id); err != nil {
			verr.Add("manufacturerId", "manufacturerId is not valid")
		}
		filter.ManufacturerID = id
	}

	return filter, verr.OrNil()
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
