// Package graphql is the GraphQL adapter. Resolvers call the same inventory
// service as the REST handlers and only translate arguments and results.
package graphql

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/validation"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

// Service is the part of the inventory service exposed over GraphQL.
type Service interface {
	CreateProduct(ctx context.Context, in *validation.ProductInput) (*contracts.ProductView, error)
	UpdateProduct(ctx context.Context, id string, in *validation.ProductInput) (*contracts.ProductView, error)
	DeleteProduct(ctx context.Context, id string) (*contracts.ProductView, error)
	GetProduct(ctx context.Context, id string) (*contracts.ProductView, error)
	ListProducts(ctx context.Context, req *list_products.Request) ([]*contracts.ProductView, error)
	ListManufacturers(ctx context.Context) ([]*contracts.ManufacturerView, error)
	TotalStockValue(ctx context.Context) (float64, error)
	TotalStockValueByManufacturer(ctx context.Context) ([]*contracts.ManufacturerStockValue, error)
	LowStockProducts(ctx context.Context, threshold *int64) ([]*contracts.ProductView, error)
	CriticalStockProducts(ctx context.Context, threshold *int64) ([]*contracts.CriticalStockItem, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	service Service
	log     *logger.Logger
}

func NewResolver(service Service, log *logger.Logger) *Resolver {
	return &Resolver{service: service, log: log}
}

type contactInput struct {
	Name  *string
	Email *string
	Phone *string
}

type manufacturerInput struct {
	Name        *string
	Country     *string
	Website     *string
	Description *string
	Address     *string
	Contact     *contactInput
}

type productInput struct {
	Name           *string
	SKU            *string
	Description    *string
	Price          *float64
	Category       *string
	AmountInStock  *int32
	Manufacturer   *manufacturerInput
	ManufacturerID *graphql.ID
}

func (in *productInput) toValidation() *validation.ProductInput {
	out := &validation.ProductInput{
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
	}
	if in.AmountInStock != nil {
		n := int64(*in.AmountInStock)
		out.AmountInStock = &n
	}
	if in.ManufacturerID != nil {
		id := string(*in.ManufacturerID)
		out.ManufacturerID = &id
	}
	if m := in.Manufacturer; m != nil {
		out.Manufacturer = &validation.ManufacturerInput{
			Name:        m.Name,
			Country:     m.Country,
			Website:     m.Website,
			Description: m.Description,
			Address:     m.Address,
		}
		if c := m.Contact; c != nil {
			out.Manufacturer.Contact = &validation.ContactInput{Name: c.Name, Email: c.Email, Phone: c.Phone}
		}
	}
	return out
}

func widen(n *int32) *int64 {
	if n == nil {
		return nil
	}
	v := int64(*n)
	return &v
}

// Queries

type productsArgs struct {
	Category       *string
	PriceMin       *float64
	PriceMax       *float64
	Search         *string
	ManufacturerID *graphql.ID
	Sort           *string
	Limit          *int32
}

func (r *Resolver) Products(ctx context.Context, args productsArgs) ([]*productResolver, error) {
	req := &list_products.Request{
		Category: args.Category,
		PriceMin: args.PriceMin,
		PriceMax: args.PriceMax,
		Search:   args.Search,
		Limit:    widen(args.Limit),
	}
	if args.ManufacturerID != nil {
		id := string(*args.ManufacturerID)
		req.ManufacturerID = &id
	}
	if args.Sort != nil {
		req.Sort = *args.Sort
	}

	views, err := r.service.ListProducts(ctx, req)
	if err != nil {
		return nil, toError(r.log, "products", err)
	}
	return toProductResolvers(views), nil
}

func (r *Resolver) Product(ctx context.Context, args struct{ ID graphql.ID }) (*productResolver, error) {
	view, err := r.service.GetProduct(ctx, string(args.ID))
	if err != nil {
		return nil, toError(r.log, "product", err)
	}
	return &productResolver{v: view}, nil
}

func (r *Resolver) Manufacturers(ctx context.Context) ([]*manufacturerResolver, error) {
	views, err := r.service.ListManufacturers(ctx)
	if err != nil {
		return nil, toError(r.log, "manufacturers", err)
	}
	out := make([]*manufacturerResolver, 0, len(views))
	for _, v := range views {
		out = append(out, &manufacturerResolver{v: *v})
	}
	return out, nil
}

func (r *Resolver) TotalStockValue(ctx context.Context) (float64, error) {
	total, err := r.service.TotalStockValue(ctx)
	if err != nil {
		return 0, toError(r.log, "totalStockValue", err)
	}
	return total, nil
}

func (r *Resolver) TotalStockValueByManufacturer(ctx context.Context) ([]*stockValueResolver, error) {
	rows, err := r.service.TotalStockValueByManufacturer(ctx)
	if err != nil {
		return nil, toError(r.log, "totalStockValueByManufacturer", err)
	}
	out := make([]*stockValueResolver, 0, len(rows))
	for _, row := range rows {
		out = append(out, &stockValueResolver{v: row})
	}
	return out, nil
}

func (r *Resolver) LowStockProducts(ctx context.Context, args struct{ Threshold *int32 }) ([]*productResolver, error) {
	views, err := r.service.LowStockProducts(ctx, widen(args.Threshold))
	if err != nil {
		return nil, toError(r.log, "lowStockProducts", err)
	}
	return toProductResolvers(views), nil
}

func (r *Resolver) CriticalStockProducts(ctx context.Context, args struct{ Threshold *int32 }) ([]*criticalStockResolver, error) {
	items, err := r.service.CriticalStockProducts(ctx, widen(args.Threshold))
	if err != nil {
		return nil, toError(r.log, "criticalStockProducts", err)
	}
	out := make([]*criticalStockResolver, 0, len(items))
	for _, item := range items {
		out = append(out, &criticalStockResolver{v: item})
	}
	return out, nil
}

// Mutations

func (r *Resolver) AddProduct(ctx context.Context, args struct{ Input productInput }) (*productResolver, error) {
	view, err := r.service.CreateProduct(ctx, args.Input.toValidation())
	if err != nil {
		return nil, toError(r.log, "addProduct", err)
	}
	return &productResolver{v: view}, nil
}

func (r *Resolver) UpdateProduct(ctx context.Context, args struct {
	ID    graphql.ID
	Input productInput
}) (*productResolver, error) {
	view, err := r.service.UpdateProduct(ctx, string(args.ID), args.Input.toValidation())
	if err != nil {
		return nil, toError(r.log, "updateProduct", err)
	}
	return &productResolver{v: view}, nil
}

func (r *Resolver) DeleteProductByID(ctx context.Context, args struct{ ID graphql.ID }) (*productResolver, error) {
	view, err := r.service.DeleteProduct(ctx, string(args.ID))
	if err != nil {
		return nil, toError(r.log, "deleteProductById", err)
	}
	return &productResolver{v: view}, nil
}
