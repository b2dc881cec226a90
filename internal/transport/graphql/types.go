package graphql

import (
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

type contactResolver struct {
	v *contracts.ContactView
}

func (r *contactResolver) ID() graphql.ID { return graphql.ID(r.v.ID) }
func (r *contactResolver) Name() string   { return r.v.Name }
func (r *contactResolver) Email() string  { return r.v.Email }
func (r *contactResolver) Phone() string  { return r.v.Phone }

type manufacturerResolver struct {
	v contracts.ManufacturerView
}

func (r *manufacturerResolver) ID() graphql.ID       { return graphql.ID(r.v.ID) }
func (r *manufacturerResolver) Name() string         { return r.v.Name }
func (r *manufacturerResolver) Country() string      { return r.v.Country }
func (r *manufacturerResolver) Website() string      { return r.v.Website }
func (r *manufacturerResolver) Description() *string { return r.v.Description }
func (r *manufacturerResolver) Address() *string     { return r.v.Address }

func (r *manufacturerResolver) Contact() *contactResolver {
	if r.v.Contact == nil {
		return nil
	}
	return &contactResolver{v: r.v.Contact}
}

type productResolver struct {
	v *contracts.ProductView
}

func (r *productResolver) ID() graphql.ID      { return graphql.ID(r.v.ID) }
func (r *productResolver) Name() string        { return r.v.Name }
func (r *productResolver) SKU() string         { return r.v.SKU }
func (r *productResolver) Description() string { return r.v.Description }
func (r *productResolver) Price() float64      { return r.v.Price }
func (r *productResolver) Category() string    { return r.v.Category }

// AmountInStock narrows to GraphQL's 32-bit Int; stored values never exceed
// domain.MaxAmountInStock.
func (r *productResolver) AmountInStock() int32 { return int32(r.v.AmountInStock) }

func (r *productResolver) Manufacturer() *manufacturerResolver {
	return &manufacturerResolver{v: r.v.Manufacturer}
}

func (r *productResolver) CreatedAt() string { return r.v.CreatedAt.Format(time.RFC3339) }
func (r *productResolver) UpdatedAt() string { return r.v.UpdatedAt.Format(time.RFC3339) }

func toProductResolvers(views []*contracts.ProductView) []*productResolver {
	out := make([]*productResolver, 0, len(views))
	for _, v := range views {
		out = append(out, &productResolver{v: v})
	}
	return out
}

type stockValueResolver struct {
	v *contracts.ManufacturerStockValue
}

func (r *stockValueResolver) ID() graphql.ID { return graphql.ID(r.v.Manufacturer.ID) }

func (r *stockValueResolver) Manufacturer() *manufacturerResolver {
	return &manufacturerResolver{v: r.v.Manufacturer}
}

func (r *stockValueResolver) TotalStockValue() float64 { return r.v.TotalStockValue }

type criticalStockResolver struct {
	v *contracts.CriticalStockItem
}

func (r *criticalStockResolver) ProductName() string      { return r.v.ProductName }
func (r *criticalStockResolver) ManufacturerName() string { return r.v.ManufacturerName }
func (r *criticalStockResolver) ContactName() *string     { return r.v.ContactName }
func (r *criticalStockResolver) ContactPhone() *string    { return r.v.ContactPhone }
func (r *criticalStockResolver) ContactEmail() *string    { return r.v.ContactEmail }
