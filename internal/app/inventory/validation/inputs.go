// Package validation declares the untrusted input shapes accepted by the
// inventory and checks them before anything reaches the store.
//
// Every field is a pointer so "absent" and "zero" stay distinguishable:
// the create shape requires presence, the update shape validates only what
// was supplied.
package validation

import (
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// ContactInput is the contact of an inline manufacturer.
type ContactInput struct {
	Name  *string `json:"name" validate:"required,min=1"`
	Email *string `json:"email" validate:"required,email"`
	Phone *string `json:"phone" validate:"required,min=1"`
}

// ManufacturerInput is a manufacturer created inline with a product.
type ManufacturerInput struct {
	Name        *string       `json:"name" validate:"required,min=2"`
	Country     *string       `json:"country" validate:"required,min=2"`
	Website     *string       `json:"website" validate:"required,min=1"`
	Description *string       `json:"description"`
	Address     *string       `json:"address"`
	Contact     *ContactInput `json:"contact" validate:"required"`
}

// ProductInput is the body of product create and update requests. At most
// one of Manufacturer and ManufacturerID may be set. An inline Manufacturer
// is checked with ValidateManufacturerCreate.
type ProductInput struct {
	Name           *string            `json:"name" validate:"omitempty,min=2"`
	SKU            *string            `json:"sku" validate:"omitempty,min=2"`
	Description    *string            `json:"description" validate:"omitempty,min=1"`
	Price          *float64           `json:"price" validate:"omitempty,gt=0"`
	Category       *string            `json:"category" validate:"omitempty,min=1"`
	AmountInStock  *int64             `json:"amountInStock" validate:"omitempty,gte=0,lte=2147483647"`
	ManufacturerID *string            `json:"manufacturerId"`
	Manufacturer   *ManufacturerInput `json:"manufacturer" validate:"-"`
}

// IsEmpty reports whether no field was supplied.
func (in *ProductInput) IsEmpty() bool {
	return in.Name == nil && in.SKU == nil && in.Description == nil && in.Price == nil &&
		in.Category == nil && in.AmountInStock == nil && in.ManufacturerID == nil && in.Manufacturer == nil
}

// Params converts a validated create input. Call only after ValidateProductCreate succeeded.
func (in *ProductInput) Params() domain.ProductParams {
	return domain.ProductParams{
		Name:          *in.Name,
		SKU:           *in.SKU,
		Description:   *in.Description,
		Price:         *in.Price,
		Category:      *in.Category,
		AmountInStock: *in.AmountInStock,
	}
}

// Params converts a validated manufacturer input.
func (in *ManufacturerInput) Params() domain.ManufacturerParams {
	return domain.ManufacturerParams{
		Name:        *in.Name,
		Country:     *in.Country,
		Website:     *in.Website,
		Description: in.Description,
		Address:     in.Address,
	}
}
