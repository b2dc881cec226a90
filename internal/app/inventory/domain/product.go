package domain

import (
	"math"
	"strings"
	"time"

	"github.com/light-bringer/inventory-service/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName           = "name"
	FieldSKU            = "sku"
	FieldDescription    = "description"
	FieldPrice          = "price"
	FieldCategory       = "category"
	FieldAmountInStock  = "amountInStock"
	FieldManufacturerID = "manufacturerId"
)

// ProductParams holds the scalar fields of a product.
type ProductParams struct {
	Name          string
	SKU           string
	Description   string
	Price         float64
	Category      string
	AmountInStock int64
}

// Product is the aggregate root for inventory items. The sku is the natural
// key of a product; its uniqueness is guaranteed by the store.
type Product struct {
	id             string
	name           string
	sku            string
	description    string
	price          float64
	category       string
	amountInStock  int64
	manufacturerID string
	createdAt      time.Time
	updatedAt      time.Time

	// Clock for time operations (injected for testability)
	clock clock.Clock

	changes *ChangeTracker
	events  []DomainEvent
}

// NewProduct creates a new Product referencing an already resolved manufacturer.
func NewProduct(id string, params ProductParams, manufacturerID string, clk clock.Clock) (*Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	now := clk.Now()
	p := &Product{
		id:             id,
		name:           params.Name,
		sku:            params.SKU,
		description:    params.Description,
		price:          params.Price,
		category:       params.Category,
		amountInStock:  params.AmountInStock,
		manufacturerID: manufacturerID,
		createdAt:      now,
		updatedAt:      now,
		clock:          clk,
		changes:        NewChangeTracker(),
	}

	for _, f := range []string{FieldName, FieldSKU, FieldDescription, FieldPrice, FieldCategory, FieldAmountInStock, FieldManufacturerID} {
		p.changes.MarkDirty(f)
	}

	p.recordEvent(&ProductCreatedEvent{
		ProductID:      p.id,
		Name:           p.name,
		SKU:            p.sku,
		Category:       p.category,
		Price:          p.price,
		AmountInStock:  p.amountInStock,
		ManufacturerID: p.manufacturerID,
		CreatedAt:      now,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product loaded from the store.
func ReconstructProduct(
	id string,
	params ProductParams,
	manufacturerID string,
	createdAt, updatedAt time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:             id,
		name:           params.Name,
		sku:            params.SKU,
		description:    params.Description,
		price:          params.Price,
		category:       params.Category,
		amountInStock:  params.AmountInStock,
		manufacturerID: manufacturerID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		clock:          clk,
		changes:        NewChangeTracker(),
	}
}

func (p ProductParams) validate() error {
	if len(strings.TrimSpace(p.Name)) < 2 {
		return ErrNameTooShort
	}
	if len(strings.TrimSpace(p.SKU)) < 2 {
		return ErrSKUTooShort
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}
	if !validPrice(p.Price) {
		return ErrInvalidPrice
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	return checkStock(p.AmountInStock)
}

// MaxAmountInStock keeps stock levels within GraphQL's 32-bit Int.
const MaxAmountInStock = math.MaxInt32

func checkStock(amount int64) error {
	switch {
	case amount < 0:
		return ErrNegativeStock
	case amount > MaxAmountInStock:
		return ErrStockTooLarge
	}
	return nil
}

func validPrice(price float64) bool {
	return price > 0 && !math.IsInf(price, 0) && !math.IsNaN(price)
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) SKU() string                 { return p.sku }
func (p *Product) Description() string         { return p.description }
func (p *Product) Price() float64              { return p.price }
func (p *Product) Category() string            { return p.category }
func (p *Product) AmountInStock() int64        { return p.amountInStock }
func (p *Product) ManufacturerID() string      { return p.manufacturerID }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// StockValue is the value of the units currently held.
func (p *Product) StockValue() float64 {
	return p.price * float64(p.amountInStock)
}

// SetName updates the product name. Setters leave the aggregate untouched
// when the value does not change.
func (p *Product) SetName(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return ErrNameTooShort
	}
	if name != p.name {
		p.name = name
		p.changes.MarkDirty(FieldName)
	}
	return nil
}

// SetSKU updates the natural key. Callers check uniqueness before committing.
func (p *Product) SetSKU(sku string) error {
	if len(strings.TrimSpace(sku)) < 2 {
		return ErrSKUTooShort
	}
	if sku != p.sku {
		p.sku = sku
		p.changes.MarkDirty(FieldSKU)
	}
	return nil
}

func (p *Product) SetDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if description != p.description {
		p.description = description
		p.changes.MarkDirty(FieldDescription)
	}
	return nil
}

func (p *Product) SetPrice(price float64) error {
	if !validPrice(price) {
		return ErrInvalidPrice
	}
	if price != p.price {
		p.price = price
		p.changes.MarkDirty(FieldPrice)
	}
	return nil
}

func (p *Product) SetCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	if category != p.category {
		p.category = category
		p.changes.MarkDirty(FieldCategory)
	}
	return nil
}

func (p *Product) SetAmountInStock(amount int64) error {
	if err := checkStock(amount); err != nil {
		return err
	}
	if amount != p.amountInStock {
		p.amountInStock = amount
		p.changes.MarkDirty(FieldAmountInStock)
	}
	return nil
}

// AssignManufacturer points the product at another, already resolved manufacturer.
func (p *Product) AssignManufacturer(manufacturerID string) {
	if manufacturerID != p.manufacturerID {
		p.manufacturerID = manufacturerID
		p.changes.MarkDirty(FieldManufacturerID)
	}
}

// MarkUpdated emits a single ProductUpdatedEvent covering every dirty field.
// It is a no-op when nothing changed.
func (p *Product) MarkUpdated() {
	if !p.changes.HasChanges() {
		return
	}
	p.updatedAt = p.clock.Now()
	p.recordEvent(&ProductUpdatedEvent{
		ProductID: p.id,
		Changes:   p.changes.DirtyFields(),
		UpdatedAt: p.updatedAt,
	})
}

// MarkDeleted records the removal of the product.
func (p *Product) MarkDeleted() {
	p.recordEvent(&ProductDeletedEvent{
		ProductID: p.id,
		SKU:       p.sku,
		DeletedAt: p.clock.Now(),
	})
}

func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = nil
}
