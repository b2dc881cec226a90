package domain

import "time"

// Event types written to the outbox.
const (
	EventProductCreated      = "product.created"
	EventProductUpdated      = "product.updated"
	EventProductDeleted      = "product.deleted"
	EventManufacturerCreated = "manufacturer.created"
)

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a product is created.
type ProductCreatedEvent struct {
	ProductID      string    `json:"product_id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	AmountInStock  int64     `json:"amount_in_stock"`
	ManufacturerID string    `json:"manufacturer_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e *ProductCreatedEvent) EventType() string   { return EventProductCreated }
func (e *ProductCreatedEvent) AggregateID() string { return e.ProductID }

// ProductUpdatedEvent carries the names of the fields that changed.
type ProductUpdatedEvent struct {
	ProductID string    `json:"product_id"`
	Changes   []string  `json:"changes"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *ProductUpdatedEvent) EventType() string   { return EventProductUpdated }
func (e *ProductUpdatedEvent) AggregateID() string { return e.ProductID }

// ProductDeletedEvent is emitted when a product is removed.
type ProductDeletedEvent struct {
	ProductID string    `json:"product_id"`
	SKU       string    `json:"sku"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e *ProductDeletedEvent) EventType() string   { return EventProductDeleted }
func (e *ProductDeletedEvent) AggregateID() string { return e.ProductID }

// ManufacturerCreatedEvent is emitted when a manufacturer is created inline with a product.
type ManufacturerCreatedEvent struct {
	ManufacturerID string    `json:"manufacturer_id"`
	Name           string    `json:"name"`
	ContactID      *string   `json:"contact_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (e *ManufacturerCreatedEvent) EventType() string   { return EventManufacturerCreated }
func (e *ManufacturerCreatedEvent) AggregateID() string { return e.ManufacturerID }
