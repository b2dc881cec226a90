package domain

import (
	"strings"
	"time"
)

// ManufacturerParams holds the descriptive fields of a manufacturer.
type ManufacturerParams struct {
	Name        string
	Country     string
	Website     string
	Description *string
	Address     *string
}

// Manufacturer is the aggregate for a product's maker. Names are unique
// across the store; that rule is enforced by the store, not here.
type Manufacturer struct {
	id          string
	name        string
	country     string
	website     string
	description *string
	address     *string
	contactID   *string
	createdAt   time.Time
	updatedAt   time.Time

	events []DomainEvent
}

// NewManufacturer creates a Manufacturer, optionally linked to a contact.
func NewManufacturer(id string, params ManufacturerParams, contactID *string, now time.Time) (*Manufacturer, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	m := &Manufacturer{
		id:          id,
		name:        params.Name,
		country:     params.Country,
		website:     params.Website,
		description: params.Description,
		address:     params.Address,
		contactID:   contactID,
		createdAt:   now,
		updatedAt:   now,
	}

	m.events = append(m.events, &ManufacturerCreatedEvent{
		ManufacturerID: id,
		Name:           params.Name,
		ContactID:      contactID,
		CreatedAt:      now,
	})

	return m, nil
}

func (p ManufacturerParams) validate() error {
	if len(strings.TrimSpace(p.Name)) < 2 {
		return ErrNameTooShort
	}
	if len(strings.TrimSpace(p.Country)) < 2 {
		return ErrCountryTooShort
	}
	if strings.TrimSpace(p.Website) == "" {
		return ErrEmptyWebsite
	}
	return nil
}

// Getters
func (m *Manufacturer) ID() string                  { return m.id }
func (m *Manufacturer) Name() string                { return m.name }
func (m *Manufacturer) Country() string             { return m.country }
func (m *Manufacturer) Website() string             { return m.website }
func (m *Manufacturer) Description() *string        { return m.description }
func (m *Manufacturer) Address() *string            { return m.address }
func (m *Manufacturer) ContactID() *string          { return m.contactID }
func (m *Manufacturer) CreatedAt() time.Time        { return m.createdAt }
func (m *Manufacturer) UpdatedAt() time.Time        { return m.updatedAt }
func (m *Manufacturer) DomainEvents() []DomainEvent { return m.events }
