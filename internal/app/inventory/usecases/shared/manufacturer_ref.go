package shared

import (
	"context"
	"fmt"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/validation"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// ManufacturerRef says how a product names its manufacturer: by the id of an
// existing one, or by a full description to be created in the same commit.
// Exactly one of ID and Inline is set.
type ManufacturerRef struct {
	ID     string
	Inline *validation.ManufacturerInput
}

// IsInline reports whether the reference creates a new manufacturer.
func (r ManufacturerRef) IsInline() bool { return r.Inline != nil }

// NewManufacturerRef checks the either/or contract of a product input and
// validates the syntax of a referenced id.
func NewManufacturerRef(inline *validation.ManufacturerInput, id *string) (ManufacturerRef, error) {
	switch {
	case inline != nil && id != nil:
		return ManufacturerRef{}, domain.ErrManufacturerAmbiguous
	case inline != nil:
		return ManufacturerRef{Inline: inline}, nil
	case id != nil:
		if err := domain.ValidateID(*id); err != nil {
			return ManufacturerRef{}, err
		}
		return ManufacturerRef{ID: *id}, nil
	default:
		return ManufacturerRef{}, domain.ErrManufacturerRequired
	}
}

// ManufacturerResolver turns a ManufacturerRef into a manufacturer id inside
// a read-write transaction, adding the writes an inline manufacturer needs.
type ManufacturerResolver struct {
	manufacturers contracts.ManufacturerRepository
	contacts      contracts.ContactRepository
	outbox        contracts.OutboxRepository
	clock         clock.Clock
}

func NewManufacturerResolver(
	manufacturers contracts.ManufacturerRepository,
	contacts contracts.ContactRepository,
	outbox contracts.OutboxRepository,
	clk clock.Clock,
) *ManufacturerResolver {
	return &ManufacturerResolver{
		manufacturers: manufacturers,
		contacts:      contacts,
		outbox:        outbox,
		clock:         clk,
	}
}

// Resolve returns the manufacturer id the product must point at. A referenced
// manufacturer must exist. An inline one must not clash with an existing name;
// its contact, manufacturer and outbox rows are added to plan.
func (r *ManufacturerResolver) Resolve(ctx context.Context, rd committer.Reader, ref ManufacturerRef, plan *committer.Plan) (string, error) {
	if !ref.IsInline() {
		ok, err := r.manufacturers.Exists(ctx, rd, ref.ID)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", domain.ErrManufacturerNotFound
		}
		return ref.ID, nil
	}

	params := ref.Inline.Params()
	taken, err := r.manufacturers.NameTaken(ctx, rd, params.Name)
	if err != nil {
		return "", err
	}
	if taken {
		return "", domain.ErrDuplicateManufacturerName
	}

	now := r.clock.Now()
	var contactID *string
	if c := ref.Inline.Contact; c != nil {
		contact, err := domain.NewContact(domain.NewID(), deref(c.Name), deref(c.Email), deref(c.Phone), now)
		if err != nil {
			return "", err
		}
		plan.Add(r.contacts.InsertMut(contact))
		id := contact.ID()
		contactID = &id
	}

	manufacturer, err := domain.NewManufacturer(domain.NewID(), params, contactID, now)
	if err != nil {
		return "", fmt.Errorf("failed to create manufacturer: %w", err)
	}
	plan.Add(r.manufacturers.InsertMut(manufacturer))

	if err := AddOutboxEvents(plan, r.outbox, manufacturer.DomainEvents()); err != nil {
		return "", err
	}

	return manufacturer.ID(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
