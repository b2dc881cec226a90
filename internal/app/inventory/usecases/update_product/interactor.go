package update_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/shared"
	"github.com/light-bringer/inventory-service/internal/app/inventory/validation"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request contains the product id and the partial payload. Absent fields
// are left unchanged.
type Request struct {
	ProductID string
	Input     *validation.ProductInput
}

// Interactor handles the update product use case.
type Interactor struct {
	products  contracts.ProductRepository
	outbox    contracts.OutboxRepository
	resolver  *shared.ManufacturerResolver
	committer contracts.Committer
	readModel contracts.ReadModel
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	products contracts.ProductRepository,
	manufacturers contracts.ManufacturerRepository,
	contacts contracts.ContactRepository,
	outbox contracts.OutboxRepository,
	committer contracts.Committer,
	readModel contracts.ReadModel,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		products:  products,
		outbox:    outbox,
		resolver:  shared.NewManufacturerResolver(manufacturers, contacts, outbox, clock),
		committer: committer,
		readModel: readModel,
	}
}

// Execute applies the supplied fields to the product and returns the updated view.
func (i *Interactor) Execute(ctx context.Context, req *Request) (view *contracts.ProductView, err error) {
	ctx, span := shared.StartSpan(ctx, "update_product")
	defer func() { shared.EndSpan(span, err) }()

	if err := domain.ValidateID(req.ProductID); err != nil {
		return nil, err
	}

	in := req.Input
	if in == nil || in.IsEmpty() {
		return i.readModel.GetProduct(ctx, req.ProductID)
	}

	if err := validation.ValidateProductUpdate(in); err != nil {
		return nil, err
	}

	// manufacturer is optional on update but keeps the either/or rule
	var ref *shared.ManufacturerRef
	if in.Manufacturer != nil || in.ManufacturerID != nil {
		r, err := shared.NewManufacturerRef(in.Manufacturer, in.ManufacturerID)
		if err != nil {
			return nil, err
		}
		ref = &r
	}

	err = i.committer.ApplyInTransaction(ctx, func(ctx context.Context, rd committer.Reader) (*committer.Plan, error) {
		// 1. Load aggregate
		product, err := i.products.GetByID(ctx, rd, req.ProductID)
		if err != nil {
			return nil, err
		}

		// 2. Call domain methods
		if err := apply(product, in); err != nil {
			return nil, err
		}

		if product.Changes().Dirty(domain.FieldSKU) {
			id, found, err := i.products.FindIDBySKU(ctx, rd, product.SKU())
			if err != nil {
				return nil, err
			}
			if found && id != product.ID() {
				return nil, domain.ErrDuplicateSKU
			}
		}

		plan := committer.NewPlan()

		if ref != nil {
			manufacturerID, err := i.resolver.Resolve(ctx, rd, *ref, plan)
			if err != nil {
				return nil, err
			}
			product.AssignManufacturer(manufacturerID)
		}

		// Emit a single ProductUpdatedEvent for all changes
		product.MarkUpdated()

		// 3. Add repository mutation (only if changes exist)
		plan.Add(i.products.UpdateMut(product))

		// 4. Add outbox events
		if err := shared.AddOutboxEvents(plan, i.outbox, product.DomainEvents()); err != nil {
			return nil, err
		}
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	view, err = i.readModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to read updated product: %w", err)
	}
	return view, nil
}

func apply(p *domain.Product, in *validation.ProductInput) error {
	if in.Name != nil {
		if err := p.SetName(*in.Name); err != nil {
			return err
		}
	}
	if in.SKU != nil {
		if err := p.SetSKU(*in.SKU); err != nil {
			return err
		}
	}
	if in.Description != nil {
		if err := p.SetDescription(*in.Description); err != nil {
			return err
		}
	}
	if in.Price != nil {
		if err := p.SetPrice(*in.Price); err != nil {
			return err
		}
	}
	if in.Category != nil {
		if err := p.SetCategory(*in.Category); err != nil {
			return err
		}
	}
	if in.AmountInStock != nil {
		if err := p.SetAmountInStock(*in.AmountInStock); err != nil {
			return err
		}
	}
	return nil
}
