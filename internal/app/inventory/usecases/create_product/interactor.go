package create_product

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

// Request carries the untrusted create payload.
type Request struct {
	Input *validation.ProductInput
}

// Interactor handles the create product use case.
type Interactor struct {
	products  contracts.ProductRepository
	outbox    contracts.OutboxRepository
	resolver  *shared.ManufacturerResolver
	committer contracts.Committer
	readModel contracts.ReadModel
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
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
		clock:     clock,
	}
}

// Execute validates the payload, then resolves the manufacturer and inserts
// the product in one read-write transaction. Either everything is written
// (contact, manufacturer, product and their outbox rows) or nothing is.
func (i *Interactor) Execute(ctx context.Context, req *Request) (view *contracts.ProductView, err error) {
	ctx, span := shared.StartSpan(ctx, "create_product")
	defer func() { shared.EndSpan(span, err) }()

	// 1. Validate shape
	if err := validation.ValidateProductCreate(req.Input); err != nil {
		return nil, err
	}

	// 2. Check the manufacturer reference contract before touching the store
	ref, err := shared.NewManufacturerRef(req.Input.Manufacturer, req.Input.ManufacturerID)
	if err != nil {
		return nil, err
	}

	params := req.Input.Params()
	productID := domain.NewID()

	// 3. Build and apply the plan in one transaction
	err = i.committer.ApplyInTransaction(ctx, func(ctx context.Context, rd committer.Reader) (*committer.Plan, error) {
		plan := committer.NewPlan()

		manufacturerID, err := i.resolver.Resolve(ctx, rd, ref, plan)
		if err != nil {
			return nil, err
		}

		if _, found, err := i.products.FindIDBySKU(ctx, rd, params.SKU); err != nil {
			return nil, err
		} else if found {
			return nil, domain.ErrDuplicateSKU
		}

		product, err := domain.NewProduct(productID, params, manufacturerID, i.clock)
		if err != nil {
			return nil, err
		}
		plan.Add(i.products.InsertMut(product))

		if err := shared.AddOutboxEvents(plan, i.outbox, product.DomainEvents()); err != nil {
			return nil, err
		}
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Read back the denormalized view
	view, err = i.readModel.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to read created product: %w", err)
	}
	return view, nil
}
