package delete_product

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/shared"
	"github.com/light-bringer/inventory-service/internal/pkg/committer"
)

// Request identifies the product to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case. The manufacturer and its
// contact are left in place.
type Interactor struct {
	products  contracts.ProductRepository
	outbox    contracts.OutboxRepository
	committer contracts.Committer
	readModel contracts.ReadModel
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(
	products contracts.ProductRepository,
	outbox contracts.OutboxRepository,
	committer contracts.Committer,
	readModel contracts.ReadModel,
) *Interactor {
	return &Interactor{
		products:  products,
		outbox:    outbox,
		committer: committer,
		readModel: readModel,
	}
}

// Execute removes the product and returns it as it was before deletion.
func (i *Interactor) Execute(ctx context.Context, req *Request) (view *contracts.ProductView, err error) {
	ctx, span := shared.StartSpan(ctx, "delete_product")
	defer func() { shared.EndSpan(span, err) }()

	if err := domain.ValidateID(req.ProductID); err != nil {
		return nil, err
	}

	view, err = i.readModel.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	err = i.committer.ApplyInTransaction(ctx, func(ctx context.Context, rd committer.Reader) (*committer.Plan, error) {
		product, err := i.products.GetByID(ctx, rd, req.ProductID)
		if err != nil {
			return nil, err
		}
		product.MarkDeleted()

		plan := committer.NewPlan()
		plan.Add(i.products.DeleteMut(product.ID()))
		if err := shared.AddOutboxEvents(plan, i.outbox, product.DomainEvents()); err != nil {
			return nil, err
		}
		return plan, nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
