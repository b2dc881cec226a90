package create_product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/inventorytest"
	"github.com/light-bringer/inventory-service/internal/app/inventory/validation"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int64) *int64       { return &i }

func setup(t *testing.T) (*Interactor, *inventorytest.Store) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := inventorytest.NewStore(clk)
	it := NewInteractor(store.Products(), store.Manufacturers(), store.Contacts(), store.Outbox(), store, store, clk)
	return it, store
}

func productInput(sku string) *validation.ProductInput {
	return &validation.ProductInput{
		Name:          strPtr("Cordless Drill"),
		SKU:           strPtr(sku),
		Description:   strPtr("18V drill"),
		Price:         floatPtr(129.5),
		Category:      strPtr("tools"),
		AmountInStock: intPtr(7),
	}
}

func inlineManufacturer(name string) *validation.ManufacturerInput {
	return &validation.ManufacturerInput{
		Name:    strPtr(name),
		Country: strPtr("Germany"),
		Website: strPtr("https://" + name + ".example"),
		Contact: &validation.ContactInput{
			Name:  strPtr("Jane Doe"),
			Email: strPtr("jane@example.com"),
			Phone: strPtr("+49 30 1234"),
		},
	}
}

func TestCreateProduct_WithExistingManufacturer(t *testing.T) {
	it, store := setup(t)
	m := store.AddManufacturer("Bosch", true)

	in := productInput("DRL-001")
	in.ManufacturerID = strPtr(m.ID())

	view, err := it.Execute(context.Background(), &Request{Input: in})
	require.NoError(t, err)

	assert.Equal(t, "Cordless Drill", view.Name)
	assert.Equal(t, "DRL-001", view.SKU)
	assert.Equal(t, m.ID(), view.Manufacturer.ID)
	assert.Equal(t, "Bosch", view.Manufacturer.Name)
	require.NotNil(t, view.Manufacturer.Contact)
	assert.Equal(t, 1, store.ProductCount())
	assert.Equal(t, []string{domain.EventProductCreated}, store.EventTypes())
}

func TestCreateProduct_WithInlineManufacturer(t *testing.T) {
	it, store := setup(t)

	in := productInput("DRL-002")
	in.Manufacturer = inlineManufacturer("Makita")

	view, err := it.Execute(context.Background(), &Request{Input: in})
	require.NoError(t, err)

	assert.Equal(t, "Makita", view.Manufacturer.Name)
	require.NotNil(t, view.Manufacturer.Contact)
	assert.Equal(t, "jane@example.com", view.Manufacturer.Contact.Email)
	assert.Equal(t, 1, store.ManufacturerCount())
	assert.Equal(t, 1, store.ContactCount())
	assert.ElementsMatch(t, []string{domain.EventManufacturerCreated, domain.EventProductCreated}, store.EventTypes())
	require.Len(t, store.Plans, 1)
	// contact, manufacturer, product and two outbox rows
	assert.Equal(t, 5, store.Plans[0].Count())
}

func TestCreateProduct_ManufacturerContract(t *testing.T) {
	it, store := setup(t)
	m := store.AddManufacturer("Bosch", false)

	t.Run("both supplied", func(t *testing.T) {
		in := productInput("DRL-003")
		in.ManufacturerID = strPtr(m.ID())
		in.Manufacturer = inlineManufacturer("Hilti")

		_, err := it.Execute(context.Background(), &Request{Input: in})
		assert.ErrorIs(t, err, domain.ErrManufacturerAmbiguous)
		assert.Equal(t, domain.KindContractViolation, domain.Classify(err))
	})

	t.Run("neither supplied", func(t *testing.T) {
		_, err := it.Execute(context.Background(), &Request{Input: productInput("DRL-004")})
		assert.ErrorIs(t, err, domain.ErrManufacturerRequired)
	})

	t.Run("malformed id", func(t *testing.T) {
		in := productInput("DRL-005")
		in.ManufacturerID = strPtr("not-a-uuid")

		_, err := it.Execute(context.Background(), &Request{Input: in})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
		assert.Equal(t, domain.KindMalformedInput, domain.Classify(err))
	})

	t.Run("unknown id", func(t *testing.T) {
		in := productInput("DRL-006")
		in.ManufacturerID = strPtr(domain.NewID())

		_, err := it.Execute(context.Background(), &Request{Input: in})
		assert.ErrorIs(t, err, domain.ErrManufacturerNotFound)
	})

	assert.Equal(t, 0, store.ProductCount())
	assert.Empty(t, store.Events())
}

func TestCreateProduct_ValidationRunsBeforeContract(t *testing.T) {
	it, store := setup(t)

	in := productInput("X")
	in.Price = floatPtr(0)

	_, err := it.Execute(context.Background(), &Request{Input: in})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "sku")
	assert.Equal(t, 0, store.ProductCount())
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	it, store := setup(t)
	m := store.AddManufacturer("Bosch", false)

	first := productInput("DRL-100")
	first.ManufacturerID = strPtr(m.ID())
	_, err := it.Execute(context.Background(), &Request{Input: first})
	require.NoError(t, err)

	second := productInput("DRL-100")
	second.Manufacturer = inlineManufacturer("Metabo")
	_, err = it.Execute(context.Background(), &Request{Input: second})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
	assert.Equal(t, domain.KindConflict, domain.Classify(err))

	// the inline manufacturer of the failed attempt is not persisted
	assert.Equal(t, 1, store.ManufacturerCount())
	assert.Equal(t, 0, store.ContactCount())
	assert.Equal(t, 1, store.ProductCount())
}

func TestCreateProduct_DuplicateManufacturerName(t *testing.T) {
	it, store := setup(t)
	store.AddManufacturer("Makita", false)

	in := productInput("DRL-200")
	in.Manufacturer = inlineManufacturer("Makita")

	_, err := it.Execute(context.Background(), &Request{Input: in})
	assert.ErrorIs(t, err, domain.ErrDuplicateManufacturerName)
	assert.Equal(t, 0, store.ProductCount())
}

func TestCreateProduct_CommitFailureLeavesNothing(t *testing.T) {
	it, store := setup(t)
	store.CommitErr = errors.New("spanner unavailable")

	in := productInput("DRL-300")
	in.Manufacturer = inlineManufacturer("Festool")

	_, err := it.Execute(context.Background(), &Request{Input: in})
	require.Error(t, err)
	assert.Equal(t, domain.KindInternal, domain.Classify(err))
	assert.Equal(t, 0, store.ProductCount())
	assert.Equal(t, 0, store.ManufacturerCount())
	assert.Empty(t, store.Events())
}
