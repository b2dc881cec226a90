package update_product

import (
	"context"
	"encoding/json"
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

func hilti() *validation.ManufacturerInput {
	return &validation.ManufacturerInput{
		Name:    strPtr("Hilti"),
		Country: strPtr("Liechtenstein"),
		Website: strPtr("https://hilti.example"),
		Contact: &validation.ContactInput{
			Name:  strPtr("Max"),
			Email: strPtr("max@hilti.example"),
			Phone: strPtr("+423 1"),
		},
	}
}

type fixture struct {
	it        *Interactor
	store     *inventorytest.Store
	clk       *clock.MockClock
	productID string
	makerID   string
}

func setup(t *testing.T) fixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := inventorytest.NewStore(clk)
	m := store.AddManufacturer("Bosch", true)
	id := store.AddProduct(domain.ProductParams{
		Name:          "Cordless Drill",
		SKU:           "DRL-001",
		Description:   "18V drill",
		Price:         129.5,
		Category:      "tools",
		AmountInStock: 7,
	}, m.ID())

	it := NewInteractor(store.Products(), store.Manufacturers(), store.Contacts(), store.Outbox(), store, store, clk)
	return fixture{it: it, store: store, clk: clk, productID: id, makerID: m.ID()}
}

func TestUpdateProduct_PartialUpdate(t *testing.T) {
	f := setup(t)
	f.clk.Advance(time.Hour)

	view, err := f.it.Execute(context.Background(), &Request{
		ProductID: f.productID,
		Input:     &validation.ProductInput{Price: floatPtr(99), AmountInStock: intPtr(3)},
	})
	require.NoError(t, err)

	assert.Equal(t, 99.0, view.Price)
	assert.Equal(t, int64(3), view.AmountInStock)
	assert.Equal(t, "Cordless Drill", view.Name)
	assert.Equal(t, "DRL-001", view.SKU)
	assert.True(t, view.UpdatedAt.After(view.CreatedAt))

	events := f.store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventProductUpdated, events[0].EventType)

	var payload domain.ProductUpdatedEvent
	require.NoError(t, json.Unmarshal([]byte(events[0].Payload), &payload))
	assert.Equal(t, []string{domain.FieldAmountInStock, domain.FieldPrice}, payload.Changes)
}

func TestUpdateProduct_EmptyInputIsNoop(t *testing.T) {
	f := setup(t)

	view, err := f.it.Execute(context.Background(), &Request{ProductID: f.productID, Input: &validation.ProductInput{}})
	require.NoError(t, err)
	assert.Equal(t, "DRL-001", view.SKU)
	assert.Empty(t, f.store.Plans)
	assert.Empty(t, f.store.Events())
}

func TestUpdateProduct_SameValuesWriteNothing(t *testing.T) {
	f := setup(t)

	_, err := f.it.Execute(context.Background(), &Request{
		ProductID: f.productID,
		Input:     &validation.ProductInput{Name: strPtr("Cordless Drill")},
	})
	require.NoError(t, err)
	assert.Empty(t, f.store.Plans)
}

func TestUpdateProduct_Errors(t *testing.T) {
	f := setup(t)
	other := f.store.AddProduct(domain.ProductParams{
		Name: "Hammer", SKU: "HAM-001", Description: "Claw hammer", Price: 20, Category: "tools", AmountInStock: 1,
	}, f.makerID)

	tests := []struct {
		name      string
		productID string
		input     *validation.ProductInput
		wantErr   error
		wantKind  domain.ErrorKind
	}{
		{"malformed id", "123", &validation.ProductInput{Price: floatPtr(1)}, domain.ErrInvalidID, domain.KindMalformedInput},
		{"unknown product", domain.NewID(), &validation.ProductInput{Price: floatPtr(1)}, domain.ErrProductNotFound, domain.KindNotFound},
		{"sku collides", other, &validation.ProductInput{SKU: strPtr("DRL-001")}, domain.ErrDuplicateSKU, domain.KindConflict},
		{"unknown manufacturer", f.productID, &validation.ProductInput{ManufacturerID: strPtr(domain.NewID())}, domain.ErrManufacturerNotFound, domain.KindNotFound},
		{
			"both manufacturer forms",
			f.productID,
			&validation.ProductInput{ManufacturerID: strPtr(f.makerID), Manufacturer: hilti()},
			domain.ErrManufacturerAmbiguous,
			domain.KindContractViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.it.Execute(context.Background(), &Request{ProductID: tt.productID, Input: tt.input})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantKind, domain.Classify(err))
		})
	}

	t.Run("invalid field", func(t *testing.T) {
		_, err := f.it.Execute(context.Background(), &Request{
			ProductID: f.productID,
			Input:     &validation.ProductInput{Price: floatPtr(-5)},
		})
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"price must be positive"}, verr.Fields["price"])
	})

	assert.Empty(t, f.store.Events())
}

func TestUpdateProduct_KeepingOwnSKU(t *testing.T) {
	f := setup(t)

	view, err := f.it.Execute(context.Background(), &Request{
		ProductID: f.productID,
		Input:     &validation.ProductInput{SKU: strPtr("DRL-001"), Category: strPtr("power tools")},
	})
	require.NoError(t, err)
	assert.Equal(t, "power tools", view.Category)
}

func TestUpdateProduct_SwitchManufacturer(t *testing.T) {
	f := setup(t)
	makita := f.store.AddManufacturer("Makita", false)

	view, err := f.it.Execute(context.Background(), &Request{
		ProductID: f.productID,
		Input:     &validation.ProductInput{ManufacturerID: strPtr(makita.ID())},
	})
	require.NoError(t, err)
	assert.Equal(t, "Makita", view.Manufacturer.Name)
	assert.Nil(t, view.Manufacturer.Contact)
}

func TestUpdateProduct_InlineManufacturer(t *testing.T) {
	f := setup(t)

	view, err := f.it.Execute(context.Background(), &Request{
		ProductID: f.productID,
		Input:     &validation.ProductInput{Manufacturer: hilti()},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hilti", view.Manufacturer.Name)
	assert.Equal(t, 2, f.store.ManufacturerCount())
	assert.ElementsMatch(t, []string{domain.EventManufacturerCreated, domain.EventProductUpdated}, f.store.EventTypes())
}
