package stock_report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/inventorytest"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
)

func intPtr(i int64) *int64 { return &i }

func seed(t *testing.T) *inventorytest.Store {
	t.Helper()
	store := inventorytest.NewStore(clock.NewMockClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	bosch := store.AddManufacturer("Bosch", true)
	makita := store.AddManufacturer("Makita", false)
	store.AddManufacturer("Idle", true)

	store.AddProduct(domain.ProductParams{Name: "Drill", SKU: "DRL-1", Description: "d", Price: 100, Category: "tools", AmountInStock: 3}, bosch.ID())
	store.AddProduct(domain.ProductParams{Name: "Bit set", SKU: "BIT-1", Description: "d", Price: 10, Category: "tools", AmountInStock: 8}, bosch.ID())
	store.AddProduct(domain.ProductParams{Name: "Saw", SKU: "SAW-1", Description: "d", Price: 50, Category: "tools", AmountInStock: 20}, makita.ID())
	return store
}

func TestTotalStockValue(t *testing.T) {
	q := NewQuery(seed(t), DefaultThresholds)

	total, err := q.TotalStockValue(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 300+80+1000, total, 1e-9)
}

func TestTotalStockValue_Empty(t *testing.T) {
	store := inventorytest.NewStore(clock.NewRealClock())
	total, err := NewQuery(store, DefaultThresholds).TotalStockValue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTotalStockValueByManufacturer(t *testing.T) {
	q := NewQuery(seed(t), DefaultThresholds)

	rows, err := q.TotalStockValueByManufacturer(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2, "manufacturers without products are omitted")

	assert.Equal(t, "Makita", rows[0].Manufacturer.Name)
	assert.InDelta(t, 1000, rows[0].TotalStockValue, 1e-9)
	assert.Equal(t, "Bosch", rows[1].Manufacturer.Name)
	assert.InDelta(t, 380, rows[1].TotalStockValue, 1e-9)
	assert.NotNil(t, rows[1].Manufacturer.Contact)
}

func TestLowStock(t *testing.T) {
	q := NewQuery(seed(t), DefaultThresholds)
	ctx := context.Background()

	views, err := q.LowStock(ctx, nil)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Drill", views[0].Name)
	assert.Equal(t, "Bit set", views[1].Name)

	views, err = q.LowStock(ctx, intPtr(3))
	require.NoError(t, err)
	assert.Empty(t, views, "threshold is exclusive")

	views, err = q.LowStock(ctx, intPtr(0))
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestCriticalStock(t *testing.T) {
	q := NewQuery(seed(t), DefaultThresholds)

	items, err := q.CriticalStock(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Drill", item.ProductName)
	assert.Equal(t, "Bosch", item.ManufacturerName)
	require.NotNil(t, item.ContactName)
	assert.Equal(t, "Bosch Contact", *item.ContactName)
	require.NotNil(t, item.ContactEmail)
	assert.Equal(t, "sales@bosch.example", *item.ContactEmail)
}

func TestNegativeThreshold(t *testing.T) {
	q := NewQuery(seed(t), DefaultThresholds)

	_, err := q.LowStock(context.Background(), intPtr(-1))
	assert.Equal(t, domain.KindMalformedInput, domain.Classify(err))

	_, err = q.CriticalStock(context.Background(), intPtr(-1))
	assert.Equal(t, domain.KindMalformedInput, domain.Classify(err))
}
