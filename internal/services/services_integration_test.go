//go:build integration

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/validation"
	"github.com/light-bringer/inventory-service/internal/config"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
	"github.com/light-bringer/inventory-service/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		CORSAllowOrigins:        []string{"*"},
		ProductListDefaultLimit: 1000,
		LowStockThreshold:       10,
		CriticalStockThreshold:  5,
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int64) *int64       { return &i }

func TestEndToEnd_RESTAndGraphQL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := testutil.SetupSpannerTest(t)

	opts, err := newServiceOptions(client, testConfig(), logger.Nop(), false)
	require.NoError(t, err)
	h := opts.HTTPHandler()

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodPost, "/api/products", map[string]interface{}{
		"name": "Cordless Drill", "sku": "DRL-001", "description": "18V drill",
		"price": 10, "category": "tools", "amountInStock": 2,
		"manufacturer": map[string]interface{}{
			"name": "Bosch", "country": "Germany", "website": "https://bosch.example",
			"contact": map[string]interface{}{"name": "Anna", "email": "anna@bosch.example", "phone": "+49 711"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID           string `json:"_id"`
		Manufacturer struct {
			ID string `json:"_id"`
		} `json:"manufacturer"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	testutil.AssertRowCount(t, client, "contacts", 1)

	rec = do(http.MethodPost, "/api/products", map[string]interface{}{
		"name": "Saw", "sku": "DRL-001", "description": "Circular saw",
		"price": 5, "category": "tools", "amountInStock": 4, "manufacturerId": created.Manufacturer.ID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(http.MethodPost, "/graphql", map[string]interface{}{
		"query": `mutation($id: ID!) {
			addProduct(input: {name: "Saw", sku: "SAW-001", description: "Circular saw", price: 5, category: "tools", amountInStock: 4, manufacturerId: $id}) { _id }
		}`,
		"variables": map[string]interface{}{"id": created.Manufacturer.ID},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"errors"`)

	rec = do(http.MethodGet, "/api/products/total-stock-value", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "40", rec.Body.String())

	rec = do(http.MethodPost, "/graphql", map[string]interface{}{
		"query": `{ totalStockValueByManufacturer { _id totalStockValue } criticalStockProducts { productName contactEmail } }`,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var gql struct {
		Data struct {
			ByManufacturer []struct {
				ID    string  `json:"_id"`
				Total float64 `json:"totalStockValue"`
			} `json:"totalStockValueByManufacturer"`
			Critical []struct {
				ProductName  string  `json:"productName"`
				ContactEmail *string `json:"contactEmail"`
			} `json:"criticalStockProducts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gql))
	require.Len(t, gql.Data.ByManufacturer, 1)
	assert.Equal(t, created.Manufacturer.ID, gql.Data.ByManufacturer[0].ID)
	assert.InDelta(t, 40, gql.Data.ByManufacturer[0].Total, 1e-9)
	require.Len(t, gql.Data.Critical, 2)
	assert.Equal(t, "anna@bosch.example", *gql.Data.Critical[0].ContactEmail)

	rec = do(http.MethodDelete, "/api/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(http.MethodGet, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// events from one transaction share a commit timestamp
	assert.ElementsMatch(t,
		[]string{domain.EventManufacturerCreated, domain.EventProductCreated, domain.EventProductCreated, domain.EventProductDeleted},
		testutil.OutboxEventTypes(t, client),
	)
}

func TestConcurrentCreatesWithSameSKU(t *testing.T) {
	client := testutil.SetupSpannerTest(t)
	opts, err := newServiceOptions(client, testConfig(), logger.Nop(), false)
	require.NoError(t, err)
	manufacturerID := testutil.InsertManufacturer(t, client, "Bosch", true)

	const workers = 6
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = opts.Service.CreateProduct(context.Background(), &validation.ProductInput{
				Name:           strPtr("Drill"),
				SKU:            strPtr("DRL-RACE"),
				Description:    strPtr("Cordless drill"),
				Price:          floatPtr(10),
				Category:       strPtr("tools"),
				AmountInStock:  intPtr(1),
				ManufacturerID: strPtr(manufacturerID),
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrDuplicateSKU), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	testutil.AssertRowCount(t, client, "products", 1)
	testutil.AssertRowCount(t, client, "outbox_events", 1)
}

func TestInlineManufacturerRolledBackOnDuplicateSKU(t *testing.T) {
	client := testutil.SetupSpannerTest(t)
	opts, err := newServiceOptions(client, testConfig(), logger.Nop(), false)
	require.NoError(t, err)

	bosch := testutil.InsertManufacturer(t, client, "Bosch", false)
	testutil.InsertProduct(t, client, testutil.ProductRow{Name: "Drill", SKU: "DRL-1", Price: 10, AmountInStock: 1}, bosch)

	_, err = opts.Service.CreateProduct(context.Background(), &validation.ProductInput{
		Name:          strPtr("Other Drill"),
		SKU:           strPtr("DRL-1"),
		Description:   strPtr("d"),
		Price:         floatPtr(10),
		Category:      strPtr("tools"),
		AmountInStock: intPtr(1),
		Manufacturer: &validation.ManufacturerInput{
			Name:    strPtr("Makita"),
			Country: strPtr("Japan"),
			Website: strPtr("https://makita.example"),
			Contact: &validation.ContactInput{Name: strPtr("Ken"), Email: strPtr("ken@makita.example"), Phone: strPtr("+81 1")},
		},
	})
	require.ErrorIs(t, err, domain.ErrDuplicateSKU)

	testutil.AssertRowCount(t, client, "manufacturers", 1)
	testutil.AssertRowCount(t, client, "contacts", 0)
	testutil.AssertRowCount(t, client, "outbox_events", 0)
}
