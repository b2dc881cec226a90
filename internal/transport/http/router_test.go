package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/inventorytest"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/stock_report"
	"github.com/light-bringer/inventory-service/internal/pkg/clock"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

type testServer struct {
	router *gin.Engine
	store  *inventorytest.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := inventorytest.NewStore(clk)
	svc := inventory.NewService(inventory.Dependencies{
		Products:      store.Products(),
		Manufacturers: store.Manufacturers(),
		Contacts:      store.Contacts(),
		Outbox:        store.Outbox(),
		Committer:     store,
		ReadModel:     store,
		Reports:       store,
		Events:        store,
		Clock:         clk,
	}, inventory.Settings{ProductListDefaultLimit: 1000, Thresholds: stock_report.DefaultThresholds})

	return &testServer{
		router: NewRouter(RouterConfig{Service: svc, Log: logger.Nop()}),
		store:  store,
	}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const inlineProduct = `{
	"name": "Cordless Drill",
	"sku": "DRL-001",
	"description": "18V drill",
	"price": 10,
	"category": "tools",
	"amountInStock": 2,
	"manufacturer": {
		"name": "Bosch",
		"country": "Germany",
		"website": "https://bosch.example",
		"description": "Power tools",
		"address": "Stuttgart",
		"contact": {"name": "Anna", "email": "anna@bosch.example", "phone": "+49 711"}
	}
}`

func TestCreateProduct_Inline(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/products", inlineProduct)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	p := decode[ProductResponse](t, rec)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "DRL-001", p.SKU)
	assert.Equal(t, "Bosch", p.Manufacturer.Name)
	require.NotNil(t, p.Manufacturer.Contact)
	assert.Equal(t, "anna@bosch.example", p.Manufacturer.Contact.Email)
	assert.NotEmpty(t, rec.Header().Get(headerRequestID))
}

func TestCreateProduct_ByReference(t *testing.T) {
	s := newTestServer(t)
	m := s.store.AddManufacturer("Makita", true)

	body := `{"name":"Saw","sku":"SAW-1","description":"Circular saw","price":5,"category":"tools","amountInStock":4,"manufacturerId":"` + m.ID() + `"}`
	rec := s.do(t, http.MethodPost, "/api/products", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	p := decode[ProductResponse](t, rec)
	assert.Equal(t, m.ID(), p.Manufacturer.ID)
}

func TestCreateProduct_Failures(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/products", inlineProduct).Code)
	existing := s.store.AddManufacturer("Makita", false)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			"duplicate sku",
			`{"name":"Other","sku":"DRL-001","description":"d","price":1,"category":"c","amountInStock":1,"manufacturerId":"` + existing.ID() + `"}`,
			http.StatusConflict, "CONFLICT",
		},
		{
			"both manufacturer forms",
			strings.Replace(inlineProduct, `"sku": "DRL-001",`, `"sku": "DRL-002", "manufacturerId": "`+existing.ID()+`",`, 1),
			http.StatusBadRequest, "CONTRACT_VIOLATION",
		},
		{
			"no manufacturer",
			`{"name":"Other","sku":"OTH-1","description":"d","price":1,"category":"c","amountInStock":1}`,
			http.StatusBadRequest, "CONTRACT_VIOLATION",
		},
		{
			"dangling manufacturer id",
			`{"name":"Other","sku":"OTH-1","description":"d","price":1,"category":"c","amountInStock":1,"manufacturerId":"` + domain.NewID() + `"}`,
			http.StatusNotFound, "NOT_FOUND",
		},
		{
			"invalid fields",
			`{"name":"O","sku":"OTH-1","description":"d","price":0,"category":"c","amountInStock":1,"manufacturerId":"` + existing.ID() + `"}`,
			http.StatusBadRequest, "BAD_USER_INPUT",
		},
		{"malformed json", `{"name":`, http.StatusBadRequest, "BAD_USER_INPUT"},
		{"wrong type", `{"price":"free"}`, http.StatusBadRequest, "BAD_USER_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/products", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			env := decode[ErrorEnvelope](t, rec)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}

	assert.Equal(t, 1, s.store.ProductCount())
	assert.Equal(t, 2, s.store.ManufacturerCount())
}

func TestCreateProduct_ValidationFieldsAreReported(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/products", `{"name":"X","price":-1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode[ErrorEnvelope](t, rec)
	assert.Equal(t, []string{"name must be at least 2 characters"}, env.Error.Fields["name"])
	assert.Equal(t, []string{"price must be positive"}, env.Error.Fields["price"])
	assert.Equal(t, []string{"sku is required"}, env.Error.Fields["sku"])
}

func TestUpdateProduct_RejectsStockBeyondGraphQLRange(t *testing.T) {
	s := newTestServer(t)
	created := decode[ProductResponse](t, s.do(t, http.MethodPost, "/api/products", inlineProduct))

	rec := s.do(t, http.MethodPut, "/api/products/"+created.ID, `{"amountInStock": 3000000000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode[ErrorEnvelope](t, rec)
	assert.Equal(t, []string{"amountInStock must be at most 2147483647"}, env.Error.Fields["amountInStock"])

	rec = s.do(t, http.MethodGet, "/api/products/"+created.ID, "")
	assert.Equal(t, created.AmountInStock, decode[ProductResponse](t, rec).AmountInStock)
}

func TestGetProduct(t *testing.T) {
	s := newTestServer(t)
	created := decode[ProductResponse](t, s.do(t, http.MethodPost, "/api/products", inlineProduct))

	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/products/"+created.ID, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/products/invalid-id", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/products/"+domain.NewID(), "").Code)
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	s := newTestServer(t)
	created := decode[ProductResponse](t, s.do(t, http.MethodPost, "/api/products", inlineProduct))

	rec := s.do(t, http.MethodPut, "/api/products/"+created.ID, `{"price": 12.5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 12.5, decode[ProductResponse](t, rec).Price)

	rec = s.do(t, http.MethodPut, "/api/products/"+created.ID, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12.5, decode[ProductResponse](t, rec).Price)

	rec = s.do(t, http.MethodDelete, "/api/products/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	deleted := decode[ProductResponse](t, rec)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Bosch", deleted.Manufacturer.Name)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/api/products/"+created.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPut, "/api/products/"+created.ID, `{"price":1}`).Code)
}

func TestListProducts_QueryParams(t *testing.T) {
	s := newTestServer(t)
	m := s.store.AddManufacturer("Bosch", false)
	s.store.AddProduct(domain.ProductParams{Name: "Drill", SKU: "DRL-1", Description: "d", Price: 100, Category: "tools", AmountInStock: 1}, m.ID())
	s.store.AddProduct(domain.ProductParams{Name: "Apron", SKU: "APR-1", Description: "d", Price: 10, Category: "clothing", AmountInStock: 1}, m.ID())

	rec := s.do(t, http.MethodGet, "/api/products?sort=priceDesc&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]ProductResponse](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Drill", list[0].Name)

	rec = s.do(t, http.MethodGet, "/api/products?category=clothing", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]ProductResponse](t, rec), 1)

	for _, query := range []string{"sort=cheapest", "limit=0", "limit=abc", "priceMin=low", "manufacturerId=bosch"} {
		t.Run(query, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/products?"+query, "").Code)
		})
	}
}

func TestReports(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/products/total-stock-value", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, decode[float64](t, rec))

	bosch := s.store.AddManufacturer("Bosch", true)
	s.store.AddProduct(domain.ProductParams{Name: "Drill", SKU: "DRL-1", Description: "d", Price: 10, Category: "tools", AmountInStock: 2}, bosch.ID())
	s.store.AddProduct(domain.ProductParams{Name: "Saw", SKU: "SAW-1", Description: "d", Price: 5, Category: "tools", AmountInStock: 4}, bosch.ID())
	s.store.AddProduct(domain.ProductParams{Name: "Vise", SKU: "VIS-1", Description: "d", Price: 1, Category: "tools", AmountInStock: 0}, bosch.ID())

	rec = s.do(t, http.MethodGet, "/api/products/total-stock-value", "")
	assert.Equal(t, 40.0, decode[float64](t, rec))

	rec = s.do(t, http.MethodGet, "/api/products/total-stock-value-by-manufacturer", "")
	require.Equal(t, http.StatusOK, rec.Code)
	byM := decode[[]StockValueByManufacturerResponse](t, rec)
	require.Len(t, byM, 1)
	assert.Equal(t, bosch.ID(), byM[0].ID)
	assert.Equal(t, 40.0, byM[0].TotalStockValue)

	rec = s.do(t, http.MethodGet, "/api/products/low-stock?threshold=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]ProductResponse](t, rec), 2)

	rec = s.do(t, http.MethodGet, "/api/products/critical-stock", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 3)
	for _, item := range raw {
		keys := make([]string, 0, len(item))
		for k := range item {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, []string{"productName", "manufacturerName", "contactName", "contactPhone", "contactEmail"}, keys)
	}

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/products/low-stock?threshold=-1", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/products/critical-stock?threshold=1.5", "").Code)
}

func TestManufacturersAndEvents(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/products", inlineProduct).Code)

	rec := s.do(t, http.MethodGet, "/api/manufacturers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	ms := decode[[]ManufacturerResponse](t, rec)
	require.Len(t, ms, 1)
	assert.Equal(t, "Stuttgart", *ms[0].Address)

	rec = s.do(t, http.MethodGet, "/api/events?event_type=product.created", "")
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode[ListEventsResponse](t, rec)
	assert.Equal(t, 1, events.TotalCount)
	assert.Equal(t, "pending", events.Events[0].Status)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/events?status=lost", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/events?limit=-2", "").Code)
}

type failingService struct {
	InventoryService
}

func (failingService) TotalStockValue(context.Context) (float64, error) {
	return 0, errors.New("session pool exhausted")
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterConfig{Service: failingService{}, Log: logger.Nop()})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/total-stock-value", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode[ErrorEnvelope](t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "session pool")
}

type downDB struct{}

func (downDB) Ping(context.Context) error { return errors.New("unreachable") }

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	NewRouter(RouterConfig{Log: logger.Nop()}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	NewRouter(RouterConfig{Log: logger.Nop(), DB: downDB{}}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(RouterConfig{Log: logger.Nop(), AllowOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
