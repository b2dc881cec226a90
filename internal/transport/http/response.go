package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

type ContactResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ManufacturerResponse struct {
	ID          string           `json:"_id"`
	Name        string           `json:"name"`
	Country     string           `json:"country"`
	Website     string           `json:"website"`
	Description *string          `json:"description"`
	Address     *string          `json:"address"`
	Contact     *ContactResponse `json:"contact"`
}

type ProductResponse struct {
	ID            string               `json:"_id"`
	Name          string               `json:"name"`
	SKU           string               `json:"sku"`
	Description   string               `json:"description"`
	Price         float64              `json:"price"`
	Category      string               `json:"category"`
	AmountInStock int64                `json:"amountInStock"`
	Manufacturer  ManufacturerResponse `json:"manufacturer"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type StockValueByManufacturerResponse struct {
	ID              string               `json:"_id"`
	Manufacturer    ManufacturerResponse `json:"manufacturer"`
	TotalStockValue float64              `json:"totalStockValue"`
}

// CriticalStockResponse is the reorder projection. No ids, price or sku.
type CriticalStockResponse struct {
	ProductName      string  `json:"productName"`
	ManufacturerName string  `json:"manufacturerName"`
	ContactName      *string `json:"contactName"`
	ContactPhone     *string `json:"contactPhone"`
	ContactEmail     *string `json:"contactEmail"`
}

// EventResponse is an outbox row.
type EventResponse struct {
	EventID     string  `json:"event_id"`
	EventType   string  `json:"event_type"`
	AggregateID string  `json:"aggregate_id"`
	Payload     string  `json:"payload"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

// ListEventsResponse is the body of GET /api/events.
type ListEventsResponse struct {
	Events     []EventResponse `json:"events"`
	TotalCount int             `json:"total_count"`
}

func toManufacturerResponse(v contracts.ManufacturerView) ManufacturerResponse {
	r := ManufacturerResponse{
		ID:          v.ID,
		Name:        v.Name,
		Country:     v.Country,
		Website:     v.Website,
		Description: v.Description,
		Address:     v.Address,
	}
	if c := v.Contact; c != nil {
		r.Contact = &ContactResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
	}
	return r
}

func toProductResponse(v *contracts.ProductView) ProductResponse {
	return ProductResponse{
		ID:            v.ID,
		Name:          v.Name,
		SKU:           v.SKU,
		Description:   v.Description,
		Price:         v.Price,
		Category:      v.Category,
		AmountInStock: v.AmountInStock,
		Manufacturer:  toManufacturerResponse(v.Manufacturer),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toProductResponses(views []*contracts.ProductView) []ProductResponse {
	out := make([]ProductResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toProductResponse(v))
	}
	return out
}

func toEventResponse(v *contracts.EventView) EventResponse {
	r := EventResponse{
		EventID:     v.EventID,
		EventType:   v.EventType,
		AggregateID: v.AggregateID,
		Payload:     v.Payload,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
	if v.ProcessedAt != nil {
		s := v.ProcessedAt.Format(time.RFC3339)
		r.ProcessedAt = &s
	}
	return r
}

// APIError is the error body shared by every endpoint.
type APIError struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMalformedInput, domain.KindContractViolation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError classifies err and writes the envelope. Internal errors are
// logged with their cause and reported without detail.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	kind := domain.Classify(err)
	status := StatusFor(kind)

	body := APIError{Message: err.Error(), Code: kind.String()}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body.Message = "validation failed"
		body.Fields = verr.Fields
	}

	if status == http.StatusInternalServerError {
		if log != nil {
			log.Error("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", c.GetString(requestIDKey),
				"error", err,
			)
		}
		body.Message = "internal server error"
	}

	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: body})
}
