package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_events"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

// EventsHandler serves the outbox to operators.
type EventsHandler struct {
	service InventoryService
	log     *logger.Logger
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(service InventoryService, log *logger.Logger) *EventsHandler {
	return &EventsHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/events.
func (h *EventsHandler) List(c *gin.Context) {
	req := &list_events.Request{}

	if eventType := c.Query("event_type"); eventType != "" {
		req.EventType = &eventType
	}
	if aggregateID := c.Query("aggregate_id"); aggregateID != "" {
		req.AggregateID = &aggregateID
	}
	if status := c.Query("status"); status != "" {
		req.Status = &status
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit <= 0 {
			verr := domain.NewValidationError()
			verr.Add("limit", "limit must be a positive integer")
			RespondError(c, h.log, verr)
			return
		}
		req.Limit = limit
	}

	events, err := h.service.ListEvents(c.Request.Context(), req)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	resp := ListEventsResponse{Events: make([]EventResponse, 0, len(events)), TotalCount: len(events)}
	for _, e := range events {
		resp.Events = append(resp.Events, toEventResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}
