package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

// ReportsHandler serves the stock aggregations.
type ReportsHandler struct {
	service InventoryService
	log     *logger.Logger
}

func NewReportsHandler(service InventoryService, log *logger.Logger) *ReportsHandler {
	return &ReportsHandler{service: service, log: log}
}

// GET /api/products/total-stock-value
func (h *ReportsHandler) TotalStockValue(c *gin.Context) {
	total, err := h.service.TotalStockValue(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// GET /api/products/total-stock-value-by-manufacturer
func (h *ReportsHandler) TotalStockValueByManufacturer(c *gin.Context) {
	rows, err := h.service.TotalStockValueByManufacturer(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	out := make([]StockValueByManufacturerResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, StockValueByManufacturerResponse{
			ID:              r.Manufacturer.ID,
			Manufacturer:    toManufacturerResponse(r.Manufacturer),
			TotalStockValue: r.TotalStockValue,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/products/low-stock
func (h *ReportsHandler) LowStock(c *gin.Context) {
	threshold, ok := h.threshold(c)
	if !ok {
		return
	}
	products, err := h.service.LowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// GET /api/products/critical-stock
func (h *ReportsHandler) CriticalStock(c *gin.Context) {
	threshold, ok := h.threshold(c)
	if !ok {
		return
	}
	items, err := h.service.CriticalStockProducts(c.Request.Context(), threshold)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	out := make([]CriticalStockResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CriticalStockResponse{
			ProductName:      it.ProductName,
			ManufacturerName: it.ManufacturerName,
			ContactName:      it.ContactName,
			ContactPhone:     it.ContactPhone,
			ContactEmail:     it.ContactEmail,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportsHandler) threshold(c *gin.Context) (*int64, bool) {
	q := newQueryParams(c)
	t := q.integer("threshold", "threshold must be a non-negative integer")
	if err := q.err(); err != nil {
		RespondError(c, h.log, err)
		return nil, false
	}
	return t, true
}
