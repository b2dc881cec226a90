package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

type ManufacturersHandler struct {
	service InventoryService
	log     *logger.Logger
}

func NewManufacturersHandler(service InventoryService, log *logger.Logger) *ManufacturersHandler {
	return &ManufacturersHandler{service: service, log: log}
}

// GET /api/manufacturers
func (h *ManufacturersHandler) List(c *gin.Context) {
	manufacturers, err := h.service.ListManufacturers(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}

	out := make([]ManufacturerResponse, 0, len(manufacturers))
	for _, m := range manufacturers {
		out = append(out, toManufacturerResponse(*m))
	}
	c.JSON(http.StatusOK, out)
}
