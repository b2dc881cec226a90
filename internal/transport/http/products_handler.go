package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/validation"
	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

// ProductsHandler serves product CRUD and listing.
type ProductsHandler struct {
	service InventoryService
	log     *logger.Logger
}

func NewProductsHandler(service InventoryService, log *logger.Logger) *ProductsHandler {
	return &ProductsHandler{service: service, log: log}
}

// GET /api/products
func (h *ProductsHandler) List(c *gin.Context) {
	q := newQueryParams(c)
	req := &list_products.Request{
		Category:       q.str("category"),
		PriceMin:       q.float("priceMin"),
		PriceMax:       q.float("priceMax"),
		Search:         q.str("search"),
		ManufacturerID: q.str("manufacturerId"),
		Limit:          q.integer("limit", "limit must be a positive integer"),
	}
	if sort := q.str("sort"); sort != nil {
		req.Sort = *sort
	}
	if err := q.err(); err != nil {
		RespondError(c, h.log, err)
		return
	}

	products, err := h.service.ListProducts(c.Request.Context(), req)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// GET /api/products/:id
func (h *ProductsHandler) Get(c *gin.Context) {
	product, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// POST /api/products
func (h *ProductsHandler) Create(c *gin.Context) {
	var in validation.ProductInput
	if err := validation.DecodeJSON(c.Request.Body, &in); err != nil {
		RespondError(c, h.log, err)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), &in)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(product))
}

// PUT /api/products/:id
func (h *ProductsHandler) Update(c *gin.Context) {
	var in validation.ProductInput
	if err := validation.DecodeJSON(c.Request.Body, &in); err != nil {
		RespondError(c, h.log, err)
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

// DELETE /api/products/:id
func (h *ProductsHandler) Delete(c *gin.Context) {
	product, err := h.service.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}
