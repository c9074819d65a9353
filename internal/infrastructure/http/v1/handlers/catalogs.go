package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/internal/domain/catalogs"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// CatalogHandler serves read-only reference data.
type CatalogHandler struct {
	*BaseHandler
	service *catalogs.Service
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(base *BaseHandler, service *catalogs.Service) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, service: service}
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	listCatalog(h.BaseHandler, c, h.service.ListProducts)
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	getCatalog(h.BaseHandler, c, "product", h.service.GetProduct)
}

// ListWarehouses handles GET /warehouses
func (h *CatalogHandler) ListWarehouses(c *gin.Context) {
	listCatalog(h.BaseHandler, c, h.service.ListWarehouses)
}

// GetWarehouse handles GET /warehouses/:id
func (h *CatalogHandler) GetWarehouse(c *gin.Context) {
	getCatalog(h.BaseHandler, c, "warehouse", h.service.GetWarehouse)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	listCatalog(h.BaseHandler, c, h.service.ListCategories)
}

func listCatalog[T any, F any](
	h *BaseHandler,
	c *gin.Context,
	list func(ctx context.Context, filter F) (domain.ListResult[T], error),
) {
	var filter F
	if !h.BindQuery(c, &filter) {
		return
	}

	res, err := list(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse[T]{Data: res.Items, Pagination: res.Pagination})
}

func getCatalog[T any](
	h *BaseHandler,
	c *gin.Context,
	entity string,
	get func(ctx context.Context, entryID id.ID) (*T, error),
) {
	entryID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	entry, err := get(c.Request.Context(), entryID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if entry == nil {
		h.Error(c, apperror.NewNotFound(entity, entryID))
		return
	}

	h.OK(c, entry)
}
