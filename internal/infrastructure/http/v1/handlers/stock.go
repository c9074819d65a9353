package handlers

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/stock"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// StockHandler serves stock levels.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{BaseHandler: base, service: service}
}

// List handles GET /stock
func (h *StockHandler) List(c *gin.Context) {
	var filter stock.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	res, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse[*stock.Level]{Data: res.Items, Pagination: res.Pagination})
}
