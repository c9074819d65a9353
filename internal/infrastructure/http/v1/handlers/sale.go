package handlers

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/documents/sale"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// SaleHandler handles HTTP requests for sales.
type SaleHandler struct {
	*BaseDocumentHandler[sale.Sale, sale.ListFilter, sale.CreateInput, dto.SaleResponse]
	service *sale.Service
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service *sale.Service) *SaleHandler {
	cfg := BaseDocumentHandlerConfig[sale.Sale, sale.ListFilter, sale.CreateInput, dto.SaleResponse]{
		Service:    service,
		EntityName: "sale",
		MapToDTO:   dto.FromSale,
	}

	return &SaleHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// Update handles PATCH /sales/:id
func (h *SaleHandler) Update(c *gin.Context) {
	docID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	var in sale.UpdateInput
	if !h.BindJSON(c, &in) {
		return
	}

	doc, err := h.service.Update(c.Request.Context(), docID, in)
	h.respond(c, doc, err)
}

// Confirm handles POST /sales/:id/confirm
func (h *SaleHandler) Confirm(c *gin.Context) {
	h.Transition(h.service.Confirm)(c)
}

// Cancel handles POST /sales/:id/cancel
func (h *SaleHandler) Cancel(c *gin.Context) {
	h.Transition(h.service.Cancel)(c)
}

// AddLine handles POST /sales/:id/lines
func (h *SaleHandler) AddLine(c *gin.Context) {
	docID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	var line sale.LineInput
	if !h.BindJSON(c, &line) {
		return
	}

	doc, err := h.service.AddLine(c.Request.Context(), docID, line)
	h.respond(c, doc, err)
}

// RemoveLine handles DELETE /sales/:id/lines/:lineId
func (h *SaleHandler) RemoveLine(c *gin.Context) {
	docID, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	lineID, ok := h.PathID(c, "lineId")
	if !ok {
		return
	}

	doc, err := h.service.RemoveLine(c.Request.Context(), docID, lineID)
	h.respond(c, doc, err)
}
