package handlers

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/documents/salesreturn"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// ReturnHandler handles HTTP requests for returns.
type ReturnHandler struct {
	*BaseDocumentHandler[salesreturn.Return, salesreturn.ListFilter, salesreturn.CreateInput, dto.ReturnResponse]
	service *salesreturn.Service
}

// NewReturnHandler creates a new return handler.
func NewReturnHandler(base *BaseHandler, service *salesreturn.Service) *ReturnHandler {
	cfg := BaseDocumentHandlerConfig[salesreturn.Return, salesreturn.ListFilter, salesreturn.CreateInput, dto.ReturnResponse]{
		Service:    service,
		EntityName: "return",
		MapToDTO:   dto.FromReturn,
	}

	return &ReturnHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// Update handles PATCH /returns/:id
func (h *ReturnHandler) Update(c *gin.Context) {
	docID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	var in salesreturn.UpdateInput
	if !h.BindJSON(c, &in) {
		return
	}

	doc, err := h.service.Update(c.Request.Context(), docID, in)
	h.respond(c, doc, err)
}

// Confirm handles POST /returns/:id/confirm
func (h *ReturnHandler) Confirm(c *gin.Context) {
	h.Transition(h.service.Confirm)(c)
}

// Cancel handles POST /returns/:id/cancel
func (h *ReturnHandler) Cancel(c *gin.Context) {
	h.Transition(h.service.Cancel)(c)
}

// AddLine handles POST /returns/:id/lines
func (h *ReturnHandler) AddLine(c *gin.Context) {
	docID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	var line salesreturn.LineInput
	if !h.BindJSON(c, &line) {
		return
	}

	doc, err := h.service.AddLine(c.Request.Context(), docID, line)
	h.respond(c, doc, err)
}

// RemoveLine handles DELETE /returns/:id/lines/:lineId
func (h *ReturnHandler) RemoveLine(c *gin.Context) {
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
