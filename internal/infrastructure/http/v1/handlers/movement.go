package handlers

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/documents/movement"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// MovementHandler handles HTTP requests for stock movements.
type MovementHandler struct {
	*BaseDocumentHandler[movement.Movement, movement.ListFilter, movement.CreateInput, dto.MovementResponse]
	service *movement.Service
}

// NewMovementHandler creates a new movement handler.
func NewMovementHandler(base *BaseHandler, service *movement.Service) *MovementHandler {
	cfg := BaseDocumentHandlerConfig[movement.Movement, movement.ListFilter, movement.CreateInput, dto.MovementResponse]{
		Service:    service,
		EntityName: "movement",
		MapToDTO:   dto.FromMovement,
	}

	return &MovementHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// Update handles PATCH /movements/:id
func (h *MovementHandler) Update(c *gin.Context) {
	docID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	var in movement.UpdateInput
	if !h.BindJSON(c, &in) {
		return
	}

	doc, err := h.service.Update(c.Request.Context(), docID, in)
	h.respond(c, doc, err)
}

// Post handles POST /movements/:id/post
func (h *MovementHandler) Post(c *gin.Context) {
	h.Transition(h.service.Post)(c)
}

// Void handles POST /movements/:id/void
func (h *MovementHandler) Void(c *gin.Context) {
	h.Transition(h.service.Void)(c)
}
