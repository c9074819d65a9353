package handlers

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/documents/transfer"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// TransferHandler handles HTTP requests for warehouse transfers.
type TransferHandler struct {
	*BaseDocumentHandler[transfer.Transfer, transfer.ListFilter, transfer.CreateInput, dto.TransferResponse]
	service *transfer.Service
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(base *BaseHandler, service *transfer.Service) *TransferHandler {
	cfg := BaseDocumentHandlerConfig[transfer.Transfer, transfer.ListFilter, transfer.CreateInput, dto.TransferResponse]{
		Service:    service,
		EntityName: "transfer",
		MapToDTO:   dto.FromTransfer,
	}

	return &TransferHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// UpdateStatus handles PATCH /transfers/:id/status
func (h *TransferHandler) UpdateStatus(c *gin.Context) {
	docID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransferStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.UpdateStatus(c.Request.Context(), docID, req.Status)
	h.respond(c, doc, err)
}
