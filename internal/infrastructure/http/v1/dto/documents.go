package dto

import (
	"backoffice/internal/domain/documents/movement"
	"backoffice/internal/domain/documents/sale"
	"backoffice/internal/domain/documents/salesreturn"
	"backoffice/internal/domain/documents/transfer"
)

// Document responses carry the entity plus the actions its status allows,
// so the UI can enable buttons without knowing the lifecycle rules.

// MovementResponse is a movement with its capabilities.
type MovementResponse struct {
	*movement.Movement
	Capabilities movement.Capabilities `json:"capabilities"`
}

// FromMovement builds the response for m.
func FromMovement(m *movement.Movement) MovementResponse {
	return MovementResponse{Movement: m, Capabilities: m.Capabilities()}
}

// TransferResponse is a transfer with its capabilities.
type TransferResponse struct {
	*transfer.Transfer
	Capabilities transfer.Capabilities `json:"capabilities"`
}

// FromTransfer builds the response for t.
func FromTransfer(t *transfer.Transfer) TransferResponse {
	return TransferResponse{Transfer: t, Capabilities: t.Capabilities()}
}

// UpdateTransferStatusRequest is the body of PATCH /transfers/:id/status.
type UpdateTransferStatusRequest struct {
	Status transfer.Status `json:"status" binding:"required"`
}

// SaleResponse is a sale with its capabilities.
type SaleResponse struct {
	*sale.Sale
	Capabilities sale.Capabilities `json:"capabilities"`
}

// FromSale builds the response for s.
func FromSale(s *sale.Sale) SaleResponse {
	return SaleResponse{Sale: s, Capabilities: s.Capabilities()}
}

// ReturnResponse is a return with its capabilities.
type ReturnResponse struct {
	*salesreturn.Return
	Capabilities salesreturn.Capabilities `json:"capabilities"`
}

// FromReturn builds the response for r.
func FromReturn(r *salesreturn.Return) ReturnResponse {
	return ReturnResponse{Return: r, Capabilities: r.Capabilities()}
}
