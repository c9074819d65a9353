// Package movement provides the stock movement document.
// A movement is posted to change stock levels and voided to reverse them.
package movement

import (
	"context"
	"time"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/core/types"
)

// Status is the movement lifecycle state.
type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusPosted Status = "POSTED"
	StatusVoid   Status = "VOID"
)

// Type is the direction of a movement.
type Type string

const (
	TypeIn         Type = "IN"
	TypeOut        Type = "OUT"
	TypeAdjustment Type = "ADJUSTMENT"
)

// IsValid reports whether t is a known movement type.
func (t Type) IsValid() bool {
	switch t {
	case TypeIn, TypeOut, TypeAdjustment:
		return true
	}
	return false
}

// CanPost is true only for drafts.
func CanPost(s Status) bool { return s == StatusDraft }

// CanVoid is true only for posted movements.
func CanVoid(s Status) bool { return s == StatusPosted }

// CanEdit is true only for drafts.
func CanEdit(s Status) bool { return s == StatusDraft }

// Movement is a stock movement document.
type Movement struct {
	entity.Document

	Type   Type   `json:"type"`
	Status Status `json:"status"`

	entity.WarehouseRef

	Reference *string `json:"reference"`
	Note      *string `json:"note"`
	Reason    *string `json:"reason"`

	Lines       []Line      `json:"lines"`
	TotalAmount types.Money `json:"totalAmount"`

	PostedAt *time.Time `json:"postedAt"`
	VoidedAt *time.Time `json:"voidedAt"`
}

// Line is one product quantity moved by the document.
// WarehouseID is the line's own warehouse when the server reports one,
// otherwise the header warehouse.
type Line struct {
	ID id.ID `json:"id"`
	entity.ProductRef
	WarehouseID id.ID       `json:"warehouseId"`
	Quantity    int64       `json:"quantity"`
	UnitCost    types.Money `json:"unitCost"`
	LineTotal   types.Money `json:"lineTotal"`
}

// Capabilities are the guards derived from the current status.
type Capabilities struct {
	CanPost bool `json:"canPost"`
	CanVoid bool `json:"canVoid"`
	CanEdit bool `json:"canEdit"`
}

// Capabilities returns the guards for m.
func (m *Movement) Capabilities() Capabilities {
	return Capabilities{
		CanPost: CanPost(m.Status),
		CanVoid: CanVoid(m.Status),
		CanEdit: CanEdit(m.Status),
	}
}

// StockRefs returns every (product, warehouse) pair touched by the lines.
func (m *Movement) StockRefs() []entity.StockRef {
	refs := make([]entity.StockRef, 0, len(m.Lines))
	for _, l := range m.Lines {
		warehouseID := l.WarehouseID
		if id.IsEmpty(warehouseID) {
			warehouseID = m.WarehouseID
		}
		refs = append(refs, entity.StockRef{ProductID: l.ProductID, WarehouseID: warehouseID})
	}
	return entity.UniqueStockRefs(refs)
}

// --- Inputs ---

// CreateInput is the body of a create call.
type CreateInput struct {
	Type        Type        `json:"type"`
	WarehouseID id.ID       `json:"warehouseId"`
	Reference   *string     `json:"reference,omitempty"`
	Note        *string     `json:"note,omitempty"`
	Reason      *string     `json:"reason,omitempty"`
	Lines       []LineInput `json:"lines"`
}

// LineInput is one line of a create call.
type LineInput struct {
	ProductID   id.ID        `json:"productId"`
	WarehouseID *id.ID       `json:"warehouseId,omitempty"`
	Quantity    int64        `json:"quantity"`
	UnitCost    *types.Money `json:"unitCost,omitempty"`
}

// Validate implements entity.Validatable.
func (in *CreateInput) Validate(ctx context.Context) error {
	if !in.Type.IsValid() {
		return apperror.NewValidation("movement type is invalid").
			WithDetail("field", "type")
	}

	if id.IsEmpty(in.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	for i, line := range in.Lines {
		if id.IsEmpty(line.ProductID) {
			return apperror.NewValidation("product is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if line.Quantity <= 0 {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}

// UpdateInput carries the metadata fields that stay editable.
// Nil fields are left unchanged.
type UpdateInput struct {
	Reference *string `json:"reference,omitempty"`
	Note      *string `json:"note,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

// Validate implements entity.Validatable.
func (in *UpdateInput) Validate(ctx context.Context) error {
	if in.Reference == nil && in.Note == nil && in.Reason == nil {
		return apperror.NewValidation("nothing to update")
	}
	return nil
}
