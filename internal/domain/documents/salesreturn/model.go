// Package salesreturn provides the return document for customer and supplier returns.
package salesreturn

import (
	"context"
	"time"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/core/types"
)

// Status is the return lifecycle state.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// Type tells whether goods come back from a customer or go back to a supplier.
type Type string

const (
	TypeCustomer Type = "RETURN_CUSTOMER"
	TypeSupplier Type = "RETURN_SUPPLIER"
)

// IsValid reports whether t is a known return type.
func (t Type) IsValid() bool {
	return t == TypeCustomer || t == TypeSupplier
}

// CanConfirm requires a draft with at least one line.
func CanConfirm(s Status, lineCount int) bool { return s == StatusDraft && lineCount > 0 }

// CanCancel is true unless the return is already cancelled.
func CanCancel(s Status) bool { return s != StatusCancelled }

// CanEdit is true only for drafts.
func CanEdit(s Status) bool { return s == StatusDraft }

// CanAddLines is true only for drafts.
func CanAddLines(s Status) bool { return s == StatusDraft }

// Return is a customer or supplier return document.
type Return struct {
	entity.Document

	Type   Type   `json:"type"`
	Status Status `json:"status"`

	entity.WarehouseRef

	// SaleID links a customer return to the originating sale.
	SaleID       *id.ID `json:"saleId"`
	SupplierID   *id.ID `json:"supplierId"`
	SupplierName string `json:"supplierName"`

	Reason *string `json:"reason"`
	Note   *string `json:"note"`

	Lines       []Line      `json:"lines"`
	TotalAmount types.Money `json:"totalAmount"`

	ConfirmedAt *time.Time `json:"confirmedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

// Line is one product returned. Customer returns carry the original sale
// price, supplier returns the original unit cost.
type Line struct {
	ID id.ID `json:"id"`
	entity.ProductRef
	Quantity      int64       `json:"quantity"`
	OriginalPrice types.Money `json:"originalPrice"`
	OriginalCost  types.Money `json:"originalCost"`
	LineTotal     types.Money `json:"lineTotal"`
}

// UnitAmount returns the monetary figure that is meaningful for t.
func (l Line) UnitAmount(t Type) types.Money {
	if t == TypeSupplier {
		return l.OriginalCost
	}
	return l.OriginalPrice
}

// Capabilities are the guards derived from status and line count.
type Capabilities struct {
	CanConfirm  bool `json:"canConfirm"`
	CanCancel   bool `json:"canCancel"`
	CanEdit     bool `json:"canEdit"`
	CanAddLines bool `json:"canAddLines"`
}

// Capabilities returns the guards for r.
func (r *Return) Capabilities() Capabilities {
	return Capabilities{
		CanConfirm:  CanConfirm(r.Status, len(r.Lines)),
		CanCancel:   CanCancel(r.Status),
		CanEdit:     CanEdit(r.Status),
		CanAddLines: CanAddLines(r.Status),
	}
}

// --- Inputs ---

// CreateInput is the body of a create call.
type CreateInput struct {
	Type        Type        `json:"type"`
	WarehouseID id.ID       `json:"warehouseId"`
	SaleID      *id.ID      `json:"saleId,omitempty"`
	SupplierID  *id.ID      `json:"supplierId,omitempty"`
	Reason      *string     `json:"reason,omitempty"`
	Note        *string     `json:"note,omitempty"`
	Lines       []LineInput `json:"lines"`
}

// LineInput is one line of a create or add-line call.
type LineInput struct {
	ProductID     id.ID        `json:"productId"`
	Quantity      int64        `json:"quantity"`
	OriginalPrice *types.Money `json:"originalPrice,omitempty"`
	OriginalCost  *types.Money `json:"originalCost,omitempty"`
}

// Validate implements entity.Validatable.
func (in *LineInput) Validate(ctx context.Context) error {
	if id.IsEmpty(in.ProductID) {
		return apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if in.Quantity <= 0 {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity")
	}
	return nil
}

// Validate implements entity.Validatable.
func (in *CreateInput) Validate(ctx context.Context) error {
	if !in.Type.IsValid() {
		return apperror.NewValidation("return type is invalid").
			WithDetail("field", "type")
	}

	if id.IsEmpty(in.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
	}

	if in.Type == TypeSupplier && (in.SupplierID == nil || id.IsEmpty(*in.SupplierID)) {
		return apperror.NewValidation("supplier is required for supplier returns").
			WithDetail("field", "supplierId")
	}

	for i := range in.Lines {
		if err := in.Lines[i].Validate(ctx); err != nil {
			if appErr, ok := apperror.AsAppError(err); ok {
				appErr.WithDetail("lineNo", i+1)
			}
			return err
		}
	}

	return nil
}

// UpdateInput carries the metadata fields that stay editable.
type UpdateInput struct {
	Reason *string `json:"reason,omitempty"`
	Note   *string `json:"note,omitempty"`
}

// Validate implements entity.Validatable.
func (in *UpdateInput) Validate(ctx context.Context) error {
	if in.Reason == nil && in.Note == nil {
		return apperror.NewValidation("nothing to update")
	}
	return nil
}
