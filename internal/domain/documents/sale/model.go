// Package sale provides the sale document.
package sale

import (
	"context"
	"time"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/core/types"
)

// Status is the sale lifecycle state.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// CanConfirm requires a draft with at least one line.
func CanConfirm(s Status, lineCount int) bool { return s == StatusDraft && lineCount > 0 }

// CanCancel is true unless the sale is already cancelled.
// A confirmed sale can still be cancelled.
func CanCancel(s Status) bool { return s != StatusCancelled }

// CanEdit is true only for drafts.
func CanEdit(s Status) bool { return s == StatusDraft }

// CanAddLines is true only for drafts.
func CanAddLines(s Status) bool { return s == StatusDraft }

// Sale is a customer sale document.
type Sale struct {
	entity.Document

	Status Status `json:"status"`

	entity.WarehouseRef

	CustomerID   *id.ID `json:"customerId"`
	CustomerName string `json:"customerName"`

	Reference *string `json:"reference"`
	Note      *string `json:"note"`

	Lines       []Line      `json:"lines"`
	TotalAmount types.Money `json:"totalAmount"`

	ConfirmedAt *time.Time `json:"confirmedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

// Line is one product sold.
type Line struct {
	ID id.ID `json:"id"`
	entity.ProductRef
	Quantity  int64       `json:"quantity"`
	SalePrice types.Money `json:"salePrice"`
	Discount  types.Money `json:"discount"`
	LineTotal types.Money `json:"lineTotal"`
}

// Capabilities are the guards derived from status and line count.
type Capabilities struct {
	CanConfirm  bool `json:"canConfirm"`
	CanCancel   bool `json:"canCancel"`
	CanEdit     bool `json:"canEdit"`
	CanAddLines bool `json:"canAddLines"`
}

// Capabilities returns the guards for s.
func (s *Sale) Capabilities() Capabilities {
	return Capabilities{
		CanConfirm:  CanConfirm(s.Status, len(s.Lines)),
		CanCancel:   CanCancel(s.Status),
		CanEdit:     CanEdit(s.Status),
		CanAddLines: CanAddLines(s.Status),
	}
}

// --- Inputs ---

// CreateInput is the body of a create call.
type CreateInput struct {
	WarehouseID id.ID       `json:"warehouseId"`
	CustomerID  *id.ID      `json:"customerId,omitempty"`
	Reference   *string     `json:"reference,omitempty"`
	Note        *string     `json:"note,omitempty"`
	Lines       []LineInput `json:"lines"`
}

// LineInput is one line of a create or add-line call.
type LineInput struct {
	ProductID id.ID        `json:"productId"`
	Quantity  int64        `json:"quantity"`
	SalePrice *types.Money `json:"salePrice,omitempty"`
	Discount  *types.Money `json:"discount,omitempty"`
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
	if in.SalePrice != nil && in.SalePrice.IsNegative() {
		return apperror.NewValidation("sale price cannot be negative").
			WithDetail("field", "salePrice")
	}
	return nil
}

// Validate implements entity.Validatable.
func (in *CreateInput) Validate(ctx context.Context) error {
	if id.IsEmpty(in.WarehouseID) {
		return apperror.NewValidation("warehouse is required").
			WithDetail("field", "warehouseId")
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
	CustomerID *id.ID  `json:"customerId,omitempty"`
	Reference  *string `json:"reference,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// Validate implements entity.Validatable.
func (in *UpdateInput) Validate(ctx context.Context) error {
	if in.CustomerID == nil && in.Reference == nil && in.Note == nil {
		return apperror.NewValidation("nothing to update")
	}
	return nil
}
