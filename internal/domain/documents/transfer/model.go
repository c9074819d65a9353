// Package transfer provides the warehouse transfer document.
package transfer

import (
	"context"
	"time"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/entity"
	"backoffice/internal/core/id"
	"backoffice/internal/core/types"
)

// Status is the transfer lifecycle state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusInTransit Status = "IN_TRANSIT"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanStartTransit is true only for pending transfers.
func CanStartTransit(s Status) bool { return s == StatusPending }

// CanComplete is true only for transfers in transit.
func CanComplete(s Status) bool { return s == StatusInTransit }

// CanCancel is true for pending transfers and transfers in transit.
func CanCancel(s Status) bool { return s == StatusPending || s == StatusInTransit }

// CanTransition reports whether the status change from -> to is legal.
func CanTransition(from, to Status) bool {
	switch to {
	case StatusInTransit:
		return CanStartTransit(from)
	case StatusCompleted:
		return CanComplete(from)
	case StatusCancelled:
		return CanCancel(from)
	default:
		return false
	}
}

// Transfer moves goods from one warehouse to another.
type Transfer struct {
	entity.Document

	Status Status `json:"status"`

	FromWarehouseID   id.ID  `json:"fromWarehouseId"`
	FromWarehouseName string `json:"fromWarehouseName"`
	ToWarehouseID     id.ID  `json:"toWarehouseId"`
	ToWarehouseName   string `json:"toWarehouseName"`

	Note *string `json:"note"`

	Lines       []Line      `json:"lines"`
	TotalAmount types.Money `json:"totalAmount"`

	ShippedAt   *time.Time `json:"shippedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

// Line is one product quantity carried by the transfer.
type Line struct {
	ID id.ID `json:"id"`
	entity.ProductRef
	Quantity  int64       `json:"quantity"`
	UnitCost  types.Money `json:"unitCost"`
	LineTotal types.Money `json:"lineTotal"`
}

// Capabilities are the guards derived from the current status.
type Capabilities struct {
	CanStartTransit bool `json:"canStartTransit"`
	CanComplete     bool `json:"canComplete"`
	CanCancel       bool `json:"canCancel"`
}

// Capabilities returns the guards for t.
func (t *Transfer) Capabilities() Capabilities {
	return Capabilities{
		CanStartTransit: CanStartTransit(t.Status),
		CanComplete:     CanComplete(t.Status),
		CanCancel:       CanCancel(t.Status),
	}
}

// StockRefs returns the (product, warehouse) pairs on both ends of the transfer.
func (t *Transfer) StockRefs() []entity.StockRef {
	refs := make([]entity.StockRef, 0, 2*len(t.Lines))
	for _, l := range t.Lines {
		refs = append(refs,
			entity.StockRef{ProductID: l.ProductID, WarehouseID: t.FromWarehouseID},
			entity.StockRef{ProductID: l.ProductID, WarehouseID: t.ToWarehouseID},
		)
	}
	return entity.UniqueStockRefs(refs)
}

// --- Inputs ---

// CreateInput is the body of a create call.
type CreateInput struct {
	FromWarehouseID id.ID       `json:"fromWarehouseId"`
	ToWarehouseID   id.ID       `json:"toWarehouseId"`
	Note            *string     `json:"note,omitempty"`
	Lines           []LineInput `json:"lines"`
}

// LineInput is one line of a create call.
type LineInput struct {
	ProductID id.ID `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// Validate implements entity.Validatable.
func (in *CreateInput) Validate(ctx context.Context) error {
	if id.IsEmpty(in.FromWarehouseID) {
		return apperror.NewValidation("source warehouse is required").
			WithDetail("field", "fromWarehouseId")
	}

	if id.IsEmpty(in.ToWarehouseID) {
		return apperror.NewValidation("destination warehouse is required").
			WithDetail("field", "toWarehouseId")
	}

	if in.FromWarehouseID == in.ToWarehouseID {
		return apperror.NewValidation("source and destination warehouses must differ").
			WithDetail("field", "toWarehouseId")
	}

	if len(in.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
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
