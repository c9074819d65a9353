package transfer

import (
	"context"
	"time"

	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

// Repository is the port to the transfer collection of the inventory API.
type Repository interface {
	FindAll(ctx context.Context, filter ListFilter) (domain.ListResult[*Transfer], error)

	// FindByID returns (nil, nil) when the transfer does not exist.
	FindByID(ctx context.Context, docID id.ID) (*Transfer, error)

	Create(ctx context.Context, in CreateInput) (*Transfer, error)

	// UpdateStatus drives every lifecycle transition.
	UpdateStatus(ctx context.Context, docID id.ID, status Status) (*Transfer, error)
}

// ListFilter for filtering transfers. Nil fields add no constraint.
type ListFilter struct {
	domain.PageFilter

	FromWarehouseID *id.ID     `url:"fromWarehouseId,omitempty" form:"fromWarehouseId"`
	ToWarehouseID   *id.ID     `url:"toWarehouseId,omitempty" form:"toWarehouseId"`
	Status          *Status    `url:"status,omitempty" form:"status"`
	DateFrom        *time.Time `url:"dateFrom,omitempty" form:"dateFrom" time_format:"2006-01-02"`
	DateTo          *time.Time `url:"dateTo,omitempty" form:"dateTo" time_format:"2006-01-02"`
}
