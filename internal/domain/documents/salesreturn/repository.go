package salesreturn

import (
	"context"
	"time"

	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

// Repository is the port to the return collection of the inventory API.
// Line operations return the whole updated return.
type Repository interface {
	FindAll(ctx context.Context, filter ListFilter) (domain.ListResult[*Return], error)

	// FindByID returns (nil, nil) when the return does not exist.
	FindByID(ctx context.Context, docID id.ID) (*Return, error)

	Create(ctx context.Context, in CreateInput) (*Return, error)
	Update(ctx context.Context, docID id.ID, in UpdateInput) (*Return, error)

	// Lifecycle
	Confirm(ctx context.Context, docID id.ID) (*Return, error)
	Cancel(ctx context.Context, docID id.ID) (*Return, error)

	// Lines
	AddLine(ctx context.Context, docID id.ID, line LineInput) (*Return, error)
	RemoveLine(ctx context.Context, docID, lineID id.ID) (*Return, error)
}

// ListFilter for filtering returns. Nil fields add no constraint.
type ListFilter struct {
	domain.PageFilter

	Type        *Type      `url:"type,omitempty" form:"type"`
	WarehouseID *id.ID     `url:"warehouseId,omitempty" form:"warehouseId"`
	Status      *Status    `url:"status,omitempty" form:"status"`
	DateFrom    *time.Time `url:"dateFrom,omitempty" form:"dateFrom" time_format:"2006-01-02"`
	DateTo      *time.Time `url:"dateTo,omitempty" form:"dateTo" time_format:"2006-01-02"`
}
