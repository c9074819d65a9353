package sale

import (
	"context"
	"time"

	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

// Repository is the port to the sale collection of the inventory API.
// Line operations return the whole updated sale.
type Repository interface {
	FindAll(ctx context.Context, filter ListFilter) (domain.ListResult[*Sale], error)

	// FindByID returns (nil, nil) when the sale does not exist.
	FindByID(ctx context.Context, docID id.ID) (*Sale, error)

	Create(ctx context.Context, in CreateInput) (*Sale, error)
	Update(ctx context.Context, docID id.ID, in UpdateInput) (*Sale, error)

	// Lifecycle
	Confirm(ctx context.Context, docID id.ID) (*Sale, error)
	Cancel(ctx context.Context, docID id.ID) (*Sale, error)

	// Lines
	AddLine(ctx context.Context, docID id.ID, line LineInput) (*Sale, error)
	RemoveLine(ctx context.Context, docID, lineID id.ID) (*Sale, error)
}

// ListFilter for filtering sales. Nil fields add no constraint.
type ListFilter struct {
	domain.PageFilter

	WarehouseID *id.ID     `url:"warehouseId,omitempty" form:"warehouseId"`
	CustomerID  *id.ID     `url:"customerId,omitempty" form:"customerId"`
	Status      *Status    `url:"status,omitempty" form:"status"`
	DateFrom    *time.Time `url:"dateFrom,omitempty" form:"dateFrom" time_format:"2006-01-02"`
	DateTo      *time.Time `url:"dateTo,omitempty" form:"dateTo" time_format:"2006-01-02"`
}
