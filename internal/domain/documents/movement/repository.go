package movement

import (
	"context"
	"time"

	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

// Repository is the port to the movement collection of the inventory API.
type Repository interface {
	FindAll(ctx context.Context, filter ListFilter) (domain.ListResult[*Movement], error)

	// FindByID returns (nil, nil) when the movement does not exist.
	FindByID(ctx context.Context, docID id.ID) (*Movement, error)

	Create(ctx context.Context, in CreateInput) (*Movement, error)
	Update(ctx context.Context, docID id.ID, in UpdateInput) (*Movement, error)

	// Lifecycle
	Post(ctx context.Context, docID id.ID) (*Movement, error)
	Void(ctx context.Context, docID id.ID) (*Movement, error)
}

// ListFilter for filtering movements. Nil fields add no constraint.
type ListFilter struct {
	domain.PageFilter

	WarehouseID *id.ID     `url:"warehouseId,omitempty" form:"warehouseId"`
	ProductID   *id.ID     `url:"productId,omitempty" form:"productId"`
	Status      *Status    `url:"status,omitempty" form:"status"`
	Type        *Type      `url:"type,omitempty" form:"type"`
	DateFrom    *time.Time `url:"dateFrom,omitempty" form:"dateFrom" time_format:"2006-01-02"`
	DateTo      *time.Time `url:"dateTo,omitempty" form:"dateTo" time_format:"2006-01-02"`
}
