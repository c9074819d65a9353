// Package stock provides the stock level read-model.
// Levels are computed and persisted by the inventory API; this package only reads them.
package stock

import (
	"context"
	"time"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/core/types"
	"backoffice/internal/domain"
)

// Level is the quantity of one product in one warehouse.
type Level struct {
	ProductID     id.ID           `json:"productId"`
	ProductName   string          `json:"productName"`
	ProductSKU    string          `json:"productSku"`
	WarehouseID   id.ID           `json:"warehouseId"`
	WarehouseName string          `json:"warehouseName"`
	Quantity      types.Quantity  `json:"quantity"`
	Reserved      types.Quantity  `json:"reserved"`
	Available     types.Quantity  `json:"available"`
	MinStock      *types.Quantity `json:"minStock"`
	UpdatedAt     *time.Time      `json:"updatedAt"`
}

// ListFilter for filtering stock levels. The warehouse and product
// parameters also scope cache invalidation.
type ListFilter struct {
	domain.PageFilter

	WarehouseID *id.ID `url:"warehouseId,omitempty" form:"warehouseId"`
	ProductID   *id.ID `url:"productId,omitempty" form:"productId"`
	LowStock    *bool  `url:"lowStock,omitempty" form:"lowStock"`
}

// Repository is the port to the stock read-model.
type Repository interface {
	FindAll(ctx context.Context, filter ListFilter) (domain.ListResult[*Level], error)
}

// Service serves stock levels through the query cache.
type Service struct {
	repo  Repository
	cache domain.Cache
}

// NewService creates a new stock service.
func NewService(repo Repository, c domain.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// List returns a page of stock levels.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Level], error) {
	return domain.CachedList(ctx, s.cache, cache.KindStock, filter,
		func(ctx context.Context) (domain.ListResult[*Level], error) {
			return s.repo.FindAll(ctx, filter)
		})
}
