package catalogs

import (
	"context"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

// Repository is the port to the catalog endpoints of the inventory API.
// The FindXByID methods return (nil, nil) when the entry does not exist.
type Repository interface {
	FindProducts(ctx context.Context, filter ProductFilter) (domain.ListResult[*Product], error)
	FindProductByID(ctx context.Context, productID id.ID) (*Product, error)

	FindWarehouses(ctx context.Context, filter WarehouseFilter) (domain.ListResult[*Warehouse], error)
	FindWarehouseByID(ctx context.Context, warehouseID id.ID) (*Warehouse, error)

	FindCategories(ctx context.Context, filter CategoryFilter) (domain.ListResult[*Category], error)
}

// Service serves catalogs through the query cache.
// Nothing in the back-office mutates catalogs, so entries only expire by age.
type Service struct {
	repo  Repository
	cache domain.Cache
}

// NewService creates a new catalog service.
func NewService(repo Repository, c domain.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

func (s *Service) ListProducts(ctx context.Context, filter ProductFilter) (domain.ListResult[*Product], error) {
	return domain.CachedList(ctx, s.cache, cache.KindProduct, filter,
		func(ctx context.Context) (domain.ListResult[*Product], error) {
			return s.repo.FindProducts(ctx, filter)
		})
}

func (s *Service) GetProduct(ctx context.Context, productID id.ID) (*Product, error) {
	return domain.CachedGet(ctx, s.cache, cache.KindProduct, productID,
		func(ctx context.Context) (*Product, error) {
			return s.repo.FindProductByID(ctx, productID)
		})
}

func (s *Service) ListWarehouses(ctx context.Context, filter WarehouseFilter) (domain.ListResult[*Warehouse], error) {
	return domain.CachedList(ctx, s.cache, cache.KindWarehouse, filter,
		func(ctx context.Context) (domain.ListResult[*Warehouse], error) {
			return s.repo.FindWarehouses(ctx, filter)
		})
}

func (s *Service) GetWarehouse(ctx context.Context, warehouseID id.ID) (*Warehouse, error) {
	return domain.CachedGet(ctx, s.cache, cache.KindWarehouse, warehouseID,
		func(ctx context.Context) (*Warehouse, error) {
			return s.repo.FindWarehouseByID(ctx, warehouseID)
		})
}

func (s *Service) ListCategories(ctx context.Context, filter CategoryFilter) (domain.ListResult[*Category], error) {
	return domain.CachedList(ctx, s.cache, cache.KindCategory, filter,
		func(ctx context.Context) (domain.ListResult[*Category], error) {
			return s.repo.FindCategories(ctx, filter)
		})
}
