package catalogs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

type fakeRepo struct {
	productReads   int
	warehouseReads int
	categoryReads  int
}

func (r *fakeRepo) FindProducts(ctx context.Context, filter ProductFilter) (domain.ListResult[*Product], error) {
	r.productReads++
	return domain.NewListResult([]*Product{{Catalog: Catalog{ID: "p1"}, SKU: "SKU-1"}}, domain.Pagination{Page: 1, Total: 1}), nil
}

func (r *fakeRepo) FindProductByID(ctx context.Context, productID id.ID) (*Product, error) {
	r.productReads++
	if productID == "missing" {
		return nil, nil
	}
	return &Product{Catalog: Catalog{ID: productID}}, nil
}

func (r *fakeRepo) FindWarehouses(ctx context.Context, filter WarehouseFilter) (domain.ListResult[*Warehouse], error) {
	r.warehouseReads++
	return domain.NewListResult([]*Warehouse{{Catalog: Catalog{ID: "w1"}}}, domain.Pagination{}), nil
}

func (r *fakeRepo) FindWarehouseByID(ctx context.Context, warehouseID id.ID) (*Warehouse, error) {
	r.warehouseReads++
	return &Warehouse{Catalog: Catalog{ID: warehouseID}}, nil
}

func (r *fakeRepo) FindCategories(ctx context.Context, filter CategoryFilter) (domain.ListResult[*Category], error) {
	r.categoryReads++
	return domain.NewListResult[*Category](nil, domain.Pagination{}), nil
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func TestService_CatalogsUseSlowWindow(t *testing.T) {
	clk := &clock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	repo := &fakeRepo{}
	svc := NewService(repo, domain.NewCache(cache.New(cache.WithClock(clk.Now))))
	ctx := context.Background()

	_, err := svc.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	_, err = svc.ListWarehouses(ctx, WarehouseFilter{})
	require.NoError(t, err)

	clk.now = clk.now.Add(3 * time.Minute)
	_, err = svc.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	_, err = svc.ListWarehouses(ctx, WarehouseFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.productReads)
	assert.Equal(t, 1, repo.warehouseReads)

	clk.now = clk.now.Add(2 * time.Minute)
	_, err = svc.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.productReads)
}

func TestService_FiltersAreSeparateEntries(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, domain.NewCache(cache.New()))
	ctx := context.Background()
	active := true
	category := "c1"

	_, err := svc.ListProducts(ctx, ProductFilter{IsActive: &active})
	require.NoError(t, err)
	_, err = svc.ListProducts(ctx, ProductFilter{CategoryID: &category})
	require.NoError(t, err)
	_, err = svc.ListProducts(ctx, ProductFilter{IsActive: &active})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.productReads)
}

func TestService_GetProductCachesAbsence(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, domain.NewCache(cache.New()))
	ctx := context.Background()

	for range 2 {
		p, err := svc.GetProduct(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, p)
	}
	assert.Equal(t, 1, repo.productReads)

	w, err := svc.GetWarehouse(ctx, "w9")
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, "w9", w.ID)
}

func TestService_ListCategoriesNeverNil(t *testing.T) {
	svc := NewService(&fakeRepo{}, domain.NewCache(cache.New()))

	res, err := svc.ListCategories(context.Background(), CategoryFilter{})
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}
