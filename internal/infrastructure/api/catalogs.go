package api

import (
	"context"

	"github.com/shopspring/decimal"

	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/internal/domain/catalogs"
)

const (
	productsPath   = "/products"
	warehousesPath = "/warehouses"
	categoriesPath = "/categories"
)

type catalogWire struct {
	ID        string  `json:"id"`
	Code      *string `json:"code"`
	Name      *string `json:"name"`
	IsActive  *bool   `json:"isActive"`
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
}

func (w *catalogWire) toDomain() catalogs.Catalog {
	c := catalogs.Catalog{
		ID:        w.ID,
		Code:      text(w.Code),
		Name:      text(w.Name),
		IsActive:  true,
		CreatedAt: optTimestamp(w.CreatedAt),
		UpdatedAt: optTimestamp(w.UpdatedAt),
	}
	if w.IsActive != nil {
		c.IsActive = *w.IsActive
	}
	return c
}

type productWire struct {
	catalogWire

	SKU          *string          `json:"sku"`
	Barcode      *string          `json:"barcode"`
	Unit         *string          `json:"unit"`
	CategoryID   *string          `json:"categoryId"`
	CategoryName *string          `json:"categoryName"`
	Category     *refWire         `json:"category"`
	Price        *decimal.Decimal `json:"price"`
	MinStock     *decimal.Decimal `json:"minStock"`
	Description  *string          `json:"description"`
}

func toProduct(w *productWire) *catalogs.Product {
	return &catalogs.Product{
		Catalog:      w.catalogWire.toDomain(),
		SKU:          text(w.SKU, w.Code),
		Barcode:      optText(w.Barcode),
		Unit:         text(w.Unit),
		CategoryID:   optID(w.CategoryID, w.Category.id()),
		CategoryName: text(w.CategoryName, w.Category.name()),
		Price:        optDecimal(w.Price),
		MinStock:     optDecimal(w.MinStock),
		Description:  optText(w.Description),
	}
}

type warehouseWire struct {
	catalogWire

	Address   *string `json:"address"`
	IsDefault *bool   `json:"isDefault"`
}

func toWarehouse(w *warehouseWire) *catalogs.Warehouse {
	wh := &catalogs.Warehouse{
		Catalog: w.catalogWire.toDomain(),
		Address: optText(w.Address),
	}
	if w.IsDefault != nil {
		wh.IsDefault = *w.IsDefault
	}
	return wh
}

type categoryWire struct {
	catalogWire

	ParentID     *string  `json:"parentId"`
	Parent       *refWire `json:"parent"`
	ProductCount *int     `json:"productCount"`
}

func toCategory(w *categoryWire) *catalogs.Category {
	c := &catalogs.Category{
		Catalog:  w.catalogWire.toDomain(),
		ParentID: optID(w.ParentID, w.Parent.id()),
	}
	if w.ProductCount != nil {
		c.ProductCount = *w.ProductCount
	}
	return c
}

func optDecimal(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := *v
	return &d
}

// CatalogRepository implements catalogs.Repository.
type CatalogRepository struct {
	client *Client
}

var _ catalogs.Repository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a catalog adapter.
func NewCatalogRepository(c *Client) *CatalogRepository {
	return &CatalogRepository{client: c}
}

func (r *CatalogRepository) FindProducts(ctx context.Context, filter catalogs.ProductFilter) (domain.ListResult[*catalogs.Product], error) {
	return getList(ctx, r.client, productsPath, filter, toProduct)
}

func (r *CatalogRepository) FindProductByID(ctx context.Context, productID id.ID) (*catalogs.Product, error) {
	return findOne(ctx, r.client, resourcePath(productsPath, productID), toProduct)
}

func (r *CatalogRepository) FindWarehouses(ctx context.Context, filter catalogs.WarehouseFilter) (domain.ListResult[*catalogs.Warehouse], error) {
	return getList(ctx, r.client, warehousesPath, filter, toWarehouse)
}

func (r *CatalogRepository) FindWarehouseByID(ctx context.Context, warehouseID id.ID) (*catalogs.Warehouse, error) {
	return findOne(ctx, r.client, resourcePath(warehousesPath, warehouseID), toWarehouse)
}

func (r *CatalogRepository) FindCategories(ctx context.Context, filter catalogs.CategoryFilter) (domain.ListResult[*catalogs.Category], error) {
	return getList(ctx, r.client, categoriesPath, filter, toCategory)
}
