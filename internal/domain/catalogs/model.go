// Package catalogs provides the reference data shown next to documents:
// products, warehouses and product categories.
// Catalogs are maintained by the inventory API and are read-only here.
package catalogs

import (
	"time"

	"backoffice/internal/core/id"
	"backoffice/internal/core/types"
	"backoffice/internal/domain"
)

// Catalog contains the fields shared by every catalog entry.
type Catalog struct {
	ID        id.ID      `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"isActive"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Product is a stock-keeping item.
type Product struct {
	Catalog

	SKU          string          `json:"sku"`
	Barcode      *string         `json:"barcode"`
	Unit         string          `json:"unit"`
	CategoryID   *id.ID          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Price        *types.Money    `json:"price"`
	MinStock     *types.Quantity `json:"minStock"`
	Description  *string         `json:"description"`
}

// Warehouse is a storage location.
type Warehouse struct {
	Catalog

	Address   *string `json:"address"`
	IsDefault bool    `json:"isDefault"`
}

// Category groups products. ParentID is nil for top-level categories.
type Category struct {
	Catalog

	ParentID     *id.ID `json:"parentId"`
	ProductCount int    `json:"productCount"`
}

// ProductFilter for filtering products.
type ProductFilter struct {
	domain.PageFilter

	CategoryID *id.ID `url:"categoryId,omitempty" form:"categoryId"`
	IsActive   *bool  `url:"isActive,omitempty" form:"isActive"`
}

// WarehouseFilter for filtering warehouses.
type WarehouseFilter struct {
	domain.PageFilter

	IsActive *bool `url:"isActive,omitempty" form:"isActive"`
}

// CategoryFilter for filtering categories.
type CategoryFilter struct {
	domain.PageFilter

	ParentID *id.ID `url:"parentId,omitempty" form:"parentId"`
}
