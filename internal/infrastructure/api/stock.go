package api

import (
	"context"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain"
	"backoffice/internal/domain/stock"
)

const stockPath = "/stock"

type stockLevelWire struct {
	ProductID     *string          `json:"productId"`
	ProductName   *string          `json:"productName"`
	ProductSKU    *string          `json:"productSku"`
	Product       *refWire         `json:"product"`
	WarehouseID   *string          `json:"warehouseId"`
	WarehouseName *string          `json:"warehouseName"`
	Warehouse     *refWire         `json:"warehouse"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Reserved      *decimal.Decimal `json:"reserved"`
	Available     *decimal.Decimal `json:"available"`
	MinStock      *decimal.Decimal `json:"minStock"`
	UpdatedAt     *string          `json:"updatedAt"`
}

func toStockLevel(w *stockLevelWire) *stock.Level {
	product := productRef(w.ProductID, w.ProductName, w.ProductSKU, w.Product)
	warehouse := warehouseRef(w.WarehouseID, w.WarehouseName, w.Warehouse)

	return &stock.Level{
		ProductID:     product.ProductID,
		ProductName:   product.ProductName,
		ProductSKU:    product.ProductSKU,
		WarehouseID:   warehouse.WarehouseID,
		WarehouseName: warehouse.WarehouseName,
		Quantity:      amount(w.Quantity),
		Reserved:      amount(w.Reserved),
		Available:     amount(w.Available, w.Quantity),
		MinStock:      optDecimal(w.MinStock),
		UpdatedAt:     optTimestamp(w.UpdatedAt),
	}
}

// StockRepository implements stock.Repository.
type StockRepository struct {
	client *Client
}

var _ stock.Repository = (*StockRepository)(nil)

// NewStockRepository creates a stock adapter.
func NewStockRepository(c *Client) *StockRepository {
	return &StockRepository{client: c}
}

func (r *StockRepository) FindAll(ctx context.Context, filter stock.ListFilter) (domain.ListResult[*stock.Level], error) {
	return getList(ctx, r.client, stockPath, filter, toStockLevel)
}
