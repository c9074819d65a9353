package entity

import (
	"backoffice/internal/core/id"
)

// Document is the header shared by every inventory document
// (movements, transfers, sales, returns).
type Document struct {
	// ID is the server-issued identifier
	ID id.ID `json:"id"`

	// DocumentNumber is the human readable number issued by the server
	DocumentNumber string `json:"documentNumber"`

	Audit
}

// ProductRef identifies a product on a document line together with
// the display fields resolved by the server.
type ProductRef struct {
	ProductID   id.ID  `json:"productId"`
	ProductName string `json:"productName"`
	ProductSKU  string `json:"productSku"`
}

// WarehouseRef identifies a warehouse with its display name.
type WarehouseRef struct {
	WarehouseID   id.ID  `json:"warehouseId"`
	WarehouseName string `json:"warehouseName"`
}

// StockRef is a (product, warehouse) pair whose stock level a document touches.
type StockRef struct {
	ProductID   id.ID `json:"productId"`
	WarehouseID id.ID `json:"warehouseId"`
}

// UniqueStockRefs drops duplicate and incomplete pairs, preserving order.
func UniqueStockRefs(refs []StockRef) []StockRef {
	seen := make(map[StockRef]struct{}, len(refs))
	out := make([]StockRef, 0, len(refs))
	for _, r := range refs {
		if id.IsEmpty(r.ProductID) || id.IsEmpty(r.WarehouseID) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
