package dto

// WarehouseSelection is the UI's currently selected warehouse.
// A nil WarehouseID means no selection.
type WarehouseSelection struct {
	WarehouseID *string `json:"warehouseId"`
}
