package handlers

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/domain/selection"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// SelectionHandler stores the caller's UI selections.
type SelectionHandler struct {
	*BaseHandler
	store *selection.Store
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(base *BaseHandler, store *selection.Store) *SelectionHandler {
	return &SelectionHandler{BaseHandler: base, store: store}
}

func (h *SelectionHandler) scope(c *gin.Context) selection.Scope {
	return selection.Scope{TenantID: h.GetTenantID(c), UserID: h.GetUserID(c)}
}

// GetWarehouse handles GET /selection/warehouse
func (h *SelectionHandler) GetWarehouse(c *gin.Context) {
	var resp dto.WarehouseSelection
	if warehouseID, ok := h.store.Warehouse(h.scope(c)); ok {
		resp.WarehouseID = &warehouseID
	}
	h.OK(c, resp)
}

// SelectWarehouse handles PUT /selection/warehouse. A null or empty
// warehouseId clears the selection.
func (h *SelectionHandler) SelectWarehouse(c *gin.Context) {
	var req dto.WarehouseSelection
	if !h.BindJSON(c, &req) {
		return
	}

	var warehouseID string
	if req.WarehouseID != nil {
		warehouseID = *req.WarehouseID
	}
	h.store.SelectWarehouse(h.scope(c), warehouseID)

	h.GetWarehouse(c)
}
