package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/id"
	"backoffice/internal/domain/access"
	"backoffice/internal/infrastructure/http/v1/dto"
)

// AccessHandler manages roles and user-role links.
type AccessHandler struct {
	*BaseHandler
	service *access.Service
}

// NewAccessHandler creates a new access handler.
func NewAccessHandler(base *BaseHandler, service *access.Service) *AccessHandler {
	return &AccessHandler{BaseHandler: base, service: service}
}

// ListRoles handles GET /roles
func (h *AccessHandler) ListRoles(c *gin.Context) {
	var filter access.ListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	res, err := h.service.ListRoles(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ListResponse[*access.Role]{Data: res.Items, Pagination: res.Pagination})
}

// GetRole handles GET /roles/:id
func (h *AccessHandler) GetRole(c *gin.Context) {
	roleID, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	role, err := h.service.GetRole(c.Request.Context(), roleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if role == nil {
		h.Error(c, apperror.NewNotFound("role", roleID))
		return
	}

	h.OK(c, role)
}

// UserRoles handles GET /users/:userId/roles
func (h *AccessHandler) UserRoles(c *gin.Context) {
	userID, ok := h.PathID(c, "userId")
	if !ok {
		return
	}

	roles, err := h.service.UserRoles(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if roles == nil {
		roles = []*access.Role{}
	}

	h.OK(c, gin.H{"data": roles})
}

// AssignRole handles POST /users/:userId/roles/:roleId
func (h *AccessHandler) AssignRole(c *gin.Context) {
	h.link(c, h.service.AssignRole, "role assigned")
}

// RemoveRole handles DELETE /users/:userId/roles/:roleId
func (h *AccessHandler) RemoveRole(c *gin.Context) {
	h.link(c, h.service.RemoveRole, "role removed")
}

func (h *AccessHandler) link(c *gin.Context, fn func(ctx context.Context, userID, roleID id.ID) error, message string) {
	userID, ok := h.PathID(c, "userId")
	if !ok {
		return
	}
	roleID, ok := h.PathID(c, "roleId")
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), userID, roleID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, message)
}
