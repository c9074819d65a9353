package api

import (
	"context"
	"net/http"

	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/internal/domain/access"
)

const (
	rolesPath = "/roles"
	usersPath = "/users"
)

type roleWire struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Permissions []string `json:"permissions"`
	UserCount   *int     `json:"userCount"`
	CreatedAt   *string  `json:"createdAt"`
}

func toRole(w *roleWire) *access.Role {
	role := &access.Role{
		ID:          w.ID,
		Name:        text(w.Name),
		Description: optText(w.Description),
		Permissions: append(make([]string, 0, len(w.Permissions)), w.Permissions...),
		CreatedAt:   optTimestamp(w.CreatedAt),
	}
	if w.UserCount != nil {
		role.UserCount = *w.UserCount
	}
	return role
}

// AccessRepository implements access.Repository.
type AccessRepository struct {
	client *Client
}

var _ access.Repository = (*AccessRepository)(nil)

// NewAccessRepository creates a role management adapter.
func NewAccessRepository(c *Client) *AccessRepository {
	return &AccessRepository{client: c}
}

func (r *AccessRepository) FindRoles(ctx context.Context, filter access.ListFilter) (domain.ListResult[*access.Role], error) {
	return getList(ctx, r.client, rolesPath, filter, toRole)
}

func (r *AccessRepository) FindRoleByID(ctx context.Context, roleID id.ID) (*access.Role, error) {
	return findOne(ctx, r.client, resourcePath(rolesPath, roleID), toRole)
}

func (r *AccessRepository) FindUserRoles(ctx context.Context, userID id.ID) ([]*access.Role, error) {
	page, err := getList(ctx, r.client, resourcePath(usersPath, userID, "roles"), nil, toRole)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (r *AccessRepository) AssignRole(ctx context.Context, userID, roleID id.ID) error {
	_, err := r.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   resourcePath(usersPath, userID, "roles"),
		Body:   map[string]string{"roleId": roleID},
	})
	return err
}

func (r *AccessRepository) RemoveRole(ctx context.Context, userID, roleID id.ID) error {
	_, err := r.client.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   resourcePath(usersPath, userID, "roles", roleID),
	})
	return err
}
