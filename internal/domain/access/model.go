// Package access provides roles and the user-role links managed from the back-office.
package access

import (
	"context"
	"time"

	"backoffice/internal/core/apperror"
	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
	"backoffice/pkg/logger"
)

// Role is a named set of permissions.
type Role struct {
	ID          id.ID      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Permissions []string   `json:"permissions"`
	UserCount   int        `json:"userCount"`
	CreatedAt   *time.Time `json:"createdAt"`
}

// ListFilter for filtering roles.
type ListFilter struct {
	domain.PageFilter
}

// Repository is the port to role management on the inventory API.
type Repository interface {
	FindRoles(ctx context.Context, filter ListFilter) (domain.ListResult[*Role], error)

	// FindRoleByID returns (nil, nil) when the role does not exist.
	FindRoleByID(ctx context.Context, roleID id.ID) (*Role, error)

	FindUserRoles(ctx context.Context, userID id.ID) ([]*Role, error)
	AssignRole(ctx context.Context, userID, roleID id.ID) error
	RemoveRole(ctx context.Context, userID, roleID id.ID) error
}

// Service serves roles through the query cache.
// User-role links are cached as the user's detail entry.
type Service struct {
	repo  Repository
	cache domain.Cache
}

// NewService creates a new access service.
func NewService(repo Repository, c domain.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// ListRoles returns a page of roles.
func (s *Service) ListRoles(ctx context.Context, filter ListFilter) (domain.ListResult[*Role], error) {
	return domain.CachedList(ctx, s.cache, cache.KindRole, filter,
		func(ctx context.Context) (domain.ListResult[*Role], error) {
			return s.repo.FindRoles(ctx, filter)
		})
}

// GetRole returns the role or nil when it does not exist.
func (s *Service) GetRole(ctx context.Context, roleID id.ID) (*Role, error) {
	return domain.CachedGet(ctx, s.cache, cache.KindRole, roleID,
		func(ctx context.Context) (*Role, error) {
			return s.repo.FindRoleByID(ctx, roleID)
		})
}

// UserRoles returns the roles linked to a user.
func (s *Service) UserRoles(ctx context.Context, userID id.ID) ([]*Role, error) {
	return domain.CachedGet(ctx, s.cache, cache.KindUser, userID,
		func(ctx context.Context) ([]*Role, error) {
			return s.repo.FindUserRoles(ctx, userID)
		})
}

// AssignRole links a role to a user.
func (s *Service) AssignRole(ctx context.Context, userID, roleID id.ID) error {
	return s.link(ctx, cache.RoleAssigned, userID, roleID, s.repo.AssignRole)
}

// RemoveRole unlinks a role from a user.
func (s *Service) RemoveRole(ctx context.Context, userID, roleID id.ID) error {
	return s.link(ctx, cache.RoleRemoved, userID, roleID, s.repo.RemoveRole)
}

func (s *Service) link(
	ctx context.Context,
	m cache.Mutation,
	userID, roleID id.ID,
	call func(ctx context.Context, userID, roleID id.ID) error,
) error {
	if id.IsEmpty(userID) || id.IsEmpty(roleID) {
		return apperror.NewValidation("user and role are required")
	}

	if err := call(ctx, userID, roleID); err != nil {
		return err
	}

	s.cache.Dispatcher.Dispatch(ctx, m, cache.TargetOf(cache.KindRole, roleID).With(cache.KindUser, userID))
	logger.Info(ctx, "user role link changed", "mutation", m, "user", userID, "role", roleID)
	return nil
}
