package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/core/cache"
	"backoffice/internal/core/id"
	"backoffice/internal/domain"
)

type fakeRepo struct {
	links     map[id.ID][]id.ID
	userReads int
	fail      error
}

func (r *fakeRepo) FindRoles(ctx context.Context, filter ListFilter) (domain.ListResult[*Role], error) {
	return domain.NewListResult([]*Role{{ID: "r1", Name: "manager"}}, domain.Pagination{Page: 1, Total: 1}), nil
}

func (r *fakeRepo) FindRoleByID(ctx context.Context, roleID id.ID) (*Role, error) {
	return &Role{ID: roleID}, nil
}

func (r *fakeRepo) FindUserRoles(ctx context.Context, userID id.ID) ([]*Role, error) {
	r.userReads++
	roles := make([]*Role, 0)
	for _, rid := range r.links[userID] {
		roles = append(roles, &Role{ID: rid})
	}
	return roles, nil
}

func (r *fakeRepo) AssignRole(ctx context.Context, userID, roleID id.ID) error {
	if r.fail != nil {
		return r.fail
	}
	r.links[userID] = append(r.links[userID], roleID)
	return nil
}

func (r *fakeRepo) RemoveRole(ctx context.Context, userID, roleID id.ID) error {
	return r.fail
}

func TestService_AssignRoleRefreshesUserRoles(t *testing.T) {
	repo := &fakeRepo{links: map[id.ID][]id.ID{}}
	svc := NewService(repo, domain.NewCache(cache.New()))
	ctx := context.Background()

	roles, err := svc.UserRoles(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, roles)

	require.NoError(t, svc.AssignRole(ctx, "u1", "r1"))

	roles, err = svc.UserRoles(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "r1", roles[0].ID)
	assert.Equal(t, 2, repo.userReads)
}

func TestService_FailedLinkDoesNotInvalidate(t *testing.T) {
	repo := &fakeRepo{links: map[id.ID][]id.ID{}, fail: errors.New("forbidden")}
	c := domain.NewCache(cache.New())
	svc := NewService(repo, c)

	var events int
	c.Dispatcher.OnInvalidate(func(cache.Event) { events++ })

	assert.Error(t, svc.RemoveRole(context.Background(), "u1", "r1"))
	assert.Error(t, svc.AssignRole(context.Background(), "", "r1"))
	assert.Zero(t, events)
}
