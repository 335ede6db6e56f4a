package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehq/shopapi/internal/domain/user"
	vo "github.com/garagehq/shopapi/internal/domain/user/valueobjects"
	"github.com/garagehq/shopapi/internal/shared/authorization"
	"github.com/garagehq/shopapi/internal/shared/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.createUser(t, "alice@example.com")
	require.NotZero(t, u.ID())

	got, err := f.users.GetByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Name())
	assert.Equal(t, "alice@example.com", got.Email().String())
	assert.Equal(t, authorization.RoleUser, got.Role())

	byEmail, err := f.users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())
}

func TestUserRepository_MissingReturnsNil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.users.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = f.users.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice@example.com")

	addr, err := vo.NewEmail("alice@example.com")
	require.NoError(t, err)
	dup, err := user.NewUser("Other", addr, "hash")
	require.NoError(t, err)

	err = f.users.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestUserRepository_UpdateRoleAndName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "bob@example.com")

	require.NoError(t, u.UpdateName("Bob Builder"))
	require.NoError(t, u.SetRole(authorization.RoleMechanic))
	require.NoError(t, f.users.Update(ctx, u))

	got, err := f.users.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Bob Builder", got.Name())
	assert.Equal(t, authorization.RoleMechanic, got.Role())
}

func TestUserRepository_ListAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.createUser(t, "a@example.com")
	f.createUser(t, "b@example.com")
	f.createUser(t, "c@example.com")

	page, total, err := f.users.List(ctx, user.ListFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, "c@example.com", page[0].Email().String())

	require.NoError(t, f.users.Delete(ctx, a.ID()))
	got, err := f.users.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Nil(t, got)

	byIDs, err := f.users.GetByIDs(ctx, []uint{a.ID(), page[0].ID()})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)
}
