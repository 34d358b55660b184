package grantpermission_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/grantpermission"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := grantpermission.NewCommandHandler(store)

	// arrange
	user := GivenUser(t, store, "staff")

	// act
	result, err := handler.Handle(ctx, grantpermission.BuildCommand("staff", catalog.PermCanCRUDAuthors))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	reloaded, err := store.UserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Permission{catalog.PermCanCRUDAuthors}, reloaded.Permissions)
}

func Test_CommandHandler_Handle_Idempotent(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := grantpermission.NewCommandHandler(store)

	// arrange
	GivenUser(t, store, "librarian", catalog.PermCanMarkReturned)
	GivenSuperuser(t, store, "admin")

	// act
	grantedAgain, errGranted := handler.Handle(ctx, grantpermission.BuildCommand("librarian", catalog.PermCanMarkReturned))
	superuser, errSuperuser := handler.Handle(ctx, grantpermission.BuildCommand("admin", catalog.PermCanCRUDAuthors))

	// assert
	require.NoError(t, errGranted)
	require.NoError(t, errSuperuser)
	assert.True(t, grantedAgain.Idempotent)
	assert.True(t, superuser.Idempotent)
}

func Test_CommandHandler_Handle_Errors(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	handler := grantpermission.NewCommandHandler(store)

	// arrange
	GivenUser(t, store, "staff")

	// act
	_, unknownPermErr := handler.Handle(ctx, grantpermission.BuildCommand("staff", catalog.Permission("can_fly")))
	_, unknownUserErr := handler.Handle(ctx, grantpermission.BuildCommand("nobody", catalog.PermCanMarkReturned))

	// assert
	assert.ErrorIs(t, unknownPermErr, catalog.ErrUnknownPermission)
	assert.ErrorIs(t, unknownUserErr, catalog.ErrNotFound)
}
