package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

func Test_DisplayGenre_UsesAtMostThreeNames(t *testing.T) {
	// arrange
	genres := []catalog.Genre{
		catalog.BuildGenre("Fantasy"),
		catalog.BuildGenre("Science Fiction"),
		catalog.BuildGenre("Poetry"),
		catalog.BuildGenre("Horror"),
	}

	// act & assert
	assert.Equal(t, "Fantasy, Science Fiction, Poetry", catalog.DisplayGenre(genres))
	assert.Equal(t, "Fantasy", catalog.DisplayGenre(genres[:1]))
	assert.Empty(t, catalog.DisplayGenre(nil))
}

func Test_Author_String(t *testing.T) {
	author := catalog.BuildAuthor("Isaac", "Asimov", nil, nil)

	assert.Equal(t, "Asimov, Isaac", author.String())
	assert.False(t, author.IsDeceased())
}

func Test_User_HasPermission(t *testing.T) {
	// arrange
	librarian := catalog.BuildUser("librarian", "hash", "", "", false)
	librarian.Permissions = []catalog.Permission{catalog.PermCanMarkReturned}
	admin := catalog.BuildUser("admin", "hash", "", "", true)
	reader := catalog.BuildUser("reader", "hash", "Ada", "Reader", false)

	// assert
	assert.True(t, librarian.HasPermission(catalog.PermCanMarkReturned))
	assert.False(t, librarian.HasPermission(catalog.PermCanCRUDAuthors))
	assert.True(t, admin.HasPermission(catalog.PermCanCRUDAuthors))
	assert.False(t, reader.HasPermission(catalog.PermCanMarkReturned))
	assert.Equal(t, "Ada Reader", reader.DisplayName())
	assert.Equal(t, "admin", admin.DisplayName())
}

func Test_ParsePermission(t *testing.T) {
	perm, err := catalog.ParsePermission("catalog.can_mark_returned")
	require.NoError(t, err)
	assert.Equal(t, catalog.PermCanMarkReturned, perm)

	_, err = catalog.ParsePermission("can_fly")
	assert.ErrorIs(t, err, catalog.ErrUnknownPermission)
}

func Test_Page_Navigation(t *testing.T) {
	// arrange
	page := catalog.Page[int]{Number: 2, Size: 10, Total: 25}

	// assert
	assert.Equal(t, 3, page.NumPages())
	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())
	assert.True(t, page.IsPaginated())
	assert.Equal(t, 1, page.PreviousNumber())
	assert.Equal(t, 3, page.NextNumber())

	empty := catalog.Page[int]{Number: 1, Size: 10}
	assert.Equal(t, 1, empty.NumPages())
	assert.False(t, empty.HasNext())
	assert.False(t, empty.IsPaginated())
}

func Test_PageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		number  int
		total   int
		wantErr bool
	}{
		{name: "first page of empty listing", number: 1, total: 0},
		{name: "last page", number: 3, total: 21},
		{name: "beyond last page", number: 4, total: 30, wantErr: true},
		{name: "zero", number: 0, total: 30, wantErr: true},
		{name: "negative", number: -1, total: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalog.BuildPageRequest(tt.number, 10).Validate(tt.total)

			if tt.wantErr {
				assert.ErrorIs(t, err, catalog.ErrInvalidPage)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_PageRequest_OffsetAndLimit(t *testing.T) {
	req := catalog.BuildPageRequest(3, 0)

	assert.Equal(t, uint(catalog.DefaultPageSize), req.Limit())
	assert.Equal(t, uint(20), req.Offset())
}

func Test_GetConsistencyLevel(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, catalog.StrongConsistency, catalog.GetConsistencyLevel(ctx))
	assert.Equal(t, catalog.EventualConsistency, catalog.GetConsistencyLevel(catalog.WithEventualConsistency(ctx)))
	assert.Equal(t, "strong", catalog.GetConsistencyLevel(catalog.WithStrongConsistency(ctx)).String())
}

func Test_Session_Expiry(t *testing.T) {
	// arrange
	now := catalog.DateOf(catalog.Today())
	session := catalog.BuildSession(now)

	// assert
	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.IsExpired(now.Add(catalog.SessionLifetime-1)))
	assert.True(t, session.IsExpired(now.Add(catalog.SessionLifetime)))
}

func Test_DecisionResult_Factories(t *testing.T) {
	violation := catalog.ValidationErrors{"name": "This field is required."}

	assert.True(t, catalog.SuccessDecision().HasChangeToWrite())
	assert.NoError(t, catalog.SuccessDecision().HasError())
	assert.True(t, catalog.IdempotentDecision().IsIdempotent())
	assert.False(t, catalog.IdempotentDecision().HasChangeToWrite())
	assert.Equal(t, violation, catalog.ErrorDecision(violation).HasError())
	assert.False(t, catalog.ErrorDecision(violation).HasChangeToWrite())
}
