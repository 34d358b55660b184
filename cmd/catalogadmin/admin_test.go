package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

const importDocument = `{
  "genres": [{"name": "Poetry"}],
  "authors": [{"first_name": "Mary", "last_name": "Oliver", "date_of_birth": "1935-09-10"}],
  "books": [
    {
      "title": "Dream Work",
      "author": {"first_name": "Mary", "last_name": "Oliver"},
      "summary": "Poems.",
      "isbn": "9780871130693",
      "genres": ["poetry"]
    }
  ],
  "instances": [{"id": "5f0c3c52-3a57-4f43-9a53-3b6f1c0e7d24", "isbn": "9780871130693", "imprint": "Atlantic Monthly Press, 1986", "status": "a"}]
}`

func newTestAdmin(t *testing.T) (admin, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}

	return newAdmin(NewSQLiteStore(t), out), out
}

func Test_Execute_UsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "no subcommand", args: nil},
		{name: "unknown subcommand", args: []string{"dropdb"}},
		{name: "missing username", args: []string{"createuser", "-password", "secret"}},
		{name: "unknown flag", args: []string{"addgenre", "-title", "Poetry"}},
		{name: "unknown permission", args: []string{"grant", "-username", "alice", "-perm", "can_fly"}},
		{name: "unknown loan status", args: []string{"addinstance", "-book", "978", "-imprint", "x", "-status", "z"}},
		{name: "import without path", args: []string{"import"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// setup
			a, _ := newTestAdmin(t)

			// act
			err := a.execute(context.Background(), tc.args)

			// assert
			assert.ErrorIs(t, err, ErrUsage)
		})
	}
}

func Test_Execute_Migrate(t *testing.T) {
	// setup
	a, out := newTestAdmin(t)

	// act
	err := a.execute(context.Background(), []string{"migrate"})

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "schema of the sqlite3 store is up to date")
}

func Test_Execute_CreateUserAndGrant(t *testing.T) {
	// setup
	a, out := newTestAdmin(t)
	ctx := context.Background()
	username := "librarian-" + GivenUniqueSuffix(t)

	// act
	err := a.execute(ctx, []string{"createuser", "-username", username, "-password", FixturePassword, "-first", "Lib", "-last", "Rarian"})
	require.NoError(t, err)

	err = a.execute(ctx, []string{"grant", "-username", username, "-perm", "catalog.can_mark_returned"})
	require.NoError(t, err)

	err = a.execute(ctx, []string{"grant", "-username", username, "-perm", "can_mark_returned"})
	require.NoError(t, err)

	// assert
	user, err := a.store.UserByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, "Lib", user.FirstName)
	assert.Equal(t, []catalog.Permission{catalog.PermCanMarkReturned}, user.Permissions)
	assert.Contains(t, out.String(), "created user "+username)
	assert.Contains(t, out.String(), "granted can_mark_returned to "+username)
	assert.Contains(t, out.String(), username+" already holds can_mark_returned")
}

func Test_Execute_CreateUserWithRepeatedPermissions(t *testing.T) {
	// setup
	a, _ := newTestAdmin(t)
	ctx := context.Background()
	username := "staff-" + GivenUniqueSuffix(t)

	// act
	err := a.execute(ctx, []string{
		"createuser", "-username", username, "-password", FixturePassword,
		"-perm", "can_crud_authors", "-perm", "can_mark_returned",
	})

	// assert
	require.NoError(t, err)
	user, err := a.store.UserByUsername(ctx, username)
	require.NoError(t, err)
	assert.ElementsMatch(t, catalog.Permissions(), user.Permissions)
}

func Test_Execute_AddGenreTwice(t *testing.T) {
	// setup
	a, out := newTestAdmin(t)
	ctx := context.Background()

	// act
	require.NoError(t, a.execute(ctx, []string{"addgenre", "-name", "Poetry"}))
	require.NoError(t, a.execute(ctx, []string{"addgenre", "-name", "poetry"}))

	// assert
	count, err := a.store.CountGenres(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, out.String(), "added genre Poetry")
	assert.Contains(t, out.String(), "genre poetry already exists")
}

func Test_Execute_AddInstanceByISBNOnLoan(t *testing.T) {
	// setup
	a, out := newTestAdmin(t)
	ctx := context.Background()

	// arrange
	author := GivenAuthor(t, a.store, "Mary", "Oliver", nil, nil)
	book := GivenBook(t, a.store, "Dream Work", author)
	borrower := GivenUser(t, a.store, "reader-"+GivenUniqueSuffix(t))

	// act
	err := a.execute(ctx, []string{
		"addinstance", "-book", book.ISBN, "-imprint", "Atlantic, 1986",
		"-status", "o", "-due", "2024-05-01", "-borrower", borrower.Username,
	})

	// assert
	require.NoError(t, err)
	instances, err := a.store.InstancesOfBook(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, catalog.StatusOnLoan, instances[0].Status)
	assert.Equal(t, catalog.DefaultLanguage, instances[0].Language)
	assert.Equal(t, borrower.ID, instances[0].BorrowerID.UUID)
	assert.Equal(t, "2024-05-01", catalog.FormatDate(instances[0].DueBack))
	assert.Contains(t, out.String(), "of Dream Work")
}

func Test_Execute_AddInstanceByID(t *testing.T) {
	// setup
	a, _ := newTestAdmin(t)
	ctx := context.Background()

	// arrange
	author := GivenAuthor(t, a.store, "Mary", "Oliver", nil, nil)
	book := GivenBook(t, a.store, "Owls", author)

	// act
	err := a.execute(ctx, []string{"addinstance", "-book", book.ID.String(), "-imprint", "Beacon, 2003", "-language", "German"})

	// assert
	require.NoError(t, err)
	instances, err := a.store.InstancesOfBook(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, catalog.DefaultLoanStatus, instances[0].Status)
	assert.Equal(t, "German", instances[0].Language)
}

func Test_Execute_AddInstanceUnknownBook(t *testing.T) {
	// setup
	a, _ := newTestAdmin(t)

	// act
	err := a.execute(context.Background(), []string{"addinstance", "-book", uuid.NewString(), "-imprint", "Nowhere"})

	// assert
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func Test_Execute_ImportTwice(t *testing.T) {
	// setup
	a, out := newTestAdmin(t)
	ctx := context.Background()

	// arrange
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(importDocument), 0o600))

	// act
	require.NoError(t, a.execute(ctx, []string{"import", "-quiet", path}))
	first := out.String()
	out.Reset()
	require.NoError(t, a.execute(ctx, []string{"import", "-quiet", path}))
	second := out.String()

	// assert
	assert.Contains(t, first, "genres: 1 created, 0 skipped")
	assert.Contains(t, first, "books: 1 created, 0 skipped")
	assert.Contains(t, first, "instances: 1 created, 0 skipped")
	assert.Contains(t, second, "authors: 0 created, 1 skipped")
	assert.Contains(t, second, "instances: 0 created, 1 skipped")

	count, err := a.store.CountBookInstances(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_Execute_ClearSessions(t *testing.T) {
	// setup
	a, out := newTestAdmin(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	a.now = func() time.Time { return now }

	// arrange
	expired := catalog.Session{ID: uuid.New(), ExpiresAt: now.Add(-time.Hour)}
	live := catalog.Session{ID: uuid.New(), ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, a.store.CreateSession(ctx, expired))
	require.NoError(t, a.store.CreateSession(ctx, live))

	// act
	err := a.execute(ctx, []string{"clearsessions"})

	// assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "deleted 1 expired session")
	_, err = a.store.SessionByID(ctx, live.ID)
	assert.NoError(t, err)
	_, err = a.store.SessionByID(ctx, expired.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
