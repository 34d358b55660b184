package helper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine"
)

// FixturePassword is the clear-text password of every user created by GivenUser.
const FixturePassword = "s3cret-passw0rd"

// GivenUniqueSuffix returns a short random token for unique names.
func GivenUniqueSuffix(t testing.TB) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return strings.ReplaceAll(id.String(), "-", "")[20:]
}

// GivenGenre persists a genre.
func GivenGenre(t testing.TB, store *sqlengine.Store, name string) catalog.Genre {
	t.Helper()
	genre := catalog.BuildGenre(name)
	require.NoError(t, store.CreateGenre(context.Background(), genre), "error in arranging test data")

	return genre
}

// GivenAuthor persists an author.
func GivenAuthor(t testing.TB, store *sqlengine.Store, firstName, lastName string, dateOfBirth, dateOfDeath *time.Time) catalog.Author {
	t.Helper()
	author := catalog.BuildAuthor(firstName, lastName, dateOfBirth, dateOfDeath)
	require.NoError(t, store.CreateAuthor(context.Background(), author), "error in arranging test data")

	return author
}

// GivenBook persists a book by the given author with the given genres.
func GivenBook(t testing.TB, store *sqlengine.Store, title string, author catalog.Author, genres ...catalog.Genre) catalog.Book {
	t.Helper()
	genreIDs := make([]uuid.UUID, 0, len(genres))
	for _, genre := range genres {
		genreIDs = append(genreIDs, genre.ID)
	}

	book := catalog.BuildBook(
		title,
		uuid.NullUUID{UUID: author.ID, Valid: true},
		"Summary of "+title,
		"978"+GivenUniqueSuffix(t)[:10],
		genreIDs,
	)
	require.NoError(t, store.CreateBook(context.Background(), book), "error in arranging test data")

	return book
}

// GivenAvailableInstance persists an available copy of the book.
func GivenAvailableInstance(t testing.TB, store *sqlengine.Store, book catalog.Book, imprint string) catalog.BookInstance {
	t.Helper()
	instance := catalog.BuildBookInstance(book.ID, imprint)
	instance.Status = catalog.StatusAvailable
	require.NoError(t, store.CreateBookInstance(context.Background(), instance), "error in arranging test data")

	return instance
}

// GivenLoanedInstance persists a copy of the book that is on loan to the borrower until dueBack.
func GivenLoanedInstance(t testing.TB, store *sqlengine.Store, book catalog.Book, borrower catalog.User, dueBack time.Time) catalog.BookInstance {
	t.Helper()
	instance := catalog.BuildBookInstance(book.ID, "Loaned imprint "+GivenUniqueSuffix(t))
	instance.Status = catalog.StatusOnLoan
	instance.DueBack = catalog.DatePtr(dueBack)
	instance.BorrowerID = uuid.NullUUID{UUID: borrower.ID, Valid: true}
	require.NoError(t, store.CreateBookInstance(context.Background(), instance), "error in arranging test data")

	return instance
}

// GivenUser persists a user with FixturePassword and the given permissions.
func GivenUser(t testing.TB, store *sqlengine.Store, username string, permissions ...catalog.Permission) catalog.User {
	t.Helper()
	return givenUser(t, store, username, false, permissions)
}

// GivenSuperuser persists a superuser with FixturePassword.
func GivenSuperuser(t testing.TB, store *sqlengine.Store, username string) catalog.User {
	t.Helper()
	return givenUser(t, store, username, true, nil)
}

func givenUser(t testing.TB, store *sqlengine.Store, username string, isSuperuser bool, permissions []catalog.Permission) catalog.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(FixturePassword), bcrypt.MinCost)
	require.NoError(t, err, "error in arranging test data")

	user := catalog.BuildUser(username, string(hash), "Test", strings.ToUpper(username[:1])+username[1:], isSuperuser)
	user.Permissions = permissions
	require.NoError(t, store.CreateUser(context.Background(), user), "error in arranging test data")

	return user
}
