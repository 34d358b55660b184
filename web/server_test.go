package web_test

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/renewbookinstance"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
	"github.com/AntonStoeckl/locallibrary-go/web"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var fixedNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func fixedClock() time.Time {
	return fixedNow
}

func Test_NewServer_RejectsNilStore(t *testing.T) {
	// act
	_, err := web.NewServer(nil)

	// assert
	assert.ErrorIs(t, err, web.ErrNilStore)
}

func Test_Index_ShowsCountsAndCountsVisits(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store))

	// arrange
	author := GivenAuthor(t, store, "Mary", "Shelley", nil, catalog.DatePtr(time.Date(1851, time.February, 1, 0, 0, 0, 0, time.UTC)))
	book := GivenBook(t, store, "The Dead Zone", author, GivenGenre(t, store, "Horror"))
	GivenAvailableInstance(t, store, book, "Viking, 1979")

	// act
	first := b.get("/")
	second := b.get("/")

	// assert
	require.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), "<strong>Books:</strong> 1")
	assert.Contains(t, first.Body.String(), "<strong>Copies available:</strong> 1")
	assert.Contains(t, first.Body.String(), "in the title:</strong> 1")
	assert.Contains(t, first.Body.String(), "<strong>Books by deceased authors:</strong> 1")
	assert.Contains(t, first.Body.String(), "You have visited this page 1 time.")

	require.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "You have visited this page 2 times.")
}

func Test_Index_NewVisitorStartsOver(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	server := newTestServer(t, store)

	// arrange
	newBrowser(t, server).get("/")

	// act
	rec := newBrowser(t, server).get("/")

	// assert
	assert.Contains(t, rec.Body.String(), "You have visited this page 1 time.")
}

func Test_BookList_Pagination(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store, web.WithPageSize(2)))

	// arrange
	author := GivenAuthor(t, store, "Terry", "Pratchett", nil, nil)
	genre := GivenGenre(t, store, "Fantasy")
	for _, title := range []string{"Guards! Guards!", "Mort", "Small Gods"} {
		GivenBook(t, store, title, author, genre)
	}

	testCases := []struct {
		name       string
		target     string
		wantStatus int
		wantText   string
	}{
		{"first page by default", "/books/", http.StatusOK, "Page 1 of 2."},
		{"last page", "/books/?page=2", http.StatusOK, "Small Gods"},
		{"page beyond the end", "/books/?page=3", http.StatusNotFound, "Not Found"},
		{"page zero", "/books/?page=0", http.StatusNotFound, "Not Found"},
		{"page not a number", "/books/?page=abc", http.StatusNotFound, "Not Found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			rec := b.get(tc.target)

			// assert
			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantText)
		})
	}
}

func Test_AuthorList_UsesTheSharedPageSize(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store, web.WithPageSize(2)))

	// arrange
	GivenAuthor(t, store, "Iain", "Banks", nil, nil)
	GivenAuthor(t, store, "Ursula", "Le Guin", nil, nil)
	GivenAuthor(t, store, "Terry", "Pratchett", nil, nil)

	// act
	first := b.get("/authors/")
	second := b.get("/authors/?page=2")

	// assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Contains(t, first.Body.String(), "Page 1 of 2.")
	assert.Contains(t, first.Body.String(), "Banks")
	assert.NotContains(t, first.Body.String(), "Pratchett")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Contains(t, second.Body.String(), "Pratchett")
}

func Test_BookDetail(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store))

	// arrange
	author := GivenAuthor(t, store, "Ursula", "Le Guin", nil, nil)
	book := GivenBook(t, store, "A Wizard of Earthsea", author, GivenGenre(t, store, "Fantasy"))
	instance := GivenAvailableInstance(t, store, book, "Parnassus, 1968")

	// act
	rec := b.get("/book/" + book.ID.String())

	// assert
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "A Wizard of Earthsea")
	assert.Contains(t, body, "Le Guin, Ursula")
	assert.Contains(t, body, "Fantasy")
	assert.Contains(t, body, instance.ID.String())
	assert.Contains(t, body, "Available")
}

func Test_DetailPages_AnswerNotFound(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store))

	for _, target := range []string{
		"/book/" + uuid.NewString(),
		"/book/not-a-uuid",
		"/author/" + uuid.NewString(),
		"/no/such/page",
	} {
		t.Run(target, func(t *testing.T) {
			// act
			rec := b.get(target)

			// assert
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func Test_Renew_AnonymousIsRedirectedToLogin(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store))
	target := "/book/" + uuid.NewString() + "/renew/"

	// act
	rec := b.get(target)

	// assert
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/accounts/login/?next="+url.QueryEscape(target), rec.Header().Get("Location"))
}

func Test_Renew_WithoutPermissionIsForbidden(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store))

	// arrange
	reader := GivenUser(t, store, "reader-"+GivenUniqueSuffix(t))
	book := GivenBook(t, store, "Kindred", GivenAuthor(t, store, "Octavia", "Butler", nil, nil), GivenGenre(t, store, "Fiction"))
	instance := GivenLoanedInstance(t, store, book, reader, catalog.DateOf(fixedNow).AddDate(0, 0, 3))
	b.login(reader.Username)

	// act
	rec := b.post("/book/"+instance.ID.String()+"/renew/", url.Values{"renewal_date": {"2024-03-20"}})

	// assert
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func Test_Renew_WithPermission_PersistsDueDate(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store, web.WithClock(fixedClock)))

	// arrange
	today := catalog.DateOf(fixedNow)
	librarian := GivenUser(t, store, "librarian-"+GivenUniqueSuffix(t), catalog.PermCanMarkReturned)
	reader := GivenUser(t, store, "reader-"+GivenUniqueSuffix(t))
	book := GivenBook(t, store, "Beloved", GivenAuthor(t, store, "Toni", "Morrison", nil, nil), GivenGenre(t, store, "Fiction"))
	instance := GivenLoanedInstance(t, store, book, reader, today.AddDate(0, 0, 2))
	target := "/book/" + instance.ID.String() + "/renew/"
	b.login(librarian.Username)

	// act
	form := b.get(target)
	rec := b.post(target, url.Values{"renewal_date": {"2024-04-07"}})

	// assert
	require.Equal(t, http.StatusOK, form.Code)
	assert.Contains(t, form.Body.String(), `value="2024-03-31"`)
	assert.Contains(t, form.Body.String(), reader.DisplayName())

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/borrowed/", rec.Header().Get("Location"))

	reloaded, err := store.BookInstanceByID(ctx, instance.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.DueBack)
	assert.Equal(t, renewbookinstance.LatestRenewalDate(today), catalog.DateOf(*reloaded.DueBack))
}

func Test_Renew_InvalidDate_RedisplaysFormWithoutWriting(t *testing.T) {
	// setup
	ctx := context.Background()
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store, web.WithClock(fixedClock)))

	// arrange
	today := catalog.DateOf(fixedNow)
	librarian := GivenUser(t, store, "librarian-"+GivenUniqueSuffix(t), catalog.PermCanMarkReturned)
	book := GivenBook(t, store, "Emma", GivenAuthor(t, store, "Jane", "Austen", nil, nil), GivenGenre(t, store, "Fiction"))
	dueBack := today.AddDate(0, 0, 2)
	instance := GivenLoanedInstance(t, store, book, librarian, dueBack)
	target := "/book/" + instance.ID.String() + "/renew/"
	b.login(librarian.Username)

	testCases := []struct {
		name    string
		raw     string
		wantMsg string
	}{
		{"yesterday", "2024-03-09", "Invalid date - renewal in past"},
		{"one day beyond four weeks", "2024-04-08", "Invalid date - renewal more than 4 weeks ahead"},
		{"not a date", "next week", catalog.MsgInvalidDate},
		{"blank", "", catalog.MsgRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			rec := b.post(target, url.Values{"renewal_date": {tc.raw}})

			// assert
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantMsg)
		})
	}

	reloaded, err := store.BookInstanceByID(ctx, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, dueBack, catalog.DateOf(*reloaded.DueBack))
}

func Test_Renew_UnknownInstanceIsNotFound(t *testing.T) {
	// setup
	store := NewSQLiteStore(t)
	b := newBrowser(t, newTestServer(t, store, web.WithClock(fixedClock)))

	// arrange
	admin := GivenSuperuser(t, store, "admin-"+GivenUniqueSuffix(t))
	b.login(admin.Username)
	target := "/book/" + uuid.NewString() + "/renew/"

	// act
	form := b.get(target)
	submit := b.post(target, url.Values{"renewal_date": {"2024-03-20"}})

	// assert
	assert.Equal(t, http.StatusNotFound, form.Code)
	assert.Equal(t, http.StatusNotFound, submit.Code)
}
