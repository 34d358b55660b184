package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
	"github.com/AntonStoeckl/locallibrary-go/web"
)

// browser sends requests straight to the server and keeps the cookies it receives.
type browser struct {
	t       testing.TB
	server  http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t testing.TB, server http.Handler) *browser {
	return &browser{t: t, server: server, cookies: make(map[string]*http.Cookie)}
}

func newTestServer(t testing.TB, store *sqlengine.Store, options ...web.Option) *web.Server {
	t.Helper()

	server, err := web.NewServer(store, options...)
	require.NoError(t, err, "error creating web server in test setup")

	return server
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return b.do(req)
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	b.server.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(b.cookies, cookie.Name)
			continue
		}

		b.cookies[cookie.Name] = cookie
	}

	return rec
}

func (b *browser) login(username string) {
	b.t.Helper()

	rec := b.post("/accounts/login/", url.Values{
		"username": {username},
		"password": {FixturePassword},
	})
	require.Equal(b.t, http.StatusFound, rec.Code, "error logging in during test setup")
}

func (b *browser) sessionCookie() string {
	if cookie, ok := b.cookies["sessionid"]; ok {
		return cookie.Value
	}

	return ""
}
