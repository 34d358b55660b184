package web

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/createauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/createbook"
	"github.com/AntonStoeckl/locallibrary-go/features/command/deleteauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/deletebook"
	"github.com/AntonStoeckl/locallibrary-go/features/command/renewbookinstance"
	"github.com/AntonStoeckl/locallibrary-go/features/command/updateauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/updatebook"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authenticateuser"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authordetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authorlist"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookdetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookformchoices"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookinstancedetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/booklist"
	"github.com/AntonStoeckl/locallibrary-go/features/query/borrowedbooks"
	"github.com/AntonStoeckl/locallibrary-go/features/query/catalogsummary"
	"github.com/AntonStoeckl/locallibrary-go/features/query/loanedbooksbyuser"
)

// SessionStore persists sessions and resolves the user bound to them.
type SessionStore interface {
	CreateSession(ctx context.Context, session catalog.Session) error
	SessionByID(ctx context.Context, id uuid.UUID) (catalog.Session, error)
	UpdateSession(ctx context.Context, session catalog.Session) error
	DeleteSession(ctx context.Context, id uuid.UUID) error
	UserByID(ctx context.Context, id uuid.UUID) (catalog.User, error)
}

// Store is everything the web server needs from the catalog store.
type Store interface {
	SessionStore

	renewbookinstance.Store
	createauthor.Store
	updateauthor.Store
	deleteauthor.Store
	createbook.Store
	updatebook.Store
	deletebook.Store

	catalogsummary.Store
	booklist.Store
	bookdetail.Store
	authorlist.Store
	authordetail.Store
	loanedbooksbyuser.Store
	borrowedbooks.Store
	bookinstancedetail.Store
	bookformchoices.Store
	authenticateuser.Store

	Dialect() string
}
