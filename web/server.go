package web

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell/observable"
)

// ErrNilStore is returned when the server is created without a store.
var ErrNilStore = errors.New("web server needs a store")

// Server serves the catalog pages.
type Server struct {
	engine        *gin.Engine
	store         Store
	handlers      *HandlerBundle
	collectors    observable.Collectors
	logger        *slog.Logger
	pageSize      int
	secureCookies bool
	now           func() time.Time
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets the logger for request logs and unexpected errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			return errors.New("nil logger supplied")
		}

		s.logger = logger

		return nil
	}
}

// WithCollectors sets the observability collectors the command and query handlers are wrapped with.
func WithCollectors(collectors observable.Collectors) Option {
	return func(s *Server) error {
		s.collectors = collectors
		return nil
	}
}

// WithPageSize sets the number of rows per listing page.
func WithPageSize(size int) Option {
	return func(s *Server) error {
		if size < 1 {
			return errors.New("page size must be positive")
		}

		s.pageSize = size

		return nil
	}
}

// WithSecureCookies marks the session cookie as Secure, for servers behind TLS.
func WithSecureCookies() Option {
	return func(s *Server) error {
		s.secureCookies = true
		return nil
	}
}

// WithClock replaces time.Now, mainly for tests around due dates.
func WithClock(now func() time.Time) Option {
	return func(s *Server) error {
		s.now = now
		return nil
	}
}

// NewServer creates a Server with all routes registered.
func NewServer(store Store, options ...Option) (*Server, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	s := &Server{
		store:    store,
		logger:   slog.Default(),
		pageSize: catalog.DefaultPageSize,
		now:      time.Now,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	handlers, err := NewHandlerBundle(store, s.collectors)
	if err != nil {
		return nil, err
	}

	renderer, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	s.handlers = handlers
	s.engine = gin.New()
	s.engine.HTMLRender = renderer
	s.engine.Use(s.requestLogger(), s.recovery())
	s.routes()

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)
	s.engine.NoRoute(func(c *gin.Context) { s.renderStatus(c, http.StatusNotFound) })

	site := s.engine.Group("/", s.sessions())

	site.GET("/", s.index)
	site.GET("/books/", s.bookList)
	site.GET("/book/:id", s.bookDetail)
	site.GET("/authors/", s.authorList)
	site.GET("/author/:id", s.authorDetail)

	site.GET("/mybooks/", s.requireLogin(), s.myBooks)
	site.GET("/borrowed/", s.requirePermission(catalog.PermCanMarkReturned), s.borrowedBooks)

	renew := site.Group("/book/:id/renew/", s.requirePermission(catalog.PermCanMarkReturned))
	renew.GET("", s.renewForm)
	renew.POST("", s.renewSubmit)

	crud := site.Group("/", s.requirePermission(catalog.PermCanCRUDAuthors))
	crud.GET("/author/create/", s.authorCreateForm)
	crud.POST("/author/create/", s.authorCreateSubmit)
	crud.GET("/author/:id/update/", s.authorUpdateForm)
	crud.POST("/author/:id/update/", s.authorUpdateSubmit)
	crud.GET("/author/:id/delete/", s.authorDeleteConfirm)
	crud.POST("/author/:id/delete/", s.authorDeleteSubmit)
	crud.GET("/book/create/", s.bookCreateForm)
	crud.POST("/book/create/", s.bookCreateSubmit)
	crud.GET("/book/:id/update/", s.bookUpdateForm)
	crud.POST("/book/:id/update/", s.bookUpdateSubmit)
	crud.GET("/book/:id/delete/", s.bookDeleteConfirm)
	crud.POST("/book/:id/delete/", s.bookDeleteSubmit)

	site.GET("/accounts/login/", s.loginForm)
	site.POST("/accounts/login/", s.loginSubmit)
	site.POST("/accounts/logout/", s.logout)
}

func (s *Server) today() time.Time {
	return catalog.DateOf(s.now())
}
