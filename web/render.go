package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gedex/inflector"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/shell"
)

const (
	layoutTemplate = "templates/layout.html"
	pagesGlob      = "templates/pages/*.html"

	tmplIndex         = "index"
	tmplBookList      = "book_list"
	tmplBookDetail    = "book_detail"
	tmplAuthorList    = "author_list"
	tmplAuthorDetail  = "author_detail"
	tmplMyBooks       = "mybooks"
	tmplBorrowed      = "borrowed"
	tmplRenew         = "book_renew"
	tmplAuthorForm    = "author_form"
	tmplBookForm      = "book_form"
	tmplConfirmDelete = "confirm_delete"
	tmplLogin         = "login"
	tmplStatus        = "status"
)

//go:embed templates
var templateFS embed.FS

// pageRenderer implements gin's render.HTMLRender with one template set per page,
// so every page can define its own "content" block inside the shared layout.
type pageRenderer map[string]*template.Template

func (r pageRenderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r[name],
		Name:     "layout",
		Data:     data,
	}
}

func loadTemplates() (pageRenderer, error) {
	layout, err := template.New("layout").Funcs(templateFuncs()).ParseFS(templateFS, layoutTemplate)
	if err != nil {
		return nil, err
	}

	pages, err := fs.Glob(templateFS, pagesGlob)
	if err != nil {
		return nil, err
	}

	renderer := make(pageRenderer, len(pages))
	for _, page := range pages {
		tmpl, cloneErr := layout.Clone()
		if cloneErr != nil {
			return nil, cloneErr
		}

		if _, err = tmpl.ParseFS(templateFS, page); err != nil {
			return nil, err
		}

		renderer[strings.TrimSuffix(path.Base(page), ".html")] = tmpl
	}

	return renderer, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"date": catalog.FormatDate,
		"relativeDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}

			return humanize.Time(*t)
		},
		"comma": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"plural": func(n int, noun string) string {
			if n == 1 {
				return noun
			}

			return inflector.Pluralize(noun)
		},
		"hasID": func(ids []uuid.UUID, id uuid.UUID) bool {
			for _, candidate := range ids {
				if candidate == id {
					return true
				}
			}

			return false
		},
		"can": func(user *catalog.User, perm string) bool {
			return user != nil && user.HasPermission(catalog.Permission(perm))
		},
	}
}

// page is the data every template receives. Data holds the page-specific part.
type page struct {
	Title  string
	User   *catalog.User
	Path   string
	Data   any
	Errors catalog.ValidationErrors
}

func (s *Server) newPage(c *gin.Context, title string, data any) page {
	p := page{
		Title: title,
		Path:  c.Request.URL.Path,
		Data:  data,
	}

	if user, ok := currentUser(c); ok {
		p.User = &user
	}

	return p
}

// pageTitle builds titles like "Create Author" or "Authors".
func pageTitle(action, model string) string {
	if action == "" {
		return inflector.Pluralize(model)
	}

	return action + " " + inflector.Singularize(model)
}

func (s *Server) renderPage(c *gin.Context, status int, name string, p page) {
	c.HTML(status, name, p)
}

type statusData struct {
	Code    int
	Message string
}

func (s *Server) renderStatus(c *gin.Context, status int) {
	s.renderPage(c, status, tmplStatus, s.newPage(c, http.StatusText(status), statusData{
		Code:    status,
		Message: http.StatusText(status),
	}))
}

// renderError maps not-found errors to 404 and everything else to 500.
func (s *Server) renderError(c *gin.Context, err error) {
	if shell.IsNotFoundError(err) {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	s.logger.ErrorContext(c.Request.Context(), logMsgRequestFailed,
		logAttrPath, c.Request.URL.Path,
		logAttrError, err.Error(),
	)
	s.renderStatus(c, http.StatusInternalServerError)
}
