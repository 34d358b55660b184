package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/createauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/createbook"
	"github.com/AntonStoeckl/locallibrary-go/features/command/deleteauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/deletebook"
	"github.com/AntonStoeckl/locallibrary-go/features/command/updateauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/updatebook"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authordetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookdetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookformchoices"
)

const (
	modelAuthor = "Author"
	modelBook   = "Book"

	authorListPath = "/authors/"
	bookListPath   = "/books/"

	fieldAuthor      = "author"
	fieldGenre       = "genre"
	fieldDateOfBirth = "date_of_birth"
	fieldDateOfDeath = "date_of_death"
)

// authorForm carries the raw author form fields. Dates stay strings until parsed,
// so invalid input can be shown back unchanged.
type authorForm struct {
	FirstName   string `form:"first_name"`
	LastName    string `form:"last_name"`
	DateOfBirth string `form:"date_of_birth"`
	DateOfDeath string `form:"date_of_death"`
}

func authorFormOf(author catalog.Author) authorForm {
	return authorForm{
		FirstName:   author.FirstName,
		LastName:    author.LastName,
		DateOfBirth: catalog.FormatDate(author.DateOfBirth),
		DateOfDeath: catalog.FormatDate(author.DateOfDeath),
	}
}

// toAuthor converts the form into an author with the given ID.
// Unparseable dates and failed field checks are reported together.
func (f authorForm) toAuthor(id uuid.UUID) (catalog.Author, error) {
	v := catalog.ValidationErrors{}

	born, err := catalog.ParseOptionalDate(f.DateOfBirth)
	if err != nil {
		v.Add(fieldDateOfBirth, catalog.MsgInvalidDate)
	}

	died, err := catalog.ParseOptionalDate(f.DateOfDeath)
	if err != nil {
		v.Add(fieldDateOfDeath, catalog.MsgInvalidDate)
	}

	author := catalog.BuildAuthor(f.FirstName, f.LastName, born, died)
	author.ID = id

	if len(v) > 0 {
		if fieldErrs, ok := catalog.AsValidationErrors(author.Validate()); ok {
			for field, msg := range fieldErrs {
				v.Add(field, msg)
			}
		}

		return catalog.Author{}, v
	}

	return author, nil
}

// bookForm carries the raw book form fields. Author and Genre hold IDs.
type bookForm struct {
	Title   string   `form:"title"`
	Author  string   `form:"author"`
	Summary string   `form:"summary"`
	ISBN    string   `form:"isbn"`
	Genre   []string `form:"genre"`
}

func bookFormOf(book catalog.Book) bookForm {
	f := bookForm{
		Title:   book.Title,
		Summary: book.Summary,
		ISBN:    book.ISBN,
	}

	if book.AuthorID.Valid {
		f.Author = book.AuthorID.UUID.String()
	}

	for _, id := range book.GenreIDs {
		f.Genre = append(f.Genre, id.String())
	}

	return f
}

// references parses the author and genre IDs of the form.
func (f bookForm) references() (uuid.NullUUID, []uuid.UUID, catalog.ValidationErrors) {
	v := catalog.ValidationErrors{}

	var authorID uuid.NullUUID
	if raw := strings.TrimSpace(f.Author); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			v.Add(fieldAuthor, catalog.MsgInvalidChoice)
		} else {
			authorID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}

	genreIDs := make([]uuid.UUID, 0, len(f.Genre))
	for _, raw := range f.Genre {
		id, err := uuid.Parse(raw)
		if err != nil {
			v.Add(fieldGenre, catalog.MsgInvalidChoice)
			continue
		}

		genreIDs = append(genreIDs, id)
	}

	return authorID, genreIDs, v
}

// selectedGenres returns the parseable genre IDs for re-checking the boxes of a redisplayed form.
func (f bookForm) selectedGenres() []uuid.UUID {
	_, ids, _ := f.references()
	return ids
}

type authorFormData struct {
	Form   authorForm
	Action string
}

type bookFormData struct {
	Form           bookForm
	Action         string
	Choices        bookformchoices.Choices
	SelectedGenres []uuid.UUID
}

type confirmDeleteData struct {
	Model      string
	Name       string
	CancelPath string
	Related   []string
}

func authorPath(id uuid.UUID) string {
	return "/author/" + id.String()
}

func bookPath(id uuid.UUID) string {
	return "/book/" + id.String()
}

func (s *Server) authorCreateForm(c *gin.Context) {
	s.renderAuthorForm(c, "Create", authorForm{}, nil)
}

func (s *Server) authorCreateSubmit(c *gin.Context) {
	var form authorForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderStatus(c, http.StatusBadRequest)
		return
	}

	author, err := form.toAuthor(uuid.New())
	if err == nil {
		_, err = s.handlers.createAuthor.Handle(c.Request.Context(), createauthor.Command{Author: author})
	}

	if s.handledFormError(c, err, func(fieldErrs catalog.ValidationErrors) {
		s.renderAuthorForm(c, "Create", form, fieldErrs)
	}) {
		return
	}

	c.Redirect(http.StatusFound, authorPath(author.ID))
}

func (s *Server) authorUpdateForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	detail, err := s.handlers.authorDetail.Handle(c.Request.Context(), authordetail.BuildQuery(id))
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderAuthorForm(c, "Update", authorFormOf(detail.Author), nil)
}

func (s *Server) authorUpdateSubmit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	var form authorForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderStatus(c, http.StatusBadRequest)
		return
	}

	author, err := form.toAuthor(id)
	if err == nil {
		_, err = s.handlers.updateAuthor.Handle(c.Request.Context(), updateauthor.Command{Author: author})
	}

	if s.handledFormError(c, err, func(fieldErrs catalog.ValidationErrors) {
		s.renderAuthorForm(c, "Update", form, fieldErrs)
	}) {
		return
	}

	c.Redirect(http.StatusFound, authorPath(id))
}

func (s *Server) authorDeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	detail, err := s.handlers.authorDetail.Handle(c.Request.Context(), authordetail.BuildQuery(id))
	if err != nil {
		s.renderError(c, err)
		return
	}

	titles := make([]string, 0, len(detail.Books))
	for _, book := range detail.Books {
		titles = append(titles, book.Title)
	}

	s.renderPage(c, http.StatusOK, tmplConfirmDelete, s.newPage(c, pageTitle("Delete", modelAuthor), confirmDeleteData{
		Model:      modelAuthor,
		Name:       detail.Author.String(),
		CancelPath: authorPath(id),
		Related:   titles,
	}))
}

func (s *Server) authorDeleteSubmit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	if _, err := s.handlers.deleteAuthor.Handle(c.Request.Context(), deleteauthor.BuildCommand(id)); err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, authorListPath)
}

func (s *Server) bookCreateForm(c *gin.Context) {
	s.renderBookForm(c, "Create", bookForm{}, nil)
}

func (s *Server) bookCreateSubmit(c *gin.Context) {
	var form bookForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderStatus(c, http.StatusBadRequest)
		return
	}

	id := uuid.New()

	err := submitBook(form, func(authorID uuid.NullUUID, genreIDs []uuid.UUID) error {
		_, err := s.handlers.createBook.Handle(c.Request.Context(),
			createbook.BuildCommand(id, form.Title, authorID, form.Summary, form.ISBN, genreIDs))

		return err
	})

	if s.handledFormError(c, err, func(fieldErrs catalog.ValidationErrors) {
		s.renderBookForm(c, "Create", form, fieldErrs)
	}) {
		return
	}

	c.Redirect(http.StatusFound, bookPath(id))
}

func (s *Server) bookUpdateForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	detail, err := s.handlers.bookDetail.Handle(c.Request.Context(), bookdetail.BuildQuery(id, s.today()))
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderBookForm(c, "Update", bookFormOf(detail.Book), nil)
}

func (s *Server) bookUpdateSubmit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	var form bookForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderStatus(c, http.StatusBadRequest)
		return
	}

	err := submitBook(form, func(authorID uuid.NullUUID, genreIDs []uuid.UUID) error {
		_, err := s.handlers.updateBook.Handle(c.Request.Context(),
			updatebook.BuildCommand(id, form.Title, authorID, form.Summary, form.ISBN, genreIDs))

		return err
	})

	if s.handledFormError(c, err, func(fieldErrs catalog.ValidationErrors) {
		s.renderBookForm(c, "Update", form, fieldErrs)
	}) {
		return
	}

	c.Redirect(http.StatusFound, bookPath(id))
}

func (s *Server) bookDeleteConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	detail, err := s.handlers.bookDetail.Handle(c.Request.Context(), bookdetail.BuildQuery(id, s.today()))
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderPage(c, http.StatusOK, tmplConfirmDelete, s.newPage(c, pageTitle("Delete", modelBook), confirmDeleteData{
		Model:      modelBook,
		Name:       detail.Book.Title,
		CancelPath: bookPath(id),
	}))
}

func (s *Server) bookDeleteSubmit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	if _, err := s.handlers.deleteBook.Handle(c.Request.Context(), deletebook.BuildCommand(id)); err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, bookListPath)
}

// submitBook parses the references of form and runs write with them.
// Malformed references are merged with the field checks of the book.
func submitBook(form bookForm, write func(uuid.NullUUID, []uuid.UUID) error) error {
	authorID, genreIDs, refErrs := form.references()
	if len(refErrs) == 0 {
		return write(authorID, genreIDs)
	}

	book := catalog.BuildBook(form.Title, authorID, form.Summary, form.ISBN, genreIDs)
	if fieldErrs, ok := catalog.AsValidationErrors(book.Validate()); ok {
		for field, msg := range fieldErrs {
			refErrs.Add(field, msg)
		}
	}

	return refErrs
}

// handledFormError renders validation errors via redisplay and everything else via renderError.
// It reports whether err was handled, i.e. whether it was non-nil.
func (s *Server) handledFormError(c *gin.Context, err error, redisplay func(catalog.ValidationErrors)) bool {
	if err == nil {
		return false
	}

	if fieldErrs, ok := catalog.AsValidationErrors(err); ok {
		redisplay(fieldErrs)
		return true
	}

	s.renderError(c, err)

	return true
}

func (s *Server) renderAuthorForm(c *gin.Context, action string, form authorForm, fieldErrs catalog.ValidationErrors) {
	p := s.newPage(c, pageTitle(action, modelAuthor), authorFormData{Form: form, Action: action})
	p.Errors = fieldErrs

	s.renderPage(c, http.StatusOK, tmplAuthorForm, p)
}

func (s *Server) renderBookForm(c *gin.Context, action string, form bookForm, fieldErrs catalog.ValidationErrors) {
	choices, err := s.handlers.bookFormChoices.Handle(c.Request.Context(), bookformchoices.BuildQuery())
	if err != nil {
		s.renderError(c, err)
		return
	}

	p := s.newPage(c, pageTitle(action, modelBook), bookFormData{
		Form:           form,
		Action:         action,
		Choices:        choices,
		SelectedGenres: form.selectedGenres(),
	})
	p.Errors = fieldErrs

	s.renderPage(c, http.StatusOK, tmplBookForm, p)
}
