package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authordetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authorlist"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookdetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/booklist"
	"github.com/AntonStoeckl/locallibrary-go/features/query/borrowedbooks"
	"github.com/AntonStoeckl/locallibrary-go/features/query/catalogsummary"
	"github.com/AntonStoeckl/locallibrary-go/features/query/loanedbooksbyuser"
)

type indexData struct {
	Summary   catalogsummary.Summary
	NumVisits int
}

func (s *Server) index(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := s.handlers.catalogSummary.Handle(ctx, catalogsummary.BuildQuery())
	if err != nil {
		s.renderError(c, err)
		return
	}

	session := currentSession(c)
	session.NumVisits++
	session.ExpiresAt = s.now().Add(catalog.SessionLifetime).UTC()

	if err = s.store.UpdateSession(ctx, session); err != nil {
		s.renderError(c, err)
		return
	}

	s.renderPage(c, http.StatusOK, tmplIndex, s.newPage(c, "Local Library Home", indexData{
		Summary:   summary,
		NumVisits: session.NumVisits,
	}))
}

func (s *Server) bookList(c *gin.Context) {
	number, ok := pageNumber(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	books, err := s.handlers.bookList.Handle(c.Request.Context(), booklist.BuildQuery(number, s.pageSize))
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderPage(c, http.StatusOK, tmplBookList, s.newPage(c, pageTitle("", "Book"), books))
}

func (s *Server) bookDetail(c *gin.Context) {
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

	s.renderPage(c, http.StatusOK, tmplBookDetail, s.newPage(c, detail.Book.Title, detail))
}

func (s *Server) authorList(c *gin.Context) {
	number, ok := pageNumber(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	authors, err := s.handlers.authorList.Handle(c.Request.Context(), authorlist.BuildQuery(number, s.pageSize))
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderPage(c, http.StatusOK, tmplAuthorList, s.newPage(c, pageTitle("", "Author"), authors))
}

func (s *Server) authorDetail(c *gin.Context) {
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

	s.renderPage(c, http.StatusOK, tmplAuthorDetail, s.newPage(c, detail.Author.String(), detail))
}

func (s *Server) myBooks(c *gin.Context) {
	number, ok := pageNumber(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	user, _ := currentUser(c)

	loans, err := s.handlers.loanedBooksByUser.Handle(c.Request.Context(), loanedbooksbyuser.BuildQuery(user.ID, number, s.pageSize, s.today()))
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderPage(c, http.StatusOK, tmplMyBooks, s.newPage(c, "Borrowed books", loans))
}

func (s *Server) borrowedBooks(c *gin.Context) {
	number, ok := pageNumber(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	loans, err := s.handlers.borrowedBooks.Handle(c.Request.Context(), borrowedbooks.BuildQuery(number, s.pageSize, s.today()))
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderPage(c, http.StatusOK, tmplBorrowed, s.newPage(c, "All borrowed books", loans))
}

// pageNumber reads the 1-based ?page=N parameter. A missing parameter means the first page.
func pageNumber(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 0, false
	}

	return number, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
