package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/renewbookinstance"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookinstancedetail"
)

const borrowedPath = "/borrowed/"

type renewData struct {
	Instance    bookinstancedetail.InstanceDetail
	Field       string
	RenewalDate string
	HelpText    string
}

func (s *Server) renewForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	proposed := renewbookinstance.ProposedRenewalDate(s.today())
	s.renderRenewForm(c, id, catalog.FormatDate(&proposed), nil)
}

func (s *Server) renewSubmit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.renderStatus(c, http.StatusNotFound)
		return
	}

	today := s.today()
	raw := c.PostForm(renewbookinstance.FieldRenewalDate)

	renewalDate, err := renewbookinstance.ParseRenewalDate(raw, today)
	if err == nil {
		_, err = s.handlers.renewBookInstance.Handle(c.Request.Context(), renewbookinstance.BuildCommand(id, renewalDate, today))
	}

	if err != nil {
		if fieldErrs, isValidation := catalog.AsValidationErrors(err); isValidation {
			s.renderRenewForm(c, id, raw, fieldErrs)
			return
		}

		s.renderError(c, err)

		return
	}

	c.Redirect(http.StatusFound, borrowedPath)
}

func (s *Server) renderRenewForm(c *gin.Context, id uuid.UUID, value string, fieldErrs catalog.ValidationErrors) {
	detail, err := s.handlers.bookInstanceDetail.Handle(c.Request.Context(), bookinstancedetail.BuildQuery(id))
	if err != nil {
		s.renderError(c, err)
		return
	}

	p := s.newPage(c, "Renew: "+detail.BookTitle, renewData{
		Instance:    detail,
		Field:       renewbookinstance.FieldRenewalDate,
		RenewalDate: value,
		HelpText:    renewbookinstance.HelpText,
	})
	p.Errors = fieldErrs

	s.renderPage(c, http.StatusOK, tmplRenew, p)
}
