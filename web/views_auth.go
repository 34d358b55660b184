package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authenticateuser"
)

const msgLoginFailed = "Your username and password didn't match. Please try again."

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

type loginData struct {
	Username string
	Next     string
	Message  string
}

func (s *Server) loginForm(c *gin.Context) {
	s.renderPage(c, http.StatusOK, tmplLogin, s.newPage(c, "Login", loginData{Next: c.Query("next")}))
}

func (s *Server) loginSubmit(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		s.renderStatus(c, http.StatusBadRequest)
		return
	}

	user, err := s.handlers.authenticateUser.Handle(c.Request.Context(), authenticateuser.BuildQuery(form.Username, form.Password))
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidCredentials) {
			s.renderPage(c, http.StatusOK, tmplLogin, s.newPage(c, "Login", loginData{
				Username: form.Username,
				Next:     form.Next,
				Message:  msgLoginFailed,
			}))

			return
		}

		s.renderError(c, err)

		return
	}

	if err = s.rotateSession(c, user); err != nil {
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, safeNext(form.Next))
}

// rotateSession replaces the anonymous session with a new one bound to user.
// The visit counter carries over.
func (s *Server) rotateSession(c *gin.Context, user catalog.User) error {
	ctx := c.Request.Context()
	previous := currentSession(c)

	session := catalog.BuildSession(s.now())
	session.UserID = uuid.NullUUID{UUID: user.ID, Valid: true}
	session.NumVisits = previous.NumVisits

	if err := s.store.CreateSession(ctx, session); err != nil {
		return err
	}

	if previous.ID != uuid.Nil {
		if err := s.store.DeleteSession(ctx, previous.ID); err != nil {
			return err
		}
	}

	s.setSessionCookie(c, session)

	return nil
}

func (s *Server) logout(c *gin.Context) {
	if session := currentSession(c); session.ID != uuid.Nil {
		if err := s.store.DeleteSession(c.Request.Context(), session.ID); err != nil {
			s.renderError(c, err)
			return
		}
	}

	s.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
