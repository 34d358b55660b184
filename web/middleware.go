package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	sessionCookieName = "sessionid"
	loginPath         = "/accounts/login/"

	ctxKeySession = "catalog.session"
	ctxKeyUser    = "catalog.user"

	logMsgRequest        = "http request"
	logMsgPanicRecovered = "panic recovered"
	logMsgRequestFailed  = "http request failed"

	logAttrMethod     = "method"
	logAttrPath       = "path"
	logAttrStatus     = "status"
	logAttrDurationMS = "duration_ms"
	logAttrClientIP   = "client_ip"
	logAttrError      = "error"
)

// requestLogger logs one record per request, at error level for server errors.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		s.logger.LogAttrs(c.Request.Context(), level, logMsgRequest,
			slog.String(logAttrMethod, c.Request.Method),
			slog.String(logAttrPath, c.Request.URL.Path),
			slog.Int(logAttrStatus, c.Writer.Status()),
			slog.Float64(logAttrDurationMS, float64(time.Since(start).Microseconds())/1000.0),
			slog.String(logAttrClientIP, c.ClientIP()),
		)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		s.logger.ErrorContext(c.Request.Context(), logMsgPanicRecovered, logAttrError, recovered)
		s.renderStatus(c, http.StatusInternalServerError)
	})
}

// sessions resolves the session cookie and the user bound to it.
// Visitors without a valid session get a new anonymous one.
func (s *Server) sessions() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		session, err := s.loadSession(c)
		if err != nil {
			s.renderError(c, err)
			c.Abort()

			return
		}

		if session.UserID.Valid {
			user, userErr := s.store.UserByID(ctx, session.UserID.UUID)
			switch {
			case userErr == nil:
				c.Set(ctxKeyUser, user)
			case !errors.Is(userErr, catalog.ErrNotFound):
				s.renderError(c, userErr)
				c.Abort()

				return
			}
		}

		c.Set(ctxKeySession, session)
		c.Next()
	}
}

func (s *Server) loadSession(c *gin.Context) (catalog.Session, error) {
	ctx := c.Request.Context()
	now := s.now()

	if raw, err := c.Cookie(sessionCookieName); err == nil {
		if id, parseErr := uuid.Parse(raw); parseErr == nil {
			session, loadErr := s.store.SessionByID(ctx, id)
			switch {
			case loadErr == nil && !session.IsExpired(now):
				return session, nil
			case loadErr != nil && !errors.Is(loadErr, catalog.ErrNotFound):
				return catalog.Session{}, loadErr
			}
		}
	}

	session := catalog.BuildSession(now)
	if err := s.store.CreateSession(ctx, session); err != nil {
		return catalog.Session{}, err
	}

	s.setSessionCookie(c, session)

	return session, nil
}

func (s *Server) setSessionCookie(c *gin.Context, session catalog.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, session.ID.String(), int(catalog.SessionLifetime.Seconds()), "/", "", s.secureCookies, true)
}

func (s *Server) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", s.secureCookies, true)
}

// requireLogin redirects anonymous visitors to the login page.
func (s *Server) requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUser(c); !ok {
			redirectToLogin(c)
			return
		}

		c.Next()
	}
}

// requirePermission redirects anonymous visitors to the login page
// and answers users without perm with 403.
func (s *Server) requirePermission(perm catalog.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			redirectToLogin(c)
			return
		}

		if !user.HasPermission(perm) {
			s.renderStatus(c, http.StatusForbidden)
			c.Abort()

			return
		}

		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, loginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}

func currentSession(c *gin.Context) catalog.Session {
	if v, ok := c.Get(ctxKeySession); ok {
		if session, isSession := v.(catalog.Session); isSession {
			return session
		}
	}

	return catalog.Session{}
}

func currentUser(c *gin.Context) (catalog.User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return catalog.User{}, false
	}

	user, ok := v.(catalog.User)

	return user, ok
}

// safeNext returns next when it is a path on this site, "/" otherwise.
func safeNext(next string) string {
	u, err := url.Parse(next)
	if err != nil || next == "" || u.Scheme != "" || u.Host != "" || next[0] != '/' || (len(next) > 1 && (next[1] == '/' || next[1] == '\\')) {
		return "/"
	}

	return next
}
