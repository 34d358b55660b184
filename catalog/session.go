package catalog

import (
	"time"

	"github.com/google/uuid"
)

// SessionLifetime is how long an idle session stays valid.
const SessionLifetime = 14 * 24 * time.Hour

// Session is the server-side state behind the session cookie.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.NullUUID
	NumVisits int
	ExpiresAt time.Time
}

// BuildSession creates an anonymous session expiring SessionLifetime after now.
func BuildSession(now time.Time) Session {
	return Session{
		ID:        uuid.New(),
		ExpiresAt: now.Add(SessionLifetime).UTC(),
	}
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// IsAuthenticated reports whether a user is bound to the session.
func (s Session) IsAuthenticated() bool {
	return s.UserID.Valid
}
