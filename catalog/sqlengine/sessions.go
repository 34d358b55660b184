package sqlengine

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine/internal/adapters"
)

const (
	operationCreateSession         = "create_session"
	operationSessionByID           = "session_by_id"
	operationUpdateSession         = "update_session"
	operationDeleteSession         = "delete_session"
	operationDeleteExpiredSessions = "delete_expired_sessions"
)

// Session expiry is stored as unix seconds, which compares the same way on every dialect.

func scanSession(rows adapters.DBRows) (catalog.Session, error) {
	var rawID string
	var rawUserID sql.NullString
	var numVisits, expiresAt int64

	if err := rows.Scan(&rawID, &rawUserID, &numVisits, &expiresAt); err != nil {
		return catalog.Session{}, err
	}

	id, err := parseID(rawID)
	if err != nil {
		return catalog.Session{}, err
	}

	userID, err := parseNullID(rawUserID)
	if err != nil {
		return catalog.Session{}, err
	}

	return catalog.Session{
		ID:        id,
		UserID:    userID,
		NumVisits: int(numVisits),
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
	}, nil
}

func sessionRecord(session catalog.Session) goqu.Record {
	return goqu.Record{
		colUserID:    nullIDValue(session.UserID),
		colNumVisits: session.NumVisits,
		colExpiresAt: session.ExpiresAt.Unix(),
	}
}

// CreateSession inserts a new session.
func (s *Store) CreateSession(ctx context.Context, session catalog.Session) error {
	return s.observe(ctx, operationCreateSession, func(ctx context.Context) error {
		record := sessionRecord(session)
		record[colID] = idValue(session.ID)

		_, err := s.exec(ctx, s.db, s.dialect.Insert(s.table(tableSession)).Rows(record))

		return err
	})
}

// SessionByID loads one session, expired or not.
func (s *Store) SessionByID(ctx context.Context, id uuid.UUID) (catalog.Session, error) {
	var session catalog.Session

	err := s.observe(ctx, operationSessionByID, func(ctx context.Context) error {
		ds := s.dialect.
			From(s.table(tableSession)).
			Select(colID, colUserID, colNumVisits, colExpiresAt).
			Where(goqu.C(colID).Eq(idValue(id)))

		return s.queryOne(ctx, s.db, ds, func(rows adapters.DBRows) error {
			var scanErr error
			session, scanErr = scanSession(rows)

			return scanErr
		})
	})

	return session, err
}

// UpdateSession overwrites the user binding, visit counter, and expiry of a session.
func (s *Store) UpdateSession(ctx context.Context, session catalog.Session) error {
	return s.observe(ctx, operationUpdateSession, func(ctx context.Context) error {
		update := s.dialect.
			Update(s.table(tableSession)).
			Set(sessionRecord(session)).
			Where(goqu.C(colID).Eq(idValue(session.ID)))

		return s.execExpectingRow(ctx, s.db, update)
	})
}

// DeleteSession deletes a session. Deleting an unknown session is a no-op.
func (s *Store) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.observe(ctx, operationDeleteSession, func(ctx context.Context) error {
		_, err := s.exec(ctx, s.db, s.dialect.Delete(s.table(tableSession)).Where(goqu.C(colID).Eq(idValue(id))))

		return err
	})
}

// DeleteExpiredSessions deletes all sessions expired at now and returns how many were removed.
func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	var deleted int64

	err := s.observe(ctx, operationDeleteExpiredSessions, func(ctx context.Context) error {
		var err error
		deleted, err = s.exec(ctx, s.db, s.dialect.Delete(s.table(tableSession)).Where(goqu.C(colExpiresAt).Lte(now.Unix())))

		return err
	})

	return deleted, err
}
