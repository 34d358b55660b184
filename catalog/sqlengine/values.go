package sqlengine

import (
	"database/sql"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// IDs and dates are rendered as text literals so that the same statements work
// on PostgreSQL (uuid, date) and SQLite (TEXT, DATE) columns.

func idValue(id uuid.UUID) string {
	return id.String()
}

func idValues(ids []uuid.UUID) []string {
	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, id.String())
	}

	return values
}

func nullIDValue(id uuid.NullUUID) any {
	if !id.Valid {
		return nil
	}

	return id.UUID.String()
}

func dateValue(t *time.Time) any {
	if t == nil {
		return nil
	}

	return catalog.DateOf(*t).Format(catalog.DateLayout)
}

func parseID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

func parseNullID(raw sql.NullString) (uuid.NullUUID, error) {
	if !raw.Valid || raw.String == "" {
		return uuid.NullUUID{}, nil
	}

	id, err := uuid.Parse(raw.String)
	if err != nil {
		return uuid.NullUUID{}, err
	}

	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func nullDate(raw sql.NullTime) *time.Time {
	if !raw.Valid {
		return nil
	}

	return catalog.DatePtr(raw.Time)
}

// likeEscape is the ESCAPE character of the LIKE clauses built by containsFold.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// escapeLike escapes the LIKE wildcards in s so that they match themselves.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// containsFold matches column against fragment as a case-insensitive substring.
// SQLite has no ILIKE, but its LIKE already ignores ASCII case.
func (s *Store) containsFold(column, fragment string) exp.LiteralExpression {
	operator := "LIKE"
	if s.dialectName == DialectPostgres {
		operator = "ILIKE"
	}

	return goqu.L("? "+operator+" ? ESCAPE '"+likeEscape+"'", goqu.C(column), "%"+escapeLike(fragment)+"%")
}
