package sqlengine

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine/internal/adapters"
)

const (
	operationCreateAuthor  = "create_author"
	operationUpdateAuthor  = "update_author"
	operationDeleteAuthor  = "delete_author"
	operationAuthorByID    = "author_by_id"
	operationAuthorsByIDs  = "authors_by_ids"
	operationListAuthors   = "list_authors"
	operationAllAuthors    = "all_authors"
	operationCountAuthors  = "count_authors"
	operationAuthorByNames = "author_by_names"
)

func scanAuthor(rows adapters.DBRows) (catalog.Author, error) {
	var rawID string
	var born, died sql.NullTime
	var author catalog.Author

	if err := rows.Scan(&rawID, &author.FirstName, &author.LastName, &born, &died); err != nil {
		return catalog.Author{}, err
	}

	id, err := parseID(rawID)
	if err != nil {
		return catalog.Author{}, err
	}

	author.ID = id
	author.DateOfBirth = nullDate(born)
	author.DateOfDeath = nullDate(died)

	return author, nil
}

func (s *Store) selectAuthors() *goqu.SelectDataset {
	return s.dialect.
		From(s.table(tableAuthor)).
		Select(
			s.col(tableAuthor, colID),
			s.col(tableAuthor, colFirstName),
			s.col(tableAuthor, colLastName),
			s.col(tableAuthor, colDateOfBirth),
			s.col(tableAuthor, colDateOfDeath),
		).
		Order(s.col(tableAuthor, colLastName).Asc(), s.col(tableAuthor, colFirstName).Asc())
}

func (s *Store) queryAuthors(ctx context.Context, ds *goqu.SelectDataset) ([]catalog.Author, error) {
	authors := make([]catalog.Author, 0)

	err := s.query(ctx, s.db, ds, func(rows adapters.DBRows) error {
		author, scanErr := scanAuthor(rows)
		if scanErr != nil {
			return scanErr
		}

		authors = append(authors, author)

		return nil
	})

	return authors, err
}

func authorRecord(author catalog.Author) goqu.Record {
	return goqu.Record{
		colFirstName:   author.FirstName,
		colLastName:    author.LastName,
		colDateOfBirth: dateValue(author.DateOfBirth),
		colDateOfDeath: dateValue(author.DateOfDeath),
	}
}

// CreateAuthor inserts a new author.
func (s *Store) CreateAuthor(ctx context.Context, author catalog.Author) error {
	return s.observe(ctx, operationCreateAuthor, func(ctx context.Context) error {
		record := authorRecord(author)
		record[colID] = idValue(author.ID)

		_, err := s.exec(ctx, s.db, s.dialect.Insert(s.table(tableAuthor)).Rows(record))

		return err
	})
}

// UpdateAuthor overwrites all fields of an existing author.
func (s *Store) UpdateAuthor(ctx context.Context, author catalog.Author) error {
	return s.observe(ctx, operationUpdateAuthor, func(ctx context.Context) error {
		update := s.dialect.
			Update(s.table(tableAuthor)).
			Set(authorRecord(author)).
			Where(goqu.C(colID).Eq(idValue(author.ID)))

		return s.execExpectingRow(ctx, s.db, update)
	})
}

// DeleteAuthor deletes an author. Their books are kept with a null author.
func (s *Store) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	return s.observe(ctx, operationDeleteAuthor, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx adapters.Querier) error {
			detach := s.dialect.
				Update(s.table(tableBook)).
				Set(goqu.Record{colAuthorID: nil}).
				Where(goqu.C(colAuthorID).Eq(idValue(id)))

			if _, err := s.exec(ctx, tx, detach); err != nil {
				return err
			}

			return s.execExpectingRow(ctx, tx, s.dialect.Delete(s.table(tableAuthor)).Where(goqu.C(colID).Eq(idValue(id))))
		})
	})
}

// AuthorByID loads one author.
func (s *Store) AuthorByID(ctx context.Context, id uuid.UUID) (catalog.Author, error) {
	var author catalog.Author

	err := s.observe(ctx, operationAuthorByID, func(ctx context.Context) error {
		ds := s.selectAuthors().Where(s.col(tableAuthor, colID).Eq(idValue(id)))

		return s.queryOne(ctx, s.db, ds, func(rows adapters.DBRows) error {
			var scanErr error
			author, scanErr = scanAuthor(rows)

			return scanErr
		})
	})

	return author, err
}

// AuthorByNames loads the first author with the given first and last name.
func (s *Store) AuthorByNames(ctx context.Context, firstName, lastName string) (catalog.Author, error) {
	var author catalog.Author

	err := s.observe(ctx, operationAuthorByNames, func(ctx context.Context) error {
		ds := s.selectAuthors().
			Where(
				s.col(tableAuthor, colFirstName).Eq(firstName),
				s.col(tableAuthor, colLastName).Eq(lastName),
			).
			Limit(1)

		return s.queryOne(ctx, s.db, ds, func(rows adapters.DBRows) error {
			var scanErr error
			author, scanErr = scanAuthor(rows)

			return scanErr
		})
	})

	return author, err
}

// AuthorsByIDs loads the given authors keyed by ID. Unknown IDs are skipped.
func (s *Store) AuthorsByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.Author, error) {
	result := make(map[uuid.UUID]catalog.Author, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	err := s.observe(ctx, operationAuthorsByIDs, func(ctx context.Context) error {
		authors, err := s.queryAuthors(ctx, s.selectAuthors().Where(s.col(tableAuthor, colID).In(idValues(ids))))
		for _, author := range authors {
			result[author.ID] = author
		}

		return err
	})

	return result, err
}

// ListAuthors returns one page of authors ordered by last name, first name.
func (s *Store) ListAuthors(ctx context.Context, page catalog.PageRequest) ([]catalog.Author, error) {
	var authors []catalog.Author

	err := s.observe(ctx, operationListAuthors, func(ctx context.Context) error {
		var err error
		authors, err = s.queryAuthors(ctx, s.selectAuthors().Limit(page.Limit()).Offset(page.Offset()))

		return err
	})

	return authors, err
}

// AllAuthors returns every author ordered by last name, first name.
func (s *Store) AllAuthors(ctx context.Context) ([]catalog.Author, error) {
	var authors []catalog.Author

	err := s.observe(ctx, operationAllAuthors, func(ctx context.Context) error {
		var err error
		authors, err = s.queryAuthors(ctx, s.selectAuthors())

		return err
	})

	return authors, err
}

// CountAuthors returns the number of authors.
func (s *Store) CountAuthors(ctx context.Context) (int, error) {
	var n int

	err := s.observe(ctx, operationCountAuthors, func(ctx context.Context) error {
		var countErr error
		n, countErr = s.count(ctx, s.db, s.dialect.From(s.table(tableAuthor)).Select(goqu.COUNT(goqu.Star())))

		return countErr
	})

	return n, err
}
