package sqlengine

import (
	"context"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine/internal/adapters"
)

const (
	operationCreateGenre   = "create_genre"
	operationGenreByID     = "genre_by_id"
	operationGenreByName   = "genre_by_name"
	operationListGenres    = "list_genres"
	operationGenresOfBooks = "genres_of_books"
	operationCountGenres   = "count_genres"
)

func scanGenre(rows adapters.DBRows) (catalog.Genre, error) {
	var rawID string
	var genre catalog.Genre

	if err := rows.Scan(&rawID, &genre.Name); err != nil {
		return catalog.Genre{}, err
	}

	id, err := parseID(rawID)
	if err != nil {
		return catalog.Genre{}, err
	}

	genre.ID = id

	return genre, nil
}

func (s *Store) selectGenres() *goqu.SelectDataset {
	return s.dialect.
		From(s.table(tableGenre)).
		Select(s.col(tableGenre, colID), s.col(tableGenre, colName)).
		Order(s.col(tableGenre, colName).Asc())
}

// CreateGenre inserts a new genre.
func (s *Store) CreateGenre(ctx context.Context, genre catalog.Genre) error {
	return s.observe(ctx, operationCreateGenre, func(ctx context.Context) error {
		insert := s.dialect.Insert(s.table(tableGenre)).Rows(goqu.Record{
			colID:   idValue(genre.ID),
			colName: genre.Name,
		})

		_, err := s.exec(ctx, s.db, insert)

		return err
	})
}

// GenreByID loads one genre.
func (s *Store) GenreByID(ctx context.Context, id uuid.UUID) (catalog.Genre, error) {
	var genre catalog.Genre

	err := s.observe(ctx, operationGenreByID, func(ctx context.Context) error {
		ds := s.selectGenres().Where(s.col(tableGenre, colID).Eq(idValue(id)))

		return s.queryOne(ctx, s.db, ds, func(rows adapters.DBRows) error {
			var scanErr error
			genre, scanErr = scanGenre(rows)

			return scanErr
		})
	})

	return genre, err
}

// GenreByName loads the first genre with the given name, ignoring case.
func (s *Store) GenreByName(ctx context.Context, name string) (catalog.Genre, error) {
	var genre catalog.Genre

	err := s.observe(ctx, operationGenreByName, func(ctx context.Context) error {
		ds := s.selectGenres().
			Where(goqu.Func("LOWER", s.col(tableGenre, colName)).Eq(strings.ToLower(strings.TrimSpace(name)))).
			Limit(1)

		return s.queryOne(ctx, s.db, ds, func(rows adapters.DBRows) error {
			var scanErr error
			genre, scanErr = scanGenre(rows)

			return scanErr
		})
	})

	return genre, err
}

// ListGenres returns all genres ordered by name.
func (s *Store) ListGenres(ctx context.Context) ([]catalog.Genre, error) {
	genres := make([]catalog.Genre, 0)

	err := s.observe(ctx, operationListGenres, func(ctx context.Context) error {
		return s.query(ctx, s.db, s.selectGenres(), func(rows adapters.DBRows) error {
			genre, scanErr := scanGenre(rows)
			if scanErr != nil {
				return scanErr
			}

			genres = append(genres, genre)

			return nil
		})
	})

	return genres, err
}

// GenresOfBooks returns the genres of each given book, ordered by genre name.
// Books without genres are missing from the result.
func (s *Store) GenresOfBooks(ctx context.Context, bookIDs ...uuid.UUID) (map[uuid.UUID][]catalog.Genre, error) {
	result := make(map[uuid.UUID][]catalog.Genre, len(bookIDs))
	if len(bookIDs) == 0 {
		return result, nil
	}

	err := s.observe(ctx, operationGenresOfBooks, func(ctx context.Context) error {
		ds := s.dialect.
			From(s.table(tableBookGenre)).
			Join(
				goqu.T(s.table(tableGenre)),
				goqu.On(s.col(tableBookGenre, colGenreID).Eq(s.col(tableGenre, colID))),
			).
			Select(s.col(tableBookGenre, colBookID), s.col(tableGenre, colID), s.col(tableGenre, colName)).
			Where(s.col(tableBookGenre, colBookID).In(idValues(bookIDs))).
			Order(s.col(tableGenre, colName).Asc())

		return s.query(ctx, s.db, ds, func(rows adapters.DBRows) error {
			var rawBookID, rawGenreID, name string
			if scanErr := rows.Scan(&rawBookID, &rawGenreID, &name); scanErr != nil {
				return scanErr
			}

			bookID, parseErr := parseID(rawBookID)
			if parseErr != nil {
				return parseErr
			}

			genreID, parseErr := parseID(rawGenreID)
			if parseErr != nil {
				return parseErr
			}

			result[bookID] = append(result[bookID], catalog.Genre{ID: genreID, Name: name})

			return nil
		})
	})

	return result, err
}

// CountGenres returns the number of genres.
func (s *Store) CountGenres(ctx context.Context) (int, error) {
	var n int

	err := s.observe(ctx, operationCountGenres, func(ctx context.Context) error {
		var countErr error
		n, countErr = s.count(ctx, s.db, s.dialect.From(s.table(tableGenre)).Select(goqu.COUNT(goqu.Star())))

		return countErr
	})

	return n, err
}
