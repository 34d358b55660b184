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
	operationCreateBook           = "create_book"
	operationUpdateBook           = "update_book"
	operationDeleteBook           = "delete_book"
	operationBookByID             = "book_by_id"
	operationBooksByIDs           = "books_by_ids"
	operationListBooks            = "list_books"
	operationBooksByAuthor        = "books_by_author"
	operationCountBooks           = "count_books"
	operationCountBooksTitle      = "count_books_with_title_containing"
	operationCountBooksDeadAuthor = "count_books_by_deceased_authors"
	operationBookByISBN           = "book_by_isbn"
)

func scanBook(rows adapters.DBRows) (catalog.Book, error) {
	var rawID string
	var rawAuthorID sql.NullString
	var book catalog.Book

	if err := rows.Scan(&rawID, &book.Title, &rawAuthorID, &book.Summary, &book.ISBN); err != nil {
		return catalog.Book{}, err
	}

	id, err := parseID(rawID)
	if err != nil {
		return catalog.Book{}, err
	}

	authorID, err := parseNullID(rawAuthorID)
	if err != nil {
		return catalog.Book{}, err
	}

	book.ID = id
	book.AuthorID = authorID

	return book, nil
}

func (s *Store) selectBooks() *goqu.SelectDataset {
	return s.dialect.
		From(s.table(tableBook)).
		Select(
			s.col(tableBook, colID),
			s.col(tableBook, colTitle),
			s.col(tableBook, colAuthorID),
			s.col(tableBook, colSummary),
			s.col(tableBook, colISBN),
		).
		Order(s.col(tableBook, colTitle).Asc(), s.col(tableBook, colID).Asc())
}

// queryBooks loads books and fills in their genre IDs.
func (s *Store) queryBooks(ctx context.Context, ds *goqu.SelectDataset) ([]catalog.Book, error) {
	books := make([]catalog.Book, 0)

	err := s.query(ctx, s.db, ds, func(rows adapters.DBRows) error {
		book, scanErr := scanBook(rows)
		if scanErr != nil {
			return scanErr
		}

		books = append(books, book)

		return nil
	})
	if err != nil || len(books) == 0 {
		return books, err
	}

	ids := make([]uuid.UUID, 0, len(books))
	for _, book := range books {
		ids = append(ids, book.ID)
	}

	genreIDs := make(map[uuid.UUID][]uuid.UUID, len(books))
	linkQuery := s.dialect.
		From(s.table(tableBookGenre)).
		Select(goqu.C(colBookID), goqu.C(colGenreID)).
		Where(goqu.C(colBookID).In(idValues(ids)))

	err = s.query(ctx, s.db, linkQuery, func(rows adapters.DBRows) error {
		var rawBookID, rawGenreID string
		if scanErr := rows.Scan(&rawBookID, &rawGenreID); scanErr != nil {
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

		genreIDs[bookID] = append(genreIDs[bookID], genreID)

		return nil
	})

	for i := range books {
		books[i].GenreIDs = genreIDs[books[i].ID]
	}

	return books, err
}

func bookRecord(book catalog.Book) goqu.Record {
	return goqu.Record{
		colTitle:    book.Title,
		colAuthorID: nullIDValue(book.AuthorID),
		colSummary:  book.Summary,
		colISBN:     book.ISBN,
	}
}

// insertGenreLinks links a book to its genres.
func (s *Store) insertGenreLinks(ctx context.Context, tx adapters.Querier, book catalog.Book) error {
	if len(book.GenreIDs) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]bool, len(book.GenreIDs))
	links := make([]any, 0, len(book.GenreIDs))

	for _, genreID := range book.GenreIDs {
		if seen[genreID] {
			continue
		}

		seen[genreID] = true
		links = append(links, goqu.Record{colBookID: idValue(book.ID), colGenreID: idValue(genreID)})
	}

	_, err := s.exec(ctx, tx, s.dialect.Insert(s.table(tableBookGenre)).Rows(links...))

	return err
}

// CreateBook inserts a book together with its genre links.
func (s *Store) CreateBook(ctx context.Context, book catalog.Book) error {
	return s.observe(ctx, operationCreateBook, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx adapters.Querier) error {
			record := bookRecord(book)
			record[colID] = idValue(book.ID)

			if _, err := s.exec(ctx, tx, s.dialect.Insert(s.table(tableBook)).Rows(record)); err != nil {
				return err
			}

			return s.insertGenreLinks(ctx, tx, book)
		})
	})
}

// UpdateBook overwrites all fields of an existing book and replaces its genre links.
func (s *Store) UpdateBook(ctx context.Context, book catalog.Book) error {
	return s.observe(ctx, operationUpdateBook, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx adapters.Querier) error {
			update := s.dialect.
				Update(s.table(tableBook)).
				Set(bookRecord(book)).
				Where(goqu.C(colID).Eq(idValue(book.ID)))

			if err := s.execExpectingRow(ctx, tx, update); err != nil {
				return err
			}

			unlink := s.dialect.Delete(s.table(tableBookGenre)).Where(goqu.C(colBookID).Eq(idValue(book.ID)))
			if _, err := s.exec(ctx, tx, unlink); err != nil {
				return err
			}

			return s.insertGenreLinks(ctx, tx, book)
		})
	})
}

// DeleteBook deletes a book and its genre links. Its copies are kept with a null book.
func (s *Store) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return s.observe(ctx, operationDeleteBook, func(ctx context.Context) error {
		return s.inTx(ctx, func(tx adapters.Querier) error {
			detach := s.dialect.
				Update(s.table(tableBookInstance)).
				Set(goqu.Record{colBookID: nil}).
				Where(goqu.C(colBookID).Eq(idValue(id)))

			if _, err := s.exec(ctx, tx, detach); err != nil {
				return err
			}

			unlink := s.dialect.Delete(s.table(tableBookGenre)).Where(goqu.C(colBookID).Eq(idValue(id)))
			if _, err := s.exec(ctx, tx, unlink); err != nil {
				return err
			}

			return s.execExpectingRow(ctx, tx, s.dialect.Delete(s.table(tableBook)).Where(goqu.C(colID).Eq(idValue(id))))
		})
	})
}

// BookByID loads one book with its genre IDs.
func (s *Store) BookByID(ctx context.Context, id uuid.UUID) (catalog.Book, error) {
	var book catalog.Book

	err := s.observe(ctx, operationBookByID, func(ctx context.Context) error {
		books, err := s.queryBooks(ctx, s.selectBooks().Where(s.col(tableBook, colID).Eq(idValue(id))))
		if err != nil {
			return err
		}

		if len(books) == 0 {
			return catalog.ErrNotFound
		}

		book = books[0]

		return nil
	})

	return book, err
}

// BookByISBN loads the first book with the given ISBN.
func (s *Store) BookByISBN(ctx context.Context, isbn string) (catalog.Book, error) {
	var book catalog.Book

	err := s.observe(ctx, operationBookByISBN, func(ctx context.Context) error {
		books, err := s.queryBooks(ctx, s.selectBooks().Where(s.col(tableBook, colISBN).Eq(isbn)).Limit(1))
		if err != nil {
			return err
		}

		if len(books) == 0 {
			return catalog.ErrNotFound
		}

		book = books[0]

		return nil
	})

	return book, err
}

// BooksByIDs loads the given books keyed by ID. Unknown IDs are skipped.
func (s *Store) BooksByIDs(ctx context.Context, ids ...uuid.UUID) (map[uuid.UUID]catalog.Book, error) {
	result := make(map[uuid.UUID]catalog.Book, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	err := s.observe(ctx, operationBooksByIDs, func(ctx context.Context) error {
		books, err := s.queryBooks(ctx, s.selectBooks().Where(s.col(tableBook, colID).In(idValues(ids))))
		for _, book := range books {
			result[book.ID] = book
		}

		return err
	})

	return result, err
}

// ListBooks returns one page of books ordered by title.
func (s *Store) ListBooks(ctx context.Context, page catalog.PageRequest) ([]catalog.Book, error) {
	var books []catalog.Book

	err := s.observe(ctx, operationListBooks, func(ctx context.Context) error {
		var err error
		books, err = s.queryBooks(ctx, s.selectBooks().Limit(page.Limit()).Offset(page.Offset()))

		return err
	})

	return books, err
}

// BooksByAuthor returns all books of an author ordered by title.
func (s *Store) BooksByAuthor(ctx context.Context, authorID uuid.UUID) ([]catalog.Book, error) {
	var books []catalog.Book

	err := s.observe(ctx, operationBooksByAuthor, func(ctx context.Context) error {
		var err error
		books, err = s.queryBooks(ctx, s.selectBooks().Where(s.col(tableBook, colAuthorID).Eq(idValue(authorID))))

		return err
	})

	return books, err
}

// CountBooks returns the number of books.
func (s *Store) CountBooks(ctx context.Context) (int, error) {
	var n int

	err := s.observe(ctx, operationCountBooks, func(ctx context.Context) error {
		var countErr error
		n, countErr = s.count(ctx, s.db, s.dialect.From(s.table(tableBook)).Select(goqu.COUNT(goqu.Star())))

		return countErr
	})

	return n, err
}

// CountBooksWithTitleContaining counts books whose title contains fragment, ignoring case.
func (s *Store) CountBooksWithTitleContaining(ctx context.Context, fragment string) (int, error) {
	var n int

	err := s.observe(ctx, operationCountBooksTitle, func(ctx context.Context) error {
		ds := s.dialect.
			From(s.table(tableBook)).
			Select(goqu.COUNT(goqu.Star())).
			Where(s.containsFold(colTitle, fragment))

		var countErr error
		n, countErr = s.count(ctx, s.db, ds)

		return countErr
	})

	return n, err
}

// CountBooksByDeceasedAuthors counts books whose author has a date of death.
func (s *Store) CountBooksByDeceasedAuthors(ctx context.Context) (int, error) {
	var n int

	err := s.observe(ctx, operationCountBooksDeadAuthor, func(ctx context.Context) error {
		ds := s.dialect.
			From(s.table(tableBook)).
			Join(
				goqu.T(s.table(tableAuthor)),
				goqu.On(s.col(tableBook, colAuthorID).Eq(s.col(tableAuthor, colID))),
			).
			Select(goqu.COUNT(goqu.Star())).
			Where(s.col(tableAuthor, colDateOfDeath).IsNotNull())

		var countErr error
		n, countErr = s.count(ctx, s.db, ds)

		return countErr
	})

	return n, err
}
