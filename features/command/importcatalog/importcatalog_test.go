package importcatalog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/franela/goblin"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/importcatalog"
	. "github.com/AntonStoeckl/locallibrary-go/testutil/helper" //nolint:revive
)

const catalogDocument = `{
  "genres": [{"name": "Fantasy"}, {"name": "Science Fiction"}],
  "authors": [
    {"first_name": "Ursula", "last_name": "Le Guin", "date_of_birth": "1929-10-21", "date_of_death": "2018-01-22"},
    {"first_name": "Iain", "last_name": "Banks"}
  ],
  "books": [
    {
      "title": "A Wizard of Earthsea",
      "author": {"first_name": "Ursula", "last_name": "Le Guin"},
      "summary": "A young mage learns the true names of things.",
      "isbn": "9780547773742",
      "genres": ["Fantasy"]
    },
    {
      "title": "Consider Phlebas",
      "author": {"first_name": "Iain", "last_name": "Banks"},
      "summary": "A shape-shifter fights the Culture.",
      "isbn": "9780316005388",
      "genres": ["science fiction"]
    }
  ],
  "instances": [
    {"id": "8a2b61f4-9f60-4c6e-8a3b-6c0d3f8c2d11", "isbn": "9780547773742", "imprint": "Parnassus, 1968", "status": "a"},
    {"id": "0d6a4a27-6d43-4b8e-b0b5-2f1f0a7e2a90", "isbn": "9780316005388", "imprint": "Orbit, 1987", "language": "English"}
  ]
}`

type countingProgress struct {
	steps int
}

func (p *countingProgress) Step(string, bool) {
	p.steps++
}

func Test_ImportCatalog(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("DecodeDocument", func() {
		g.It("decodes every record kind", func() {
			doc, err := importcatalog.DecodeDocument(strings.NewReader(catalogDocument))

			g.Assert(err == nil).IsTrue()
			g.Assert(len(doc.Genres)).Equal(2)
			g.Assert(len(doc.Authors)).Equal(2)
			g.Assert(doc.Books[1].Genres).Equal([]string{"science fiction"})
			g.Assert(doc.NumRecords()).Equal(8)
		})

		g.It("rejects unknown fields", func() {
			_, err := importcatalog.DecodeDocument(strings.NewReader(`{"shelves": []}`))

			g.Assert(errors.Is(err, importcatalog.ErrDecodingDocumentFailed)).IsTrue()
		})

		g.It("rejects malformed JSON", func() {
			_, err := importcatalog.DecodeDocument(strings.NewReader(`{"genres": [`))

			g.Assert(errors.Is(err, importcatalog.ErrDecodingDocumentFailed)).IsTrue()
		})
	})

	g.Describe("CommandHandler", func() {
		var ctx context.Context
		var doc importcatalog.Document

		g.BeforeEach(func() {
			ctx = context.Background()

			var err error
			doc, err = importcatalog.DecodeDocument(strings.NewReader(catalogDocument))
			g.Assert(err == nil).IsTrue()
		})

		g.It("imports all records into an empty catalog", func() {
			store := NewSQLiteStore(t)
			progress := &countingProgress{}
			handler := importcatalog.NewCommandHandler(store, importcatalog.WithProgress(progress))

			result, err := handler.Handle(ctx, importcatalog.BuildCommand(doc))

			g.Assert(err == nil).IsTrue()
			g.Assert(result.Idempotent).IsFalse()
			g.Assert(progress.steps).Equal(doc.NumRecords())

			books, _ := store.CountBooks(ctx)
			instances, _ := store.CountBookInstances(ctx)
			g.Assert(books).Equal(2)
			g.Assert(instances).Equal(2)

			book, err := store.BookByISBN(ctx, "9780316005388")
			g.Assert(err == nil).IsTrue()

			genres, _ := store.GenresOfBooks(ctx, book.ID)
			g.Assert(catalog.DisplayGenre(genres[book.ID])).Equal("Science Fiction")
		})

		g.It("skips records that already exist when imported twice", func() {
			store := NewSQLiteStore(t)
			report := importcatalog.NewReport()
			handler := importcatalog.NewCommandHandler(store)

			_, err := handler.Handle(ctx, importcatalog.BuildCommand(doc))
			g.Assert(err == nil).IsTrue()

			result, err := importcatalog.NewCommandHandler(store, importcatalog.WithProgress(report)).
				Handle(ctx, importcatalog.BuildCommand(doc))

			g.Assert(err == nil).IsTrue()
			g.Assert(result.Idempotent).IsTrue()
			g.Assert(report.TotalCreated()).Equal(0)
			g.Assert(report.Skipped[importcatalog.KindInstance]).Equal(2)

			authors, _ := store.CountAuthors(ctx)
			g.Assert(authors).Equal(2)
		})

		g.It("reuses genres and authors already in the catalog", func() {
			store := NewSQLiteStore(t)
			GivenGenre(t, store, "Fantasy")
			report := importcatalog.NewReport()

			_, err := importcatalog.NewCommandHandler(store, importcatalog.WithProgress(report)).
				Handle(ctx, importcatalog.BuildCommand(doc))

			g.Assert(err == nil).IsTrue()
			g.Assert(report.Created[importcatalog.KindGenre]).Equal(1)
			g.Assert(report.Skipped[importcatalog.KindGenre]).Equal(1)
		})

		g.It("fails on a book with an unknown author", func() {
			store := NewSQLiteStore(t)
			doc.Authors = nil

			_, err := importcatalog.NewCommandHandler(store).Handle(ctx, importcatalog.BuildCommand(doc))

			g.Assert(errors.Is(err, importcatalog.ErrUnresolvedReference)).IsTrue()
			g.Assert(strings.Contains(err.Error(), "book #1")).IsTrue()
		})

		g.It("imports a book without an author", func() {
			store := NewSQLiteStore(t)
			doc.Books[1].Author = importcatalog.AuthorRef{}

			_, err := importcatalog.NewCommandHandler(store).Handle(ctx, importcatalog.BuildCommand(doc))

			g.Assert(err == nil).IsTrue()

			book, err := store.BookByISBN(ctx, "9780316005388")
			g.Assert(err == nil).IsTrue()
			g.Assert(book.AuthorID.Valid).IsFalse()
		})

		g.It("fails on a book whose author has only a last name that is unknown", func() {
			store := NewSQLiteStore(t)
			doc.Books[0].Author = importcatalog.AuthorRef{LastName: "Tolkien"}

			_, err := importcatalog.NewCommandHandler(store).Handle(ctx, importcatalog.BuildCommand(doc))

			g.Assert(errors.Is(err, importcatalog.ErrUnresolvedReference)).IsTrue()
			g.Assert(strings.Contains(err.Error(), "book #1")).IsTrue()
		})

		g.It("fails on an instance with an unknown loan status", func() {
			store := NewSQLiteStore(t)
			doc.Instances[0].Status = "x"

			_, err := importcatalog.NewCommandHandler(store).Handle(ctx, importcatalog.BuildCommand(doc))

			g.Assert(err != nil).IsTrue()
			g.Assert(strings.Contains(err.Error(), "instance #1")).IsTrue()
		})

		g.It("reports invalid author dates", func() {
			store := NewSQLiteStore(t)
			doc.Authors[1].DateOfBirth = "tomorrow"

			_, err := importcatalog.NewCommandHandler(store).Handle(ctx, importcatalog.BuildCommand(doc))

			g.Assert(err != nil).IsTrue()
			g.Assert(strings.Contains(err.Error(), "author #2")).IsTrue()
		})
	})
}
