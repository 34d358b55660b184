package web

import (
	"errors"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/createauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/createbook"
	"github.com/AntonStoeckl/locallibrary-go/features/command/deleteauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/deletebook"
	"github.com/AntonStoeckl/locallibrary-go/features/command/renewbookinstance"
	"github.com/AntonStoeckl/locallibrary-go/features/command/updateauthor"
	"github.com/AntonStoeckl/locallibrary-go/features/command/updatebook"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authenticateuser"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authordetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/authorlist"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookdetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookformchoices"
	"github.com/AntonStoeckl/locallibrary-go/features/query/bookinstancedetail"
	"github.com/AntonStoeckl/locallibrary-go/features/query/booklist"
	"github.com/AntonStoeckl/locallibrary-go/features/query/borrowedbooks"
	"github.com/AntonStoeckl/locallibrary-go/features/query/catalogsummary"
	"github.com/AntonStoeckl/locallibrary-go/features/query/loanedbooksbyuser"
	"github.com/AntonStoeckl/locallibrary-go/shell"
	"github.com/AntonStoeckl/locallibrary-go/shell/observable"
)

// HandlerBundle contains all command and query handlers the web pages use.
type HandlerBundle struct {
	// Command handlers.
	renewBookInstance shell.CoreCommandHandler[renewbookinstance.Command]
	createAuthor      shell.CoreCommandHandler[createauthor.Command]
	updateAuthor      shell.CoreCommandHandler[updateauthor.Command]
	deleteAuthor      shell.CoreCommandHandler[deleteauthor.Command]
	createBook        shell.CoreCommandHandler[createbook.Command]
	updateBook        shell.CoreCommandHandler[updatebook.Command]
	deleteBook        shell.CoreCommandHandler[deletebook.Command]

	// Query handlers.
	catalogSummary     shell.CoreQueryHandler[catalogsummary.Query, catalogsummary.Summary]
	bookList           shell.CoreQueryHandler[booklist.Query, booklist.Books]
	bookDetail         shell.CoreQueryHandler[bookdetail.Query, bookdetail.BookDetail]
	authorList         shell.CoreQueryHandler[authorlist.Query, authorlist.Authors]
	authorDetail       shell.CoreQueryHandler[authordetail.Query, authordetail.AuthorDetail]
	loanedBooksByUser  shell.CoreQueryHandler[loanedbooksbyuser.Query, loanedbooksbyuser.Loans]
	borrowedBooks      shell.CoreQueryHandler[borrowedbooks.Query, borrowedbooks.Loans]
	bookInstanceDetail shell.CoreQueryHandler[bookinstancedetail.Query, bookinstancedetail.InstanceDetail]
	bookFormChoices    shell.CoreQueryHandler[bookformchoices.Query, bookformchoices.Choices]
	authenticateUser   shell.CoreQueryHandler[authenticateuser.Query, catalog.User]
}

// NewHandlerBundle creates all handlers on top of the store and wraps them with the collectors.
func NewHandlerBundle(store Store, collectors observable.Collectors) (*HandlerBundle, error) {
	b := bundleBuilder{collectors: collectors}

	bundle := &HandlerBundle{
		renewBookInstance: wrapCommand[renewbookinstance.Command](&b, renewbookinstance.NewCommandHandler(store)),
		createAuthor:      wrapCommand[createauthor.Command](&b, createauthor.NewCommandHandler(store)),
		updateAuthor:      wrapCommand[updateauthor.Command](&b, updateauthor.NewCommandHandler(store)),
		deleteAuthor:      wrapCommand[deleteauthor.Command](&b, deleteauthor.NewCommandHandler(store)),
		createBook:        wrapCommand[createbook.Command](&b, createbook.NewCommandHandler(store)),
		updateBook:        wrapCommand[updatebook.Command](&b, updatebook.NewCommandHandler(store)),
		deleteBook:        wrapCommand[deletebook.Command](&b, deletebook.NewCommandHandler(store)),

		catalogSummary:     wrapQuery[catalogsummary.Query, catalogsummary.Summary](&b, catalogsummary.NewQueryHandler(store)),
		bookList:           wrapQuery[booklist.Query, booklist.Books](&b, booklist.NewQueryHandler(store)),
		bookDetail:         wrapQuery[bookdetail.Query, bookdetail.BookDetail](&b, bookdetail.NewQueryHandler(store)),
		authorList:         wrapQuery[authorlist.Query, authorlist.Authors](&b, authorlist.NewQueryHandler(store)),
		authorDetail:       wrapQuery[authordetail.Query, authordetail.AuthorDetail](&b, authordetail.NewQueryHandler(store)),
		loanedBooksByUser:  wrapQuery[loanedbooksbyuser.Query, loanedbooksbyuser.Loans](&b, loanedbooksbyuser.NewQueryHandler(store)),
		borrowedBooks:      wrapQuery[borrowedbooks.Query, borrowedbooks.Loans](&b, borrowedbooks.NewQueryHandler(store)),
		bookInstanceDetail: wrapQuery[bookinstancedetail.Query, bookinstancedetail.InstanceDetail](&b, bookinstancedetail.NewQueryHandler(store)),
		bookFormChoices:    wrapQuery[bookformchoices.Query, bookformchoices.Choices](&b, bookformchoices.NewQueryHandler(store)),
		authenticateUser:   wrapQuery[authenticateuser.Query, catalog.User](&b, authenticateuser.NewQueryHandler(store)),
	}

	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}

	return bundle, nil
}

type bundleBuilder struct {
	collectors observable.Collectors
	errs       []error
}

func wrapCommand[C shell.Command](b *bundleBuilder, core shell.CoreCommandHandler[C]) shell.CoreCommandHandler[C] {
	wrapper, err := observable.WrapCommand(core, b.collectors)
	if err != nil {
		b.errs = append(b.errs, err)
		return core
	}

	return wrapper
}

func wrapQuery[Q shell.Query, R any](b *bundleBuilder, core shell.CoreQueryHandler[Q, R]) shell.CoreQueryHandler[Q, R] {
	wrapper, err := observable.WrapQuery(core, b.collectors)
	if err != nil {
		b.errs = append(b.errs, err)
		return core
	}

	return wrapper
}
