package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gedex/inflector"
	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
	"github.com/AntonStoeckl/locallibrary-go/catalog/sqlengine"
	"github.com/AntonStoeckl/locallibrary-go/features/command/addbookinstance"
	"github.com/AntonStoeckl/locallibrary-go/features/command/addgenre"
	"github.com/AntonStoeckl/locallibrary-go/features/command/grantpermission"
	"github.com/AntonStoeckl/locallibrary-go/features/command/importcatalog"
	"github.com/AntonStoeckl/locallibrary-go/features/command/registeruser"
)

// ErrUsage is returned for unknown subcommands and missing or malformed flags.
var ErrUsage = errors.New("usage error")

type subcommand func(ctx context.Context, args []string) error

// admin runs the subcommands against one store and prints their outcome to out.
type admin struct {
	store *sqlengine.Store
	out   io.Writer
	now   func() time.Time
}

func newAdmin(store *sqlengine.Store, out io.Writer) admin {
	return admin{store: store, out: out, now: time.Now}
}

func (a admin) subcommands() map[string]subcommand {
	return map[string]subcommand{
		"migrate":       a.migrate,
		"createuser":    a.createUser,
		"grant":         a.grant,
		"addgenre":      a.addGenre,
		"addinstance":   a.addInstance,
		"import":        a.importCatalog,
		"clearsessions": a.clearSessions,
	}
}

// execute migrates the schema and runs the subcommand named by args[0].
func (a admin) execute(ctx context.Context, args []string) error {
	commands := a.subcommands()

	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of %s", ErrUsage, strings.Join(commandNames(commands), ", "))
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown subcommand %q", ErrUsage, args[0])
	}

	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return cmd(ctx, args[1:])
}

func commandNames(commands map[string]subcommand) []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (a admin) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string, required map[string]*string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Join(ErrUsage, err)
	}

	for name, value := range required {
		if strings.TrimSpace(*value) == "" {
			return fmt.Errorf("%w: %s needs -%s", ErrUsage, fs.Name(), name)
		}
	}

	return nil
}

func (a admin) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format+"\n", args...)
}

func (a admin) migrate(_ context.Context, _ []string) error {
	a.printf("schema of the %s store is up to date", a.store.Dialect())

	return nil
}

// permissionList collects repeated -perm flags.
type permissionList []catalog.Permission

func (p *permissionList) String() string {
	names := make([]string, 0, len(*p))
	for _, perm := range *p {
		names = append(names, string(perm))
	}

	return strings.Join(names, ",")
}

func (p *permissionList) Set(value string) error {
	perm, err := catalog.ParsePermission(value)
	if err != nil {
		return err
	}

	*p = append(*p, perm)

	return nil
}

func (a admin) createUser(ctx context.Context, args []string) error {
	fs := a.flagSet("createuser")
	username := fs.String("username", "", "login name")
	password := fs.String("password", "", "plain text password")
	firstName := fs.String("first", "", "first name")
	lastName := fs.String("last", "", "last name")
	superuser := fs.Bool("superuser", false, "grant every permission")

	var perms permissionList
	fs.Var(&perms, "perm", "permission to grant, repeatable")

	if err := parseFlags(fs, args, map[string]*string{"username": username, "password": password}); err != nil {
		return err
	}

	command := registeruser.BuildCommand(uuid.New(), *username, *password, *firstName, *lastName, *superuser, perms...)
	if _, err := registeruser.NewCommandHandler(a.store).Handle(ctx, command); err != nil {
		return err
	}

	a.printf("created user %s", *username)

	return nil
}

func (a admin) grant(ctx context.Context, args []string) error {
	fs := a.flagSet("grant")
	username := fs.String("username", "", "login name")
	permName := fs.String("perm", "", "permission codename")

	if err := parseFlags(fs, args, map[string]*string{"username": username, "perm": permName}); err != nil {
		return err
	}

	perm, err := catalog.ParsePermission(*permName)
	if err != nil {
		return errors.Join(ErrUsage, err)
	}

	result, err := grantpermission.NewCommandHandler(a.store).Handle(ctx, grantpermission.BuildCommand(*username, perm))
	if err != nil {
		return err
	}

	if result.Idempotent {
		a.printf("%s already holds %s", *username, perm)
		return nil
	}

	a.printf("granted %s to %s", perm, *username)

	return nil
}

func (a admin) addGenre(ctx context.Context, args []string) error {
	fs := a.flagSet("addgenre")
	name := fs.String("name", "", "genre name")

	if err := parseFlags(fs, args, map[string]*string{"name": name}); err != nil {
		return err
	}

	result, err := addgenre.NewCommandHandler(a.store).Handle(ctx, addgenre.BuildCommand(uuid.New(), *name))
	if err != nil {
		return err
	}

	if result.Idempotent {
		a.printf("genre %s already exists", strings.TrimSpace(*name))
		return nil
	}

	a.printf("added genre %s", strings.TrimSpace(*name))

	return nil
}

func (a admin) addInstance(ctx context.Context, args []string) error {
	fs := a.flagSet("addinstance")
	bookRef := fs.String("book", "", "book ID or ISBN")
	imprint := fs.String("imprint", "", "imprint of the copy")
	language := fs.String("language", "", "language, defaults to "+catalog.DefaultLanguage)
	statusCode := fs.String("status", "", "loan status code: m, o, a or r")
	due := fs.String("due", "", "due back date, YYYY-MM-DD")
	borrowerName := fs.String("borrower", "", "username of the borrower")

	if err := parseFlags(fs, args, map[string]*string{"book": bookRef, "imprint": imprint}); err != nil {
		return err
	}

	var status catalog.LoanStatus
	if *statusCode != "" {
		parsed, err := catalog.ParseLoanStatus(*statusCode)
		if err != nil {
			return errors.Join(ErrUsage, err)
		}

		status = parsed
	}

	dueBack, err := catalog.ParseOptionalDate(*due)
	if err != nil {
		return errors.Join(ErrUsage, err)
	}

	book, err := a.resolveBook(ctx, *bookRef)
	if err != nil {
		return err
	}

	var borrowerID uuid.NullUUID
	if *borrowerName != "" {
		borrower, userErr := a.store.UserByUsername(ctx, *borrowerName)
		if userErr != nil {
			return fmt.Errorf("borrower %q: %w", *borrowerName, userErr)
		}

		borrowerID = uuid.NullUUID{UUID: borrower.ID, Valid: true}
	}

	instanceID := uuid.New()
	command := addbookinstance.BuildCommand(instanceID, book.ID, *imprint, *language, status, dueBack, borrowerID)

	if _, err = addbookinstance.NewCommandHandler(a.store).Handle(ctx, command); err != nil {
		return err
	}

	a.printf("added copy %s of %s", instanceID, book.Title)

	return nil
}

// resolveBook accepts either a book ID or an ISBN.
func (a admin) resolveBook(ctx context.Context, ref string) (catalog.Book, error) {
	var book catalog.Book
	var err error

	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		book, err = a.store.BookByID(ctx, id)
	} else {
		book, err = a.store.BookByISBN(ctx, strings.TrimSpace(ref))
	}

	if err != nil {
		return catalog.Book{}, fmt.Errorf("book %q: %w", ref, err)
	}

	return book, nil
}

func (a admin) importCatalog(ctx context.Context, args []string) error {
	fs := a.flagSet("import")
	quiet := fs.Bool("quiet", false, "hide the progress bar")

	if err := fs.Parse(args); err != nil {
		return errors.Join(ErrUsage, err)
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("%w: import needs exactly one document path", ErrUsage)
	}

	file, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	doc, err := importcatalog.DecodeDocument(file)
	if err != nil {
		return err
	}

	report := importcatalog.NewReport()
	options := []importcatalog.Option{importcatalog.WithProgress(report)}

	var bar *importBar
	if !*quiet && doc.NumRecords() > 0 {
		bar = newImportBar(a.out, fs.Arg(0), doc.NumRecords())
		options = append(options, importcatalog.WithProgress(bar))
	}

	_, err = importcatalog.NewCommandHandler(a.store, options...).Handle(ctx, importcatalog.BuildCommand(doc))

	if bar != nil {
		bar.Stop()
	}

	a.printReport(report)

	return err
}

func (a admin) printReport(report *importcatalog.Report) {
	for _, kind := range []string{importcatalog.KindGenre, importcatalog.KindAuthor, importcatalog.KindBook, importcatalog.KindInstance} {
		a.printf("%s: %s created, %s skipped",
			inflector.Pluralize(kind),
			humanize.Comma(int64(report.Created[kind])),
			humanize.Comma(int64(report.Skipped[kind])),
		)
	}
}

func (a admin) clearSessions(ctx context.Context, _ []string) error {
	deleted, err := a.store.DeleteExpiredSessions(ctx, a.now())
	if err != nil {
		return err
	}

	a.printf("deleted %s expired %s", humanize.Comma(deleted), pluralize("session", deleted))

	return nil
}

func pluralize(noun string, n int64) string {
	if n == 1 {
		return noun
	}

	return inflector.Pluralize(noun)
}
