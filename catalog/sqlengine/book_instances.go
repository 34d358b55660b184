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
	operationCreateBookInstance    = "create_book_instance"
	operationBookInstanceByID      = "book_instance_by_id"
	operationInstancesOfBook       = "instances_of_book"
	operationLoanedByBorrower      = "loaned_instances_by_borrower"
	operationLoanedInstances       = "loaned_instances"
	operationCountLoanedByBorrower = "count_loaned_instances_by_borrower"
	operationCountLoanedInstances  = "count_loaned_instances"
	operationUpdateDueBack         = "update_due_back"
	operationCountBookInstances    = "count_book_instances"
	operationCountInstancesByState = "count_book_instances_by_status"
)

func scanBookInstance(rows adapters.DBRows) (catalog.BookInstance, error) {
	var rawID, status string
	var rawBookID, rawBorrowerID sql.NullString
	var dueBack sql.NullTime
	var instance catalog.BookInstance

	if err := rows.Scan(&rawID, &rawBookID, &instance.Imprint, &instance.Language, &dueBack, &rawBorrowerID, &status); err != nil {
		return catalog.BookInstance{}, err
	}

	id, err := parseID(rawID)
	if err != nil {
		return catalog.BookInstance{}, err
	}

	bookID, err := parseNullID(rawBookID)
	if err != nil {
		return catalog.BookInstance{}, err
	}

	borrowerID, err := parseNullID(rawBorrowerID)
	if err != nil {
		return catalog.BookInstance{}, err
	}

	instance.ID = id
	instance.BookID = bookID
	instance.BorrowerID = borrowerID
	instance.DueBack = nullDate(dueBack)
	instance.Status = catalog.LoanStatus(status)

	return instance, nil
}

func (s *Store) selectBookInstances() *goqu.SelectDataset {
	return s.dialect.
		From(s.table(tableBookInstance)).
		Select(
			s.col(tableBookInstance, colID),
			s.col(tableBookInstance, colBookID),
			s.col(tableBookInstance, colImprint),
			s.col(tableBookInstance, colLanguage),
			s.col(tableBookInstance, colDueBack),
			s.col(tableBookInstance, colBorrowerID),
			s.col(tableBookInstance, colStatus),
		).
		Order(s.col(tableBookInstance, colDueBack).Asc().NullsLast(), s.col(tableBookInstance, colID).Asc())
}

func (s *Store) queryBookInstances(ctx context.Context, ds *goqu.SelectDataset) ([]catalog.BookInstance, error) {
	instances := make([]catalog.BookInstance, 0)

	err := s.query(ctx, s.db, ds, func(rows adapters.DBRows) error {
		instance, scanErr := scanBookInstance(rows)
		if scanErr != nil {
			return scanErr
		}

		instances = append(instances, instance)

		return nil
	})

	return instances, err
}

func bookInstanceRecord(instance catalog.BookInstance) goqu.Record {
	return goqu.Record{
		colBookID:     nullIDValue(instance.BookID),
		colImprint:    instance.Imprint,
		colLanguage:   instance.Language,
		colDueBack:    dateValue(instance.DueBack),
		colBorrowerID: nullIDValue(instance.BorrowerID),
		colStatus:     string(instance.Status),
	}
}

// CreateBookInstance inserts a new copy.
func (s *Store) CreateBookInstance(ctx context.Context, instance catalog.BookInstance) error {
	return s.observe(ctx, operationCreateBookInstance, func(ctx context.Context) error {
		record := bookInstanceRecord(instance)
		record[colID] = idValue(instance.ID)

		_, err := s.exec(ctx, s.db, s.dialect.Insert(s.table(tableBookInstance)).Rows(record))

		return err
	})
}

// BookInstanceByID loads one copy.
func (s *Store) BookInstanceByID(ctx context.Context, id uuid.UUID) (catalog.BookInstance, error) {
	var instance catalog.BookInstance

	err := s.observe(ctx, operationBookInstanceByID, func(ctx context.Context) error {
		ds := s.selectBookInstances().Where(s.col(tableBookInstance, colID).Eq(idValue(id)))

		return s.queryOne(ctx, s.db, ds, func(rows adapters.DBRows) error {
			var scanErr error
			instance, scanErr = scanBookInstance(rows)

			return scanErr
		})
	})

	return instance, err
}

// InstancesOfBook returns all copies of a book ordered by due date.
func (s *Store) InstancesOfBook(ctx context.Context, bookID uuid.UUID) ([]catalog.BookInstance, error) {
	var instances []catalog.BookInstance

	err := s.observe(ctx, operationInstancesOfBook, func(ctx context.Context) error {
		var err error
		instances, err = s.queryBookInstances(ctx, s.selectBookInstances().Where(s.col(tableBookInstance, colBookID).Eq(idValue(bookID))))

		return err
	})

	return instances, err
}

// LoanedInstancesByBorrower returns the copies on loan to one user ordered by due date.
func (s *Store) LoanedInstancesByBorrower(ctx context.Context, borrowerID uuid.UUID, page catalog.PageRequest) ([]catalog.BookInstance, error) {
	var instances []catalog.BookInstance

	err := s.observe(ctx, operationLoanedByBorrower, func(ctx context.Context) error {
		ds := s.selectBookInstances().
			Where(
				s.col(tableBookInstance, colBorrowerID).Eq(idValue(borrowerID)),
				s.col(tableBookInstance, colStatus).Eq(string(catalog.StatusOnLoan)),
			).
			Limit(page.Limit()).
			Offset(page.Offset())

		var err error
		instances, err = s.queryBookInstances(ctx, ds)

		return err
	})

	return instances, err
}

// CountLoanedInstancesByBorrower counts the copies on loan to one user.
func (s *Store) CountLoanedInstancesByBorrower(ctx context.Context, borrowerID uuid.UUID) (int, error) {
	var n int

	err := s.observe(ctx, operationCountLoanedByBorrower, func(ctx context.Context) error {
		ds := s.dialect.
			From(s.table(tableBookInstance)).
			Select(goqu.COUNT(goqu.Star())).
			Where(
				goqu.C(colBorrowerID).Eq(idValue(borrowerID)),
				goqu.C(colStatus).Eq(string(catalog.StatusOnLoan)),
			)

		var countErr error
		n, countErr = s.count(ctx, s.db, ds)

		return countErr
	})

	return n, err
}

// LoanedInstances returns one page of all copies on loan ordered by due date.
func (s *Store) LoanedInstances(ctx context.Context, page catalog.PageRequest) ([]catalog.BookInstance, error) {
	var instances []catalog.BookInstance

	err := s.observe(ctx, operationLoanedInstances, func(ctx context.Context) error {
		ds := s.selectBookInstances().
			Where(s.col(tableBookInstance, colStatus).Eq(string(catalog.StatusOnLoan))).
			Limit(page.Limit()).
			Offset(page.Offset())

		var err error
		instances, err = s.queryBookInstances(ctx, ds)

		return err
	})

	return instances, err
}

// CountLoanedInstances counts all copies on loan.
func (s *Store) CountLoanedInstances(ctx context.Context) (int, error) {
	var n int

	err := s.observe(ctx, operationCountLoanedInstances, func(ctx context.Context) error {
		ds := s.dialect.
			From(s.table(tableBookInstance)).
			Select(goqu.COUNT(goqu.Star())).
			Where(goqu.C(colStatus).Eq(string(catalog.StatusOnLoan)))

		var countErr error
		n, countErr = s.count(ctx, s.db, ds)

		return countErr
	})

	return n, err
}

// UpdateDueBack sets the due date of one copy.
func (s *Store) UpdateDueBack(ctx context.Context, id uuid.UUID, dueBack time.Time) error {
	return s.observe(ctx, operationUpdateDueBack, func(ctx context.Context) error {
		update := s.dialect.
			Update(s.table(tableBookInstance)).
			Set(goqu.Record{colDueBack: dateValue(&dueBack)}).
			Where(goqu.C(colID).Eq(idValue(id)))

		return s.execExpectingRow(ctx, s.db, update)
	})
}

// CountBookInstances returns the number of copies.
func (s *Store) CountBookInstances(ctx context.Context) (int, error) {
	var n int

	err := s.observe(ctx, operationCountBookInstances, func(ctx context.Context) error {
		var countErr error
		n, countErr = s.count(ctx, s.db, s.dialect.From(s.table(tableBookInstance)).Select(goqu.COUNT(goqu.Star())))

		return countErr
	})

	return n, err
}

// CountBookInstancesByStatus returns the number of copies with the given status.
func (s *Store) CountBookInstancesByStatus(ctx context.Context, status catalog.LoanStatus) (int, error) {
	var n int

	err := s.observe(ctx, operationCountInstancesByState, func(ctx context.Context) error {
		ds := s.dialect.
			From(s.table(tableBookInstance)).
			Select(goqu.COUNT(goqu.Star())).
			Where(goqu.C(colStatus).Eq(string(status)))

		var countErr error
		n, countErr = s.count(ctx, s.db, ds)

		return countErr
	})

	return n, err
}
