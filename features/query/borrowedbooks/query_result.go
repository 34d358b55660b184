package borrowedbooks

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

// LoanInfo represents one copy on loan.
type LoanInfo struct {
	InstanceID   uuid.UUID
	BookID       uuid.NullUUID
	BookTitle    string
	DueBack      *time.Time
	IsOverdue    bool
	BorrowerName string
}

// Loans represents the query result: one page of loans.
type Loans = catalog.Page[LoanInfo]
