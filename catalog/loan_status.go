package catalog

import (
	"fmt"
	"strings"
)

// LoanStatus is the availability of a BookInstance, persisted as a one-letter code.
type LoanStatus string

const (
	StatusMaintenance LoanStatus = "m"
	StatusOnLoan      LoanStatus = "o"
	StatusAvailable   LoanStatus = "a"
	StatusReserved    LoanStatus = "r"
)

// DefaultLoanStatus is the status of a newly added copy.
const DefaultLoanStatus = StatusMaintenance

// LoanStatuses returns all statuses in display order.
func LoanStatuses() []LoanStatus {
	return []LoanStatus{StatusMaintenance, StatusOnLoan, StatusAvailable, StatusReserved}
}

// Label returns the human-readable name of the status.
func (s LoanStatus) Label() string {
	switch s {
	case StatusMaintenance:
		return "Maintenance"
	case StatusOnLoan:
		return "On loan"
	case StatusAvailable:
		return "Available"
	case StatusReserved:
		return "Reserved"
	default:
		return string(s)
	}
}

// TextStyle returns the CSS class used to colour the status on detail pages.
func (s LoanStatus) TextStyle() string {
	switch s {
	case StatusMaintenance:
		return "text-danger"
	case StatusAvailable:
		return "text-success"
	default:
		return "text-warning"
	}
}

// ParseLoanStatus accepts a status code ("a") or label ("available", "on loan", "onloan").
func ParseLoanStatus(s string) (LoanStatus, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))

	for _, status := range LoanStatuses() {
		label := strings.ToLower(strings.ReplaceAll(status.Label(), " ", ""))
		if normalized == string(status) || normalized == label {
			return status, nil
		}
	}

	return "", fmt.Errorf("unknown loan status %q", s)
}
