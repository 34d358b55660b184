package renewbookinstance

import (
	"time"

	"github.com/AntonStoeckl/locallibrary-go/catalog"
)

const (
	// FieldRenewalDate is the form field carrying the proposed due date.
	FieldRenewalDate = "renewal_date"

	// HelpText is shown below the renewal date input.
	HelpText = "Enter a date between now and 4 weeks from now (default 3)."

	msgRenewalInPast      = "Invalid date - renewal in past"
	msgRenewalTooFarAhead = "Invalid date - renewal more than 4 weeks ahead"

	proposedRenewalWeeks = 3
	maxRenewalWeeks      = 4
)

// ProposedRenewalDate returns the date the renewal form is pre-filled with: three weeks from today.
func ProposedRenewalDate(today time.Time) time.Time {
	return catalog.DateOf(today).AddDate(0, 0, 7*proposedRenewalWeeks)
}

// LatestRenewalDate returns the last accepted renewal date: four weeks from today.
func LatestRenewalDate(today time.Time) time.Time {
	return catalog.DateOf(today).AddDate(0, 0, 7*maxRenewalWeeks)
}

// ParseRenewalDate parses and validates the raw form value.
// Any failure is reported as catalog.ValidationErrors keyed by FieldRenewalDate.
func ParseRenewalDate(raw string, today time.Time) (time.Time, error) {
	d, err := catalog.ParseOptionalDate(raw)
	if err != nil {
		return time.Time{}, catalog.ValidationErrors{FieldRenewalDate: catalog.MsgInvalidDate}
	}

	if d == nil {
		return time.Time{}, catalog.ValidationErrors{FieldRenewalDate: catalog.MsgRequired}
	}

	if err = ValidateRenewalDate(*d, today); err != nil {
		return time.Time{}, err
	}

	return *d, nil
}

// ValidateRenewalDate accepts dates from today up to and including four weeks from today.
func ValidateRenewalDate(renewalDate time.Time, today time.Time) error {
	d := catalog.DateOf(renewalDate)

	if d.Before(catalog.DateOf(today)) {
		return catalog.ValidationErrors{FieldRenewalDate: msgRenewalInPast}
	}

	if d.After(LatestRenewalDate(today)) {
		return catalog.ValidationErrors{FieldRenewalDate: msgRenewalTooFarAhead}
	}

	return nil
}
