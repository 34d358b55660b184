package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MsgRequired is reported for blank required fields.
	MsgRequired = "This field is required."

	// MsgInvalidDate is reported for dates that are not in DateLayout.
	MsgInvalidDate = "Enter a valid date."

	// MsgInvalidChoice is reported for references to unknown records.
	MsgInvalidChoice = "Select a valid choice. That choice is not one of the available choices."

	msgTooLong = "Ensure this value has at most %d characters (it has %d)."
)

// ValidationErrors maps form field names to a human-readable message.
// It is rendered inline next to the offending field.
type ValidationErrors map[string]string

// Error implements the error interface with a stable, sorted rendering.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field unless the field already has one.
func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

// ErrOrNil returns v as an error if it holds at least one message.
func (v ValidationErrors) ErrOrNil() error {
	if len(v) == 0 {
		return nil
	}

	return v
}

// AsValidationErrors unwraps err into ValidationErrors.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}

	return nil, false
}

func checkRequired(v ValidationErrors, field, value string, maxLength int) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, MsgRequired)
		return
	}

	checkMaxLength(v, field, value, maxLength)
}

func checkMaxLength(v ValidationErrors, field, value string, maxLength int) {
	if n := utf8.RuneCountInString(value); n > maxLength {
		v.Add(field, fmt.Sprintf(msgTooLong, maxLength, n))
	}
}
