// Package renewbookinstance implements the Renew Book Instance use case.
//
// Librarians holding the can_mark_returned permission move the due date of a borrowed copy.
// The proposed date must lie between today and four weeks from today, both inclusive.
// A renewal to the current due date is an idempotent no-op.
//
// The form helpers (ProposedRenewalDate, ParseRenewalDate) are shared by the web layer,
// the Decide function applies the same rule again so the handler never trusts its caller.
package renewbookinstance
