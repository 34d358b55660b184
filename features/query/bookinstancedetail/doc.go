// Package bookinstancedetail provides one copy with the title of its book and the name of its borrower.
// The renewal page uses it to show what is being renewed.
package bookinstancedetail
