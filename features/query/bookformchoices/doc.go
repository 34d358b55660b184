// Package bookformchoices provides the authors and genres offered as choices on the book form.
package bookformchoices
