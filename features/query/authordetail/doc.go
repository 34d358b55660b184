// Package authordetail provides an author together with the books they wrote.
package authordetail
