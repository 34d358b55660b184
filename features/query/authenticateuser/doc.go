// Package authenticateuser verifies a username and password for the login form.
//
// An unknown username and a wrong password both yield catalog.ErrInvalidCredentials,
// so the login page cannot be used to find out which accounts exist.
package authenticateuser
