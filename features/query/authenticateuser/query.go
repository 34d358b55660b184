package authenticateuser

import (
	"strings"
)

const (
	queryType = "AuthenticateUser"
)

// Query represents the credentials entered on the login form.
type Query struct {
	Username string
	Password string
}

// BuildQuery creates a new Query. The username is trimmed, the password is taken as is.
func BuildQuery(username, password string) Query {
	return Query{
		Username: strings.TrimSpace(username),
		Password: password,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// String hides the password from logs.
func (q Query) String() string {
	return "AuthenticateUser{" + q.Username + "}"
}
