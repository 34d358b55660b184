package bookformchoices

const (
	queryType = "BookFormChoices"
)

// Query represents the input for the book form choices. It has no parameters.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
