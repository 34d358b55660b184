package catalogsummary

const (
	queryType = "CatalogSummary"
)

// TitleFragment is the case-insensitive title fragment counted by the summary.
const TitleFragment = "dead"

// Query represents the input for the catalog summary. It has no parameters.
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
