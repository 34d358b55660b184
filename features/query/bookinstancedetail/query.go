package bookinstancedetail

import (
	"github.com/google/uuid"
)

const (
	queryType = "BookInstanceDetail"
)

// Query represents the input for one copy.
type Query struct {
	InstanceID uuid.UUID
}

// BuildQuery creates a new Query.
func BuildQuery(instanceID uuid.UUID) Query {
	return Query{InstanceID: instanceID}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
