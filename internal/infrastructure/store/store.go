// Package store is the data access layer in front of the resource tables.
// It hides whether rows live behind the hosted REST API or a direct SQL
// connection.
package store

import (
	"context"
	"fmt"
)

// Eq is an exact-match predicate on one column.
type Eq struct {
	Column string
	Value  string
}

type Order struct {
	Column     string
	Descending bool
}

// Query narrows a Select, Update or Delete.
type Query struct {
	Filters []Eq
	Order   []Order
}

// Where returns a query filtered on a single column.
func Where(column, value string) Query {
	return Query{Filters: []Eq{{Column: column, Value: value}}}
}

// Store issues one round trip per call. dest is always a pointer to a slice
// and receives the rows read or affected.
type Store interface {
	Select(ctx context.Context, table string, q Query, dest interface{}) error
	Insert(ctx context.Context, table string, row interface{}, dest interface{}) error
	Update(ctx context.Context, table string, q Query, values map[string]interface{}, dest interface{}) error
	Delete(ctx context.Context, table string, q Query, dest interface{}) error
}

// Error is a failure reported by the store itself, such as a constraint
// violation or an unknown column.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("store returned status %d", e.Status)
	}
	return e.Message
}
