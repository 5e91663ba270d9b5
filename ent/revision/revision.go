// Code generated by ent, DO NOT EDIT.

package revision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the revision type in the database.
	Label = "revision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItineraryID holds the string denoting the itinerary_id field in the database.
	FieldItineraryID = "itinerary_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldDocument holds the string denoting the document field in the database.
	FieldDocument = "document"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeItinerary holds the string denoting the itinerary edge name in mutations.
	EdgeItinerary = "itinerary"
	// ItineraryDocFieldID holds the string denoting the ID field of the ItineraryDoc.
	ItineraryDocFieldID = "itinerary_id"
	// Table holds the table name of the revision in the database.
	Table = "revisions"
	// ItineraryTable is the table that holds the itinerary relation/edge.
	ItineraryTable = "revisions"
	// ItineraryInverseTable is the table name for the ItineraryDoc entity.
	// It exists in this package in order to avoid circular dependency with the "itinerarydoc" package.
	ItineraryInverseTable = "itinerary_docs"
	// ItineraryColumn is the table column denoting the itinerary relation/edge.
	ItineraryColumn = "itinerary_id"
)

// Columns holds all SQL columns for revision fields.
var Columns = []string{
	FieldID,
	FieldItineraryID,
	FieldVersion,
	FieldDocument,
	FieldSummary,
	FieldUpdatedBy,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Revision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItineraryID orders the results by the itinerary_id field.
func ByItineraryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItineraryID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByItineraryField orders the results by itinerary field.
func ByItineraryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItineraryStep(), sql.OrderByField(field, opts...))
	}
}
func newItineraryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItineraryInverseTable, ItineraryDocFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ItineraryTable, ItineraryColumn),
	)
}
