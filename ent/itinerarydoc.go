// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wayplan/wayplan/ent/itinerarydoc"
)

// ItineraryDoc is the model entity for the ItineraryDoc schema.
type ItineraryDoc struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Full itinerary document
	Document json.RawMessage `json:"document,omitempty"`
	// Mirrors document.version for CAS updates
	Version int `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status itinerarydoc.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ItineraryDocQuery when eager-loading is set.
	Edges        ItineraryDocEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ItineraryDocEdges holds the relations/edges for other nodes in the graph.
type ItineraryDocEdges struct {
	// Revisions holds the value of the revisions edge.
	Revisions []*Revision `json:"revisions,omitempty"`
	// ChatMessages holds the value of the chat_messages edge.
	ChatMessages []*ChatMessage `json:"chat_messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RevisionsOrErr returns the Revisions value or an error if the edge
// was not loaded in eager-loading.
func (e ItineraryDocEdges) RevisionsOrErr() ([]*Revision, error) {
	if e.loadedTypes[0] {
		return e.Revisions, nil
	}
	return nil, &NotLoadedError{edge: "revisions"}
}

// ChatMessagesOrErr returns the ChatMessages value or an error if the edge
// was not loaded in eager-loading.
func (e ItineraryDocEdges) ChatMessagesOrErr() ([]*ChatMessage, error) {
	if e.loadedTypes[1] {
		return e.ChatMessages, nil
	}
	return nil, &NotLoadedError{edge: "chat_messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItineraryDoc) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itinerarydoc.FieldDocument:
			values[i] = new([]byte)
		case itinerarydoc.FieldVersion:
			values[i] = new(sql.NullInt64)
		case itinerarydoc.FieldID, itinerarydoc.FieldStatus:
			values[i] = new(sql.NullString)
		case itinerarydoc.FieldCreatedAt, itinerarydoc.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItineraryDoc fields.
func (_m *ItineraryDoc) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itinerarydoc.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case itinerarydoc.FieldDocument:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Document); err != nil {
					return fmt.Errorf("unmarshal field document: %w", err)
				}
			}
		case itinerarydoc.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case itinerarydoc.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = itinerarydoc.Status(value.String)
			}
		case itinerarydoc.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case itinerarydoc.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItineraryDoc.
// This includes values selected through modifiers, order, etc.
func (_m *ItineraryDoc) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRevisions queries the "revisions" edge of the ItineraryDoc entity.
func (_m *ItineraryDoc) QueryRevisions() *RevisionQuery {
	return NewItineraryDocClient(_m.config).QueryRevisions(_m)
}

// QueryChatMessages queries the "chat_messages" edge of the ItineraryDoc entity.
func (_m *ItineraryDoc) QueryChatMessages() *ChatMessageQuery {
	return NewItineraryDocClient(_m.config).QueryChatMessages(_m)
}

// Update returns a builder for updating this ItineraryDoc.
// Note that you need to call ItineraryDoc.Unwrap() before calling this method if this ItineraryDoc
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ItineraryDoc) Update() *ItineraryDocUpdateOne {
	return NewItineraryDocClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ItineraryDoc entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ItineraryDoc) Unwrap() *ItineraryDoc {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItineraryDoc is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ItineraryDoc) String() string {
	var builder strings.Builder
	builder.WriteString("ItineraryDoc(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document=")
	builder.WriteString(fmt.Sprintf("%v", _m.Document))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ItineraryDocs is a parsable slice of ItineraryDoc.
type ItineraryDocs []*ItineraryDoc
