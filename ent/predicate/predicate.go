// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// ItineraryDoc is the predicate function for itinerarydoc builders.
type ItineraryDoc func(*sql.Selector)

// Revision is the predicate function for revision builders.
type Revision func(*sql.Selector)
