package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItineraryDoc holds the schema definition for the ItineraryDoc entity.
// The itinerary document itself is stored as one JSONB blob; version is
// duplicated into a column so compare-and-swap updates can happen in SQL
// without parsing the document.
type ItineraryDoc struct {
	ent.Schema
}

// Fields of the ItineraryDoc.
func (ItineraryDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("itinerary_id").
			Unique().
			Immutable(),
		field.JSON("document", json.RawMessage{}).
			Comment("Full itinerary document"),
		field.Int("version").
			Default(1).
			Comment("Mirrors document.version for CAS updates"),
		field.Enum("status").
			Values("draft", "generating", "ready", "failed").
			Default("draft"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ItineraryDoc.
func (ItineraryDoc) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("revisions", Revision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat_messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ItineraryDoc.
func (ItineraryDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "updated_at"),
	}
}
