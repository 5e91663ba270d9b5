package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Revision holds the schema definition for the Revision entity: one
// immutable document snapshot per committed version, used for undo and
// for audit.
type Revision struct {
	ent.Schema
}

// Fields of the Revision.
func (Revision) Fields() []ent.Field {
	return []ent.Field{
		field.String("itinerary_id").
			Immutable(),
		field.Int("version").
			Immutable().
			Comment("Document version this snapshot represents"),
		field.JSON("document", json.RawMessage{}).
			Immutable(),
		field.String("summary").
			Optional().
			Comment("Human-readable change description"),
		field.String("updated_by").
			Optional().
			Comment("user or agent name that produced this version"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Revision.
func (Revision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("itinerary", ItineraryDoc.Type).
			Ref("revisions").
			Field("itinerary_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Revision.
func (Revision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("itinerary_id", "version").
			Unique(),
	}
}
