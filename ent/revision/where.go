// Code generated by ent, DO NOT EDIT.

package revision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/wayplan/wayplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldID, id))
}

// ItineraryID applies equality check predicate on the "itinerary_id" field. It's identical to ItineraryIDEQ.
func ItineraryID(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldItineraryID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldVersion, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldSummary, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldCreatedAt, v))
}

// ItineraryIDEQ applies the EQ predicate on the "itinerary_id" field.
func ItineraryIDEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldItineraryID, v))
}

// ItineraryIDNEQ applies the NEQ predicate on the "itinerary_id" field.
func ItineraryIDNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldItineraryID, v))
}

// ItineraryIDIn applies the In predicate on the "itinerary_id" field.
func ItineraryIDIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldItineraryID, vs...))
}

// ItineraryIDNotIn applies the NotIn predicate on the "itinerary_id" field.
func ItineraryIDNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldItineraryID, vs...))
}

// ItineraryIDGT applies the GT predicate on the "itinerary_id" field.
func ItineraryIDGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldItineraryID, v))
}

// ItineraryIDGTE applies the GTE predicate on the "itinerary_id" field.
func ItineraryIDGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldItineraryID, v))
}

// ItineraryIDLT applies the LT predicate on the "itinerary_id" field.
func ItineraryIDLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldItineraryID, v))
}

// ItineraryIDLTE applies the LTE predicate on the "itinerary_id" field.
func ItineraryIDLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldItineraryID, v))
}

// ItineraryIDContains applies the Contains predicate on the "itinerary_id" field.
func ItineraryIDContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldItineraryID, v))
}

// ItineraryIDHasPrefix applies the HasPrefix predicate on the "itinerary_id" field.
func ItineraryIDHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldItineraryID, v))
}

// ItineraryIDHasSuffix applies the HasSuffix predicate on the "itinerary_id" field.
func ItineraryIDHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldItineraryID, v))
}

// ItineraryIDEqualFold applies the EqualFold predicate on the "itinerary_id" field.
func ItineraryIDEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldItineraryID, v))
}

// ItineraryIDContainsFold applies the ContainsFold predicate on the "itinerary_id" field.
func ItineraryIDContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldItineraryID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldVersion, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Revision {
	return predicate.Revision(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Revision {
	return predicate.Revision(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldSummary, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.Revision {
	return predicate.Revision(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Revision {
	return predicate.Revision(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Revision {
	return predicate.Revision(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.Revision {
	return predicate.Revision(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Revision {
	return predicate.Revision(sql.FieldLTE(FieldCreatedAt, v))
}

// HasItinerary applies the HasEdge predicate on the "itinerary" edge.
func HasItinerary() predicate.Revision {
	return predicate.Revision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ItineraryTable, ItineraryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItineraryWith applies the HasEdge predicate on the "itinerary" edge with a given conditions (other predicates).
func HasItineraryWith(preds ...predicate.ItineraryDoc) predicate.Revision {
	return predicate.Revision(func(s *sql.Selector) {
		step := newItineraryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Revision) predicate.Revision {
	return predicate.Revision(sql.NotPredicates(p))
}
