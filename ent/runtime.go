// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wayplan/wayplan/ent/chatmessage"
	"github.com/wayplan/wayplan/ent/itinerarydoc"
	"github.com/wayplan/wayplan/ent/revision"
	"github.com/wayplan/wayplan/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[3].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	itinerarydocFields := schema.ItineraryDoc{}.Fields()
	_ = itinerarydocFields
	// itinerarydocDescVersion is the schema descriptor for version field.
	itinerarydocDescVersion := itinerarydocFields[2].Descriptor()
	// itinerarydoc.DefaultVersion holds the default value on creation for the version field.
	itinerarydoc.DefaultVersion = itinerarydocDescVersion.Default.(int)
	// itinerarydocDescCreatedAt is the schema descriptor for created_at field.
	itinerarydocDescCreatedAt := itinerarydocFields[4].Descriptor()
	// itinerarydoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	itinerarydoc.DefaultCreatedAt = itinerarydocDescCreatedAt.Default.(func() time.Time)
	// itinerarydocDescUpdatedAt is the schema descriptor for updated_at field.
	itinerarydocDescUpdatedAt := itinerarydocFields[5].Descriptor()
	// itinerarydoc.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	itinerarydoc.DefaultUpdatedAt = itinerarydocDescUpdatedAt.Default.(func() time.Time)
	// itinerarydoc.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	itinerarydoc.UpdateDefaultUpdatedAt = itinerarydocDescUpdatedAt.UpdateDefault.(func() time.Time)
	revisionFields := schema.Revision{}.Fields()
	_ = revisionFields
	// revisionDescCreatedAt is the schema descriptor for created_at field.
	revisionDescCreatedAt := revisionFields[5].Descriptor()
	// revision.DefaultCreatedAt holds the default value on creation for the created_at field.
	revision.DefaultCreatedAt = revisionDescCreatedAt.Default.(func() time.Time)
}
