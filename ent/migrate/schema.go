// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "itinerary_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_itinerary_docs_chat_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[4]},
				RefColumns: []*schema.Column{ItineraryDocsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_itinerary_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[4], ChatMessagesColumns[3]},
			},
		},
	}
	// ItineraryDocsColumns holds the columns for the "itinerary_docs" table.
	ItineraryDocsColumns = []*schema.Column{
		{Name: "itinerary_id", Type: field.TypeString, Unique: true},
		{Name: "document", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "generating", "ready", "failed"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItineraryDocsTable holds the schema information for the "itinerary_docs" table.
	ItineraryDocsTable = &schema.Table{
		Name:       "itinerary_docs",
		Columns:    ItineraryDocsColumns,
		PrimaryKey: []*schema.Column{ItineraryDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itinerarydoc_status",
				Unique:  false,
				Columns: []*schema.Column{ItineraryDocsColumns[3]},
			},
			{
				Name:    "itinerarydoc_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ItineraryDocsColumns[3], ItineraryDocsColumns[5]},
			},
		},
	}
	// RevisionsColumns holds the columns for the "revisions" table.
	RevisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeInt},
		{Name: "document", Type: field.TypeJSON},
		{Name: "summary", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "itinerary_id", Type: field.TypeString},
	}
	// RevisionsTable holds the schema information for the "revisions" table.
	RevisionsTable = &schema.Table{
		Name:       "revisions",
		Columns:    RevisionsColumns,
		PrimaryKey: []*schema.Column{RevisionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "revisions_itinerary_docs_revisions",
				Columns:    []*schema.Column{RevisionsColumns[6]},
				RefColumns: []*schema.Column{ItineraryDocsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "revision_itinerary_id_version",
				Unique:  true,
				Columns: []*schema.Column{RevisionsColumns[6], RevisionsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatMessagesTable,
		ItineraryDocsTable,
		RevisionsTable,
	}
)

func init() {
	ChatMessagesTable.ForeignKeys[0].RefTable = ItineraryDocsTable
	RevisionsTable.ForeignKeys[0].RefTable = ItineraryDocsTable
}
