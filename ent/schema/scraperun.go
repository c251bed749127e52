package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScrapeRun holds the schema definition for the ScrapeRun entity. One row
// per end-to-end ingestion run, carrying its state machine and final stats.
type ScrapeRun struct {
	ent.Schema
}

// Fields of the ScrapeRun.
func (ScrapeRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Optional().
			Comment("Operator-supplied identifier correlating the live log channel"),
		field.String("search_query").
			NotEmpty(),
		field.String("city").
			NotEmpty(),
		field.JSON("neighborhoods", []string{}).
			Optional().
			Comment("Sub-locality qualifiers, one external search string each"),
		field.Int("max_results").
			Default(100),
		field.Bool("skip_duplicates").
			Default(true),
		field.Enum("status").
			Values("pending", "scraping", "reconciling", "persisting", "done", "failed").
			Default("pending"),
		field.Int("scraped").Default(0),
		field.Int("inserted").Default(0),
		field.Int("updated").Default(0),
		field.Int("duplicates").Default(0),
		field.Int("failed").Default(0),
		field.String("message").
			Optional().
			Comment("Final human-readable summary or error"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ScrapeRun.
func (ScrapeRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("status"),
		index.Fields("started_at"),
	}
}
