package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Export holds the schema definition for the Export entity.
type Export struct {
	ent.Schema
}

// Fields of the Export.
func (Export) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("format").
			Values("csv", "excel"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.JSON("filters_applied", map[string]interface{}{}).
			Optional().
			Comment("Business list filters captured at export time"),
		field.Int("business_count").
			Default(0),
		field.String("file_path").
			Optional(),
		field.String("error_message").
			Optional(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Export.
func (Export) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
