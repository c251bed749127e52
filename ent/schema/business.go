package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Business holds the schema definition for the Business entity.
type Business struct {
	ent.Schema
}

// Fields of the Business.
func (Business) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Business name, the dedup key (matched case-insensitively)"),
		field.String("phone").
			Optional().
			Comment("Primary phone number as displayed by the source"),
		field.String("phone_unformatted").
			Optional().
			Comment("Phone number without formatting"),
		field.Int("review_count").
			Default(0).
			Comment("Number of reviews"),
		field.Float("rating").
			Optional().
			Comment("Average rating (0 = unrated)"),
		field.String("address").
			Optional().
			Comment("Full street address"),
		field.Float("latitude").
			Default(41.3275).
			Comment("GPS latitude (defaults to the Tirana city center fallback)"),
		field.Float("longitude").
			Default(19.8187).
			Comment("GPS longitude (defaults to the Tirana city center fallback)"),
		field.String("website").
			Optional().
			Comment("Website URL"),
		field.String("maps_url").
			Optional().
			Comment("Google Maps listing URL"),
		field.String("price").
			Optional().
			Comment("Price level indicator"),
		field.String("category_name").
			Optional().
			Comment("Primary category label"),
		field.JSON("categories", []string{}).
			Optional().
			Comment("All category labels"),
		field.String("neighborhood").
			Optional(),
		field.String("street").
			Optional(),
		field.String("city").
			Optional(),
		field.String("postal_code").
			Optional(),
		field.String("state").
			Optional(),
		field.String("country_code").
			Optional().
			Comment("ISO 3166-1 alpha-2 country code"),
		field.Bool("permanently_closed").
			Default(false),
		field.Bool("temporarily_closed").
			Default(false),
		field.String("place_id").
			Optional().
			Comment("Opaque upstream place identifier, not validated"),
		field.String("cid").
			Optional().
			Comment("Opaque upstream customer identifier, not validated"),
		field.Int("images_count").
			Default(0),
		field.String("image_url").
			Optional(),
		field.String("hotel_stars").
			Optional(),
		field.JSON("emails", []string{}).
			Optional().
			Comment("Email addresses discovered for the business"),
		field.JSON("phones", []string{}).
			Optional().
			Comment("Additional phone numbers"),
		field.String("instagram").
			Optional(),
		field.String("facebook").
			Optional(),
		field.String("twitter").
			Optional(),
		field.String("youtube").
			Optional(),
		field.String("tiktok").
			Optional(),
		field.String("linkedin").
			Optional(),
		field.String("whatsapp").
			Optional(),
		field.String("domain").
			Optional(),
		field.JSON("opening_hours", []map[string]interface{}{}).
			Optional().
			Comment("Day/hours pairs as provided by the source"),
		field.JSON("additional_info", map[string]interface{}{}).
			Optional().
			Comment("Free-form source metadata"),

		// Outreach flags, mutated only by the outreach senders.
		field.Bool("email_sent").
			Default(false),
		field.Time("email_sent_at").
			Optional().
			Nillable(),
		field.Bool("sms_sent").
			Default(false),
		field.Time("sms_sent_at").
			Optional().
			Nillable(),

		field.String("search_query").
			Optional().
			Comment("The query string that produced this record"),
		field.Time("scraped_at").
			Default(time.Now).
			Comment("When the record was last ingested"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Set once at first insert"),
	}
}

// Indexes of the Business.
func (Business) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("search_query"),
		index.Fields("category_name"),
		index.Fields("rating"),
		index.Fields("review_count"),
		index.Fields("place_id"),
		index.Fields("email_sent"),
		index.Fields("sms_sent"),
		index.Fields("created_at"),
	}
}
