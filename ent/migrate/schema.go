// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BusinessesColumns holds the columns for the "businesses" table.
	BusinessesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "phone_unformatted", Type: field.TypeString, Nullable: true},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "rating", Type: field.TypeFloat64, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64, Default: 41.3275},
		{Name: "longitude", Type: field.TypeFloat64, Default: 19.8187},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "maps_url", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeString, Nullable: true},
		{Name: "category_name", Type: field.TypeString, Nullable: true},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "neighborhood", Type: field.TypeString, Nullable: true},
		{Name: "street", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "country_code", Type: field.TypeString, Nullable: true},
		{Name: "permanently_closed", Type: field.TypeBool, Default: false},
		{Name: "temporarily_closed", Type: field.TypeBool, Default: false},
		{Name: "place_id", Type: field.TypeString, Nullable: true},
		{Name: "cid", Type: field.TypeString, Nullable: true},
		{Name: "images_count", Type: field.TypeInt, Default: 0},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "hotel_stars", Type: field.TypeString, Nullable: true},
		{Name: "emails", Type: field.TypeJSON, Nullable: true},
		{Name: "phones", Type: field.TypeJSON, Nullable: true},
		{Name: "instagram", Type: field.TypeString, Nullable: true},
		{Name: "facebook", Type: field.TypeString, Nullable: true},
		{Name: "twitter", Type: field.TypeString, Nullable: true},
		{Name: "youtube", Type: field.TypeString, Nullable: true},
		{Name: "tiktok", Type: field.TypeString, Nullable: true},
		{Name: "linkedin", Type: field.TypeString, Nullable: true},
		{Name: "whatsapp", Type: field.TypeString, Nullable: true},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "opening_hours", Type: field.TypeJSON, Nullable: true},
		{Name: "additional_info", Type: field.TypeJSON, Nullable: true},
		{Name: "email_sent", Type: field.TypeBool, Default: false},
		{Name: "email_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "sms_sent", Type: field.TypeBool, Default: false},
		{Name: "sms_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "search_query", Type: field.TypeString, Nullable: true},
		{Name: "scraped_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BusinessesTable holds the schema information for the "businesses" table.
	BusinessesTable = &schema.Table{
		Name:       "businesses",
		Columns:    BusinessesColumns,
		PrimaryKey: []*schema.Column{BusinessesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "business_name",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[1]},
			},
			{
				Name:    "business_search_query",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[43]},
			},
			{
				Name:    "business_category_name",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[12]},
			},
			{
				Name:    "business_rating",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[5]},
			},
			{
				Name:    "business_review_count",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[4]},
			},
			{
				Name:    "business_place_id",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[22]},
			},
			{
				Name:    "business_email_sent",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[39]},
			},
			{
				Name:    "business_sms_sent",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[41]},
			},
			{
				Name:    "business_created_at",
				Unique:  false,
				Columns: []*schema.Column{BusinessesColumns[45]},
			},
		},
	}
	// ExportsColumns holds the columns for the "exports" table.
	ExportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "format", Type: field.TypeEnum, Enums: []string{"csv", "excel"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "filters_applied", Type: field.TypeJSON, Nullable: true},
		{Name: "business_count", Type: field.TypeInt, Default: 0},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExportsTable holds the schema information for the "exports" table.
	ExportsTable = &schema.Table{
		Name:       "exports",
		Columns:    ExportsColumns,
		PrimaryKey: []*schema.Column{ExportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "export_status",
				Unique:  false,
				Columns: []*schema.Column{ExportsColumns[2]},
			},
			{
				Name:    "export_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExportsColumns[8]},
			},
		},
	}
	// ScrapeRunsColumns holds the columns for the "scrape_runs" table.
	ScrapeRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "search_query", Type: field.TypeString},
		{Name: "city", Type: field.TypeString},
		{Name: "neighborhoods", Type: field.TypeJSON, Nullable: true},
		{Name: "max_results", Type: field.TypeInt, Default: 100},
		{Name: "skip_duplicates", Type: field.TypeBool, Default: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "scraping", "reconciling", "persisting", "done", "failed"}, Default: "pending"},
		{Name: "scraped", Type: field.TypeInt, Default: 0},
		{Name: "inserted", Type: field.TypeInt, Default: 0},
		{Name: "updated", Type: field.TypeInt, Default: 0},
		{Name: "duplicates", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ScrapeRunsTable holds the schema information for the "scrape_runs" table.
	ScrapeRunsTable = &schema.Table{
		Name:       "scrape_runs",
		Columns:    ScrapeRunsColumns,
		PrimaryKey: []*schema.Column{ScrapeRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scraperun_run_id",
				Unique:  false,
				Columns: []*schema.Column{ScrapeRunsColumns[1]},
			},
			{
				Name:    "scraperun_status",
				Unique:  false,
				Columns: []*schema.Column{ScrapeRunsColumns[7]},
			},
			{
				Name:    "scraperun_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScrapeRunsColumns[14]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BusinessesTable,
		ExportsTable,
		ScrapeRunsTable,
	}
)

func init() {
}
