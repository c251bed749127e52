// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Business is the predicate function for business builders.
type Business func(*sql.Selector)

// Export is the predicate function for export builders.
type Export func(*sql.Selector)

// ScrapeRun is the predicate function for scraperun builders.
type ScrapeRun func(*sql.Selector)
