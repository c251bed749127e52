// Code generated by ent, DO NOT EDIT.

package scraperun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scraperun type in the database.
	Label = "scrape_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldSearchQuery holds the string denoting the search_query field in the database.
	FieldSearchQuery = "search_query"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldNeighborhoods holds the string denoting the neighborhoods field in the database.
	FieldNeighborhoods = "neighborhoods"
	// FieldMaxResults holds the string denoting the max_results field in the database.
	FieldMaxResults = "max_results"
	// FieldSkipDuplicates holds the string denoting the skip_duplicates field in the database.
	FieldSkipDuplicates = "skip_duplicates"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldScraped holds the string denoting the scraped field in the database.
	FieldScraped = "scraped"
	// FieldInserted holds the string denoting the inserted field in the database.
	FieldInserted = "inserted"
	// FieldUpdated holds the string denoting the updated field in the database.
	FieldUpdated = "updated"
	// FieldDuplicates holds the string denoting the duplicates field in the database.
	FieldDuplicates = "duplicates"
	// FieldFailed holds the string denoting the failed field in the database.
	FieldFailed = "failed"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the scraperun in the database.
	Table = "scrape_runs"
)

// Columns holds all SQL columns for scraperun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldSearchQuery,
	FieldCity,
	FieldNeighborhoods,
	FieldMaxResults,
	FieldSkipDuplicates,
	FieldStatus,
	FieldScraped,
	FieldInserted,
	FieldUpdated,
	FieldDuplicates,
	FieldFailed,
	FieldMessage,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SearchQueryValidator is a validator for the "search_query" field. It is called by the builders before save.
	SearchQueryValidator func(string) error
	// CityValidator is a validator for the "city" field. It is called by the builders before save.
	CityValidator func(string) error
	// DefaultMaxResults holds the default value on creation for the "max_results" field.
	DefaultMaxResults int
	// DefaultSkipDuplicates holds the default value on creation for the "skip_duplicates" field.
	DefaultSkipDuplicates bool
	// DefaultScraped holds the default value on creation for the "scraped" field.
	DefaultScraped int
	// DefaultInserted holds the default value on creation for the "inserted" field.
	DefaultInserted int
	// DefaultUpdated holds the default value on creation for the "updated" field.
	DefaultUpdated int
	// DefaultDuplicates holds the default value on creation for the "duplicates" field.
	DefaultDuplicates int
	// DefaultFailed holds the default value on creation for the "failed" field.
	DefaultFailed int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending     Status = "pending"
	StatusScraping    Status = "scraping"
	StatusReconciling Status = "reconciling"
	StatusPersisting  Status = "persisting"
	StatusDone        Status = "done"
	StatusFailed      Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusScraping, StatusReconciling, StatusPersisting, StatusDone, StatusFailed:
		return nil
	default:
		return fmt.Errorf("scraperun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScrapeRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// BySearchQuery orders the results by the search_query field.
func BySearchQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchQuery, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByMaxResults orders the results by the max_results field.
func ByMaxResults(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxResults, opts...).ToFunc()
}

// BySkipDuplicates orders the results by the skip_duplicates field.
func BySkipDuplicates(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipDuplicates, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScraped orders the results by the scraped field.
func ByScraped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScraped, opts...).ToFunc()
}

// ByInserted orders the results by the inserted field.
func ByInserted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInserted, opts...).ToFunc()
}

// ByUpdated orders the results by the updated field.
func ByUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdated, opts...).ToFunc()
}

// ByDuplicates orders the results by the duplicates field.
func ByDuplicates(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicates, opts...).ToFunc()
}

// ByFailed orders the results by the failed field.
func ByFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailed, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
