// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ipropixel/leadfinder/ent/scraperun"
)

// ScrapeRun is the model entity for the ScrapeRun schema.
type ScrapeRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Operator-supplied identifier correlating the live log channel
	RunID string `json:"run_id,omitempty"`
	// SearchQuery holds the value of the "search_query" field.
	SearchQuery string `json:"search_query,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Sub-locality qualifiers, one external search string each
	Neighborhoods []string `json:"neighborhoods,omitempty"`
	// MaxResults holds the value of the "max_results" field.
	MaxResults int `json:"max_results,omitempty"`
	// SkipDuplicates holds the value of the "skip_duplicates" field.
	SkipDuplicates bool `json:"skip_duplicates,omitempty"`
	// Status holds the value of the "status" field.
	Status scraperun.Status `json:"status,omitempty"`
	// Scraped holds the value of the "scraped" field.
	Scraped int `json:"scraped,omitempty"`
	// Inserted holds the value of the "inserted" field.
	Inserted int `json:"inserted,omitempty"`
	// Updated holds the value of the "updated" field.
	Updated int `json:"updated,omitempty"`
	// Duplicates holds the value of the "duplicates" field.
	Duplicates int `json:"duplicates,omitempty"`
	// Failed holds the value of the "failed" field.
	Failed int `json:"failed,omitempty"`
	// Final human-readable summary or error
	Message string `json:"message,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScrapeRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scraperun.FieldNeighborhoods:
			values[i] = new([]byte)
		case scraperun.FieldSkipDuplicates:
			values[i] = new(sql.NullBool)
		case scraperun.FieldID, scraperun.FieldMaxResults, scraperun.FieldScraped, scraperun.FieldInserted, scraperun.FieldUpdated, scraperun.FieldDuplicates, scraperun.FieldFailed:
			values[i] = new(sql.NullInt64)
		case scraperun.FieldRunID, scraperun.FieldSearchQuery, scraperun.FieldCity, scraperun.FieldStatus, scraperun.FieldMessage:
			values[i] = new(sql.NullString)
		case scraperun.FieldStartedAt, scraperun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScrapeRun fields.
func (_m *ScrapeRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scraperun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scraperun.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case scraperun.FieldSearchQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_query", values[i])
			} else if value.Valid {
				_m.SearchQuery = value.String
			}
		case scraperun.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case scraperun.FieldNeighborhoods:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field neighborhoods", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Neighborhoods); err != nil {
					return fmt.Errorf("unmarshal field neighborhoods: %w", err)
				}
			}
		case scraperun.FieldMaxResults:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_results", values[i])
			} else if value.Valid {
				_m.MaxResults = int(value.Int64)
			}
		case scraperun.FieldSkipDuplicates:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skip_duplicates", values[i])
			} else if value.Valid {
				_m.SkipDuplicates = value.Bool
			}
		case scraperun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scraperun.Status(value.String)
			}
		case scraperun.FieldScraped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field scraped", values[i])
			} else if value.Valid {
				_m.Scraped = int(value.Int64)
			}
		case scraperun.FieldInserted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field inserted", values[i])
			} else if value.Valid {
				_m.Inserted = int(value.Int64)
			}
		case scraperun.FieldUpdated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated", values[i])
			} else if value.Valid {
				_m.Updated = int(value.Int64)
			}
		case scraperun.FieldDuplicates:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duplicates", values[i])
			} else if value.Valid {
				_m.Duplicates = int(value.Int64)
			}
		case scraperun.FieldFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed", values[i])
			} else if value.Valid {
				_m.Failed = int(value.Int64)
			}
		case scraperun.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case scraperun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case scraperun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScrapeRun.
// This includes values selected through modifiers, order, etc.
func (_m *ScrapeRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScrapeRun.
// Note that you need to call ScrapeRun.Unwrap() before calling this method if this ScrapeRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScrapeRun) Update() *ScrapeRunUpdateOne {
	return NewScrapeRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScrapeRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScrapeRun) Unwrap() *ScrapeRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScrapeRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScrapeRun) String() string {
	var builder strings.Builder
	builder.WriteString("ScrapeRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("search_query=")
	builder.WriteString(_m.SearchQuery)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("neighborhoods=")
	builder.WriteString(fmt.Sprintf("%v", _m.Neighborhoods))
	builder.WriteString(", ")
	builder.WriteString("max_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxResults))
	builder.WriteString(", ")
	builder.WriteString("skip_duplicates=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipDuplicates))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("scraped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scraped))
	builder.WriteString(", ")
	builder.WriteString("inserted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Inserted))
	builder.WriteString(", ")
	builder.WriteString("updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Updated))
	builder.WriteString(", ")
	builder.WriteString("duplicates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duplicates))
	builder.WriteString(", ")
	builder.WriteString("failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Failed))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ScrapeRuns is a parsable slice of ScrapeRun.
type ScrapeRuns []*ScrapeRun
