// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ipropixel/leadfinder/ent/export"
)

// Export is the model entity for the Export schema.
type Export struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Format holds the value of the "format" field.
	Format export.Format `json:"format,omitempty"`
	// Status holds the value of the "status" field.
	Status export.Status `json:"status,omitempty"`
	// Business list filters captured at export time
	FiltersApplied map[string]interface{} `json:"filters_applied,omitempty"`
	// BusinessCount holds the value of the "business_count" field.
	BusinessCount int `json:"business_count,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Export) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case export.FieldFiltersApplied:
			values[i] = new([]byte)
		case export.FieldID, export.FieldBusinessCount:
			values[i] = new(sql.NullInt64)
		case export.FieldFormat, export.FieldStatus, export.FieldFilePath, export.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case export.FieldExpiresAt, export.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Export fields.
func (_m *Export) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case export.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case export.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = export.Format(value.String)
			}
		case export.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = export.Status(value.String)
			}
		case export.FieldFiltersApplied:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field filters_applied", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FiltersApplied); err != nil {
					return fmt.Errorf("unmarshal field filters_applied: %w", err)
				}
			}
		case export.FieldBusinessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field business_count", values[i])
			} else if value.Valid {
				_m.BusinessCount = int(value.Int64)
			}
		case export.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case export.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case export.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case export.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Export.
// This includes values selected through modifiers, order, etc.
func (_m *Export) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Export.
// Note that you need to call Export.Unwrap() before calling this method if this Export
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Export) Update() *ExportUpdateOne {
	return NewExportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Export entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Export) Unwrap() *Export {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Export is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Export) String() string {
	var builder strings.Builder
	builder.WriteString("Export(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("format=")
	builder.WriteString(fmt.Sprintf("%v", _m.Format))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("filters_applied=")
	builder.WriteString(fmt.Sprintf("%v", _m.FiltersApplied))
	builder.WriteString(", ")
	builder.WriteString("business_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BusinessCount))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Exports is a parsable slice of Export.
type Exports []*Export
