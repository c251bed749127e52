// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ipropixel/leadfinder/ent/export"
	"github.com/ipropixel/leadfinder/ent/predicate"
)

// ExportUpdate is the builder for updating Export entities.
type ExportUpdate struct {
	config
	hooks    []Hook
	mutation *ExportMutation
}

// Where appends a list predicates to the ExportUpdate builder.
func (_u *ExportUpdate) Where(ps ...predicate.Export) *ExportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFormat sets the "format" field.
func (_u *ExportUpdate) SetFormat(v export.Format) *ExportUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableFormat(v *export.Format) *ExportUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExportUpdate) SetStatus(v export.Status) *ExportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableStatus(v *export.Status) *ExportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFiltersApplied sets the "filters_applied" field.
func (_u *ExportUpdate) SetFiltersApplied(v map[string]interface{}) *ExportUpdate {
	_u.mutation.SetFiltersApplied(v)
	return _u
}

// ClearFiltersApplied clears the value of the "filters_applied" field.
func (_u *ExportUpdate) ClearFiltersApplied() *ExportUpdate {
	_u.mutation.ClearFiltersApplied()
	return _u
}

// SetBusinessCount sets the "business_count" field.
func (_u *ExportUpdate) SetBusinessCount(v int) *ExportUpdate {
	_u.mutation.ResetBusinessCount()
	_u.mutation.SetBusinessCount(v)
	return _u
}

// SetNillableBusinessCount sets the "business_count" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableBusinessCount(v *int) *ExportUpdate {
	if v != nil {
		_u.SetBusinessCount(*v)
	}
	return _u
}

// AddBusinessCount adds value to the "business_count" field.
func (_u *ExportUpdate) AddBusinessCount(v int) *ExportUpdate {
	_u.mutation.AddBusinessCount(v)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ExportUpdate) SetFilePath(v string) *ExportUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableFilePath(v *string) *ExportUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *ExportUpdate) ClearFilePath() *ExportUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExportUpdate) SetErrorMessage(v string) *ExportUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableErrorMessage(v *string) *ExportUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExportUpdate) ClearErrorMessage() *ExportUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ExportUpdate) SetExpiresAt(v time.Time) *ExportUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ExportUpdate) SetNillableExpiresAt(v *time.Time) *ExportUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ExportUpdate) ClearExpiresAt() *ExportUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the ExportMutation object of the builder.
func (_u *ExportUpdate) Mutation() *ExportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := export.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Export.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := export.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Export.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(export.Table, export.Columns, sqlgraph.NewFieldSpec(export.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(export.FieldFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(export.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FiltersApplied(); ok {
		_spec.SetField(export.FieldFiltersApplied, field.TypeJSON, value)
	}
	if _u.mutation.FiltersAppliedCleared() {
		_spec.ClearField(export.FieldFiltersApplied, field.TypeJSON)
	}
	if value, ok := _u.mutation.BusinessCount(); ok {
		_spec.SetField(export.FieldBusinessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBusinessCount(); ok {
		_spec.AddField(export.FieldBusinessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(export.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(export.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(export.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(export.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(export.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(export.FieldExpiresAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{export.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExportUpdateOne is the builder for updating a single Export entity.
type ExportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExportMutation
}

// SetFormat sets the "format" field.
func (_u *ExportUpdateOne) SetFormat(v export.Format) *ExportUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableFormat(v *export.Format) *ExportUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExportUpdateOne) SetStatus(v export.Status) *ExportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableStatus(v *export.Status) *ExportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFiltersApplied sets the "filters_applied" field.
func (_u *ExportUpdateOne) SetFiltersApplied(v map[string]interface{}) *ExportUpdateOne {
	_u.mutation.SetFiltersApplied(v)
	return _u
}

// ClearFiltersApplied clears the value of the "filters_applied" field.
func (_u *ExportUpdateOne) ClearFiltersApplied() *ExportUpdateOne {
	_u.mutation.ClearFiltersApplied()
	return _u
}

// SetBusinessCount sets the "business_count" field.
func (_u *ExportUpdateOne) SetBusinessCount(v int) *ExportUpdateOne {
	_u.mutation.ResetBusinessCount()
	_u.mutation.SetBusinessCount(v)
	return _u
}

// SetNillableBusinessCount sets the "business_count" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableBusinessCount(v *int) *ExportUpdateOne {
	if v != nil {
		_u.SetBusinessCount(*v)
	}
	return _u
}

// AddBusinessCount adds value to the "business_count" field.
func (_u *ExportUpdateOne) AddBusinessCount(v int) *ExportUpdateOne {
	_u.mutation.AddBusinessCount(v)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ExportUpdateOne) SetFilePath(v string) *ExportUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableFilePath(v *string) *ExportUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *ExportUpdateOne) ClearFilePath() *ExportUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExportUpdateOne) SetErrorMessage(v string) *ExportUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableErrorMessage(v *string) *ExportUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExportUpdateOne) ClearErrorMessage() *ExportUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ExportUpdateOne) SetExpiresAt(v time.Time) *ExportUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ExportUpdateOne) SetNillableExpiresAt(v *time.Time) *ExportUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *ExportUpdateOne) ClearExpiresAt() *ExportUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// Mutation returns the ExportMutation object of the builder.
func (_u *ExportUpdateOne) Mutation() *ExportMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExportUpdate builder.
func (_u *ExportUpdateOne) Where(ps ...predicate.Export) *ExportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExportUpdateOne) Select(field string, fields ...string) *ExportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Export entity.
func (_u *ExportUpdateOne) Save(ctx context.Context) (*Export, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExportUpdateOne) SaveX(ctx context.Context) *Export {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExportUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := export.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Export.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := export.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Export.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExportUpdateOne) sqlSave(ctx context.Context) (_node *Export, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(export.Table, export.Columns, sqlgraph.NewFieldSpec(export.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Export.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, export.FieldID)
		for _, f := range fields {
			if !export.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != export.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(export.FieldFormat, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(export.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FiltersApplied(); ok {
		_spec.SetField(export.FieldFiltersApplied, field.TypeJSON, value)
	}
	if _u.mutation.FiltersAppliedCleared() {
		_spec.ClearField(export.FieldFiltersApplied, field.TypeJSON)
	}
	if value, ok := _u.mutation.BusinessCount(); ok {
		_spec.SetField(export.FieldBusinessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBusinessCount(); ok {
		_spec.AddField(export.FieldBusinessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(export.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(export.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(export.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(export.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(export.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(export.FieldExpiresAt, field.TypeTime)
	}
	_node = &Export{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{export.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
