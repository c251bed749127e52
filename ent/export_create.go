// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ipropixel/leadfinder/ent/export"
)

// ExportCreate is the builder for creating a Export entity.
type ExportCreate struct {
	config
	mutation *ExportMutation
	hooks    []Hook
}

// SetFormat sets the "format" field.
func (_c *ExportCreate) SetFormat(v export.Format) *ExportCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExportCreate) SetStatus(v export.Status) *ExportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExportCreate) SetNillableStatus(v *export.Status) *ExportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFiltersApplied sets the "filters_applied" field.
func (_c *ExportCreate) SetFiltersApplied(v map[string]interface{}) *ExportCreate {
	_c.mutation.SetFiltersApplied(v)
	return _c
}

// SetBusinessCount sets the "business_count" field.
func (_c *ExportCreate) SetBusinessCount(v int) *ExportCreate {
	_c.mutation.SetBusinessCount(v)
	return _c
}

// SetNillableBusinessCount sets the "business_count" field if the given value is not nil.
func (_c *ExportCreate) SetNillableBusinessCount(v *int) *ExportCreate {
	if v != nil {
		_c.SetBusinessCount(*v)
	}
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ExportCreate) SetFilePath(v string) *ExportCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_c *ExportCreate) SetNillableFilePath(v *string) *ExportCreate {
	if v != nil {
		_c.SetFilePath(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExportCreate) SetErrorMessage(v string) *ExportCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExportCreate) SetNillableErrorMessage(v *string) *ExportCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ExportCreate) SetExpiresAt(v time.Time) *ExportCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *ExportCreate) SetNillableExpiresAt(v *time.Time) *ExportCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExportCreate) SetCreatedAt(v time.Time) *ExportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExportCreate) SetNillableCreatedAt(v *time.Time) *ExportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ExportMutation object of the builder.
func (_c *ExportCreate) Mutation() *ExportMutation {
	return _c.mutation
}

// Save creates the Export in the database.
func (_c *ExportCreate) Save(ctx context.Context) (*Export, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExportCreate) SaveX(ctx context.Context) *Export {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExportCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := export.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.BusinessCount(); !ok {
		v := export.DefaultBusinessCount
		_c.mutation.SetBusinessCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := export.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExportCreate) check() error {
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "Export.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := export.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Export.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Export.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := export.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Export.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BusinessCount(); !ok {
		return &ValidationError{Name: "business_count", err: errors.New(`ent: missing required field "Export.business_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Export.created_at"`)}
	}
	return nil
}

func (_c *ExportCreate) sqlSave(ctx context.Context) (*Export, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExportCreate) createSpec() (*Export, *sqlgraph.CreateSpec) {
	var (
		_node = &Export{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(export.Table, sqlgraph.NewFieldSpec(export.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(export.FieldFormat, field.TypeEnum, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(export.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FiltersApplied(); ok {
		_spec.SetField(export.FieldFiltersApplied, field.TypeJSON, value)
		_node.FiltersApplied = value
	}
	if value, ok := _c.mutation.BusinessCount(); ok {
		_spec.SetField(export.FieldBusinessCount, field.TypeInt, value)
		_node.BusinessCount = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(export.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(export.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(export.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(export.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExportCreateBulk is the builder for creating many Export entities in bulk.
type ExportCreateBulk struct {
	config
	err      error
	builders []*ExportCreate
}

// Save creates the Export entities in the database.
func (_c *ExportCreateBulk) Save(ctx context.Context) ([]*Export, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Export, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExportCreateBulk) SaveX(ctx context.Context) []*Export {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
