// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ipropixel/leadfinder/ent/scraperun"
)

// ScrapeRunCreate is the builder for creating a ScrapeRun entity.
type ScrapeRunCreate struct {
	config
	mutation *ScrapeRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ScrapeRunCreate) SetRunID(v string) *ScrapeRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableRunID(v *string) *ScrapeRunCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetSearchQuery sets the "search_query" field.
func (_c *ScrapeRunCreate) SetSearchQuery(v string) *ScrapeRunCreate {
	_c.mutation.SetSearchQuery(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *ScrapeRunCreate) SetCity(v string) *ScrapeRunCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNeighborhoods sets the "neighborhoods" field.
func (_c *ScrapeRunCreate) SetNeighborhoods(v []string) *ScrapeRunCreate {
	_c.mutation.SetNeighborhoods(v)
	return _c
}

// SetMaxResults sets the "max_results" field.
func (_c *ScrapeRunCreate) SetMaxResults(v int) *ScrapeRunCreate {
	_c.mutation.SetMaxResults(v)
	return _c
}

// SetNillableMaxResults sets the "max_results" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableMaxResults(v *int) *ScrapeRunCreate {
	if v != nil {
		_c.SetMaxResults(*v)
	}
	return _c
}

// SetSkipDuplicates sets the "skip_duplicates" field.
func (_c *ScrapeRunCreate) SetSkipDuplicates(v bool) *ScrapeRunCreate {
	_c.mutation.SetSkipDuplicates(v)
	return _c
}

// SetNillableSkipDuplicates sets the "skip_duplicates" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableSkipDuplicates(v *bool) *ScrapeRunCreate {
	if v != nil {
		_c.SetSkipDuplicates(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScrapeRunCreate) SetStatus(v scraperun.Status) *ScrapeRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableStatus(v *scraperun.Status) *ScrapeRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScraped sets the "scraped" field.
func (_c *ScrapeRunCreate) SetScraped(v int) *ScrapeRunCreate {
	_c.mutation.SetScraped(v)
	return _c
}

// SetNillableScraped sets the "scraped" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableScraped(v *int) *ScrapeRunCreate {
	if v != nil {
		_c.SetScraped(*v)
	}
	return _c
}

// SetInserted sets the "inserted" field.
func (_c *ScrapeRunCreate) SetInserted(v int) *ScrapeRunCreate {
	_c.mutation.SetInserted(v)
	return _c
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableInserted(v *int) *ScrapeRunCreate {
	if v != nil {
		_c.SetInserted(*v)
	}
	return _c
}

// SetUpdated sets the "updated" field.
func (_c *ScrapeRunCreate) SetUpdated(v int) *ScrapeRunCreate {
	_c.mutation.SetUpdated(v)
	return _c
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableUpdated(v *int) *ScrapeRunCreate {
	if v != nil {
		_c.SetUpdated(*v)
	}
	return _c
}

// SetDuplicates sets the "duplicates" field.
func (_c *ScrapeRunCreate) SetDuplicates(v int) *ScrapeRunCreate {
	_c.mutation.SetDuplicates(v)
	return _c
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableDuplicates(v *int) *ScrapeRunCreate {
	if v != nil {
		_c.SetDuplicates(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *ScrapeRunCreate) SetFailed(v int) *ScrapeRunCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableFailed(v *int) *ScrapeRunCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *ScrapeRunCreate) SetMessage(v string) *ScrapeRunCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableMessage(v *string) *ScrapeRunCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ScrapeRunCreate) SetStartedAt(v time.Time) *ScrapeRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableStartedAt(v *time.Time) *ScrapeRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ScrapeRunCreate) SetFinishedAt(v time.Time) *ScrapeRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ScrapeRunCreate) SetNillableFinishedAt(v *time.Time) *ScrapeRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// Mutation returns the ScrapeRunMutation object of the builder.
func (_c *ScrapeRunCreate) Mutation() *ScrapeRunMutation {
	return _c.mutation
}

// Save creates the ScrapeRun in the database.
func (_c *ScrapeRunCreate) Save(ctx context.Context) (*ScrapeRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScrapeRunCreate) SaveX(ctx context.Context) *ScrapeRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScrapeRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScrapeRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScrapeRunCreate) defaults() {
	if _, ok := _c.mutation.MaxResults(); !ok {
		v := scraperun.DefaultMaxResults
		_c.mutation.SetMaxResults(v)
	}
	if _, ok := _c.mutation.SkipDuplicates(); !ok {
		v := scraperun.DefaultSkipDuplicates
		_c.mutation.SetSkipDuplicates(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scraperun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Scraped(); !ok {
		v := scraperun.DefaultScraped
		_c.mutation.SetScraped(v)
	}
	if _, ok := _c.mutation.Inserted(); !ok {
		v := scraperun.DefaultInserted
		_c.mutation.SetInserted(v)
	}
	if _, ok := _c.mutation.Updated(); !ok {
		v := scraperun.DefaultUpdated
		_c.mutation.SetUpdated(v)
	}
	if _, ok := _c.mutation.Duplicates(); !ok {
		v := scraperun.DefaultDuplicates
		_c.mutation.SetDuplicates(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := scraperun.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := scraperun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScrapeRunCreate) check() error {
	if _, ok := _c.mutation.SearchQuery(); !ok {
		return &ValidationError{Name: "search_query", err: errors.New(`ent: missing required field "ScrapeRun.search_query"`)}
	}
	if v, ok := _c.mutation.SearchQuery(); ok {
		if err := scraperun.SearchQueryValidator(v); err != nil {
			return &ValidationError{Name: "search_query", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.search_query": %w`, err)}
		}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "ScrapeRun.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := scraperun.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxResults(); !ok {
		return &ValidationError{Name: "max_results", err: errors.New(`ent: missing required field "ScrapeRun.max_results"`)}
	}
	if _, ok := _c.mutation.SkipDuplicates(); !ok {
		return &ValidationError{Name: "skip_duplicates", err: errors.New(`ent: missing required field "ScrapeRun.skip_duplicates"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScrapeRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scraperun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scraped(); !ok {
		return &ValidationError{Name: "scraped", err: errors.New(`ent: missing required field "ScrapeRun.scraped"`)}
	}
	if _, ok := _c.mutation.Inserted(); !ok {
		return &ValidationError{Name: "inserted", err: errors.New(`ent: missing required field "ScrapeRun.inserted"`)}
	}
	if _, ok := _c.mutation.Updated(); !ok {
		return &ValidationError{Name: "updated", err: errors.New(`ent: missing required field "ScrapeRun.updated"`)}
	}
	if _, ok := _c.mutation.Duplicates(); !ok {
		return &ValidationError{Name: "duplicates", err: errors.New(`ent: missing required field "ScrapeRun.duplicates"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "ScrapeRun.failed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ScrapeRun.started_at"`)}
	}
	return nil
}

func (_c *ScrapeRunCreate) sqlSave(ctx context.Context) (*ScrapeRun, error) {
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

func (_c *ScrapeRunCreate) createSpec() (*ScrapeRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ScrapeRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scraperun.Table, sqlgraph.NewFieldSpec(scraperun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(scraperun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SearchQuery(); ok {
		_spec.SetField(scraperun.FieldSearchQuery, field.TypeString, value)
		_node.SearchQuery = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(scraperun.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Neighborhoods(); ok {
		_spec.SetField(scraperun.FieldNeighborhoods, field.TypeJSON, value)
		_node.Neighborhoods = value
	}
	if value, ok := _c.mutation.MaxResults(); ok {
		_spec.SetField(scraperun.FieldMaxResults, field.TypeInt, value)
		_node.MaxResults = value
	}
	if value, ok := _c.mutation.SkipDuplicates(); ok {
		_spec.SetField(scraperun.FieldSkipDuplicates, field.TypeBool, value)
		_node.SkipDuplicates = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scraperun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Scraped(); ok {
		_spec.SetField(scraperun.FieldScraped, field.TypeInt, value)
		_node.Scraped = value
	}
	if value, ok := _c.mutation.Inserted(); ok {
		_spec.SetField(scraperun.FieldInserted, field.TypeInt, value)
		_node.Inserted = value
	}
	if value, ok := _c.mutation.Updated(); ok {
		_spec.SetField(scraperun.FieldUpdated, field.TypeInt, value)
		_node.Updated = value
	}
	if value, ok := _c.mutation.Duplicates(); ok {
		_spec.SetField(scraperun.FieldDuplicates, field.TypeInt, value)
		_node.Duplicates = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(scraperun.FieldFailed, field.TypeInt, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(scraperun.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(scraperun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(scraperun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// ScrapeRunCreateBulk is the builder for creating many ScrapeRun entities in bulk.
type ScrapeRunCreateBulk struct {
	config
	err      error
	builders []*ScrapeRunCreate
}

// Save creates the ScrapeRun entities in the database.
func (_c *ScrapeRunCreateBulk) Save(ctx context.Context) ([]*ScrapeRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScrapeRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScrapeRunMutation)
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
func (_c *ScrapeRunCreateBulk) SaveX(ctx context.Context) []*ScrapeRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScrapeRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScrapeRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
