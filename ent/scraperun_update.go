// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ipropixel/leadfinder/ent/predicate"
	"github.com/ipropixel/leadfinder/ent/scraperun"
)

// ScrapeRunUpdate is the builder for updating ScrapeRun entities.
type ScrapeRunUpdate struct {
	config
	hooks    []Hook
	mutation *ScrapeRunMutation
}

// Where appends a list predicates to the ScrapeRunUpdate builder.
func (_u *ScrapeRunUpdate) Where(ps ...predicate.ScrapeRun) *ScrapeRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ScrapeRunUpdate) SetRunID(v string) *ScrapeRunUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableRunID(v *string) *ScrapeRunUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ScrapeRunUpdate) ClearRunID() *ScrapeRunUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// SetSearchQuery sets the "search_query" field.
func (_u *ScrapeRunUpdate) SetSearchQuery(v string) *ScrapeRunUpdate {
	_u.mutation.SetSearchQuery(v)
	return _u
}

// SetNillableSearchQuery sets the "search_query" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableSearchQuery(v *string) *ScrapeRunUpdate {
	if v != nil {
		_u.SetSearchQuery(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *ScrapeRunUpdate) SetCity(v string) *ScrapeRunUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableCity(v *string) *ScrapeRunUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetNeighborhoods sets the "neighborhoods" field.
func (_u *ScrapeRunUpdate) SetNeighborhoods(v []string) *ScrapeRunUpdate {
	_u.mutation.SetNeighborhoods(v)
	return _u
}

// AppendNeighborhoods appends value to the "neighborhoods" field.
func (_u *ScrapeRunUpdate) AppendNeighborhoods(v []string) *ScrapeRunUpdate {
	_u.mutation.AppendNeighborhoods(v)
	return _u
}

// ClearNeighborhoods clears the value of the "neighborhoods" field.
func (_u *ScrapeRunUpdate) ClearNeighborhoods() *ScrapeRunUpdate {
	_u.mutation.ClearNeighborhoods()
	return _u
}

// SetMaxResults sets the "max_results" field.
func (_u *ScrapeRunUpdate) SetMaxResults(v int) *ScrapeRunUpdate {
	_u.mutation.ResetMaxResults()
	_u.mutation.SetMaxResults(v)
	return _u
}

// SetNillableMaxResults sets the "max_results" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableMaxResults(v *int) *ScrapeRunUpdate {
	if v != nil {
		_u.SetMaxResults(*v)
	}
	return _u
}

// AddMaxResults adds value to the "max_results" field.
func (_u *ScrapeRunUpdate) AddMaxResults(v int) *ScrapeRunUpdate {
	_u.mutation.AddMaxResults(v)
	return _u
}

// SetSkipDuplicates sets the "skip_duplicates" field.
func (_u *ScrapeRunUpdate) SetSkipDuplicates(v bool) *ScrapeRunUpdate {
	_u.mutation.SetSkipDuplicates(v)
	return _u
}

// SetNillableSkipDuplicates sets the "skip_duplicates" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableSkipDuplicates(v *bool) *ScrapeRunUpdate {
	if v != nil {
		_u.SetSkipDuplicates(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScrapeRunUpdate) SetStatus(v scraperun.Status) *ScrapeRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableStatus(v *scraperun.Status) *ScrapeRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScraped sets the "scraped" field.
func (_u *ScrapeRunUpdate) SetScraped(v int) *ScrapeRunUpdate {
	_u.mutation.ResetScraped()
	_u.mutation.SetScraped(v)
	return _u
}

// SetNillableScraped sets the "scraped" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableScraped(v *int) *ScrapeRunUpdate {
	if v != nil {
		_u.SetScraped(*v)
	}
	return _u
}

// AddScraped adds value to the "scraped" field.
func (_u *ScrapeRunUpdate) AddScraped(v int) *ScrapeRunUpdate {
	_u.mutation.AddScraped(v)
	return _u
}

// SetInserted sets the "inserted" field.
func (_u *ScrapeRunUpdate) SetInserted(v int) *ScrapeRunUpdate {
	_u.mutation.ResetInserted()
	_u.mutation.SetInserted(v)
	return _u
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableInserted(v *int) *ScrapeRunUpdate {
	if v != nil {
		_u.SetInserted(*v)
	}
	return _u
}

// AddInserted adds value to the "inserted" field.
func (_u *ScrapeRunUpdate) AddInserted(v int) *ScrapeRunUpdate {
	_u.mutation.AddInserted(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *ScrapeRunUpdate) SetUpdated(v int) *ScrapeRunUpdate {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableUpdated(v *int) *ScrapeRunUpdate {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *ScrapeRunUpdate) AddUpdated(v int) *ScrapeRunUpdate {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetDuplicates sets the "duplicates" field.
func (_u *ScrapeRunUpdate) SetDuplicates(v int) *ScrapeRunUpdate {
	_u.mutation.ResetDuplicates()
	_u.mutation.SetDuplicates(v)
	return _u
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableDuplicates(v *int) *ScrapeRunUpdate {
	if v != nil {
		_u.SetDuplicates(*v)
	}
	return _u
}

// AddDuplicates adds value to the "duplicates" field.
func (_u *ScrapeRunUpdate) AddDuplicates(v int) *ScrapeRunUpdate {
	_u.mutation.AddDuplicates(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ScrapeRunUpdate) SetFailed(v int) *ScrapeRunUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableFailed(v *int) *ScrapeRunUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ScrapeRunUpdate) AddFailed(v int) *ScrapeRunUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *ScrapeRunUpdate) SetMessage(v string) *ScrapeRunUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableMessage(v *string) *ScrapeRunUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *ScrapeRunUpdate) ClearMessage() *ScrapeRunUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScrapeRunUpdate) SetFinishedAt(v time.Time) *ScrapeRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScrapeRunUpdate) SetNillableFinishedAt(v *time.Time) *ScrapeRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScrapeRunUpdate) ClearFinishedAt() *ScrapeRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ScrapeRunMutation object of the builder.
func (_u *ScrapeRunUpdate) Mutation() *ScrapeRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScrapeRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScrapeRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScrapeRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScrapeRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScrapeRunUpdate) check() error {
	if v, ok := _u.mutation.SearchQuery(); ok {
		if err := scraperun.SearchQueryValidator(v); err != nil {
			return &ValidationError{Name: "search_query", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.search_query": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := scraperun.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scraperun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScrapeRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scraperun.Table, scraperun.Columns, sqlgraph.NewFieldSpec(scraperun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(scraperun.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(scraperun.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.SearchQuery(); ok {
		_spec.SetField(scraperun.FieldSearchQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(scraperun.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Neighborhoods(); ok {
		_spec.SetField(scraperun.FieldNeighborhoods, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNeighborhoods(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scraperun.FieldNeighborhoods, value)
		})
	}
	if _u.mutation.NeighborhoodsCleared() {
		_spec.ClearField(scraperun.FieldNeighborhoods, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxResults(); ok {
		_spec.SetField(scraperun.FieldMaxResults, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxResults(); ok {
		_spec.AddField(scraperun.FieldMaxResults, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkipDuplicates(); ok {
		_spec.SetField(scraperun.FieldSkipDuplicates, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scraperun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Scraped(); ok {
		_spec.SetField(scraperun.FieldScraped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScraped(); ok {
		_spec.AddField(scraperun.FieldScraped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Inserted(); ok {
		_spec.SetField(scraperun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInserted(); ok {
		_spec.AddField(scraperun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(scraperun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(scraperun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Duplicates(); ok {
		_spec.SetField(scraperun.FieldDuplicates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicates(); ok {
		_spec.AddField(scraperun.FieldDuplicates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(scraperun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(scraperun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(scraperun.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(scraperun.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scraperun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scraperun.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scraperun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScrapeRunUpdateOne is the builder for updating a single ScrapeRun entity.
type ScrapeRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScrapeRunMutation
}

// SetRunID sets the "run_id" field.
func (_u *ScrapeRunUpdateOne) SetRunID(v string) *ScrapeRunUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableRunID(v *string) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *ScrapeRunUpdateOne) ClearRunID() *ScrapeRunUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// SetSearchQuery sets the "search_query" field.
func (_u *ScrapeRunUpdateOne) SetSearchQuery(v string) *ScrapeRunUpdateOne {
	_u.mutation.SetSearchQuery(v)
	return _u
}

// SetNillableSearchQuery sets the "search_query" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableSearchQuery(v *string) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetSearchQuery(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *ScrapeRunUpdateOne) SetCity(v string) *ScrapeRunUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableCity(v *string) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetNeighborhoods sets the "neighborhoods" field.
func (_u *ScrapeRunUpdateOne) SetNeighborhoods(v []string) *ScrapeRunUpdateOne {
	_u.mutation.SetNeighborhoods(v)
	return _u
}

// AppendNeighborhoods appends value to the "neighborhoods" field.
func (_u *ScrapeRunUpdateOne) AppendNeighborhoods(v []string) *ScrapeRunUpdateOne {
	_u.mutation.AppendNeighborhoods(v)
	return _u
}

// ClearNeighborhoods clears the value of the "neighborhoods" field.
func (_u *ScrapeRunUpdateOne) ClearNeighborhoods() *ScrapeRunUpdateOne {
	_u.mutation.ClearNeighborhoods()
	return _u
}

// SetMaxResults sets the "max_results" field.
func (_u *ScrapeRunUpdateOne) SetMaxResults(v int) *ScrapeRunUpdateOne {
	_u.mutation.ResetMaxResults()
	_u.mutation.SetMaxResults(v)
	return _u
}

// SetNillableMaxResults sets the "max_results" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableMaxResults(v *int) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetMaxResults(*v)
	}
	return _u
}

// AddMaxResults adds value to the "max_results" field.
func (_u *ScrapeRunUpdateOne) AddMaxResults(v int) *ScrapeRunUpdateOne {
	_u.mutation.AddMaxResults(v)
	return _u
}

// SetSkipDuplicates sets the "skip_duplicates" field.
func (_u *ScrapeRunUpdateOne) SetSkipDuplicates(v bool) *ScrapeRunUpdateOne {
	_u.mutation.SetSkipDuplicates(v)
	return _u
}

// SetNillableSkipDuplicates sets the "skip_duplicates" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableSkipDuplicates(v *bool) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetSkipDuplicates(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScrapeRunUpdateOne) SetStatus(v scraperun.Status) *ScrapeRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableStatus(v *scraperun.Status) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScraped sets the "scraped" field.
func (_u *ScrapeRunUpdateOne) SetScraped(v int) *ScrapeRunUpdateOne {
	_u.mutation.ResetScraped()
	_u.mutation.SetScraped(v)
	return _u
}

// SetNillableScraped sets the "scraped" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableScraped(v *int) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetScraped(*v)
	}
	return _u
}

// AddScraped adds value to the "scraped" field.
func (_u *ScrapeRunUpdateOne) AddScraped(v int) *ScrapeRunUpdateOne {
	_u.mutation.AddScraped(v)
	return _u
}

// SetInserted sets the "inserted" field.
func (_u *ScrapeRunUpdateOne) SetInserted(v int) *ScrapeRunUpdateOne {
	_u.mutation.ResetInserted()
	_u.mutation.SetInserted(v)
	return _u
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableInserted(v *int) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetInserted(*v)
	}
	return _u
}

// AddInserted adds value to the "inserted" field.
func (_u *ScrapeRunUpdateOne) AddInserted(v int) *ScrapeRunUpdateOne {
	_u.mutation.AddInserted(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *ScrapeRunUpdateOne) SetUpdated(v int) *ScrapeRunUpdateOne {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableUpdated(v *int) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *ScrapeRunUpdateOne) AddUpdated(v int) *ScrapeRunUpdateOne {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetDuplicates sets the "duplicates" field.
func (_u *ScrapeRunUpdateOne) SetDuplicates(v int) *ScrapeRunUpdateOne {
	_u.mutation.ResetDuplicates()
	_u.mutation.SetDuplicates(v)
	return _u
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableDuplicates(v *int) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetDuplicates(*v)
	}
	return _u
}

// AddDuplicates adds value to the "duplicates" field.
func (_u *ScrapeRunUpdateOne) AddDuplicates(v int) *ScrapeRunUpdateOne {
	_u.mutation.AddDuplicates(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *ScrapeRunUpdateOne) SetFailed(v int) *ScrapeRunUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableFailed(v *int) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *ScrapeRunUpdateOne) AddFailed(v int) *ScrapeRunUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *ScrapeRunUpdateOne) SetMessage(v string) *ScrapeRunUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableMessage(v *string) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *ScrapeRunUpdateOne) ClearMessage() *ScrapeRunUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScrapeRunUpdateOne) SetFinishedAt(v time.Time) *ScrapeRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScrapeRunUpdateOne) SetNillableFinishedAt(v *time.Time) *ScrapeRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScrapeRunUpdateOne) ClearFinishedAt() *ScrapeRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the ScrapeRunMutation object of the builder.
func (_u *ScrapeRunUpdateOne) Mutation() *ScrapeRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScrapeRunUpdate builder.
func (_u *ScrapeRunUpdateOne) Where(ps ...predicate.ScrapeRun) *ScrapeRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScrapeRunUpdateOne) Select(field string, fields ...string) *ScrapeRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScrapeRun entity.
func (_u *ScrapeRunUpdateOne) Save(ctx context.Context) (*ScrapeRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScrapeRunUpdateOne) SaveX(ctx context.Context) *ScrapeRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScrapeRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScrapeRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScrapeRunUpdateOne) check() error {
	if v, ok := _u.mutation.SearchQuery(); ok {
		if err := scraperun.SearchQueryValidator(v); err != nil {
			return &ValidationError{Name: "search_query", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.search_query": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := scraperun.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scraperun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScrapeRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScrapeRunUpdateOne) sqlSave(ctx context.Context) (_node *ScrapeRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scraperun.Table, scraperun.Columns, sqlgraph.NewFieldSpec(scraperun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScrapeRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scraperun.FieldID)
		for _, f := range fields {
			if !scraperun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scraperun.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(scraperun.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(scraperun.FieldRunID, field.TypeString)
	}
	if value, ok := _u.mutation.SearchQuery(); ok {
		_spec.SetField(scraperun.FieldSearchQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(scraperun.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Neighborhoods(); ok {
		_spec.SetField(scraperun.FieldNeighborhoods, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNeighborhoods(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, scraperun.FieldNeighborhoods, value)
		})
	}
	if _u.mutation.NeighborhoodsCleared() {
		_spec.ClearField(scraperun.FieldNeighborhoods, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxResults(); ok {
		_spec.SetField(scraperun.FieldMaxResults, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxResults(); ok {
		_spec.AddField(scraperun.FieldMaxResults, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkipDuplicates(); ok {
		_spec.SetField(scraperun.FieldSkipDuplicates, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scraperun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Scraped(); ok {
		_spec.SetField(scraperun.FieldScraped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScraped(); ok {
		_spec.AddField(scraperun.FieldScraped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Inserted(); ok {
		_spec.SetField(scraperun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInserted(); ok {
		_spec.AddField(scraperun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(scraperun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(scraperun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Duplicates(); ok {
		_spec.SetField(scraperun.FieldDuplicates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuplicates(); ok {
		_spec.AddField(scraperun.FieldDuplicates, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(scraperun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(scraperun.FieldFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(scraperun.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(scraperun.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scraperun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scraperun.FieldFinishedAt, field.TypeTime)
	}
	_node = &ScrapeRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scraperun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
