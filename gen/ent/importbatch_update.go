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
	"github.com/lewisallan/titan-jobs/gen/ent/importbatch"
	"github.com/lewisallan/titan-jobs/gen/ent/predicate"
)

// ImportBatchUpdate is the builder for updating ImportBatch entities.
type ImportBatchUpdate struct {
	config
	hooks    []Hook
	mutation *ImportBatchMutation
}

// Where appends a list predicates to the ImportBatchUpdate builder.
func (_u *ImportBatchUpdate) Where(ps ...predicate.ImportBatch) *ImportBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceName sets the "source_name" field.
func (_u *ImportBatchUpdate) SetSourceName(v string) *ImportBatchUpdate {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableSourceName(v *string) *ImportBatchUpdate {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetRowsScanned sets the "rows_scanned" field.
func (_u *ImportBatchUpdate) SetRowsScanned(v int) *ImportBatchUpdate {
	_u.mutation.ResetRowsScanned()
	_u.mutation.SetRowsScanned(v)
	return _u
}

// SetNillableRowsScanned sets the "rows_scanned" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableRowsScanned(v *int) *ImportBatchUpdate {
	if v != nil {
		_u.SetRowsScanned(*v)
	}
	return _u
}

// AddRowsScanned adds value to the "rows_scanned" field.
func (_u *ImportBatchUpdate) AddRowsScanned(v int) *ImportBatchUpdate {
	_u.mutation.AddRowsScanned(v)
	return _u
}

// SetRowsRejected sets the "rows_rejected" field.
func (_u *ImportBatchUpdate) SetRowsRejected(v int) *ImportBatchUpdate {
	_u.mutation.ResetRowsRejected()
	_u.mutation.SetRowsRejected(v)
	return _u
}

// SetNillableRowsRejected sets the "rows_rejected" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableRowsRejected(v *int) *ImportBatchUpdate {
	if v != nil {
		_u.SetRowsRejected(*v)
	}
	return _u
}

// AddRowsRejected adds value to the "rows_rejected" field.
func (_u *ImportBatchUpdate) AddRowsRejected(v int) *ImportBatchUpdate {
	_u.mutation.AddRowsRejected(v)
	return _u
}

// SetRowsPersisted sets the "rows_persisted" field.
func (_u *ImportBatchUpdate) SetRowsPersisted(v int) *ImportBatchUpdate {
	_u.mutation.ResetRowsPersisted()
	_u.mutation.SetRowsPersisted(v)
	return _u
}

// SetNillableRowsPersisted sets the "rows_persisted" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableRowsPersisted(v *int) *ImportBatchUpdate {
	if v != nil {
		_u.SetRowsPersisted(*v)
	}
	return _u
}

// AddRowsPersisted adds value to the "rows_persisted" field.
func (_u *ImportBatchUpdate) AddRowsPersisted(v int) *ImportBatchUpdate {
	_u.mutation.AddRowsPersisted(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportBatchUpdate) SetFinishedAt(v time.Time) *ImportBatchUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableFinishedAt(v *time.Time) *ImportBatchUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportBatchUpdate) ClearFinishedAt() *ImportBatchUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportBatchUpdate) SetErrorMessage(v string) *ImportBatchUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportBatchUpdate) SetNillableErrorMessage(v *string) *ImportBatchUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportBatchUpdate) ClearErrorMessage() *ImportBatchUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ImportBatchMutation object of the builder.
func (_u *ImportBatchUpdate) Mutation() *ImportBatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportBatchUpdate) check() error {
	if v, ok := _u.mutation.SourceName(); ok {
		if err := importbatch.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.source_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importbatch.Table, importbatch.Columns, sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(importbatch.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowsScanned(); ok {
		_spec.SetField(importbatch.FieldRowsScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsScanned(); ok {
		_spec.AddField(importbatch.FieldRowsScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsRejected(); ok {
		_spec.SetField(importbatch.FieldRowsRejected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsRejected(); ok {
		_spec.AddField(importbatch.FieldRowsRejected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsPersisted(); ok {
		_spec.SetField(importbatch.FieldRowsPersisted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsPersisted(); ok {
		_spec.AddField(importbatch.FieldRowsPersisted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importbatch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importbatch.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importbatch.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importbatch.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportBatchUpdateOne is the builder for updating a single ImportBatch entity.
type ImportBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportBatchMutation
}

// SetSourceName sets the "source_name" field.
func (_u *ImportBatchUpdateOne) SetSourceName(v string) *ImportBatchUpdateOne {
	_u.mutation.SetSourceName(v)
	return _u
}

// SetNillableSourceName sets the "source_name" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableSourceName(v *string) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetSourceName(*v)
	}
	return _u
}

// SetRowsScanned sets the "rows_scanned" field.
func (_u *ImportBatchUpdateOne) SetRowsScanned(v int) *ImportBatchUpdateOne {
	_u.mutation.ResetRowsScanned()
	_u.mutation.SetRowsScanned(v)
	return _u
}

// SetNillableRowsScanned sets the "rows_scanned" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableRowsScanned(v *int) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetRowsScanned(*v)
	}
	return _u
}

// AddRowsScanned adds value to the "rows_scanned" field.
func (_u *ImportBatchUpdateOne) AddRowsScanned(v int) *ImportBatchUpdateOne {
	_u.mutation.AddRowsScanned(v)
	return _u
}

// SetRowsRejected sets the "rows_rejected" field.
func (_u *ImportBatchUpdateOne) SetRowsRejected(v int) *ImportBatchUpdateOne {
	_u.mutation.ResetRowsRejected()
	_u.mutation.SetRowsRejected(v)
	return _u
}

// SetNillableRowsRejected sets the "rows_rejected" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableRowsRejected(v *int) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetRowsRejected(*v)
	}
	return _u
}

// AddRowsRejected adds value to the "rows_rejected" field.
func (_u *ImportBatchUpdateOne) AddRowsRejected(v int) *ImportBatchUpdateOne {
	_u.mutation.AddRowsRejected(v)
	return _u
}

// SetRowsPersisted sets the "rows_persisted" field.
func (_u *ImportBatchUpdateOne) SetRowsPersisted(v int) *ImportBatchUpdateOne {
	_u.mutation.ResetRowsPersisted()
	_u.mutation.SetRowsPersisted(v)
	return _u
}

// SetNillableRowsPersisted sets the "rows_persisted" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableRowsPersisted(v *int) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetRowsPersisted(*v)
	}
	return _u
}

// AddRowsPersisted adds value to the "rows_persisted" field.
func (_u *ImportBatchUpdateOne) AddRowsPersisted(v int) *ImportBatchUpdateOne {
	_u.mutation.AddRowsPersisted(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ImportBatchUpdateOne) SetFinishedAt(v time.Time) *ImportBatchUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableFinishedAt(v *time.Time) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ImportBatchUpdateOne) ClearFinishedAt() *ImportBatchUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportBatchUpdateOne) SetErrorMessage(v string) *ImportBatchUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportBatchUpdateOne) SetNillableErrorMessage(v *string) *ImportBatchUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportBatchUpdateOne) ClearErrorMessage() *ImportBatchUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ImportBatchMutation object of the builder.
func (_u *ImportBatchUpdateOne) Mutation() *ImportBatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImportBatchUpdate builder.
func (_u *ImportBatchUpdateOne) Where(ps ...predicate.ImportBatch) *ImportBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportBatchUpdateOne) Select(field string, fields ...string) *ImportBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportBatch entity.
func (_u *ImportBatchUpdateOne) Save(ctx context.Context) (*ImportBatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportBatchUpdateOne) SaveX(ctx context.Context) *ImportBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportBatchUpdateOne) check() error {
	if v, ok := _u.mutation.SourceName(); ok {
		if err := importbatch.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.source_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportBatchUpdateOne) sqlSave(ctx context.Context) (_node *ImportBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importbatch.Table, importbatch.Columns, sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importbatch.FieldID)
		for _, f := range fields {
			if !importbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importbatch.FieldID {
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
	if value, ok := _u.mutation.SourceName(); ok {
		_spec.SetField(importbatch.FieldSourceName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RowsScanned(); ok {
		_spec.SetField(importbatch.FieldRowsScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsScanned(); ok {
		_spec.AddField(importbatch.FieldRowsScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsRejected(); ok {
		_spec.SetField(importbatch.FieldRowsRejected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsRejected(); ok {
		_spec.AddField(importbatch.FieldRowsRejected, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowsPersisted(); ok {
		_spec.SetField(importbatch.FieldRowsPersisted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowsPersisted(); ok {
		_spec.AddField(importbatch.FieldRowsPersisted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(importbatch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(importbatch.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importbatch.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importbatch.FieldErrorMessage, field.TypeString)
	}
	_node = &ImportBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
