// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lewisallan/titan-jobs/gen/ent/importbatch"
)

// ImportBatchCreate is the builder for creating a ImportBatch entity.
type ImportBatchCreate struct {
	config
	mutation *ImportBatchMutation
	hooks    []Hook
}

// SetSourceName sets the "source_name" field.
func (_c *ImportBatchCreate) SetSourceName(v string) *ImportBatchCreate {
	_c.mutation.SetSourceName(v)
	return _c
}

// SetRowsScanned sets the "rows_scanned" field.
func (_c *ImportBatchCreate) SetRowsScanned(v int) *ImportBatchCreate {
	_c.mutation.SetRowsScanned(v)
	return _c
}

// SetNillableRowsScanned sets the "rows_scanned" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableRowsScanned(v *int) *ImportBatchCreate {
	if v != nil {
		_c.SetRowsScanned(*v)
	}
	return _c
}

// SetRowsRejected sets the "rows_rejected" field.
func (_c *ImportBatchCreate) SetRowsRejected(v int) *ImportBatchCreate {
	_c.mutation.SetRowsRejected(v)
	return _c
}

// SetNillableRowsRejected sets the "rows_rejected" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableRowsRejected(v *int) *ImportBatchCreate {
	if v != nil {
		_c.SetRowsRejected(*v)
	}
	return _c
}

// SetRowsPersisted sets the "rows_persisted" field.
func (_c *ImportBatchCreate) SetRowsPersisted(v int) *ImportBatchCreate {
	_c.mutation.SetRowsPersisted(v)
	return _c
}

// SetNillableRowsPersisted sets the "rows_persisted" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableRowsPersisted(v *int) *ImportBatchCreate {
	if v != nil {
		_c.SetRowsPersisted(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ImportBatchCreate) SetStartedAt(v time.Time) *ImportBatchCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableStartedAt(v *time.Time) *ImportBatchCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ImportBatchCreate) SetFinishedAt(v time.Time) *ImportBatchCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableFinishedAt(v *time.Time) *ImportBatchCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportBatchCreate) SetErrorMessage(v string) *ImportBatchCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableErrorMessage(v *string) *ImportBatchCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportBatchCreate) SetID(v uuid.UUID) *ImportBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportBatchCreate) SetNillableID(v *uuid.UUID) *ImportBatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ImportBatchMutation object of the builder.
func (_c *ImportBatchCreate) Mutation() *ImportBatchMutation {
	return _c.mutation
}

// Save creates the ImportBatch in the database.
func (_c *ImportBatchCreate) Save(ctx context.Context) (*ImportBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportBatchCreate) SaveX(ctx context.Context) *ImportBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportBatchCreate) defaults() {
	if _, ok := _c.mutation.RowsScanned(); !ok {
		v := importbatch.DefaultRowsScanned
		_c.mutation.SetRowsScanned(v)
	}
	if _, ok := _c.mutation.RowsRejected(); !ok {
		v := importbatch.DefaultRowsRejected
		_c.mutation.SetRowsRejected(v)
	}
	if _, ok := _c.mutation.RowsPersisted(); !ok {
		v := importbatch.DefaultRowsPersisted
		_c.mutation.SetRowsPersisted(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := importbatch.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importbatch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportBatchCreate) check() error {
	if _, ok := _c.mutation.SourceName(); !ok {
		return &ValidationError{Name: "source_name", err: errors.New(`ent: missing required field "ImportBatch.source_name"`)}
	}
	if v, ok := _c.mutation.SourceName(); ok {
		if err := importbatch.SourceNameValidator(v); err != nil {
			return &ValidationError{Name: "source_name", err: fmt.Errorf(`ent: validator failed for field "ImportBatch.source_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowsScanned(); !ok {
		return &ValidationError{Name: "rows_scanned", err: errors.New(`ent: missing required field "ImportBatch.rows_scanned"`)}
	}
	if _, ok := _c.mutation.RowsRejected(); !ok {
		return &ValidationError{Name: "rows_rejected", err: errors.New(`ent: missing required field "ImportBatch.rows_rejected"`)}
	}
	if _, ok := _c.mutation.RowsPersisted(); !ok {
		return &ValidationError{Name: "rows_persisted", err: errors.New(`ent: missing required field "ImportBatch.rows_persisted"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ImportBatch.started_at"`)}
	}
	return nil
}

func (_c *ImportBatchCreate) sqlSave(ctx context.Context) (*ImportBatch, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportBatchCreate) createSpec() (*ImportBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importbatch.Table, sqlgraph.NewFieldSpec(importbatch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceName(); ok {
		_spec.SetField(importbatch.FieldSourceName, field.TypeString, value)
		_node.SourceName = value
	}
	if value, ok := _c.mutation.RowsScanned(); ok {
		_spec.SetField(importbatch.FieldRowsScanned, field.TypeInt, value)
		_node.RowsScanned = value
	}
	if value, ok := _c.mutation.RowsRejected(); ok {
		_spec.SetField(importbatch.FieldRowsRejected, field.TypeInt, value)
		_node.RowsRejected = value
	}
	if value, ok := _c.mutation.RowsPersisted(); ok {
		_spec.SetField(importbatch.FieldRowsPersisted, field.TypeInt, value)
		_node.RowsPersisted = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(importbatch.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(importbatch.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importbatch.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	return _node, _spec
}

// ImportBatchCreateBulk is the builder for creating many ImportBatch entities in bulk.
type ImportBatchCreateBulk struct {
	config
	err      error
	builders []*ImportBatchCreate
}

// Save creates the ImportBatch entities in the database.
func (_c *ImportBatchCreateBulk) Save(ctx context.Context) ([]*ImportBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportBatchMutation)
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
func (_c *ImportBatchCreateBulk) SaveX(ctx context.Context) []*ImportBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
