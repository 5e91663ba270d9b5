// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wayplan/wayplan/ent/itinerarydoc"
	"github.com/wayplan/wayplan/ent/predicate"
)

// ItineraryDocDelete is the builder for deleting a ItineraryDoc entity.
type ItineraryDocDelete struct {
	config
	hooks    []Hook
	mutation *ItineraryDocMutation
}

// Where appends a list predicates to the ItineraryDocDelete builder.
func (_d *ItineraryDocDelete) Where(ps ...predicate.ItineraryDoc) *ItineraryDocDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ItineraryDocDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ItineraryDocDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ItineraryDocDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(itinerarydoc.Table, sqlgraph.NewFieldSpec(itinerarydoc.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ItineraryDocDeleteOne is the builder for deleting a single ItineraryDoc entity.
type ItineraryDocDeleteOne struct {
	_d *ItineraryDocDelete
}

// Where appends a list predicates to the ItineraryDocDelete builder.
func (_d *ItineraryDocDeleteOne) Where(ps ...predicate.ItineraryDoc) *ItineraryDocDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ItineraryDocDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{itinerarydoc.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ItineraryDocDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
