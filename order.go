package mariaql

import (
	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/types"
)

// orderClause gives a statement its ORDER BY methods.
type orderClause[S any] struct {
	self  S
	order clause.Ordering
}

// OrderBy appends expressions without a direction.
func (c *orderClause[S]) OrderBy(exprs ...any) S {
	c.order.Add(types.NoDirection, exprs...)
	return c.self
}

// OrderByAsc appends expressions sorted ascending.
func (c *orderClause[S]) OrderByAsc(exprs ...any) S {
	c.order.Add(types.ASC, exprs...)
	return c.self
}

// OrderByDesc appends expressions sorted descending.
func (c *orderClause[S]) OrderByDesc(exprs ...any) S {
	c.order.Add(types.DESC, exprs...)
	return c.self
}

// OrderByDirection appends expressions with an explicit direction, which is
// validated at render.
func (c *orderClause[S]) OrderByDirection(direction Direction, exprs ...any) S {
	c.order.Add(direction, exprs...)
	return c.self
}
