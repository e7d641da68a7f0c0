package mariaql

import (
	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/types"
)

// joinClause gives a statement its JOIN methods. Joins render in the order
// they were added.
type joinClause[S any] struct {
	self  S
	joins clause.Joins
}

// AddJoin appends a fully specified join.
func (c *joinClause[S]) AddJoin(join Join) S {
	c.joins.Add(join)
	return c.self
}

func (c *joinClause[S]) on(jt types.JoinType, table any, condition Expression) S {
	return c.AddJoin(types.Join{Table: table, Type: jt, Clause: types.On, Condition: condition})
}

func (c *joinClause[S]) using(jt types.JoinType, table any, columns []string) S {
	return c.AddJoin(types.Join{Table: table, Type: jt, Clause: types.Using, Columns: columns})
}

func (c *joinClause[S]) bare(jt types.JoinType, table any) S {
	return c.AddJoin(types.Join{Table: table, Type: jt})
}

// Join appends a plain JOIN without a condition.
func (c *joinClause[S]) Join(table any) S { return c.bare(types.PlainJoin, table) }

// JoinOn appends `JOIN table ON condition`.
func (c *joinClause[S]) JoinOn(table any, condition Expression) S {
	return c.on(types.PlainJoin, table, condition)
}

// JoinUsing appends `JOIN table USING (columns)`.
func (c *joinClause[S]) JoinUsing(table any, columns ...string) S {
	return c.using(types.PlainJoin, table, columns)
}

// InnerJoinOn appends `INNER JOIN table ON condition`.
func (c *joinClause[S]) InnerJoinOn(table any, condition Expression) S {
	return c.on(types.InnerJoin, table, condition)
}

// InnerJoinUsing appends `INNER JOIN table USING (columns)`.
func (c *joinClause[S]) InnerJoinUsing(table any, columns ...string) S {
	return c.using(types.InnerJoin, table, columns)
}

// CrossJoin appends a CROSS JOIN without a condition.
func (c *joinClause[S]) CrossJoin(table any) S { return c.bare(types.CrossJoin, table) }

// CrossJoinOn appends `CROSS JOIN table ON condition`.
func (c *joinClause[S]) CrossJoinOn(table any, condition Expression) S {
	return c.on(types.CrossJoin, table, condition)
}

// CrossJoinUsing appends `CROSS JOIN table USING (columns)`.
func (c *joinClause[S]) CrossJoinUsing(table any, columns ...string) S {
	return c.using(types.CrossJoin, table, columns)
}

// LeftJoinOn appends `LEFT JOIN table ON condition`.
func (c *joinClause[S]) LeftJoinOn(table any, condition Expression) S {
	return c.on(types.LeftJoin, table, condition)
}

// LeftJoinUsing appends `LEFT JOIN table USING (columns)`.
func (c *joinClause[S]) LeftJoinUsing(table any, columns ...string) S {
	return c.using(types.LeftJoin, table, columns)
}

// LeftOuterJoinOn appends `LEFT OUTER JOIN table ON condition`.
func (c *joinClause[S]) LeftOuterJoinOn(table any, condition Expression) S {
	return c.on(types.LeftOuterJoin, table, condition)
}

// LeftOuterJoinUsing appends `LEFT OUTER JOIN table USING (columns)`.
func (c *joinClause[S]) LeftOuterJoinUsing(table any, columns ...string) S {
	return c.using(types.LeftOuterJoin, table, columns)
}

// RightJoinOn appends `RIGHT JOIN table ON condition`.
func (c *joinClause[S]) RightJoinOn(table any, condition Expression) S {
	return c.on(types.RightJoin, table, condition)
}

// RightJoinUsing appends `RIGHT JOIN table USING (columns)`.
func (c *joinClause[S]) RightJoinUsing(table any, columns ...string) S {
	return c.using(types.RightJoin, table, columns)
}

// RightOuterJoinOn appends `RIGHT OUTER JOIN table ON condition`.
func (c *joinClause[S]) RightOuterJoinOn(table any, condition Expression) S {
	return c.on(types.RightOuterJoin, table, condition)
}

// RightOuterJoinUsing appends `RIGHT OUTER JOIN table USING (columns)`.
func (c *joinClause[S]) RightOuterJoinUsing(table any, columns ...string) S {
	return c.using(types.RightOuterJoin, table, columns)
}

// NaturalJoin appends a NATURAL JOIN. Natural joins never take a condition.
func (c *joinClause[S]) NaturalJoin(table any) S { return c.bare(types.NaturalJoin, table) }

// NaturalLeftJoin appends a NATURAL LEFT JOIN.
func (c *joinClause[S]) NaturalLeftJoin(table any) S { return c.bare(types.NaturalLeftJoin, table) }

// NaturalLeftOuterJoin appends a NATURAL LEFT OUTER JOIN.
func (c *joinClause[S]) NaturalLeftOuterJoin(table any) S {
	return c.bare(types.NaturalLeftOuterJoin, table)
}

// NaturalRightJoin appends a NATURAL RIGHT JOIN.
func (c *joinClause[S]) NaturalRightJoin(table any) S { return c.bare(types.NaturalRightJoin, table) }

// NaturalRightOuterJoin appends a NATURAL RIGHT OUTER JOIN.
func (c *joinClause[S]) NaturalRightOuterJoin(table any) S {
	return c.bare(types.NaturalRightOuterJoin, table)
}
