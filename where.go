package mariaql

import (
	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/types"
)

// whereClause gives a statement its WHERE condition methods.
type whereClause[S any] struct {
	self  S
	where clause.Conditions
}

func (c *whereClause[S]) addWhere(glue types.Glue, column any, op types.Operator, modifier types.MatchModifier, values []any) S {
	c.where.Add(types.Condition{Column: column, Operator: op, Values: values, Glue: glue, Modifier: modifier})
	return c.self
}

// Where appends a condition joined with AND. The operator is validated and
// the value count checked when the statement renders.
func (c *whereClause[S]) Where(column any, operator Operator, values ...any) S {
	return c.addWhere(types.AND, column, operator, types.MatchNatural, values)
}

// OrWhere appends a condition joined with OR.
func (c *whereClause[S]) OrWhere(column any, operator Operator, values ...any) S {
	return c.addWhere(types.OR, column, operator, types.MatchNatural, values)
}

// WhereEqual appends `column = value`.
func (c *whereClause[S]) WhereEqual(column any, value any) S {
	return c.addWhere(types.AND, column, types.EQ, types.MatchNatural, []any{value})
}

// WhereNotEqual appends `column != value`.
func (c *whereClause[S]) WhereNotEqual(column any, value any) S {
	return c.addWhere(types.AND, column, types.NE, types.MatchNatural, []any{value})
}

// WhereNullSafeEqual appends a null-safe `column <=> value` comparison.
func (c *whereClause[S]) WhereNullSafeEqual(column any, value any) S {
	return c.addWhere(types.AND, column, types.NullSafeEQ, types.MatchNatural, []any{value})
}

// WhereLessThan appends `column < value`.
func (c *whereClause[S]) WhereLessThan(column any, value any) S {
	return c.addWhere(types.AND, column, types.LT, types.MatchNatural, []any{value})
}

// WhereLessThanOrEqual appends `column <= value`.
func (c *whereClause[S]) WhereLessThanOrEqual(column any, value any) S {
	return c.addWhere(types.AND, column, types.LE, types.MatchNatural, []any{value})
}

// WhereGreaterThan appends `column > value`.
func (c *whereClause[S]) WhereGreaterThan(column any, value any) S {
	return c.addWhere(types.AND, column, types.GT, types.MatchNatural, []any{value})
}

// WhereGreaterThanOrEqual appends `column >= value`.
func (c *whereClause[S]) WhereGreaterThanOrEqual(column any, value any) S {
	return c.addWhere(types.AND, column, types.GE, types.MatchNatural, []any{value})
}

// WhereLike appends `column LIKE value`.
func (c *whereClause[S]) WhereLike(column any, value any) S {
	return c.addWhere(types.AND, column, types.LIKE, types.MatchNatural, []any{value})
}

// WhereNotLike appends `column NOT LIKE value`.
func (c *whereClause[S]) WhereNotLike(column any, value any) S {
	return c.addWhere(types.AND, column, types.NotLike, types.MatchNatural, []any{value})
}

// WhereIn appends `column IN (values)`. A single Sub or Query value renders as a subquery.
func (c *whereClause[S]) WhereIn(column any, values ...any) S {
	return c.addWhere(types.AND, column, types.IN, types.MatchNatural, values)
}

// WhereNotIn appends `column NOT IN (values)`. A single Sub or Query value renders as a subquery.
func (c *whereClause[S]) WhereNotIn(column any, values ...any) S {
	return c.addWhere(types.AND, column, types.NotIn, types.MatchNatural, values)
}

// WhereBetween appends `column BETWEEN low AND high`.
func (c *whereClause[S]) WhereBetween(column any, low, high any) S {
	return c.addWhere(types.AND, column, types.Between, types.MatchNatural, []any{low, high})
}

// WhereNotBetween appends `column NOT BETWEEN low AND high`.
func (c *whereClause[S]) WhereNotBetween(column any, low, high any) S {
	return c.addWhere(types.AND, column, types.NotBetween, types.MatchNatural, []any{low, high})
}

// WhereIsNull appends `column IS NULL`.
func (c *whereClause[S]) WhereIsNull(column any) S {
	return c.addWhere(types.AND, column, types.IsNull, types.MatchNatural, nil)
}

// WhereIsNotNull appends `column IS NOT NULL`.
func (c *whereClause[S]) WhereIsNotNull(column any) S {
	return c.addWhere(types.AND, column, types.IsNotNull, types.MatchNatural, nil)
}

// WhereMatch appends a full-text search in natural language mode.
func (c *whereClause[S]) WhereMatch(columns []string, against any) S {
	return c.addWhere(types.AND, columns, types.Match, types.MatchNatural, []any{against})
}

// WhereMatchWithQueryExpansion appends a full-text search WITH QUERY EXPANSION.
func (c *whereClause[S]) WhereMatchWithQueryExpansion(columns []string, against any) S {
	return c.addWhere(types.AND, columns, types.Match, types.MatchQueryExpansion, []any{against})
}

// WhereMatchInBooleanMode appends a full-text search IN BOOLEAN MODE.
func (c *whereClause[S]) WhereMatchInBooleanMode(columns []string, against any) S {
	return c.addWhere(types.AND, columns, types.Match, types.MatchBooleanMode, []any{against})
}

// OrWhereEqual is WhereEqual joined with OR.
func (c *whereClause[S]) OrWhereEqual(column any, value any) S {
	return c.addWhere(types.OR, column, types.EQ, types.MatchNatural, []any{value})
}

// OrWhereNotEqual is WhereNotEqual joined with OR.
func (c *whereClause[S]) OrWhereNotEqual(column any, value any) S {
	return c.addWhere(types.OR, column, types.NE, types.MatchNatural, []any{value})
}

// OrWhereNullSafeEqual is WhereNullSafeEqual joined with OR.
func (c *whereClause[S]) OrWhereNullSafeEqual(column any, value any) S {
	return c.addWhere(types.OR, column, types.NullSafeEQ, types.MatchNatural, []any{value})
}

// OrWhereLessThan is WhereLessThan joined with OR.
func (c *whereClause[S]) OrWhereLessThan(column any, value any) S {
	return c.addWhere(types.OR, column, types.LT, types.MatchNatural, []any{value})
}

// OrWhereLessThanOrEqual is WhereLessThanOrEqual joined with OR.
func (c *whereClause[S]) OrWhereLessThanOrEqual(column any, value any) S {
	return c.addWhere(types.OR, column, types.LE, types.MatchNatural, []any{value})
}

// OrWhereGreaterThan is WhereGreaterThan joined with OR.
func (c *whereClause[S]) OrWhereGreaterThan(column any, value any) S {
	return c.addWhere(types.OR, column, types.GT, types.MatchNatural, []any{value})
}

// OrWhereGreaterThanOrEqual is WhereGreaterThanOrEqual joined with OR.
func (c *whereClause[S]) OrWhereGreaterThanOrEqual(column any, value any) S {
	return c.addWhere(types.OR, column, types.GE, types.MatchNatural, []any{value})
}

// OrWhereLike is WhereLike joined with OR.
func (c *whereClause[S]) OrWhereLike(column any, value any) S {
	return c.addWhere(types.OR, column, types.LIKE, types.MatchNatural, []any{value})
}

// OrWhereNotLike is WhereNotLike joined with OR.
func (c *whereClause[S]) OrWhereNotLike(column any, value any) S {
	return c.addWhere(types.OR, column, types.NotLike, types.MatchNatural, []any{value})
}

// OrWhereIn is WhereIn joined with OR.
func (c *whereClause[S]) OrWhereIn(column any, values ...any) S {
	return c.addWhere(types.OR, column, types.IN, types.MatchNatural, values)
}

// OrWhereNotIn is WhereNotIn joined with OR.
func (c *whereClause[S]) OrWhereNotIn(column any, values ...any) S {
	return c.addWhere(types.OR, column, types.NotIn, types.MatchNatural, values)
}

// OrWhereBetween is WhereBetween joined with OR.
func (c *whereClause[S]) OrWhereBetween(column any, low, high any) S {
	return c.addWhere(types.OR, column, types.Between, types.MatchNatural, []any{low, high})
}

// OrWhereNotBetween is WhereNotBetween joined with OR.
func (c *whereClause[S]) OrWhereNotBetween(column any, low, high any) S {
	return c.addWhere(types.OR, column, types.NotBetween, types.MatchNatural, []any{low, high})
}

// OrWhereIsNull is WhereIsNull joined with OR.
func (c *whereClause[S]) OrWhereIsNull(column any) S {
	return c.addWhere(types.OR, column, types.IsNull, types.MatchNatural, nil)
}

// OrWhereIsNotNull is WhereIsNotNull joined with OR.
func (c *whereClause[S]) OrWhereIsNotNull(column any) S {
	return c.addWhere(types.OR, column, types.IsNotNull, types.MatchNatural, nil)
}

// OrWhereMatch is WhereMatch joined with OR.
func (c *whereClause[S]) OrWhereMatch(columns []string, against any) S {
	return c.addWhere(types.OR, columns, types.Match, types.MatchNatural, []any{against})
}

// OrWhereMatchWithQueryExpansion is WhereMatchWithQueryExpansion joined with OR.
func (c *whereClause[S]) OrWhereMatchWithQueryExpansion(columns []string, against any) S {
	return c.addWhere(types.OR, columns, types.Match, types.MatchQueryExpansion, []any{against})
}

// OrWhereMatchInBooleanMode is WhereMatchInBooleanMode joined with OR.
func (c *whereClause[S]) OrWhereMatchInBooleanMode(columns []string, against any) S {
	return c.addWhere(types.OR, columns, types.Match, types.MatchBooleanMode, []any{against})
}
