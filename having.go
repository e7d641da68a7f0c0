package mariaql

import (
	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/types"
)

// havingClause gives SELECT its HAVING condition methods. HAVING uses the
// same condition model as WHERE under a different keyword.
type havingClause[S any] struct {
	self   S
	having clause.Conditions
}

func (c *havingClause[S]) addHaving(glue types.Glue, column any, op types.Operator, modifier types.MatchModifier, values []any) S {
	c.having.Add(types.Condition{Column: column, Operator: op, Values: values, Glue: glue, Modifier: modifier})
	return c.self
}

// Having appends a condition joined with AND. The operator is validated and
// the value count checked when the statement renders.
func (c *havingClause[S]) Having(column any, operator Operator, values ...any) S {
	return c.addHaving(types.AND, column, operator, types.MatchNatural, values)
}

// OrHaving appends a condition joined with OR.
func (c *havingClause[S]) OrHaving(column any, operator Operator, values ...any) S {
	return c.addHaving(types.OR, column, operator, types.MatchNatural, values)
}

// HavingEqual appends `column = value`.
func (c *havingClause[S]) HavingEqual(column any, value any) S {
	return c.addHaving(types.AND, column, types.EQ, types.MatchNatural, []any{value})
}

// HavingNotEqual appends `column != value`.
func (c *havingClause[S]) HavingNotEqual(column any, value any) S {
	return c.addHaving(types.AND, column, types.NE, types.MatchNatural, []any{value})
}

// HavingNullSafeEqual appends a null-safe `column <=> value` comparison.
func (c *havingClause[S]) HavingNullSafeEqual(column any, value any) S {
	return c.addHaving(types.AND, column, types.NullSafeEQ, types.MatchNatural, []any{value})
}

// HavingLessThan appends `column < value`.
func (c *havingClause[S]) HavingLessThan(column any, value any) S {
	return c.addHaving(types.AND, column, types.LT, types.MatchNatural, []any{value})
}

// HavingLessThanOrEqual appends `column <= value`.
func (c *havingClause[S]) HavingLessThanOrEqual(column any, value any) S {
	return c.addHaving(types.AND, column, types.LE, types.MatchNatural, []any{value})
}

// HavingGreaterThan appends `column > value`.
func (c *havingClause[S]) HavingGreaterThan(column any, value any) S {
	return c.addHaving(types.AND, column, types.GT, types.MatchNatural, []any{value})
}

// HavingGreaterThanOrEqual appends `column >= value`.
func (c *havingClause[S]) HavingGreaterThanOrEqual(column any, value any) S {
	return c.addHaving(types.AND, column, types.GE, types.MatchNatural, []any{value})
}

// HavingLike appends `column LIKE value`.
func (c *havingClause[S]) HavingLike(column any, value any) S {
	return c.addHaving(types.AND, column, types.LIKE, types.MatchNatural, []any{value})
}

// HavingNotLike appends `column NOT LIKE value`.
func (c *havingClause[S]) HavingNotLike(column any, value any) S {
	return c.addHaving(types.AND, column, types.NotLike, types.MatchNatural, []any{value})
}

// HavingIn appends `column IN (values)`. A single Sub or Query value renders as a subquery.
func (c *havingClause[S]) HavingIn(column any, values ...any) S {
	return c.addHaving(types.AND, column, types.IN, types.MatchNatural, values)
}

// HavingNotIn appends `column NOT IN (values)`. A single Sub or Query value renders as a subquery.
func (c *havingClause[S]) HavingNotIn(column any, values ...any) S {
	return c.addHaving(types.AND, column, types.NotIn, types.MatchNatural, values)
}

// HavingBetween appends `column BETWEEN low AND high`.
func (c *havingClause[S]) HavingBetween(column any, low, high any) S {
	return c.addHaving(types.AND, column, types.Between, types.MatchNatural, []any{low, high})
}

// HavingNotBetween appends `column NOT BETWEEN low AND high`.
func (c *havingClause[S]) HavingNotBetween(column any, low, high any) S {
	return c.addHaving(types.AND, column, types.NotBetween, types.MatchNatural, []any{low, high})
}

// HavingIsNull appends `column IS NULL`.
func (c *havingClause[S]) HavingIsNull(column any) S {
	return c.addHaving(types.AND, column, types.IsNull, types.MatchNatural, nil)
}

// HavingIsNotNull appends `column IS NOT NULL`.
func (c *havingClause[S]) HavingIsNotNull(column any) S {
	return c.addHaving(types.AND, column, types.IsNotNull, types.MatchNatural, nil)
}

// HavingMatch appends a full-text search in natural language mode.
func (c *havingClause[S]) HavingMatch(columns []string, against any) S {
	return c.addHaving(types.AND, columns, types.Match, types.MatchNatural, []any{against})
}

// HavingMatchWithQueryExpansion appends a full-text search WITH QUERY EXPANSION.
func (c *havingClause[S]) HavingMatchWithQueryExpansion(columns []string, against any) S {
	return c.addHaving(types.AND, columns, types.Match, types.MatchQueryExpansion, []any{against})
}

// HavingMatchInBooleanMode appends a full-text search IN BOOLEAN MODE.
func (c *havingClause[S]) HavingMatchInBooleanMode(columns []string, against any) S {
	return c.addHaving(types.AND, columns, types.Match, types.MatchBooleanMode, []any{against})
}

// OrHavingEqual is HavingEqual joined with OR.
func (c *havingClause[S]) OrHavingEqual(column any, value any) S {
	return c.addHaving(types.OR, column, types.EQ, types.MatchNatural, []any{value})
}

// OrHavingNotEqual is HavingNotEqual joined with OR.
func (c *havingClause[S]) OrHavingNotEqual(column any, value any) S {
	return c.addHaving(types.OR, column, types.NE, types.MatchNatural, []any{value})
}

// OrHavingNullSafeEqual is HavingNullSafeEqual joined with OR.
func (c *havingClause[S]) OrHavingNullSafeEqual(column any, value any) S {
	return c.addHaving(types.OR, column, types.NullSafeEQ, types.MatchNatural, []any{value})
}

// OrHavingLessThan is HavingLessThan joined with OR.
func (c *havingClause[S]) OrHavingLessThan(column any, value any) S {
	return c.addHaving(types.OR, column, types.LT, types.MatchNatural, []any{value})
}

// OrHavingLessThanOrEqual is HavingLessThanOrEqual joined with OR.
func (c *havingClause[S]) OrHavingLessThanOrEqual(column any, value any) S {
	return c.addHaving(types.OR, column, types.LE, types.MatchNatural, []any{value})
}

// OrHavingGreaterThan is HavingGreaterThan joined with OR.
func (c *havingClause[S]) OrHavingGreaterThan(column any, value any) S {
	return c.addHaving(types.OR, column, types.GT, types.MatchNatural, []any{value})
}

// OrHavingGreaterThanOrEqual is HavingGreaterThanOrEqual joined with OR.
func (c *havingClause[S]) OrHavingGreaterThanOrEqual(column any, value any) S {
	return c.addHaving(types.OR, column, types.GE, types.MatchNatural, []any{value})
}

// OrHavingLike is HavingLike joined with OR.
func (c *havingClause[S]) OrHavingLike(column any, value any) S {
	return c.addHaving(types.OR, column, types.LIKE, types.MatchNatural, []any{value})
}

// OrHavingNotLike is HavingNotLike joined with OR.
func (c *havingClause[S]) OrHavingNotLike(column any, value any) S {
	return c.addHaving(types.OR, column, types.NotLike, types.MatchNatural, []any{value})
}

// OrHavingIn is HavingIn joined with OR.
func (c *havingClause[S]) OrHavingIn(column any, values ...any) S {
	return c.addHaving(types.OR, column, types.IN, types.MatchNatural, values)
}

// OrHavingNotIn is HavingNotIn joined with OR.
func (c *havingClause[S]) OrHavingNotIn(column any, values ...any) S {
	return c.addHaving(types.OR, column, types.NotIn, types.MatchNatural, values)
}

// OrHavingBetween is HavingBetween joined with OR.
func (c *havingClause[S]) OrHavingBetween(column any, low, high any) S {
	return c.addHaving(types.OR, column, types.Between, types.MatchNatural, []any{low, high})
}

// OrHavingNotBetween is HavingNotBetween joined with OR.
func (c *havingClause[S]) OrHavingNotBetween(column any, low, high any) S {
	return c.addHaving(types.OR, column, types.NotBetween, types.MatchNatural, []any{low, high})
}

// OrHavingIsNull is HavingIsNull joined with OR.
func (c *havingClause[S]) OrHavingIsNull(column any) S {
	return c.addHaving(types.OR, column, types.IsNull, types.MatchNatural, nil)
}

// OrHavingIsNotNull is HavingIsNotNull joined with OR.
func (c *havingClause[S]) OrHavingIsNotNull(column any) S {
	return c.addHaving(types.OR, column, types.IsNotNull, types.MatchNatural, nil)
}

// OrHavingMatch is HavingMatch joined with OR.
func (c *havingClause[S]) OrHavingMatch(columns []string, against any) S {
	return c.addHaving(types.OR, columns, types.Match, types.MatchNatural, []any{against})
}

// OrHavingMatchWithQueryExpansion is HavingMatchWithQueryExpansion joined with OR.
func (c *havingClause[S]) OrHavingMatchWithQueryExpansion(columns []string, against any) S {
	return c.addHaving(types.OR, columns, types.Match, types.MatchQueryExpansion, []any{against})
}

// OrHavingMatchInBooleanMode is HavingMatchInBooleanMode joined with OR.
func (c *havingClause[S]) OrHavingMatchInBooleanMode(columns []string, against any) S {
	return c.addHaving(types.OR, columns, types.Match, types.MatchBooleanMode, []any{against})
}
