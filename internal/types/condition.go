package types

// Glue joins a condition to the one before it.
type Glue string

const (
	AND Glue = "AND"
	OR  Glue = "OR"
)

// Condition is a single WHERE or HAVING predicate.
//
// Column is a string (protected as an identifier) or an Expression. Values
// hold Go scalars or Expressions; their required count depends on Operator.
// For MATCH, Column holds the column list and Values the search text.
type Condition struct {
	Column   any
	Values   []any
	Glue     Glue
	Operator Operator
	Modifier MatchModifier
}
