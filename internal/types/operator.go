package types

import "strings"

// Operator represents a WHERE/HAVING comparison operator.
type Operator string

const (
	// Comparison operators.
	EQ         Operator = "="
	NullSafeEQ Operator = "<=>"
	NE         Operator = "!="
	NEAlt      Operator = "<>"
	GT         Operator = ">"
	GE         Operator = ">="
	LT         Operator = "<"
	LE         Operator = "<="
	LIKE       Operator = "LIKE"
	NotLike    Operator = "NOT LIKE"
	IN         Operator = "IN"
	NotIn      Operator = "NOT IN"
	Between    Operator = "BETWEEN"
	NotBetween Operator = "NOT BETWEEN"
	IsNull     Operator = "IS NULL"
	IsNotNull  Operator = "IS NOT NULL"
	Match      Operator = "MATCH"
)

// OperatorClass groups operators by how their values are rendered.
type OperatorClass int

const (
	ClassInvalid OperatorClass = iota
	ClassSingle                // exactly one value
	ClassList                  // one or more values, parenthesised
	ClassRange                 // exactly two values joined with AND
	ClassNull                  // no values
	ClassMatch                 // full-text search
)

var operatorClasses = map[Operator]OperatorClass{
	EQ:         ClassSingle,
	NullSafeEQ: ClassSingle,
	NE:         ClassSingle,
	NEAlt:      ClassSingle,
	GT:         ClassSingle,
	GE:         ClassSingle,
	LT:         ClassSingle,
	LE:         ClassSingle,
	LIKE:       ClassSingle,
	NotLike:    ClassSingle,
	IN:         ClassList,
	NotIn:      ClassList,
	Between:    ClassRange,
	NotBetween: ClassRange,
	IsNull:     ClassNull,
	IsNotNull:  ClassNull,
	Match:      ClassMatch,
}

// Normalize upper-cases the operator and collapses inner whitespace.
func (op Operator) Normalize() Operator {
	return Operator(strings.Join(strings.Fields(strings.ToUpper(string(op))), " "))
}

// Class returns the rendering class of the operator, or ClassInvalid when the
// operator is not in the allow-list.
func (op Operator) Class() OperatorClass {
	return operatorClasses[op.Normalize()]
}

// MatchModifier is the optional search modifier of a full-text MATCH.
type MatchModifier string

const (
	MatchNatural          MatchModifier = ""
	MatchNaturalLanguage  MatchModifier = "IN NATURAL LANGUAGE MODE"
	MatchQueryExpansion   MatchModifier = "WITH QUERY EXPANSION"
	MatchBooleanMode      MatchModifier = "IN BOOLEAN MODE"
	MatchNaturalExpansion MatchModifier = "IN NATURAL LANGUAGE MODE WITH QUERY EXPANSION"
)
