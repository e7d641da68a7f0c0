package types

import "strings"

// JoinType represents the keyword preceding JOIN.
type JoinType string

const (
	PlainJoin             JoinType = ""
	InnerJoin             JoinType = "INNER"
	CrossJoin             JoinType = "CROSS"
	LeftJoin              JoinType = "LEFT"
	LeftOuterJoin         JoinType = "LEFT OUTER"
	RightJoin             JoinType = "RIGHT"
	RightOuterJoin        JoinType = "RIGHT OUTER"
	NaturalJoin           JoinType = "NATURAL"
	NaturalLeftJoin       JoinType = "NATURAL LEFT"
	NaturalLeftOuterJoin  JoinType = "NATURAL LEFT OUTER"
	NaturalRightJoin      JoinType = "NATURAL RIGHT"
	NaturalRightOuterJoin JoinType = "NATURAL RIGHT OUTER"
)

var joinTypes = map[JoinType]bool{
	PlainJoin:             true,
	InnerJoin:             true,
	CrossJoin:             true,
	LeftJoin:              true,
	LeftOuterJoin:         true,
	RightJoin:             true,
	RightOuterJoin:        true,
	NaturalJoin:           true,
	NaturalLeftJoin:       true,
	NaturalLeftOuterJoin:  true,
	NaturalRightJoin:      true,
	NaturalRightOuterJoin: true,
}

// Normalize upper-cases the join type and collapses inner whitespace.
func (t JoinType) Normalize() JoinType {
	return JoinType(strings.Join(strings.Fields(strings.ToUpper(string(t))), " "))
}

// Valid reports whether the join type is in the allow-list.
func (t JoinType) Valid() bool {
	return joinTypes[t.Normalize()]
}

// Natural reports whether the join type belongs to the NATURAL family.
func (t JoinType) Natural() bool {
	return strings.HasPrefix(string(t.Normalize()), "NATURAL")
}

// ConditionClause selects how a join condition is expressed.
type ConditionClause string

const (
	NoCondition ConditionClause = ""
	On          ConditionClause = "ON"
	Using       ConditionClause = "USING"
)

// Join represents one JOIN clause.
//
// For ON, Condition holds an Expression (typically Raw or Subquery). For
// USING, Columns holds the column names.
type Join struct {
	Table     any
	Condition Expression
	Type      JoinType
	Clause    ConditionClause
	Columns   []string
}
