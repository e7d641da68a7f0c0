// Package mariaql builds MariaDB statements as text.
//
// Statements are assembled with fluent setters and validated when rendered.
// Identifiers are protected with backticks and values are quoted inline, so
// the rendered text is executable as is; there are no placeholders.
//
// # Basic Usage
//
//	sql, err := mariaql.Select().
//		From("t1").
//		WhereEqual("id", 10).
//		Render()
//	// sql: "SELECT\n *\n FROM `t1`\n WHERE `id` = 10\n"
//
// Each clause renders on its own line below the statement keyword.
//
// # Expressions
//
// A bare string in identifier position (a column, a table) is protected; a
// bare Go value in value position is quoted. Ident, Raw, Value, Sub, Query and
// As swap those defaults:
//
//	mariaql.Select(mariaql.As(mariaql.Count(), "n")).
//		From("orders").
//		WhereIn("customer_id", mariaql.Query(
//			mariaql.Select("id").From("customers").WhereEqual("country", "NL"),
//		))
//
// Raw text is rendered verbatim and must never carry untrusted input.
//
// # Execution
//
// Statements delegate execution to an Executor, typically *driver.Driver:
//
//	db := mariaql.New(drv)
//	n, err := db.Update("users").Set("active", false).WhereLessThan("seen", cutoff).Exec(ctx)
//
// # Schema Definition
//
// CREATE/ALTER/DROP for schemas and tables live in the schema package and are
// reachable from DB for convenience.
//
// # Schema-Validated Names
//
// An Instance built from a DBML project checks table and column names before
// they reach a statement:
//
//	instance, err := mariaql.NewFromDBML(project)
//	users := instance.T("users")
//	email := instance.C("users.email")
package mariaql

import (
	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// Expression is a SQL fragment standing in for an identifier or a value.
type Expression = types.Expression

// Executor runs rendered statements.
type Executor = types.Executor

// Renderer is anything that renders to a complete statement.
type Renderer = types.Renderer

// Operator is a WHERE/HAVING comparison operator.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	EQ         = types.EQ
	NullSafeEQ = types.NullSafeEQ
	NE         = types.NE
	NEAlt      = types.NEAlt
	GT         = types.GT
	GE         = types.GE
	LT         = types.LT
	LE         = types.LE
	LIKE       = types.LIKE
	NotLike    = types.NotLike
	IN         = types.IN
	NotIn      = types.NotIn
	Between    = types.Between
	NotBetween = types.NotBetween
	IsNull     = types.IsNull
	IsNotNull  = types.IsNotNull
	Match      = types.Match
)

// MatchModifier is the search modifier of a full-text MATCH.
type MatchModifier = types.MatchModifier

const (
	MatchNatural          = types.MatchNatural
	MatchNaturalLanguage  = types.MatchNaturalLanguage
	MatchQueryExpansion   = types.MatchQueryExpansion
	MatchBooleanMode      = types.MatchBooleanMode
	MatchNaturalExpansion = types.MatchNaturalExpansion
)

// Glue joins a condition to the previous one.
type Glue = types.Glue

const (
	AND = types.AND
	OR  = types.OR
)

// Condition is a single WHERE or HAVING predicate.
type Condition = types.Condition

// Direction represents sort direction.
type Direction = types.Direction

const (
	NoDirection = types.NoDirection
	ASC         = types.ASC
	DESC        = types.DESC
)

// JoinType is the keyword preceding JOIN.
type JoinType = types.JoinType

const (
	PlainJoin             = types.PlainJoin
	InnerJoin             = types.InnerJoin
	CrossJoin             = types.CrossJoin
	LeftJoin              = types.LeftJoin
	LeftOuterJoin         = types.LeftOuterJoin
	RightJoin             = types.RightJoin
	RightOuterJoin        = types.RightOuterJoin
	NaturalJoin           = types.NaturalJoin
	NaturalLeftJoin       = types.NaturalLeftJoin
	NaturalLeftOuterJoin  = types.NaturalLeftOuterJoin
	NaturalRightJoin      = types.NaturalRightJoin
	NaturalRightOuterJoin = types.NaturalRightOuterJoin
)

// ConditionClause selects ON or USING for a join.
type ConditionClause = types.ConditionClause

const (
	NoCondition = types.NoCondition
	On          = types.On
	Using       = types.Using
)

// Join represents one JOIN clause.
type Join = types.Join

// Error kinds, for use with errors.Is.
var (
	ErrInvalidOperator         = render.ErrInvalidOperator
	ErrArityMismatch           = render.ErrArityMismatch
	ErrInvalidJoinType         = render.ErrInvalidJoinType
	ErrInvalidConditionClause  = render.ErrInvalidConditionClause
	ErrNaturalJoinHasCondition = render.ErrNaturalJoinHasCondition
	ErrRowSourceConflict       = render.ErrRowSourceConflict
	ErrMissingSet              = render.ErrMissingSet
	ErrMissingSelect           = render.ErrMissingSelect
	ErrInvalidLimit            = render.ErrInvalidLimit
	ErrInvalidReferenceOption  = render.ErrInvalidReferenceOption
	ErrMissingReferences       = render.ErrMissingReferences
	ErrUnknownOption           = render.ErrUnknownOption
	ErrInvalidOptionValue      = render.ErrInvalidOptionValue
	ErrInvalidOption           = render.ErrInvalidOption
	ErrOptionConflict          = render.ErrOptionConflict
	ErrMissingClause           = render.ErrMissingClause
	ErrClauseConflict          = render.ErrClauseConflict
	ErrFileExists              = render.ErrFileExists
	ErrInvalidDirection        = render.ErrInvalidDirection
	ErrMissingLength           = render.ErrMissingLength
	ErrInvalidLength           = render.ErrInvalidLength
	ErrAttributeNotAllowed     = render.ErrAttributeNotAllowed
	ErrConstraintNotAllowed    = render.ErrConstraintNotAllowed
	ErrMissingColumns          = render.ErrMissingColumns
	ErrInvalidIdentifier       = render.ErrInvalidIdentifier
	ErrInvalidReference        = render.ErrInvalidReference
	ErrNoExecutor              = render.ErrNoExecutor
	ErrValueType               = render.ErrValueType
	ErrUnknownName             = errUnknownName
)

// Error categories, for use with errors.As.
type (
	ValidationError = render.ValidationError
	StateError      = render.StateError
	ArityError      = render.ArityError
	ValueTypeError  = render.ValueTypeError
)

// ProtectIdentifier quotes a possibly dotted identifier with backticks.
func ProtectIdentifier(name string) string {
	return render.ProtectIdentifier(name)
}

// Quote renders a Go value as a MariaDB literal.
func Quote(value any) (string, error) {
	return render.Quote(value)
}
