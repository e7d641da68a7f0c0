package render

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned while rendering unwraps to one of these,
// so callers can branch with errors.Is.
var (
	ErrInvalidOperator         = errors.New("invalid operator")
	ErrArityMismatch           = errors.New("arity mismatch")
	ErrInvalidJoinType         = errors.New("invalid join type")
	ErrInvalidConditionClause  = errors.New("invalid condition clause")
	ErrNaturalJoinHasCondition = errors.New("natural join has condition")
	ErrRowSourceConflict       = errors.New("row source conflict")
	ErrMissingSet              = errors.New("missing set")
	ErrMissingSelect           = errors.New("missing select")
	ErrInvalidLimit            = errors.New("invalid limit")
	ErrInvalidReferenceOption  = errors.New("invalid reference option")
	ErrMissingReferences       = errors.New("missing references")
	ErrUnknownOption           = errors.New("unknown option")
	ErrInvalidOptionValue      = errors.New("invalid option value")
	ErrInvalidOption           = errors.New("invalid option")
	ErrOptionConflict          = errors.New("option conflict")
	ErrMissingClause           = errors.New("missing clause")
	ErrClauseConflict          = errors.New("clause conflict")
	ErrFileExists              = errors.New("file exists")
	ErrInvalidDirection        = errors.New("invalid direction")
	ErrMissingLength           = errors.New("missing length")
	ErrInvalidLength           = errors.New("invalid length")
	ErrAttributeNotAllowed     = errors.New("attribute not allowed")
	ErrConstraintNotAllowed    = errors.New("constraint not allowed")
	ErrMissingColumns          = errors.New("missing columns")
	ErrInvalidIdentifier       = errors.New("invalid identifier")
	ErrInvalidReference        = errors.New("invalid reference")
	ErrNoExecutor              = errors.New("no executor")
	ErrValueType               = errors.New("unsupported value type")
)

// ValidationError reports a value outside an allow-list: an operator, option,
// join type, enum value or table option.
type ValidationError struct {
	Kind   error
	Clause string
	Value  string
	Hint   string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s %q", e.Clause, e.Kind, e.Value)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// Unwrap returns the error kind.
func (e *ValidationError) Unwrap() error { return e.Kind }

// StateError reports a statement whose clauses cannot be combined: a missing
// required clause or two clauses that exclude each other.
type StateError struct {
	Kind   error
	Clause string
	Detail string
}

func (e *StateError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Clause, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Clause, e.Kind)
}

// Unwrap returns the error kind.
func (e *StateError) Unwrap() error { return e.Kind }

// ArityError reports an operator given the wrong number of values.
type ArityError struct {
	Operator string
	Want     string
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("operator %s requires %s, got %d", e.Operator, e.Want, e.Got)
}

// Unwrap returns the error kind.
func (e *ArityError) Unwrap() error { return ErrArityMismatch }

// ValueTypeError reports a Go value that cannot be quoted as a SQL literal.
type ValueTypeError struct {
	Type string
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("cannot quote value of type %s", e.Type)
}

// Unwrap returns the error kind.
func (e *ValueTypeError) Unwrap() error { return ErrValueType }

// Invalid creates a ValidationError.
func Invalid(kind error, clause, value string, hint ...string) error {
	err := &ValidationError{Kind: kind, Clause: clause, Value: value}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// State creates a StateError.
func State(kind error, clause string, detail ...string) error {
	err := &StateError{Kind: kind, Clause: clause}
	if len(detail) > 0 {
		err.Detail = detail[0]
	}
	return err
}
