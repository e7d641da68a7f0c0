package mariaql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// WithRecursive turns the common table expressions into recursive ones.
const WithRecursive = "RECURSIVE"

var withOptions = clause.OptionSet{
	Clause:  "WITH",
	Allowed: []string{WithRecursive},
}

type reference struct {
	query Expression
	name  string
}

// WithStatement builds a WITH statement: named common table expressions
// followed by the SELECT that uses them.
type WithStatement struct {
	optionsClause[*WithStatement]

	executor   Executor
	query      Expression
	references []reference
}

// With starts a WITH statement.
func With() *WithStatement {
	s := &WithStatement{}
	s.optionsClause.self = s
	return s
}

// Bind sets the executor used by Query.
func (s *WithStatement) Bind(ex Executor) *WithStatement {
	s.executor = ex
	return s
}

// Recursive sets the RECURSIVE option.
func (s *WithStatement) Recursive() *WithStatement {
	return s.Options(WithRecursive)
}

// Reference binds name to a query, typically Query(stmt) or Sub(fn).
func (s *WithStatement) Reference(name string, query Expression) *WithStatement {
	s.references = append(s.references, reference{name: name, query: query})
	return s
}

// Select sets the final query.
func (s *WithStatement) Select(query Expression) *WithStatement {
	s.query = query
	return s
}

// Reset clears the named clauses, or every clause when none are given.
func (s *WithStatement) Reset(clauses ...Clause) *WithStatement {
	if resets(clauses, ClauseOptions) {
		s.options = nil
	}
	if resets(clauses, ClauseReference) {
		s.references = nil
	}
	if resets(clauses, ClauseSelect) {
		s.query = nil
	}
	return s
}

// Render renders the references followed by the final SELECT.
func (s *WithStatement) Render() (string, error) {
	ex := s.executor
	if len(s.references) == 0 {
		return "", render.State(render.ErrMissingClause, "WITH", "at least one reference is required")
	}
	if s.query == nil {
		return "", render.State(render.ErrMissingSelect, "WITH", "SELECT is required")
	}

	var out lines
	out.add("WITH")

	opts, err := withOptions.Render(s.options)
	if err != nil {
		return "", err
	}
	out.add(opts)

	refs := make([]string, 0, len(s.references))
	for _, ref := range s.references {
		text, err := referenceText(ref, ex)
		if err != nil {
			return "", err
		}
		refs = append(refs, " "+render.ProtectIdentifier(ref.name)+" AS "+text)
	}
	out.add(strings.Join(refs, ",\n"))

	text, err := statementText(s.query, ex)
	if err != nil {
		return "", err
	}
	out.add(text)

	return out.String(), nil
}

// referenceText renders the parenthesised query of a common table expression.
// Only subqueries and raw SELECT text can stand for one.
func referenceText(ref reference, ex Executor) (string, error) {
	switch q := ref.query.(type) {
	case types.Subquery:
		return render.Expression(q, ex)
	case types.Raw:
		return "(" + strings.TrimRight(q.SQL, "\n") + ")", nil
	default:
		return "", render.Invalid(render.ErrInvalidReference, "WITH", ref.name, fmt.Sprintf("%T is not a query", ref.query))
	}
}

// MustRender renders the statement and panics on error.
func (s *WithStatement) MustRender() string {
	return mustRender(s)
}

// Query renders the statement and runs it on the bound executor.
func (s *WithStatement) Query(ctx context.Context) (*sql.Rows, error) {
	return query(ctx, s.executor, s)
}
