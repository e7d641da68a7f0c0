package mariaql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// rowSource holds the INTO target and the row source shared by INSERT and
// REPLACE. Exactly one of VALUES, SET or SELECT may be used.
type rowSource[S any] struct {
	self    S
	table   any
	query   Expression
	columns []string
	rows    clause.Rows
	set     clause.Assignments
}

// Into sets the target table.
func (r *rowSource[S]) Into(table any) S {
	r.table = table
	return r.self
}

// Columns sets the column list the rows are written to.
func (r *rowSource[S]) Columns(columns ...string) S {
	r.columns = append(r.columns, columns...)
	return r.self
}

// Values appends one row.
func (r *rowSource[S]) Values(values ...any) S {
	r.rows.Add(values...)
	return r.self
}

// Set assigns a column in the SET form.
func (r *rowSource[S]) Set(column string, value any) S {
	r.set.Set(column, value)
	return r.self
}

// Select uses a query as the row source. query is typically Query(stmt) or
// Sub(fn).
func (r *rowSource[S]) Select(query Expression) S {
	r.query = query
	return r.self
}

func (r *rowSource[S]) reset(clauses []Clause) {
	if resets(clauses, ClauseTable) {
		r.table = nil
	}
	if resets(clauses, ClauseColumns) {
		r.columns = nil
	}
	if resets(clauses, ClauseValues) {
		r.rows.Reset()
	}
	if resets(clauses, ClauseSet) {
		r.set.Reset()
	}
	if resets(clauses, ClauseSelect) {
		r.query = nil
	}
}

func (r *rowSource[S]) render(out *lines, keyword string, ex Executor) error {
	if r.table == nil {
		return render.State(render.ErrMissingClause, keyword, "INTO is required")
	}
	sources := 0
	for _, present := range []bool{r.rows.Len() > 0, r.set.Len() > 0, r.query != nil} {
		if present {
			sources++
		}
	}
	if sources != 1 {
		return render.State(render.ErrRowSourceConflict, keyword, "exactly one of VALUES, SET or SELECT is required")
	}
	if r.set.Len() > 0 && len(r.columns) > 0 {
		return render.State(render.ErrClauseConflict, keyword, "a column list cannot be combined with SET")
	}

	table, err := render.Column(r.table, ex)
	if err != nil {
		return err
	}
	out.add(" INTO " + table)

	if len(r.columns) > 0 {
		columns := make([]string, len(r.columns))
		for i, c := range r.columns {
			columns[i] = render.ProtectIdentifier(c)
		}
		out.add(" (" + strings.Join(columns, ", ") + ")")
	}

	switch {
	case r.rows.Len() > 0:
		values, err := r.rows.Render(ex)
		if err != nil {
			return err
		}
		out.add(values)
	case r.set.Len() > 0:
		set, err := r.set.Render("SET", ex)
		if err != nil {
			return err
		}
		out.add(set)
	default:
		text, err := statementText(r.query, ex)
		if err != nil {
			return err
		}
		out.add(text)
	}
	return nil
}

// statementText renders an expression standing for a whole statement as clause
// lines: no surrounding parentheses, no trailing newline, and the first line
// indented like every other clause.
func statementText(expr Expression, ex Executor) (string, error) {
	var text string
	switch e := expr.(type) {
	case types.Subquery:
		sql, err := render.SubqueryText(e, ex)
		if err != nil {
			return "", err
		}
		text = sql
	case types.Raw:
		text = strings.TrimRight(e.SQL, "\n")
	default:
		return "", &render.ValueTypeError{Type: fmt.Sprintf("%T", expr)}
	}
	if text == "" || strings.HasPrefix(text, " ") {
		return text, nil
	}
	return " " + text, nil
}
