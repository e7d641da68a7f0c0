package mariaql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// Clause names a resettable part of a statement.
type Clause int

const (
	ClauseOptions Clause = iota + 1
	ClauseExpressions
	ClauseFrom
	ClauseJoin
	ClauseWhere
	ClauseGroupBy
	ClauseHaving
	ClauseOrderBy
	ClauseLimit
	ClauseProcedure
	ClauseInto
	ClauseLock
	ClauseTable
	ClauseColumns
	ClauseValues
	ClauseSet
	ClauseSelect
	ClauseOnDuplicateKeyUpdate
	ClauseReference
)

var clauseNames = map[Clause]string{
	ClauseOptions:              "options",
	ClauseExpressions:          "expressions",
	ClauseFrom:                 "FROM",
	ClauseJoin:                 "JOIN",
	ClauseWhere:                "WHERE",
	ClauseGroupBy:              "GROUP BY",
	ClauseHaving:               "HAVING",
	ClauseOrderBy:              "ORDER BY",
	ClauseLimit:                "LIMIT",
	ClauseProcedure:            "PROCEDURE",
	ClauseInto:                 "INTO",
	ClauseLock:                 "lock",
	ClauseTable:                "table",
	ClauseColumns:              "columns",
	ClauseValues:               "VALUES",
	ClauseSet:                  "SET",
	ClauseSelect:               "SELECT",
	ClauseOnDuplicateKeyUpdate: "ON DUPLICATE KEY UPDATE",
	ClauseReference:            "reference",
}

// String returns the clause name.
func (c Clause) String() string {
	if name, ok := clauseNames[c]; ok {
		return name
	}
	return "unknown"
}

// resets reports whether clause c should be cleared by a Reset call.
// Resetting with no clauses clears everything.
func resets(clauses []Clause, c Clause) bool {
	if len(clauses) == 0 {
		return true
	}
	for _, want := range clauses {
		if want == c {
			return true
		}
	}
	return false
}

// optionsClause gives a statement its keyword options.
type optionsClause[S any] struct {
	self    S
	options []string
}

// Options appends statement options such as DISTINCT or LOW_PRIORITY. Options
// are checked against the statement's allow-list at render.
func (c *optionsClause[S]) Options(options ...string) S {
	c.options = append(c.options, options...)
	return c.self
}

// lines accumulates a statement one clause line at a time. Empty lines are
// skipped; every written line ends with a newline.
type lines struct {
	b strings.Builder
}

func (l *lines) add(line string) {
	if line == "" {
		return
	}
	l.b.WriteString(line)
	l.b.WriteByte('\n')
}

func (l *lines) String() string {
	return l.b.String()
}

func exec(ctx context.Context, ex types.Executor, stmt types.Renderer) (int64, error) {
	if ex == nil {
		return 0, render.State(render.ErrNoExecutor, "exec")
	}
	text, err := stmt.Render()
	if err != nil {
		return 0, err
	}
	return ex.Exec(ctx, text)
}

func query(ctx context.Context, ex types.Executor, stmt types.Renderer) (*sql.Rows, error) {
	if ex == nil {
		return nil, render.State(render.ErrNoExecutor, "query")
	}
	text, err := stmt.Render()
	if err != nil {
		return nil, err
	}
	return ex.Query(ctx, text)
}

func mustRender(stmt types.Renderer) string {
	text, err := stmt.Render()
	if err != nil {
		panic(err)
	}
	return text
}
