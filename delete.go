package mariaql

import (
	"context"
	"slices"

	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/render"
)

// DELETE options.
const (
	DeleteLowPriority = "LOW_PRIORITY"
	DeleteQuick       = "QUICK"
	DeleteIgnore      = "IGNORE"
)

var deleteOptions = clause.OptionSet{
	Clause:  "DELETE",
	Allowed: []string{DeleteLowPriority, DeleteQuick, DeleteIgnore},
}

// DeleteStatement builds a DELETE statement. Tables listed with Table select
// the multi-table form: rows are deleted from those tables only.
type DeleteStatement struct {
	optionsClause[*DeleteStatement]
	joinClause[*DeleteStatement]
	whereClause[*DeleteStatement]
	orderClause[*DeleteStatement]

	executor Executor
	tables   []any
	from     []any
	limit    clause.Limit
}

// DeleteFrom starts a DELETE statement reading from the given tables.
func DeleteFrom(tables ...any) *DeleteStatement {
	s := &DeleteStatement{from: slices.Clone(tables)}
	s.optionsClause.self = s
	s.joinClause.self = s
	s.whereClause.self = s
	s.orderClause.self = s
	return s
}

// Bind sets the executor used by Exec.
func (s *DeleteStatement) Bind(ex Executor) *DeleteStatement {
	s.executor = ex
	return s
}

// Table appends tables rows are deleted from in the multi-table form.
func (s *DeleteStatement) Table(tables ...any) *DeleteStatement {
	s.tables = append(s.tables, tables...)
	return s
}

// From appends table references.
func (s *DeleteStatement) From(tables ...any) *DeleteStatement {
	s.from = append(s.from, tables...)
	return s
}

// Limit caps the number of deleted rows.
func (s *DeleteStatement) Limit(count int) *DeleteStatement {
	s.limit.Set(count)
	return s
}

// Reset clears the named clauses, or every clause when none are given.
func (s *DeleteStatement) Reset(clauses ...Clause) *DeleteStatement {
	if resets(clauses, ClauseOptions) {
		s.options = nil
	}
	if resets(clauses, ClauseTable) {
		s.tables = nil
	}
	if resets(clauses, ClauseFrom) {
		s.from = nil
	}
	if resets(clauses, ClauseJoin) {
		s.joins.Reset()
	}
	if resets(clauses, ClauseWhere) {
		s.where.Reset()
	}
	if resets(clauses, ClauseOrderBy) {
		s.order.Reset()
	}
	if resets(clauses, ClauseLimit) {
		s.limit.Reset()
	}
	return s
}

// Render renders the statement. FROM is required.
func (s *DeleteStatement) Render() (string, error) {
	ex := s.executor
	if len(s.from) == 0 {
		return "", render.State(render.ErrMissingClause, "DELETE", "FROM is required")
	}

	var out lines
	out.add("DELETE")

	opts, err := deleteOptions.Render(s.options)
	if err != nil {
		return "", err
	}
	out.add(opts)

	if len(s.tables) > 0 {
		tables, err := render.Columns(s.tables, ex)
		if err != nil {
			return "", err
		}
		out.add(" " + tables)
	}

	from, err := render.Columns(s.from, ex)
	if err != nil {
		return "", err
	}
	out.add(" FROM " + from)

	joins, err := s.joins.Render(ex)
	if err != nil {
		return "", err
	}
	for _, j := range joins {
		out.add(j)
	}

	where, err := s.where.Render("WHERE", ex)
	if err != nil {
		return "", err
	}
	out.add(where)

	order, err := s.order.Render("ORDER BY", ex)
	if err != nil {
		return "", err
	}
	out.add(order)

	limit, err := s.limit.Render()
	if err != nil {
		return "", err
	}
	out.add(limit)

	return out.String(), nil
}

// MustRender renders the statement and panics on error.
func (s *DeleteStatement) MustRender() string {
	return mustRender(s)
}

// Exec renders the statement, runs it and returns the affected row count.
func (s *DeleteStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}
