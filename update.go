package mariaql

import (
	"context"
	"slices"

	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/render"
)

// UPDATE options.
const (
	UpdateLowPriority = "LOW_PRIORITY"
	UpdateIgnore      = "IGNORE"
)

var updateOptions = clause.OptionSet{
	Clause:  "UPDATE",
	Allowed: []string{UpdateLowPriority, UpdateIgnore},
}

// UpdateStatement builds an UPDATE statement.
type UpdateStatement struct {
	optionsClause[*UpdateStatement]
	joinClause[*UpdateStatement]
	whereClause[*UpdateStatement]
	orderClause[*UpdateStatement]

	executor Executor
	tables   []any
	set      clause.Assignments
	limit    clause.Limit
}

// Update starts an UPDATE statement over one or more table references.
func Update(tables ...any) *UpdateStatement {
	s := &UpdateStatement{tables: slices.Clone(tables)}
	s.optionsClause.self = s
	s.joinClause.self = s
	s.whereClause.self = s
	s.orderClause.self = s
	return s
}

// Bind sets the executor used by Exec.
func (s *UpdateStatement) Bind(ex Executor) *UpdateStatement {
	s.executor = ex
	return s
}

// Table appends table references.
func (s *UpdateStatement) Table(tables ...any) *UpdateStatement {
	s.tables = append(s.tables, tables...)
	return s
}

// Set assigns value to column. Reassigning a column replaces its value.
func (s *UpdateStatement) Set(column string, value any) *UpdateStatement {
	s.set.Set(column, value)
	return s
}

// Limit caps the number of updated rows.
func (s *UpdateStatement) Limit(count int) *UpdateStatement {
	s.limit.Set(count)
	return s
}

// Reset clears the named clauses, or every clause when none are given.
func (s *UpdateStatement) Reset(clauses ...Clause) *UpdateStatement {
	if resets(clauses, ClauseOptions) {
		s.options = nil
	}
	if resets(clauses, ClauseTable) {
		s.tables = nil
	}
	if resets(clauses, ClauseJoin) {
		s.joins.Reset()
	}
	if resets(clauses, ClauseSet) {
		s.set.Reset()
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

// Render renders the statement. A table and at least one SET assignment are required.
func (s *UpdateStatement) Render() (string, error) {
	ex := s.executor
	if len(s.tables) == 0 {
		return "", render.State(render.ErrMissingClause, "UPDATE", "table is required")
	}
	if s.set.Len() == 0 {
		return "", render.State(render.ErrMissingSet, "UPDATE", "SET is required")
	}

	var out lines
	out.add("UPDATE")

	opts, err := updateOptions.Render(s.options)
	if err != nil {
		return "", err
	}
	out.add(opts)

	tables, err := render.Columns(s.tables, ex)
	if err != nil {
		return "", err
	}
	out.add(" " + tables)

	joins, err := s.joins.Render(ex)
	if err != nil {
		return "", err
	}
	for _, j := range joins {
		out.add(j)
	}

	set, err := s.set.Render("SET", ex)
	if err != nil {
		return "", err
	}
	out.add(set)

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
func (s *UpdateStatement) MustRender() string {
	return mustRender(s)
}

// Exec renders the statement, runs it and returns the affected row count.
func (s *UpdateStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}
