package mariaql

import (
	"context"

	"github.com/zoobzio/mariaql/internal/clause"
)

// INSERT options. At most one of the priority options may be used.
const (
	InsertLowPriority  = "LOW_PRIORITY"
	InsertDelayed      = "DELAYED"
	InsertHighPriority = "HIGH_PRIORITY"
	InsertIgnore       = "IGNORE"
)

var insertOptions = clause.OptionSet{
	Clause:    "INSERT",
	Allowed:   []string{InsertLowPriority, InsertDelayed, InsertHighPriority, InsertIgnore},
	Exclusive: [][]string{{InsertLowPriority, InsertDelayed, InsertHighPriority}},
}

// InsertStatement builds an INSERT statement.
type InsertStatement struct {
	optionsClause[*InsertStatement]
	rowSource[*InsertStatement]

	executor    Executor
	onDuplicate clause.Assignments
}

// InsertInto starts an INSERT statement writing to table.
func InsertInto(table any) *InsertStatement {
	s := &InsertStatement{}
	s.optionsClause.self = s
	s.rowSource.self = s
	s.table = table
	return s
}

// Bind sets the executor used by Exec.
func (s *InsertStatement) Bind(ex Executor) *InsertStatement {
	s.executor = ex
	return s
}

// OnDuplicateKeyUpdate assigns a column when the row collides with an
// existing unique key.
func (s *InsertStatement) OnDuplicateKeyUpdate(column string, value any) *InsertStatement {
	s.onDuplicate.Set(column, value)
	return s
}

// Reset clears the named clauses, or every clause when none are given.
func (s *InsertStatement) Reset(clauses ...Clause) *InsertStatement {
	if resets(clauses, ClauseOptions) {
		s.options = nil
	}
	s.rowSource.reset(clauses)
	if resets(clauses, ClauseOnDuplicateKeyUpdate) {
		s.onDuplicate.Reset()
	}
	return s
}

// Render renders the statement. Exactly one row source must be set.
func (s *InsertStatement) Render() (string, error) {
	var out lines
	out.add("INSERT")

	opts, err := insertOptions.Render(s.options)
	if err != nil {
		return "", err
	}
	out.add(opts)

	if err := s.rowSource.render(&out, "INSERT", s.executor); err != nil {
		return "", err
	}

	dup, err := s.onDuplicate.Render("ON DUPLICATE KEY UPDATE", s.executor)
	if err != nil {
		return "", err
	}
	out.add(dup)

	return out.String(), nil
}

// MustRender renders the statement and panics on error.
func (s *InsertStatement) MustRender() string {
	return mustRender(s)
}

// Exec renders the statement, runs it and returns the affected row count.
func (s *InsertStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}
