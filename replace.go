package mariaql

import (
	"context"

	"github.com/zoobzio/mariaql/internal/clause"
)

// REPLACE options.
const (
	ReplaceLowPriority = "LOW_PRIORITY"
	ReplaceDelayed     = "DELAYED"
)

var replaceOptions = clause.OptionSet{
	Clause:    "REPLACE",
	Allowed:   []string{ReplaceLowPriority, ReplaceDelayed},
	Exclusive: [][]string{{ReplaceLowPriority, ReplaceDelayed}},
}

// ReplaceStatement builds a REPLACE statement. It accepts the same row
// sources as INSERT.
type ReplaceStatement struct {
	optionsClause[*ReplaceStatement]
	rowSource[*ReplaceStatement]

	executor Executor
}

// ReplaceInto starts a REPLACE statement writing to table.
func ReplaceInto(table any) *ReplaceStatement {
	s := &ReplaceStatement{}
	s.optionsClause.self = s
	s.rowSource.self = s
	s.table = table
	return s
}

// Bind sets the executor used by Exec.
func (s *ReplaceStatement) Bind(ex Executor) *ReplaceStatement {
	s.executor = ex
	return s
}

// Reset clears the named clauses, or every clause when none are given.
func (s *ReplaceStatement) Reset(clauses ...Clause) *ReplaceStatement {
	if resets(clauses, ClauseOptions) {
		s.options = nil
	}
	s.rowSource.reset(clauses)
	return s
}

// Render renders the statement. Exactly one row source must be set.
func (s *ReplaceStatement) Render() (string, error) {
	var out lines
	out.add("REPLACE")

	opts, err := replaceOptions.Render(s.options)
	if err != nil {
		return "", err
	}
	out.add(opts)

	if err := s.rowSource.render(&out, "REPLACE", s.executor); err != nil {
		return "", err
	}
	return out.String(), nil
}

// MustRender renders the statement and panics on error.
func (s *ReplaceStatement) MustRender() string {
	return mustRender(s)
}

// Exec renders the statement, runs it and returns the affected row count.
func (s *ReplaceStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}
