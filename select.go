package mariaql

import (
	"context"
	"database/sql"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/zoobzio/mariaql/internal/clause"
	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// SELECT options.
const (
	SelectAll           = "ALL"
	SelectDistinct      = "DISTINCT"
	SelectDistinctRow   = "DISTINCTROW"
	SelectHighPriority  = "HIGH_PRIORITY"
	SelectStraightJoin  = "STRAIGHT_JOIN"
	SelectSmallResult   = "SQL_SMALL_RESULT"
	SelectBigResult     = "SQL_BIG_RESULT"
	SelectBufferResult  = "SQL_BUFFER_RESULT"
	SelectCache         = "SQL_CACHE"
	SelectNoCache       = "SQL_NO_CACHE"
	SelectCalcFoundRows = "SQL_CALC_FOUND_ROWS"
)

var selectOptions = clause.OptionSet{
	Clause: "SELECT",
	Allowed: []string{
		SelectAll, SelectDistinct, SelectDistinctRow, SelectHighPriority,
		SelectStraightJoin, SelectSmallResult, SelectBigResult,
		SelectBufferResult, SelectCache, SelectNoCache, SelectCalcFoundRows,
	},
	Exclusive: [][]string{
		{SelectAll, SelectDistinct, SelectDistinctRow},
		{SelectCache, SelectNoCache},
	},
}

// ExportOptions configures the CHARACTER SET, FIELDS and LINES parts of
// SELECT ... INTO OUTFILE. Empty strings are omitted.
type ExportOptions struct {
	Charset                  string
	FieldsTerminatedBy       string
	FieldsEnclosedBy         string
	FieldsEscapedBy          string
	LinesStartingBy          string
	LinesTerminatedBy        string
	FieldsOptionallyEnclosed bool
}

type into struct {
	file   string
	export ExportOptions
	dump   bool
}

type lockMode string

const (
	lockForUpdate lockMode = "FOR UPDATE"
	lockShareMode lockMode = "LOCK IN SHARE MODE"
)

type lock struct {
	wait   *int
	mode   lockMode
	suffix string
}

type procedure struct {
	name string
	args []any
}

// SelectStatement builds a SELECT statement.
type SelectStatement struct {
	optionsClause[*SelectStatement]
	joinClause[*SelectStatement]
	whereClause[*SelectStatement]
	havingClause[*SelectStatement]
	orderClause[*SelectStatement]

	executor    Executor
	procedure   *procedure
	into        *into
	lock        *lock
	expressions []any
	from        []any
	groupBy     clause.Ordering
	limit       clause.Limit
	rollup      bool
}

// Select starts a SELECT statement with optional select expressions.
func Select(expressions ...any) *SelectStatement {
	s := &SelectStatement{expressions: slices.Clone(expressions)}
	s.optionsClause.self = s
	s.joinClause.self = s
	s.whereClause.self = s
	s.havingClause.self = s
	s.orderClause.self = s
	return s
}

// Bind sets the executor used by Query.
func (s *SelectStatement) Bind(ex Executor) *SelectStatement {
	s.executor = ex
	return s
}

// Columns appends select expressions. Strings are protected as identifiers.
func (s *SelectStatement) Columns(expressions ...any) *SelectStatement {
	s.expressions = append(s.expressions, expressions...)
	return s
}

// From appends table references.
func (s *SelectStatement) From(tables ...any) *SelectStatement {
	s.from = append(s.from, tables...)
	return s
}

// GroupBy appends grouping expressions.
func (s *SelectStatement) GroupBy(exprs ...any) *SelectStatement {
	s.groupBy.Add(types.NoDirection, exprs...)
	return s
}

// WithRollup adds WITH ROLLUP to the GROUP BY clause.
func (s *SelectStatement) WithRollup() *SelectStatement {
	s.rollup = true
	return s
}

// Limit sets the row count and an optional offset.
func (s *SelectStatement) Limit(count int, offset ...int) *SelectStatement {
	s.limit.Set(count, offset...)
	return s
}

// Procedure sets the PROCEDURE clause.
func (s *SelectStatement) Procedure(name string, args ...any) *SelectStatement {
	s.procedure = &procedure{name: name, args: slices.Clone(args)}
	return s
}

// IntoOutfile exports the result set to a file. The file must not exist when
// the statement is rendered.
func (s *SelectStatement) IntoOutfile(file string, opts ...ExportOptions) *SelectStatement {
	in := &into{file: file}
	if len(opts) > 0 {
		in.export = opts[0]
	}
	s.into = in
	return s
}

// IntoDumpfile writes a single row to a file without any formatting.
func (s *SelectStatement) IntoDumpfile(file string) *SelectStatement {
	s.into = &into{file: file, dump: true}
	return s
}

func (s *SelectStatement) setLock(mode lockMode, suffix string, wait *int) *SelectStatement {
	s.lock = &lock{mode: mode, suffix: suffix, wait: wait}
	return s
}

// ForUpdate locks the selected rows for writing.
func (s *SelectStatement) ForUpdate() *SelectStatement {
	return s.setLock(lockForUpdate, "", nil)
}

// ForUpdateWait waits at most seconds for the row locks.
func (s *SelectStatement) ForUpdateWait(seconds int) *SelectStatement {
	return s.setLock(lockForUpdate, "", &seconds)
}

// ForUpdateNoWait fails at once when a row is locked.
func (s *SelectStatement) ForUpdateNoWait() *SelectStatement {
	return s.setLock(lockForUpdate, "NOWAIT", nil)
}

// ForUpdateSkipLocked skips rows locked by other transactions.
func (s *SelectStatement) ForUpdateSkipLocked() *SelectStatement {
	return s.setLock(lockForUpdate, "SKIP LOCKED", nil)
}

// LockInShareMode takes shared locks on the selected rows.
func (s *SelectStatement) LockInShareMode() *SelectStatement {
	return s.setLock(lockShareMode, "", nil)
}

// LockInShareModeWait waits at most seconds for the shared locks.
func (s *SelectStatement) LockInShareModeWait(seconds int) *SelectStatement {
	return s.setLock(lockShareMode, "", &seconds)
}

// LockInShareModeNoWait fails at once when a row is locked.
func (s *SelectStatement) LockInShareModeNoWait() *SelectStatement {
	return s.setLock(lockShareMode, "NOWAIT", nil)
}

// LockInShareModeSkipLocked skips rows locked by other transactions.
func (s *SelectStatement) LockInShareModeSkipLocked() *SelectStatement {
	return s.setLock(lockShareMode, "SKIP LOCKED", nil)
}

// Reset clears the named clauses, or every clause when none are given.
func (s *SelectStatement) Reset(clauses ...Clause) *SelectStatement {
	if resets(clauses, ClauseOptions) {
		s.options = nil
	}
	if resets(clauses, ClauseExpressions) {
		s.expressions = nil
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
	if resets(clauses, ClauseGroupBy) {
		s.groupBy.Reset()
		s.rollup = false
	}
	if resets(clauses, ClauseHaving) {
		s.having.Reset()
	}
	if resets(clauses, ClauseOrderBy) {
		s.order.Reset()
	}
	if resets(clauses, ClauseLimit) {
		s.limit.Reset()
	}
	if resets(clauses, ClauseProcedure) {
		s.procedure = nil
	}
	if resets(clauses, ClauseInto) {
		s.into = nil
	}
	if resets(clauses, ClauseLock) {
		s.lock = nil
	}
	return s
}

// Render renders the statement. Clause combinations are validated here, not
// in the setters.
func (s *SelectStatement) Render() (string, error) {
	ex := s.executor
	hasFrom := len(s.from) > 0

	var out lines
	out.add("SELECT")

	opts, err := selectOptions.Render(s.options)
	if err != nil {
		return "", err
	}
	out.add(opts)

	switch {
	case len(s.expressions) > 0:
		exprs, err := render.Columns(s.expressions, ex)
		if err != nil {
			return "", err
		}
		out.add(" " + exprs)
	case hasFrom:
		out.add(" *")
	}

	if hasFrom {
		from, err := render.Columns(s.from, ex)
		if err != nil {
			return "", err
		}
		out.add(" FROM " + from)
	}

	if s.joins.Len() > 0 {
		if !hasFrom {
			return "", requiresFrom("JOIN")
		}
		joins, err := s.joins.Render(ex)
		if err != nil {
			return "", err
		}
		for _, j := range joins {
			out.add(j)
		}
	}

	if s.where.Len() > 0 && !hasFrom {
		return "", requiresFrom("WHERE")
	}
	where, err := s.where.Render("WHERE", ex)
	if err != nil {
		return "", err
	}
	out.add(where)

	group, err := s.groupBy.Render("GROUP BY", ex)
	if err != nil {
		return "", err
	}
	if s.rollup {
		if group == "" {
			return "", render.State(render.ErrMissingClause, "WITH ROLLUP", "requires GROUP BY")
		}
		group += " WITH ROLLUP"
	}
	out.add(group)

	if s.having.Len() > 0 && !hasFrom {
		return "", requiresFrom("HAVING")
	}
	having, err := s.having.Render("HAVING", ex)
	if err != nil {
		return "", err
	}
	out.add(having)

	if s.order.Len() > 0 && !hasFrom {
		return "", requiresFrom("ORDER BY")
	}
	order, err := s.order.Render("ORDER BY", ex)
	if err != nil {
		return "", err
	}
	out.add(order)

	if s.limit.IsSet() && !hasFrom {
		return "", requiresFrom("LIMIT")
	}
	limit, err := s.limit.Render()
	if err != nil {
		return "", err
	}
	out.add(limit)

	proc, err := s.renderProcedure(ex)
	if err != nil {
		return "", err
	}
	out.add(proc)

	in, err := s.renderInto()
	if err != nil {
		return "", err
	}
	out.add(in)

	lk, err := s.renderLock()
	if err != nil {
		return "", err
	}
	out.add(lk)

	return out.String(), nil
}

// MustRender renders the statement and panics on error.
func (s *SelectStatement) MustRender() string {
	return mustRender(s)
}

// Query renders the statement and runs it on the bound executor.
func (s *SelectStatement) Query(ctx context.Context) (*sql.Rows, error) {
	return query(ctx, s.executor, s)
}

func requiresFrom(clauseName string) error {
	return render.State(render.ErrMissingClause, clauseName, "requires FROM")
}

func (s *SelectStatement) renderProcedure(ex Executor) (string, error) {
	if s.procedure == nil {
		return "", nil
	}
	if !isPlainIdentifier(s.procedure.name) {
		return "", render.Invalid(render.ErrInvalidIdentifier, "PROCEDURE", s.procedure.name)
	}
	args, err := render.Values(s.procedure.args, ex)
	if err != nil {
		return "", err
	}
	return " PROCEDURE " + s.procedure.name + "(" + args + ")", nil
}

func (s *SelectStatement) renderInto() (string, error) {
	if s.into == nil {
		return "", nil
	}
	keyword := "INTO OUTFILE"
	if s.into.dump {
		keyword = "INTO DUMPFILE"
	}
	if _, err := os.Stat(s.into.file); err == nil {
		return "", render.State(render.ErrFileExists, keyword, s.into.file)
	}
	file, err := render.Quote(s.into.file)
	if err != nil {
		return "", err
	}
	line := " " + keyword + " " + file
	if s.into.dump {
		return line, nil
	}

	opts := s.into.export
	if opts.Charset != "" {
		if !types.IsCharset(opts.Charset) {
			return "", render.Invalid(render.ErrInvalidOptionValue, keyword, opts.Charset, "unknown character set")
		}
		line += " CHARACTER SET " + strings.ToLower(opts.Charset)
	}

	var fields []string
	if opts.FieldsTerminatedBy != "" {
		fields = append(fields, "TERMINATED BY "+quoteString(opts.FieldsTerminatedBy))
	}
	switch {
	case opts.FieldsEnclosedBy != "" && opts.FieldsOptionallyEnclosed:
		fields = append(fields, "OPTIONALLY ENCLOSED BY "+quoteString(opts.FieldsEnclosedBy))
	case opts.FieldsEnclosedBy != "":
		fields = append(fields, "ENCLOSED BY "+quoteString(opts.FieldsEnclosedBy))
	case opts.FieldsOptionallyEnclosed:
		return "", render.Invalid(render.ErrInvalidOption, keyword, "OPTIONALLY ENCLOSED BY", "requires FieldsEnclosedBy")
	}
	if opts.FieldsEscapedBy != "" {
		fields = append(fields, "ESCAPED BY "+quoteString(opts.FieldsEscapedBy))
	}
	if len(fields) > 0 {
		line += " FIELDS " + strings.Join(fields, " ")
	}

	var rows []string
	if opts.LinesStartingBy != "" {
		rows = append(rows, "STARTING BY "+quoteString(opts.LinesStartingBy))
	}
	if opts.LinesTerminatedBy != "" {
		rows = append(rows, "TERMINATED BY "+quoteString(opts.LinesTerminatedBy))
	}
	if len(rows) > 0 {
		line += " LINES " + strings.Join(rows, " ")
	}
	return line, nil
}

func (s *SelectStatement) renderLock() (string, error) {
	if s.lock == nil {
		return "", nil
	}
	line := " " + string(s.lock.mode)
	if s.lock.wait != nil {
		if *s.lock.wait < 0 {
			return "", render.Invalid(render.ErrInvalidOptionValue, string(s.lock.mode), strconv.Itoa(*s.lock.wait), "WAIT must not be negative")
		}
		line += " WAIT " + strconv.Itoa(*s.lock.wait)
	}
	if s.lock.suffix != "" {
		line += " " + s.lock.suffix
	}
	return line, nil
}

func quoteString(s string) string {
	q, _ := render.Quote(s)
	return q
}

// isPlainIdentifier reports whether s is an unquoted SQL identifier.
func isPlainIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
