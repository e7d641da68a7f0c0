package schema

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// definition is a column or index entry of a CREATE TABLE body.
type definition struct {
	column  *Column
	index   *Index
	name    string
	isIndex bool
}

func (d definition) render(alter bool) (string, error) {
	if d.isIndex {
		if d.index == nil {
			return "", render.State(render.ErrMissingClause, "index", "a definition is required")
		}
		return d.index.Render()
	}
	if d.column == nil {
		return "", render.State(render.ErrMissingClause, "column "+d.name, "a definition is required")
	}
	def, err := d.column.Render(alter)
	if err != nil {
		return "", fmt.Errorf("column %s: %w", d.name, err)
	}
	return render.ProtectIdentifier(d.name) + " " + def, nil
}

// CreateTableStatement builds CREATE TABLE.
type CreateTableStatement struct {
	executor    types.Executor
	name        string
	definitions []definition
	options     tableOptions
	replace     bool
	temporary   bool
	ifNot       bool
}

// CreateTable starts a CREATE TABLE statement.
func CreateTable(name string) *CreateTableStatement {
	return &CreateTableStatement{name: name}
}

// Bind sets the executor used by Exec.
func (s *CreateTableStatement) Bind(ex types.Executor) *CreateTableStatement {
	s.executor = ex
	return s
}

// OrReplace replaces an existing table of the same name.
func (s *CreateTableStatement) OrReplace() *CreateTableStatement {
	s.replace = true
	return s
}

// Temporary creates a temporary table.
func (s *CreateTableStatement) Temporary() *CreateTableStatement {
	s.temporary = true
	return s
}

// IfNotExists skips creation when the table exists.
func (s *CreateTableStatement) IfNotExists() *CreateTableStatement {
	s.ifNot = true
	return s
}

// Column appends a column definition.
func (s *CreateTableStatement) Column(name string, def *Column) *CreateTableStatement {
	s.definitions = append(s.definitions, definition{name: name, column: def})
	return s
}

// Index appends an index definition.
func (s *CreateTableStatement) Index(def *Index) *CreateTableStatement {
	s.definitions = append(s.definitions, definition{index: def, isIndex: true})
	return s
}

// Option sets a table option. The value is validated at render.
func (s *CreateTableStatement) Option(opt TableOption, value any) *CreateTableStatement {
	s.options.set(opt, "", value)
	return s
}

// OptionByName sets a table option by its SQL name, for example "ENGINE" or
// "ROW_FORMAT". Unknown names fail at render.
func (s *CreateTableStatement) OptionByName(name string, value any) *CreateTableStatement {
	s.options.set(0, name, value)
	return s
}

// Render renders the statement.
func (s *CreateTableStatement) Render() (string, error) {
	if err := exclusive("CREATE TABLE", s.replace, "OR REPLACE", s.ifNot, "IF NOT EXISTS"); err != nil {
		return "", err
	}
	if s.name == "" {
		return "", render.State(render.ErrMissingClause, "CREATE TABLE", "a table name is required")
	}
	hasColumn := false
	for _, d := range s.definitions {
		if !d.isIndex {
			hasColumn = true
		}
	}
	if !hasColumn {
		return "", render.State(render.ErrMissingColumns, "CREATE TABLE", "at least one column is required")
	}

	options, err := s.options.render()
	if err != nil {
		return "", err
	}

	defs := make([]string, 0, len(s.definitions))
	for _, d := range s.definitions {
		def, err := d.render(false)
		if err != nil {
			return "", err
		}
		defs = append(defs, "  "+def)
	}

	var sql strings.Builder
	sql.WriteString("CREATE")
	if s.replace {
		sql.WriteString(" OR REPLACE")
	}
	if s.temporary {
		sql.WriteString(" TEMPORARY")
	}
	sql.WriteString(" TABLE")
	if s.ifNot {
		sql.WriteString(" IF NOT EXISTS")
	}
	sql.WriteString(" " + render.ProtectIdentifier(s.name) + " (\n")
	sql.WriteString(strings.Join(defs, ",\n"))
	sql.WriteString("\n)\n")
	for _, opt := range options {
		sql.WriteString(" " + opt + "\n")
	}
	return sql.String(), nil
}

// Exec renders the statement and runs it.
func (s *CreateTableStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}

// MustRender renders the statement and panics on error.
func (s *CreateTableStatement) MustRender() string {
	return mustRender(s)
}

// lockWait holds the WAIT n or NOWAIT modifier of ALTER and DROP TABLE.
type lockWait struct {
	seconds *int
	noWait  bool
}

func (w lockWait) render(clause string) (string, error) {
	if err := exclusive(clause, w.seconds != nil, "WAIT", w.noWait, "NOWAIT"); err != nil {
		return "", err
	}
	switch {
	case w.seconds != nil:
		if *w.seconds < 0 {
			return "", render.Invalid(render.ErrInvalidOptionValue, "WAIT", strconv.Itoa(*w.seconds))
		}
		return " WAIT " + strconv.Itoa(*w.seconds), nil
	case w.noWait:
		return " NOWAIT", nil
	}
	return "", nil
}

// alterSpec is one ALTER TABLE specification, rendered lazily.
type alterSpec func() (string, error)

// AlterTableStatement builds ALTER TABLE. Specifications render in the order
// they were added, followed by table options.
type AlterTableStatement struct {
	executor types.Executor
	name     string
	specs    []alterSpec
	options  tableOptions
	wait     lockWait
	online   bool
	ignore   bool
}

// AlterTable starts an ALTER TABLE statement.
func AlterTable(name string) *AlterTableStatement {
	return &AlterTableStatement{name: name}
}

// Bind sets the executor used by Exec.
func (s *AlterTableStatement) Bind(ex types.Executor) *AlterTableStatement {
	s.executor = ex
	return s
}

// Online requests a non-locking alteration.
func (s *AlterTableStatement) Online() *AlterTableStatement {
	s.online = true
	return s
}

// Ignore drops rows that would violate a new unique key.
func (s *AlterTableStatement) Ignore() *AlterTableStatement {
	s.ignore = true
	return s
}

// Wait sets the lock wait timeout in seconds.
func (s *AlterTableStatement) Wait(seconds int) *AlterTableStatement {
	s.wait.seconds = &seconds
	return s
}

// NoWait fails at once when the table lock is held.
func (s *AlterTableStatement) NoWait() *AlterTableStatement {
	s.wait.noWait = true
	return s
}

func (s *AlterTableStatement) add(spec alterSpec) *AlterTableStatement {
	s.specs = append(s.specs, spec)
	return s
}

// AddColumn adds a column. def may carry FIRST or AFTER.
func (s *AlterTableStatement) AddColumn(name string, def *Column) *AlterTableStatement {
	return s.add(func() (string, error) {
		text, err := definition{name: name, column: def}.render(true)
		if err != nil {
			return "", err
		}
		return "ADD COLUMN " + text, nil
	})
}

// AddIndex adds an index or constraint.
func (s *AlterTableStatement) AddIndex(def *Index) *AlterTableStatement {
	return s.add(func() (string, error) {
		text, err := definition{index: def, isIndex: true}.render(true)
		if err != nil {
			return "", err
		}
		return "ADD " + text, nil
	})
}

// ChangeColumn renames a column and redefines it.
func (s *AlterTableStatement) ChangeColumn(column, newName string, def *Column) *AlterTableStatement {
	return s.add(func() (string, error) {
		text, err := definition{name: newName, column: def}.render(true)
		if err != nil {
			return "", err
		}
		return "CHANGE COLUMN " + render.ProtectIdentifier(column) + " " + text, nil
	})
}

// ModifyColumn redefines a column in place.
func (s *AlterTableStatement) ModifyColumn(name string, def *Column) *AlterTableStatement {
	return s.add(func() (string, error) {
		text, err := definition{name: name, column: def}.render(true)
		if err != nil {
			return "", err
		}
		return "MODIFY COLUMN " + text, nil
	})
}

func (s *AlterTableStatement) fixed(text string) *AlterTableStatement {
	return s.add(func() (string, error) { return text, nil })
}

// DropColumn removes a column.
func (s *AlterTableStatement) DropColumn(name string) *AlterTableStatement {
	return s.fixed("DROP COLUMN " + render.ProtectIdentifier(name))
}

// DropIndex removes an index by name.
func (s *AlterTableStatement) DropIndex(name string) *AlterTableStatement {
	return s.fixed("DROP INDEX " + render.ProtectIdentifier(name))
}

// DropPrimaryKey removes the primary key.
func (s *AlterTableStatement) DropPrimaryKey() *AlterTableStatement {
	return s.fixed("DROP PRIMARY KEY")
}

// DropForeignKey removes a foreign key by constraint name.
func (s *AlterTableStatement) DropForeignKey(name string) *AlterTableStatement {
	return s.fixed("DROP FOREIGN KEY " + render.ProtectIdentifier(name))
}

// RenameTo renames the table.
func (s *AlterTableStatement) RenameTo(name string) *AlterTableStatement {
	return s.fixed("RENAME TO " + render.ProtectIdentifier(name))
}

// RenameColumn renames a column, keeping its definition.
func (s *AlterTableStatement) RenameColumn(column, newName string) *AlterTableStatement {
	return s.fixed("RENAME COLUMN " + render.ProtectIdentifier(column) + " TO " + render.ProtectIdentifier(newName))
}

// Option sets a table option. The value is validated at render.
func (s *AlterTableStatement) Option(opt TableOption, value any) *AlterTableStatement {
	s.options.set(opt, "", value)
	return s
}

// OptionByName sets a table option by its SQL name.
func (s *AlterTableStatement) OptionByName(name string, value any) *AlterTableStatement {
	s.options.set(0, name, value)
	return s
}

// Render renders the statement.
func (s *AlterTableStatement) Render() (string, error) {
	if s.name == "" {
		return "", render.State(render.ErrMissingClause, "ALTER TABLE", "a table name is required")
	}
	if len(s.specs) == 0 && s.options.len() == 0 {
		return "", render.State(render.ErrMissingClause, "ALTER TABLE", "nothing to alter")
	}
	wait, err := s.wait.render("ALTER TABLE")
	if err != nil {
		return "", err
	}
	options, err := s.options.render()
	if err != nil {
		return "", err
	}

	specs := make([]string, 0, len(s.specs)+len(options))
	for _, spec := range s.specs {
		text, err := spec()
		if err != nil {
			return "", err
		}
		specs = append(specs, "  "+text)
	}
	for _, opt := range options {
		specs = append(specs, "  "+opt)
	}

	var sql strings.Builder
	sql.WriteString("ALTER")
	if s.online {
		sql.WriteString(" ONLINE")
	}
	if s.ignore {
		sql.WriteString(" IGNORE")
	}
	sql.WriteString(" TABLE " + render.ProtectIdentifier(s.name) + wait + "\n")
	sql.WriteString(strings.Join(specs, ",\n"))
	sql.WriteString("\n")
	return sql.String(), nil
}

// Exec renders the statement and runs it.
func (s *AlterTableStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}

// MustRender renders the statement and panics on error.
func (s *AlterTableStatement) MustRender() string {
	return mustRender(s)
}

// DropTableStatement builds DROP TABLE.
type DropTableStatement struct {
	executor  types.Executor
	tables    []string
	wait      lockWait
	temporary bool
	ifExists  bool
	restrict  bool
	cascade   bool
}

// DropTable starts a DROP TABLE statement.
func DropTable(tables ...string) *DropTableStatement {
	return &DropTableStatement{tables: slices.Clone(tables)}
}

// Bind sets the executor used by Exec.
func (s *DropTableStatement) Bind(ex types.Executor) *DropTableStatement {
	s.executor = ex
	return s
}

// Table appends tables to drop.
func (s *DropTableStatement) Table(tables ...string) *DropTableStatement {
	s.tables = append(s.tables, tables...)
	return s
}

// Temporary drops temporary tables only.
func (s *DropTableStatement) Temporary() *DropTableStatement {
	s.temporary = true
	return s
}

// IfExists ignores missing tables.
func (s *DropTableStatement) IfExists() *DropTableStatement {
	s.ifExists = true
	return s
}

// Wait sets the lock wait timeout in seconds.
func (s *DropTableStatement) Wait(seconds int) *DropTableStatement {
	s.wait.seconds = &seconds
	return s
}

// NoWait fails at once when a table lock is held.
func (s *DropTableStatement) NoWait() *DropTableStatement {
	s.wait.noWait = true
	return s
}

// Restrict adds RESTRICT. It cannot be combined with Cascade.
func (s *DropTableStatement) Restrict() *DropTableStatement {
	s.restrict = true
	return s
}

// Cascade adds CASCADE. It cannot be combined with Restrict.
func (s *DropTableStatement) Cascade() *DropTableStatement {
	s.cascade = true
	return s
}

// Render renders the statement.
func (s *DropTableStatement) Render() (string, error) {
	if len(s.tables) == 0 {
		return "", render.State(render.ErrMissingClause, "DROP TABLE", "at least one table is required")
	}
	if err := exclusive("DROP TABLE", s.restrict, "RESTRICT", s.cascade, "CASCADE"); err != nil {
		return "", err
	}
	wait, err := s.wait.render("DROP TABLE")
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString("DROP")
	if s.temporary {
		sql.WriteString(" TEMPORARY")
	}
	sql.WriteString(" TABLE")
	if s.ifExists {
		sql.WriteString(" IF EXISTS")
	}
	sql.WriteString(" " + protectList(s.tables) + wait)
	switch {
	case s.restrict:
		sql.WriteString(" RESTRICT")
	case s.cascade:
		sql.WriteString(" CASCADE")
	}
	sql.WriteString("\n")
	return sql.String(), nil
}

// Exec renders the statement and runs it.
func (s *DropTableStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}

// MustRender renders the statement and panics on error.
func (s *DropTableStatement) MustRender() string {
	return mustRender(s)
}
