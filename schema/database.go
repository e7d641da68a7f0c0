package schema

import (
	"context"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// schemaSpec holds the CHARACTER SET, COLLATE and COMMENT shared by CREATE and
// ALTER SCHEMA.
type schemaSpec struct {
	comment *string
	charset string
	collate string
}

func (s *schemaSpec) lines(out *[]string) error {
	if s.charset != "" {
		if !types.IsCharset(s.charset) {
			return render.Invalid(render.ErrInvalidOptionValue, "CHARACTER SET", s.charset)
		}
		*out = append(*out, " CHARACTER SET = "+strings.ToLower(s.charset))
	}
	if s.collate != "" {
		if !types.IsCollation(s.collate) {
			return render.Invalid(render.ErrInvalidOptionValue, "COLLATE", s.collate)
		}
		*out = append(*out, " COLLATE = "+strings.ToLower(s.collate))
	}
	if s.comment != nil {
		comment, _ := render.Quote(*s.comment)
		*out = append(*out, " COMMENT = "+comment)
	}
	return nil
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

// CreateSchemaStatement builds CREATE SCHEMA.
type CreateSchemaStatement struct {
	executor types.Executor
	name     string
	spec     schemaSpec
	replace  bool
	ifNot    bool
}

// CreateSchema starts a CREATE SCHEMA statement.
func CreateSchema(name string) *CreateSchemaStatement {
	return &CreateSchemaStatement{name: name}
}

// Bind sets the executor used by Exec.
func (s *CreateSchemaStatement) Bind(ex types.Executor) *CreateSchemaStatement {
	s.executor = ex
	return s
}

// OrReplace replaces an existing schema of the same name.
func (s *CreateSchemaStatement) OrReplace() *CreateSchemaStatement {
	s.replace = true
	return s
}

// IfNotExists skips creation when the schema exists.
func (s *CreateSchemaStatement) IfNotExists() *CreateSchemaStatement {
	s.ifNot = true
	return s
}

// Charset sets the default character set.
func (s *CreateSchemaStatement) Charset(charset string) *CreateSchemaStatement {
	s.spec.charset = charset
	return s
}

// Collate sets the default collation.
func (s *CreateSchemaStatement) Collate(collation string) *CreateSchemaStatement {
	s.spec.collate = collation
	return s
}

// Comment sets the schema comment.
func (s *CreateSchemaStatement) Comment(comment string) *CreateSchemaStatement {
	s.spec.comment = &comment
	return s
}

// Render renders the statement.
func (s *CreateSchemaStatement) Render() (string, error) {
	if err := exclusive("CREATE SCHEMA", s.replace, "OR REPLACE", s.ifNot, "IF NOT EXISTS"); err != nil {
		return "", err
	}
	if s.name == "" {
		return "", render.State(render.ErrMissingClause, "CREATE SCHEMA", "a schema name is required")
	}
	head := "CREATE"
	if s.replace {
		head += " OR REPLACE"
	}
	head += " SCHEMA"
	if s.ifNot {
		head += " IF NOT EXISTS"
	}
	out := []string{head + " " + render.ProtectIdentifier(s.name)}
	if err := s.spec.lines(&out); err != nil {
		return "", err
	}
	return joinLines(out), nil
}

// Exec renders the statement and runs it.
func (s *CreateSchemaStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}

// MustRender renders the statement and panics on error.
func (s *CreateSchemaStatement) MustRender() string {
	return mustRender(s)
}

// AlterSchemaStatement builds ALTER SCHEMA.
type AlterSchemaStatement struct {
	executor types.Executor
	name     string
	spec     schemaSpec
	upgrade  bool
}

// AlterSchema starts an ALTER SCHEMA statement.
func AlterSchema(name string) *AlterSchemaStatement {
	return &AlterSchemaStatement{name: name}
}

// Bind sets the executor used by Exec.
func (s *AlterSchemaStatement) Bind(ex types.Executor) *AlterSchemaStatement {
	s.executor = ex
	return s
}

// Charset changes the default character set.
func (s *AlterSchemaStatement) Charset(charset string) *AlterSchemaStatement {
	s.spec.charset = charset
	return s
}

// Collate changes the default collation.
func (s *AlterSchemaStatement) Collate(collation string) *AlterSchemaStatement {
	s.spec.collate = collation
	return s
}

// Comment changes the schema comment.
func (s *AlterSchemaStatement) Comment(comment string) *AlterSchemaStatement {
	s.spec.comment = &comment
	return s
}

// UpgradeDataDirectoryName renames the schema directory to the current
// encoding. It cannot be combined with other changes.
func (s *AlterSchemaStatement) UpgradeDataDirectoryName() *AlterSchemaStatement {
	s.upgrade = true
	return s
}

// Render renders the statement.
func (s *AlterSchemaStatement) Render() (string, error) {
	if s.name == "" {
		return "", render.State(render.ErrMissingClause, "ALTER SCHEMA", "a schema name is required")
	}
	changed := s.spec.charset != "" || s.spec.collate != "" || s.spec.comment != nil
	if err := exclusive("ALTER SCHEMA", s.upgrade, "UPGRADE DATA DIRECTORY NAME", changed, "CHARACTER SET/COLLATE/COMMENT"); err != nil {
		return "", err
	}
	out := []string{"ALTER SCHEMA " + render.ProtectIdentifier(s.name)}
	if s.upgrade {
		out = append(out, " UPGRADE DATA DIRECTORY NAME")
		return joinLines(out), nil
	}
	if !changed {
		return "", render.State(render.ErrMissingClause, "ALTER SCHEMA", "nothing to alter")
	}
	if err := s.spec.lines(&out); err != nil {
		return "", err
	}
	return joinLines(out), nil
}

// Exec renders the statement and runs it.
func (s *AlterSchemaStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}

// MustRender renders the statement and panics on error.
func (s *AlterSchemaStatement) MustRender() string {
	return mustRender(s)
}

// DropSchemaStatement builds DROP SCHEMA.
type DropSchemaStatement struct {
	executor types.Executor
	name     string
	ifExists bool
}

// DropSchema starts a DROP SCHEMA statement.
func DropSchema(name string) *DropSchemaStatement {
	return &DropSchemaStatement{name: name}
}

// Bind sets the executor used by Exec.
func (s *DropSchemaStatement) Bind(ex types.Executor) *DropSchemaStatement {
	s.executor = ex
	return s
}

// IfExists ignores a missing schema.
func (s *DropSchemaStatement) IfExists() *DropSchemaStatement {
	s.ifExists = true
	return s
}

// Render renders the statement.
func (s *DropSchemaStatement) Render() (string, error) {
	if s.name == "" {
		return "", render.State(render.ErrMissingClause, "DROP SCHEMA", "a schema name is required")
	}
	head := "DROP SCHEMA"
	if s.ifExists {
		head += " IF EXISTS"
	}
	return joinLines([]string{head + " " + render.ProtectIdentifier(s.name)}), nil
}

// Exec renders the statement and runs it.
func (s *DropSchemaStatement) Exec(ctx context.Context) (int64, error) {
	return exec(ctx, s.executor, s)
}

// MustRender renders the statement and panics on error.
func (s *DropSchemaStatement) MustRender() string {
	return mustRender(s)
}
