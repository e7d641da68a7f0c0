package mariaql

import (
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// Ident returns an identifier expression. Use it where a value position
// should hold a column reference instead of a quoted string.
func Ident(name string) Expression {
	return types.Identifier{Name: name}
}

// Raw returns SQL text that is rendered verbatim. Raw text bypasses quoting;
// never build it from untrusted input.
func Raw(sql string) Expression {
	return types.Raw{SQL: sql}
}

// Value returns a literal expression quoted at render. Use it where an
// identifier position should hold a value.
func Value(v any) Expression {
	return types.Literal{Value: v}
}

// Sub returns a deferred expression evaluated on every render and wrapped in
// parentheses. fn receives the executor bound to the statement being
// rendered, which may be nil.
func Sub(fn func(ex Executor) (string, error)) Expression {
	return types.Subquery{Fn: fn}
}

// Query returns a subquery expression rendering stmt.
func Query(stmt Renderer) Expression {
	return types.Subquery{Fn: func(Executor) (string, error) {
		return stmt.Render()
	}}
}

// As aliases an expression. A string is treated as an identifier.
func As(expr any, alias string) Expression {
	var inner Expression
	switch e := expr.(type) {
	case string:
		inner = types.Identifier{Name: e}
	case Expression:
		inner = e
	default:
		inner = types.Literal{Value: e}
	}
	return types.Aliased{Expr: inner, Alias: alias}
}

// Helper functions for common aggregates over protected column names.

// Count returns COUNT(*) or COUNT of the given columns.
func Count(columns ...string) Expression {
	if len(columns) == 0 {
		return types.Raw{SQL: "COUNT(*)"}
	}
	return aggregate("COUNT", columns...)
}

// CountDistinct returns COUNT(DISTINCT columns).
func CountDistinct(columns ...string) Expression {
	return types.Raw{SQL: "COUNT(DISTINCT " + protectAll(columns) + ")"}
}

// Sum returns SUM(column).
func Sum(column string) Expression { return aggregate("SUM", column) }

// Avg returns AVG(column).
func Avg(column string) Expression { return aggregate("AVG", column) }

// Min returns MIN(column).
func Min(column string) Expression { return aggregate("MIN", column) }

// Max returns MAX(column).
func Max(column string) Expression { return aggregate("MAX", column) }

func aggregate(fn string, columns ...string) Expression {
	return types.Raw{SQL: fn + "(" + protectAll(columns) + ")"}
}

func protectAll(columns []string) string {
	protected := make([]string, len(columns))
	for i, c := range columns {
		protected[i] = render.ProtectIdentifier(c)
	}
	return strings.Join(protected, ", ")
}
