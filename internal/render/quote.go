package render

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/zoobzio/mariaql/internal/types"
)

// identifierQuote is the MariaDB identifier quote character.
const identifierQuote = "`"

// ProtectIdentifier quotes each dot-separated segment of name with backticks,
// doubling embedded backticks. A trailing * segment is left unquoted.
func ProtectIdentifier(name string) string {
	if name == "*" {
		return name
	}
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if part == "*" && i == len(parts)-1 {
			continue
		}
		parts[i] = quoteSegment(part)
	}
	return strings.Join(parts, ".")
}

// quoteSegment quotes a single identifier segment without splitting on dots.
func quoteSegment(name string) string {
	return identifierQuote + strings.ReplaceAll(name, identifierQuote, identifierQuote+identifierQuote) + identifierQuote
}

// ProtectAlias quotes an alias as a single identifier segment.
func ProtectAlias(alias string) string {
	return quoteSegment(alias)
}

// Quote renders a Go scalar as a SQL literal. Strings are escaped and single
// quoted, numbers pass through, nil becomes NULL and booleans become TRUE or
// FALSE. Named types are accepted by their underlying kind and pointers are
// dereferenced. Anything else fails with a *ValueTypeError.
func Quote(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "NULL", nil
	case string:
		return quoteString(v), nil
	case bool:
		return quoteBool(v), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return quoteFloat(v, 64)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "NULL", nil
		}
		return Quote(rv.Elem().Interface())
	case reflect.String:
		return quoteString(rv.String()), nil
	case reflect.Bool:
		return quoteBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return quoteFloat(rv.Float(), 32)
	case reflect.Float64:
		return quoteFloat(rv.Float(), 64)
	}
	return "", &ValueTypeError{Type: fmt.Sprintf("%T", value)}
}

func quoteBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func quoteFloat(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", &ValueTypeError{Type: fmt.Sprintf("float%d(%v)", bitSize, f)}
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize), nil
}

// quoteString escapes the characters MariaDB treats specially inside a
// string literal and wraps the result in single quotes.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 0:
			b.WriteString(`\0`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\x1a':
			b.WriteString(`\Z`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// Expression renders a deferred or literal expression.
func Expression(expr types.Expression, ex types.Executor) (string, error) {
	switch e := expr.(type) {
	case types.Identifier:
		return ProtectIdentifier(e.Name), nil
	case types.Raw:
		return e.SQL, nil
	case types.Literal:
		return Quote(e.Value)
	case types.Subquery:
		sql, err := SubqueryText(e, ex)
		if err != nil {
			return "", err
		}
		return "(" + sql + ")", nil
	case types.Aliased:
		inner, err := Expression(e.Expr, ex)
		if err != nil {
			return "", err
		}
		return inner + " AS " + ProtectAlias(e.Alias), nil
	case nil:
		return "", fmt.Errorf("nil expression")
	default:
		return "", fmt.Errorf("unknown expression type: %T", e)
	}
}

// SubqueryText evaluates a subquery and returns its SQL without the trailing
// newline and without surrounding parentheses.
func SubqueryText(sub types.Subquery, ex types.Executor) (string, error) {
	if sub.Fn == nil {
		return "", fmt.Errorf("subquery: nil function")
	}
	sql, err := sub.Fn(ex)
	if err != nil {
		return "", fmt.Errorf("subquery: %w", err)
	}
	return strings.TrimRight(sql, "\n"), nil
}

// Column renders a value in identifier position: strings are protected,
// expressions are rendered.
func Column(column any, ex types.Executor) (string, error) {
	switch c := column.(type) {
	case string:
		return ProtectIdentifier(c), nil
	case types.Expression:
		return Expression(c, ex)
	default:
		return "", &ValueTypeError{Type: fmt.Sprintf("%T", column)}
	}
}

// Columns renders a list of identifier-position values joined by ", ".
func Columns(columns []any, ex types.Executor) (string, error) {
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		s, err := Column(c, ex)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

// Value renders a value in literal position: expressions are rendered, all
// other values go through Quote.
func Value(value any, ex types.Executor) (string, error) {
	if e, ok := value.(types.Expression); ok {
		return Expression(e, ex)
	}
	return Quote(value)
}

// Values renders a list of literal-position values joined by ", ".
func Values(values []any, ex types.Executor) (string, error) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		s, err := Value(v, ex)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}
