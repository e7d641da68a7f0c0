package clause

import (
	"slices"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// Conditions holds WHERE or HAVING predicates in insertion order.
type Conditions struct {
	items []types.Condition
}

// Add appends a condition.
func (c *Conditions) Add(cond types.Condition) {
	cond.Values = slices.Clone(cond.Values)
	c.items = append(c.items, cond)
}

// Len returns the number of conditions.
func (c *Conditions) Len() int {
	return len(c.items)
}

// Reset removes all conditions.
func (c *Conditions) Reset() {
	c.items = nil
}

// Render renders the conditions under keyword (WHERE or HAVING). The glue of
// the first condition is omitted.
func (c *Conditions) Render(keyword string, ex types.Executor) (string, error) {
	if len(c.items) == 0 {
		return "", nil
	}
	var sql strings.Builder
	sql.WriteString(" ")
	sql.WriteString(keyword)
	for i, cond := range c.items {
		part, err := renderCondition(keyword, cond, ex)
		if err != nil {
			return "", err
		}
		if i > 0 {
			glue := cond.Glue
			if glue == "" {
				glue = types.AND
			}
			sql.WriteString(" ")
			sql.WriteString(string(glue))
		}
		sql.WriteString(" ")
		sql.WriteString(part)
	}
	return sql.String(), nil
}

func renderCondition(keyword string, cond types.Condition, ex types.Executor) (string, error) {
	op := cond.Operator.Normalize()
	class := op.Class()
	if class == types.ClassInvalid {
		return "", render.Invalid(render.ErrInvalidOperator, keyword, string(cond.Operator))
	}

	if class == types.ClassMatch {
		return renderMatch(keyword, cond, ex)
	}

	column, err := render.Column(cond.Column, ex)
	if err != nil {
		return "", err
	}

	n := len(cond.Values)
	switch class {
	case types.ClassNull:
		if n != 0 {
			return "", &render.ArityError{Operator: string(op), Want: "no values", Got: n}
		}
		return column + " " + string(op), nil

	case types.ClassSingle:
		if n != 1 {
			return "", &render.ArityError{Operator: string(op), Want: "exactly 1 value", Got: n}
		}
		value, err := render.Value(cond.Values[0], ex)
		if err != nil {
			return "", err
		}
		return column + " " + string(op) + " " + value, nil

	case types.ClassList:
		if n < 1 {
			return "", &render.ArityError{Operator: string(op), Want: "at least 1 value", Got: n}
		}
		// A lone subquery already renders in parentheses.
		if sub, ok := cond.Values[0].(types.Subquery); ok && n == 1 {
			value, err := render.Expression(sub, ex)
			if err != nil {
				return "", err
			}
			return column + " " + string(op) + " " + value, nil
		}
		values, err := render.Values(cond.Values, ex)
		if err != nil {
			return "", err
		}
		return column + " " + string(op) + " (" + values + ")", nil

	default: // types.ClassRange
		if n != 2 {
			return "", &render.ArityError{Operator: string(op), Want: "exactly 2 values", Got: n}
		}
		low, err := render.Value(cond.Values[0], ex)
		if err != nil {
			return "", err
		}
		high, err := render.Value(cond.Values[1], ex)
		if err != nil {
			return "", err
		}
		return column + " " + string(op) + " " + low + " AND " + high, nil
	}
}

var matchModifiers = map[types.MatchModifier]bool{
	types.MatchNatural:          true,
	types.MatchNaturalLanguage:  true,
	types.MatchQueryExpansion:   true,
	types.MatchBooleanMode:      true,
	types.MatchNaturalExpansion: true,
}

func renderMatch(keyword string, cond types.Condition, ex types.Executor) (string, error) {
	if !matchModifiers[cond.Modifier] {
		return "", render.Invalid(render.ErrInvalidOperator, keyword, string(cond.Modifier), "unknown MATCH modifier")
	}
	if len(cond.Values) != 1 {
		return "", &render.ArityError{Operator: string(types.Match), Want: "exactly 1 value", Got: len(cond.Values)}
	}

	var columns string
	var err error
	switch c := cond.Column.(type) {
	case []string:
		list := make([]any, len(c))
		for i, name := range c {
			list[i] = name
		}
		columns, err = render.Columns(list, ex)
	case []any:
		columns, err = render.Columns(c, ex)
	default:
		columns, err = render.Column(c, ex)
	}
	if err != nil {
		return "", err
	}
	if columns == "" {
		return "", render.State(render.ErrMissingColumns, keyword, "MATCH requires at least one column")
	}

	against, err := render.Value(cond.Values[0], ex)
	if err != nil {
		return "", err
	}
	if cond.Modifier != types.MatchNatural {
		against += " " + string(cond.Modifier)
	}
	return "MATCH (" + columns + ") AGAINST (" + against + ")", nil
}
