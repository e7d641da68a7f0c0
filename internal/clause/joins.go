package clause

import (
	"slices"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// Joins holds JOIN clauses in insertion order.
type Joins struct {
	items []types.Join
}

// Add appends a join.
func (j *Joins) Add(join types.Join) {
	join.Columns = slices.Clone(join.Columns)
	j.items = append(j.items, join)
}

// Len returns the number of joins.
func (j *Joins) Len() int {
	return len(j.items)
}

// Reset removes all joins.
func (j *Joins) Reset() {
	j.items = nil
}

// Render renders one line per join.
func (j *Joins) Render(ex types.Executor) ([]string, error) {
	lines := make([]string, 0, len(j.items))
	for _, join := range j.items {
		line, err := renderJoin(join, ex)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func renderJoin(join types.Join, ex types.Executor) (string, error) {
	if !join.Type.Valid() {
		return "", render.Invalid(render.ErrInvalidJoinType, "JOIN", string(join.Type))
	}
	joinType := join.Type.Normalize()

	table, err := render.Column(join.Table, ex)
	if err != nil {
		return "", err
	}

	var sql strings.Builder
	sql.WriteString(" ")
	if joinType != types.PlainJoin {
		sql.WriteString(string(joinType))
		sql.WriteString(" ")
	}
	sql.WriteString("JOIN ")
	sql.WriteString(table)

	hasCondition := join.Clause != types.NoCondition || join.Condition != nil || len(join.Columns) > 0
	if joinType.Natural() {
		if hasCondition {
			return "", render.State(render.ErrNaturalJoinHasCondition, "JOIN", string(joinType)+" JOIN cannot have ON or USING")
		}
		return sql.String(), nil
	}

	clause := types.ConditionClause(strings.ToUpper(strings.TrimSpace(string(join.Clause))))
	switch clause {
	case types.NoCondition:
		if join.Condition != nil || len(join.Columns) > 0 {
			return "", render.Invalid(render.ErrInvalidConditionClause, "JOIN", "", "a condition requires ON or USING")
		}
	case types.On:
		if join.Condition == nil || len(join.Columns) > 0 {
			return "", render.Invalid(render.ErrInvalidConditionClause, "JOIN", string(clause), "ON requires exactly one condition expression")
		}
		cond, err := render.Expression(join.Condition, ex)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ON ")
		sql.WriteString(cond)
	case types.Using:
		if len(join.Columns) == 0 || join.Condition != nil {
			return "", render.Invalid(render.ErrInvalidConditionClause, "JOIN", string(clause), "USING requires a column list")
		}
		columns := make([]string, len(join.Columns))
		for i, c := range join.Columns {
			columns[i] = render.ProtectIdentifier(c)
		}
		sql.WriteString(" USING (")
		sql.WriteString(strings.Join(columns, ", "))
		sql.WriteString(")")
	default:
		return "", render.Invalid(render.ErrInvalidConditionClause, "JOIN", string(join.Clause))
	}
	return sql.String(), nil
}
