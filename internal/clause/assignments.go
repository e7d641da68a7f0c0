package clause

import (
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

type assignment struct {
	value  any
	column string
}

// Assignments maps columns to values for SET and ON DUPLICATE KEY UPDATE.
// Columns keep the position of their first assignment; reassigning a column
// replaces its value.
type Assignments struct {
	items []assignment
	index map[string]int
}

// Set assigns value to column.
func (a *Assignments) Set(column string, value any) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[column]; ok {
		a.items[i].value = value
		return
	}
	a.index[column] = len(a.items)
	a.items = append(a.items, assignment{column: column, value: value})
}

// Len returns the number of assigned columns.
func (a *Assignments) Len() int {
	return len(a.items)
}

// Reset removes all assignments.
func (a *Assignments) Reset() {
	a.items = nil
	a.index = nil
}

// Render renders `col` = value pairs under keyword.
func (a *Assignments) Render(keyword string, ex types.Executor) (string, error) {
	if len(a.items) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(a.items))
	for _, item := range a.items {
		value, err := render.Value(item.value, ex)
		if err != nil {
			return "", err
		}
		parts = append(parts, render.ProtectIdentifier(item.column)+" = "+value)
	}
	return " " + keyword + " " + strings.Join(parts, ", "), nil
}
