package clause

import (
	"slices"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// Rows holds VALUES rows in insertion order.
type Rows struct {
	rows [][]any
}

// Add appends one row.
func (r *Rows) Add(values ...any) {
	r.rows = append(r.rows, slices.Clone(values))
}

// Len returns the number of rows.
func (r *Rows) Len() int {
	return len(r.rows)
}

// Reset removes all rows.
func (r *Rows) Reset() {
	r.rows = nil
}

// Render renders the rows as parenthesised tuples, one per line.
func (r *Rows) Render(ex types.Executor) (string, error) {
	if len(r.rows) == 0 {
		return "", nil
	}
	tuples := make([]string, 0, len(r.rows))
	for _, row := range r.rows {
		values, err := render.Values(row, ex)
		if err != nil {
			return "", err
		}
		tuples = append(tuples, "("+values+")")
	}
	return " VALUES " + strings.Join(tuples, ",\n "), nil
}
