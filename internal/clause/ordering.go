package clause

import (
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// Ordering holds ORDER BY or GROUP BY items in insertion order.
type Ordering struct {
	items []types.OrderBy
}

// Add appends items sharing one direction.
func (o *Ordering) Add(direction types.Direction, exprs ...any) {
	for _, e := range exprs {
		o.items = append(o.items, types.OrderBy{Expr: e, Direction: direction})
	}
}

// Len returns the number of items.
func (o *Ordering) Len() int {
	return len(o.items)
}

// Reset removes all items.
func (o *Ordering) Reset() {
	o.items = nil
}

// Render renders the items under keyword (ORDER BY or GROUP BY).
func (o *Ordering) Render(keyword string, ex types.Executor) (string, error) {
	if len(o.items) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(o.items))
	for _, item := range o.items {
		expr, err := render.Column(item.Expr, ex)
		if err != nil {
			return "", err
		}
		direction := types.Direction(strings.ToUpper(strings.TrimSpace(string(item.Direction))))
		switch direction {
		case types.NoDirection:
		case types.ASC, types.DESC:
			expr += " " + string(direction)
		default:
			return "", render.Invalid(render.ErrInvalidDirection, keyword, string(item.Direction))
		}
		parts = append(parts, expr)
	}
	return " " + keyword + " " + strings.Join(parts, ", "), nil
}
