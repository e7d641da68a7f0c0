package clause

import (
	"strconv"

	"github.com/zoobzio/mariaql/internal/render"
)

// Limit holds a row count and an optional offset.
type Limit struct {
	count  *int
	offset *int
}

// Set stores the row count and, when given, the offset.
func (l *Limit) Set(count int, offset ...int) {
	l.count = &count
	l.offset = nil
	if len(offset) > 0 {
		o := offset[0]
		l.offset = &o
	}
}

// IsSet reports whether a row count is stored.
func (l *Limit) IsSet() bool {
	return l.count != nil
}

// Reset clears the limit.
func (l *Limit) Reset() {
	l.count = nil
	l.offset = nil
}

// Render renders LIMIT n [OFFSET m]. Both values must be greater than zero.
func (l *Limit) Render() (string, error) {
	if l.count == nil {
		return "", nil
	}
	if *l.count < 1 {
		return "", render.Invalid(render.ErrInvalidLimit, "LIMIT", strconv.Itoa(*l.count), "must be greater than 0")
	}
	sql := " LIMIT " + strconv.Itoa(*l.count)
	if l.offset != nil {
		if *l.offset < 1 {
			return "", render.Invalid(render.ErrInvalidLimit, "OFFSET", strconv.Itoa(*l.offset), "must be greater than 0")
		}
		sql += " OFFSET " + strconv.Itoa(*l.offset)
	}
	return sql, nil
}
