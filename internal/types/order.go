package types

// Direction represents sort direction. The zero value renders no keyword.
type Direction string

const (
	NoDirection Direction = ""
	ASC         Direction = "ASC"
	DESC        Direction = "DESC"
)

// OrderBy represents one ORDER BY or GROUP BY item.
type OrderBy struct {
	Expr      any
	Direction Direction
}
