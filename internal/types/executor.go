package types

import (
	"context"
	"database/sql"
)

// Executor is the database collaborator statements delegate to. Statements
// that mutate data or schema call Exec; statements that read call Query.
type Executor interface {
	Exec(ctx context.Context, query string) (int64, error)
	Query(ctx context.Context, query string) (*sql.Rows, error)
}
