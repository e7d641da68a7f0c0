package schema

import (
	"context"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

func exec(ctx context.Context, ex types.Executor, stmt types.Renderer) (int64, error) {
	if ex == nil {
		return 0, render.State(render.ErrNoExecutor, "exec")
	}
	text, err := stmt.Render()
	if err != nil {
		return 0, err
	}
	return ex.Exec(ctx, text)
}

func exclusive(clause string, a bool, aName string, b bool, bName string) error {
	if a && b {
		return render.State(render.ErrClauseConflict, clause, aName+" and "+bName+" are mutually exclusive")
	}
	return nil
}

func mustRender(stmt types.Renderer) string {
	text, err := stmt.Render()
	if err != nil {
		panic(err)
	}
	return text
}
