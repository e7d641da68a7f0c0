package mariaql_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/zoobzio/mariaql"
	"github.com/zoobzio/mariaql/schema"
)

type recorder struct {
	queries []string
	rows    int64
}

func (r *recorder) Exec(_ context.Context, query string) (int64, error) {
	r.queries = append(r.queries, query)
	return r.rows, nil
}

func (r *recorder) Query(_ context.Context, query string) (*sql.Rows, error) {
	r.queries = append(r.queries, query)
	return nil, nil
}

func TestDB_BindsEveryStatement(t *testing.T) {
	rec := &recorder{rows: 2}
	db := mariaql.New(rec)
	ctx := context.Background()

	if db.Executor() != rec {
		t.Fatal("Executor() does not return the bound executor")
	}

	execs := []func() (int64, error){
		func() (int64, error) { return db.InsertInto("t").Values(1).Exec(ctx) },
		func() (int64, error) { return db.ReplaceInto("t").Values(1).Exec(ctx) },
		func() (int64, error) { return db.Update("t").Set("a", 1).Exec(ctx) },
		func() (int64, error) { return db.DeleteFrom("t").Exec(ctx) },
		func() (int64, error) { return db.CreateSchema("s").Exec(ctx) },
		func() (int64, error) { return db.AlterSchema("s").Charset("utf8mb4").Exec(ctx) },
		func() (int64, error) { return db.DropSchema("s").Exec(ctx) },
		func() (int64, error) { return db.CreateTable("t").Column("id", schema.Int()).Exec(ctx) },
		func() (int64, error) { return db.AlterTable("t").DropColumn("a").Exec(ctx) },
		func() (int64, error) { return db.DropTable("t").Exec(ctx) },
	}
	for i, run := range execs {
		n, err := run()
		if err != nil {
			t.Fatalf("exec %d: %v", i, err)
		}
		if n != 2 {
			t.Errorf("exec %d: rows = %d, want 2", i, n)
		}
	}

	if _, err := db.Select().From("t").Query(ctx); err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if _, err := db.With().Reference("a", mariaql.Raw("SELECT 1")).Select(mariaql.Raw("SELECT * FROM a")).Query(ctx); err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if got, want := len(rec.queries), len(execs)+2; got != want {
		t.Fatalf("queries = %d, want %d", got, want)
	}
	if got, want := rec.queries[0], "INSERT\n INTO `t`\n VALUES (1)\n"; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
	if got, want := rec.queries[len(rec.queries)-1], "WITH\n `a` AS (SELECT 1)\n SELECT * FROM a\n"; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestExec_NoExecutor(t *testing.T) {
	ctx := context.Background()
	if _, err := mariaql.Update("t").Set("a", 1).Exec(ctx); !errors.Is(err, mariaql.ErrNoExecutor) {
		t.Errorf("Exec() error = %v, want %v", err, mariaql.ErrNoExecutor)
	}
	if _, err := mariaql.Select().From("t").Query(ctx); !errors.Is(err, mariaql.ErrNoExecutor) {
		t.Errorf("Query() error = %v, want %v", err, mariaql.ErrNoExecutor)
	}
}

func TestExec_RenderErrorNotSent(t *testing.T) {
	rec := &recorder{}
	_, err := mariaql.New(rec).DeleteFrom().Exec(context.Background())
	if !errors.Is(err, mariaql.ErrMissingClause) {
		t.Errorf("Exec() error = %v, want %v", err, mariaql.ErrMissingClause)
	}
	if len(rec.queries) != 0 {
		t.Errorf("queries = %q, want none", rec.queries)
	}
}
