package mariaql_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/mariaql"
)

func TestInsert_Render(t *testing.T) {
	tests := []struct {
		name string
		stmt mariaql.Renderer
		want string
	}{
		{
			name: "multi-row values",
			stmt: mariaql.InsertInto("t1").Columns("a", "b").Values(1, "x").Values(2, nil),
			want: "INSERT\n INTO `t1`\n (`a`, `b`)\n VALUES (1, 'x'),\n (2, NULL)\n",
		},
		{
			name: "set form",
			stmt: mariaql.InsertInto("t1").Set("a", 1).Set("b", true),
			want: "INSERT\n INTO `t1`\n SET `a` = 1, `b` = TRUE\n",
		},
		{
			name: "options and on duplicate key update",
			stmt: mariaql.InsertInto("counters").
				Options(mariaql.InsertIgnore).
				Columns("id", "hits").
				Values(7, 1).
				OnDuplicateKeyUpdate("hits", mariaql.Raw("`hits` + 1")),
			want: "INSERT\n IGNORE\n INTO `counters`\n (`id`, `hits`)\n VALUES (7, 1)\n ON DUPLICATE KEY UPDATE `hits` = `hits` + 1\n",
		},
		{
			name: "select source",
			stmt: mariaql.InsertInto("archive").
				Columns("id").
				Select(mariaql.Query(mariaql.Select("id").From("orders").WhereLessThan("year", 2020))),
			want: "INSERT\n INTO `archive`\n (`id`)\n SELECT\n `id`\n FROM `orders`\n WHERE `year` < 2020\n",
		},
		{
			name: "replace",
			stmt: mariaql.ReplaceInto("t1").Options(mariaql.ReplaceLowPriority).Values(1, "a"),
			want: "REPLACE\n LOW_PRIORITY\n INTO `t1`\n VALUES (1, 'a')\n",
		},
		{
			name: "replace raw select source",
			stmt: mariaql.ReplaceInto("t1").Columns("id").Select(mariaql.Raw("SELECT id FROM t2\n")),
			want: "REPLACE\n INTO `t1`\n (`id`)\n SELECT id FROM t2\n",
		},
		{
			name: "escaped string",
			stmt: mariaql.InsertInto("t").Values("it's\n"),
			want: "INSERT\n INTO `t`\n VALUES ('it\\'s\\n')\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.stmt.Render()
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsert_Errors(t *testing.T) {
	sub := mariaql.Query(mariaql.Select("id").From("t"))

	tests := []struct {
		name string
		stmt mariaql.Renderer
		want error
	}{
		{"no source", mariaql.InsertInto("t"), mariaql.ErrRowSourceConflict},
		{"values and set", mariaql.InsertInto("t").Values(1).Set("a", 1), mariaql.ErrRowSourceConflict},
		{"values and select", mariaql.InsertInto("t").Values(1).Select(sub), mariaql.ErrRowSourceConflict},
		{"columns with set", mariaql.InsertInto("t").Columns("a").Set("a", 1), mariaql.ErrClauseConflict},
		{"missing table", mariaql.InsertInto(nil).Values(1), mariaql.ErrMissingClause},
		{"priority conflict", mariaql.InsertInto("t").Options("DELAYED", "HIGH_PRIORITY").Values(1), mariaql.ErrOptionConflict},
		{"unknown option", mariaql.InsertInto("t").Options("QUICK").Values(1), mariaql.ErrInvalidOption},
		{"replace conflict", mariaql.ReplaceInto("t").Options("LOW_PRIORITY", "DELAYED").Values(1), mariaql.ErrOptionConflict},
		{"replace ignore", mariaql.ReplaceInto("t").Options("IGNORE").Values(1), mariaql.ErrInvalidOption},
		{"literal select source", mariaql.InsertInto("t").Select(mariaql.Value(1)), mariaql.ErrValueType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.stmt.Render()
			if !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInsert_Reset(t *testing.T) {
	stmt := mariaql.InsertInto("t").Values(1)
	stmt.Reset(mariaql.ClauseValues).Set("a", 2)

	if got, want := stmt.MustRender(), "INSERT\n INTO `t`\n SET `a` = 2\n"; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}
