package mariaql_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zoobzio/mariaql"
)

func TestSelect_Render(t *testing.T) {
	tests := []struct {
		name string
		stmt *mariaql.SelectStatement
		want string
	}{
		{
			name: "star from table",
			stmt: mariaql.Select().From("t1").WhereEqual("id", 10),
			want: "SELECT\n *\n FROM `t1`\n WHERE `id` = 10\n",
		},
		{
			name: "expression without FROM",
			stmt: mariaql.Select(mariaql.Raw("1 + 1")),
			want: "SELECT\n 1 + 1\n",
		},
		{
			name: "columns and alias",
			stmt: mariaql.Select("u.id", mariaql.As("u.name", "n")).From(mariaql.As("users", "u")),
			want: "SELECT\n `u`.`id`, `u`.`name` AS `n`\n FROM `users` AS `u`\n",
		},
		{
			name: "options",
			stmt: mariaql.Select("id").Options("distinct", mariaql.SelectSmallResult).From("t"),
			want: "SELECT\n DISTINCT SQL_SMALL_RESULT\n `id`\n FROM `t`\n",
		},
		{
			name: "duplicate options render once",
			stmt: mariaql.Select().Options("DISTINCT", "distinct").From("t"),
			want: "SELECT\n DISTINCT\n *\n FROM `t`\n",
		},
		{
			name: "group by with rollup and having",
			stmt: mariaql.Select("dept", mariaql.As(mariaql.Count(), "n")).
				From("staff").
				GroupBy("dept").
				WithRollup().
				HavingGreaterThan(mariaql.Count(), 2),
			want: "SELECT\n `dept`, COUNT(*) AS `n`\n FROM `staff`\n GROUP BY `dept` WITH ROLLUP\n HAVING COUNT(*) > 2\n",
		},
		{
			name: "order and limit",
			stmt: mariaql.Select().From("t").OrderByDesc("created").OrderBy("id").Limit(10, 20),
			want: "SELECT\n *\n FROM `t`\n ORDER BY `created` DESC, `id`\n LIMIT 10 OFFSET 20\n",
		},
		{
			name: "procedure",
			stmt: mariaql.Select().From("t").Procedure("ANALYSE", 10, 2000),
			want: "SELECT\n *\n FROM `t`\n PROCEDURE ANALYSE(10, 2000)\n",
		},
		{
			name: "for update nowait",
			stmt: mariaql.Select().From("t").WhereEqual("id", 1).ForUpdateNoWait(),
			want: "SELECT\n *\n FROM `t`\n WHERE `id` = 1\n FOR UPDATE NOWAIT\n",
		},
		{
			name: "for update wait",
			stmt: mariaql.Select().From("t").ForUpdateWait(5),
			want: "SELECT\n *\n FROM `t`\n FOR UPDATE WAIT 5\n",
		},
		{
			name: "share mode skip locked",
			stmt: mariaql.Select().From("t").LockInShareModeSkipLocked(),
			want: "SELECT\n *\n FROM `t`\n LOCK IN SHARE MODE SKIP LOCKED\n",
		},
		{
			name: "join",
			stmt: mariaql.Select("o.id").
				From(mariaql.As("orders", "o")).
				LeftJoinOn(mariaql.As("customers", "c"), mariaql.Raw("`c`.`id` = `o`.`customer_id`")).
				JoinUsing("items", "order_id"),
			want: "SELECT\n `o`.`id`\n FROM `orders` AS `o`\n LEFT JOIN `customers` AS `c` ON `c`.`id` = `o`.`customer_id`\n JOIN `items` USING (`order_id`)\n",
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

func TestSelect_RenderIsRepeatable(t *testing.T) {
	stmt := mariaql.Select().From("t1").WhereEqual("id", 10)
	first := stmt.MustRender()
	for i := 0; i < 3; i++ {
		if again := stmt.MustRender(); again != first {
			t.Errorf("render %d = %q, want %q", i, again, first)
		}
	}
}

func TestSelect_Errors(t *testing.T) {
	tests := []struct {
		name string
		stmt *mariaql.SelectStatement
		want error
	}{
		{"join without from", mariaql.Select("a").Join("t"), mariaql.ErrMissingClause},
		{"where without from", mariaql.Select("a").WhereEqual("a", 1), mariaql.ErrMissingClause},
		{"order without from", mariaql.Select("a").OrderBy("a"), mariaql.ErrMissingClause},
		{"limit without from", mariaql.Select("a").Limit(1), mariaql.ErrMissingClause},
		{"rollup without group", mariaql.Select().From("t").WithRollup(), mariaql.ErrMissingClause},
		{"unknown option", mariaql.Select().Options("FAST").From("t"), mariaql.ErrInvalidOption},
		{"conflicting options", mariaql.Select().Options("ALL", "DISTINCTROW").From("t"), mariaql.ErrOptionConflict},
		{"cache conflict", mariaql.Select().Options("SQL_CACHE", "SQL_NO_CACHE").From("t"), mariaql.ErrOptionConflict},
		{"zero limit", mariaql.Select().From("t").Limit(0), mariaql.ErrInvalidLimit},
		{"zero offset", mariaql.Select().From("t").Limit(5, 0), mariaql.ErrInvalidLimit},
		{"bad procedure", mariaql.Select().From("t").Procedure("x; DROP"), mariaql.ErrInvalidIdentifier},
		{"negative wait", mariaql.Select().From("t").ForUpdateWait(-1), mariaql.ErrInvalidOptionValue},
		{"bad operator", mariaql.Select().From("t").Where("a", "~", 1), mariaql.ErrInvalidOperator},
		{"arity", mariaql.Select().From("t").Where("a", mariaql.Between, 1), mariaql.ErrArityMismatch},
		{"bad direction", mariaql.Select().From("t").OrderByDirection("UP", "a"), mariaql.ErrInvalidDirection},
		{"natural join with condition", mariaql.Select().From("t").AddJoin(mariaql.Join{
			Table: "u", Type: mariaql.NaturalJoin, Clause: mariaql.On, Condition: mariaql.Raw("1"),
		}), mariaql.ErrNaturalJoinHasCondition},
		{"bad join type", mariaql.Select().From("t").AddJoin(mariaql.Join{Table: "u", Type: "SIDEWAYS"}), mariaql.ErrInvalidJoinType},
		{"unquotable value", mariaql.Select().From("t").WhereEqual("a", struct{}{}), mariaql.ErrValueType},
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

func TestSelect_ErrorCategories(t *testing.T) {
	_, err := mariaql.Select().From("t").Where("a", "~", 1).Render()
	var verr *mariaql.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want *ValidationError", err)
	}
	if verr.Value != "~" {
		t.Errorf("Value = %q, want %q", verr.Value, "~")
	}

	_, err = mariaql.Select("a").WhereEqual("a", 1).Render()
	var serr *mariaql.StateError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %T, want *StateError", err)
	}

	_, err = mariaql.Select().From("t").WhereIn("a").Render()
	var aerr *mariaql.ArityError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %T, want *ArityError", err)
	}
	if aerr.Got != 0 {
		t.Errorf("Got = %d, want 0", aerr.Got)
	}
}

func TestSelect_Reset(t *testing.T) {
	stmt := mariaql.Select("a").From("t").WhereEqual("a", 1).OrderBy("a").Limit(3)

	stmt.Reset(mariaql.ClauseWhere, mariaql.ClauseLimit)
	if got, want := stmt.MustRender(), "SELECT\n `a`\n FROM `t`\n ORDER BY `a`\n"; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}

	stmt.Reset()
	if got, want := stmt.MustRender(), "SELECT\n"; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestSelect_IntoOutfile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.csv")

	stmt := mariaql.Select("id", "name").From("users").IntoOutfile(file, mariaql.ExportOptions{
		Charset:                  "utf8mb4",
		FieldsTerminatedBy:       ",",
		FieldsEnclosedBy:         `"`,
		FieldsOptionallyEnclosed: true,
		LinesTerminatedBy:        "\n",
	})
	want := "SELECT\n `id`, `name`\n FROM `users`\n INTO OUTFILE '" + file + "'" +
		` CHARACTER SET utf8mb4 FIELDS TERMINATED BY ',' OPTIONALLY ENCLOSED BY '\"' LINES TERMINATED BY '\n'` + "\n"

	got, err := stmt.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestSelect_IntoErrors(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(existing, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	fresh := filepath.Join(dir, "fresh.txt")

	tests := []struct {
		name string
		stmt *mariaql.SelectStatement
		want error
	}{
		{"outfile exists", mariaql.Select().From("t").IntoOutfile(existing), mariaql.ErrFileExists},
		{"dumpfile exists", mariaql.Select().From("t").IntoDumpfile(existing), mariaql.ErrFileExists},
		{"unknown charset", mariaql.Select().From("t").IntoOutfile(fresh, mariaql.ExportOptions{Charset: "klingon"}), mariaql.ErrInvalidOptionValue},
		{"optionally without enclosure", mariaql.Select().From("t").IntoOutfile(fresh, mariaql.ExportOptions{FieldsOptionallyEnclosed: true}), mariaql.ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.stmt.Render()
			if !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}

	got, err := mariaql.Select("blob").From("t").Limit(1).IntoDumpfile(fresh).Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "SELECT\n `blob`\n FROM `t`\n LIMIT 1\n INTO DUMPFILE '" + fresh + "'\n"
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestSelect_MustRenderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	mariaql.Select("a").Join("t").MustRender()
}

func TestStatements_CopyCallerSlices(t *testing.T) {
	cols := []any{"a"}
	vals := []any{1, 2}
	row := []any{"x"}
	using := []string{"id"}

	sel := mariaql.Select(cols...).From("t").JoinUsing("u", using...).WhereIn("x", vals...)
	ins := mariaql.InsertInto("t").Values(row...)
	upd := mariaql.Update([]any{"t"}...).Set("a", 1)

	before := []string{sel.MustRender(), ins.MustRender(), upd.MustRender()}

	cols[0] = "b"
	vals[0] = "1; DROP TABLE t"
	row[0] = "y"
	using[0] = "other"

	after := []string{sel.MustRender(), ins.MustRender(), upd.MustRender()}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("render changed after caller slice mutation:\n before %q\n after  %q", before[i], after[i])
		}
	}
	if want := "SELECT\n `a`\n FROM `t`\n JOIN `u` USING (`id`)\n WHERE `x` IN (1, 2)\n"; before[0] != want {
		t.Errorf("SQL = %q, want %q", before[0], want)
	}
}
