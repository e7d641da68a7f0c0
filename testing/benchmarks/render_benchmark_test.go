// Package benchmarks provides performance benchmarks for mariaql.
package benchmarks

import (
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/mariaql"
	"github.com/zoobzio/mariaql/schema"
)

func createBenchmarkInstance(b *testing.B) *mariaql.Instance {
	b.Helper()

	project := dbml.NewProject("bench")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("age", "int"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	posts.AddColumn(dbml.NewColumn("views", "int"))
	project.AddTable(posts)

	instance, err := mariaql.NewFromDBML(project)
	if err != nil {
		b.Fatalf("Failed to create instance: %v", err)
	}
	return instance
}

// BenchmarkSimpleSelect measures simple SELECT rendering.
func BenchmarkSimpleSelect(b *testing.B) {
	stmt := mariaql.Select().From("users").WhereEqual("id", 10)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := stmt.Render(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComplexSelect measures a SELECT with joins, grouping and ordering.
func BenchmarkComplexSelect(b *testing.B) {
	instance := createBenchmarkInstance(b)
	stmt := mariaql.Select(instance.C("users.username"), mariaql.As(mariaql.Sum("posts.views"), "views")).
		Options(mariaql.SelectDistinct).
		From(instance.T("users")).
		LeftJoinOn(instance.T("posts"), mariaql.Raw("`posts`.`user_id` = `users`.`id`")).
		WhereEqual(instance.C("users.active"), true).
		WhereBetween(instance.C("users.age"), 18, 65).
		GroupBy(instance.C("users.username")).
		HavingGreaterThan("views", 100).
		OrderByDesc("views").
		Limit(20, 40)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := stmt.Render(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSubquery measures a SELECT with a nested subquery.
func BenchmarkSubquery(b *testing.B) {
	inner := mariaql.Select("user_id").From("posts").WhereGreaterThan("views", 1000)
	stmt := mariaql.Select("username").From("users").WhereIn("id", mariaql.Query(inner))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := stmt.Render(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInsertRows measures a multi-row INSERT.
func BenchmarkInsertRows(b *testing.B) {
	stmt := mariaql.InsertInto("users").Columns("username", "email", "age")
	for i := 0; i < 100; i++ {
		stmt.Values("user", "user@example.com", i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := stmt.Render(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpdate measures UPDATE rendering.
func BenchmarkUpdate(b *testing.B) {
	stmt := mariaql.Update("users").
		Set("username", "ada").
		Set("email", "ada@example.com").
		WhereEqual("id", 1)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := stmt.Render(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCreateTable measures CREATE TABLE rendering with options.
func BenchmarkCreateTable(b *testing.B) {
	stmt := schema.CreateTable("users").
		IfNotExists().
		Column("id", schema.BigInt().Unsigned().NotNull().AutoIncrement()).
		Column("username", schema.Varchar(64).NotNull()).
		Column("email", schema.Varchar(255).NotNull().Charset("utf8mb4").Collate("utf8mb4_unicode_ci")).
		Column("created_at", schema.Timestamp().Default(mariaql.Raw("CURRENT_TIMESTAMP"))).
		Index(schema.PrimaryKey("id")).
		Index(schema.UniqueKey("email").Name("users_email")).
		Option(schema.OptionEngine, "InnoDB").
		Option(schema.OptionCharset, "utf8mb4")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := stmt.Render(); err != nil {
			b.Fatal(err)
		}
	}
}
