package mariaql_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/mariaql"
)

func createTestInstance(t *testing.T) *mariaql.Instance {
	t.Helper()

	project := dbml.NewProject("test_db")

	users := dbml.NewTable("users")
	users.AddColumn(dbml.NewColumn("id", "bigint"))
	users.AddColumn(dbml.NewColumn("username", "varchar"))
	users.AddColumn(dbml.NewColumn("email", "varchar"))
	users.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(users)

	posts := dbml.NewTable("posts")
	posts.AddColumn(dbml.NewColumn("id", "bigint"))
	posts.AddColumn(dbml.NewColumn("user_id", "bigint"))
	posts.AddColumn(dbml.NewColumn("title", "varchar"))
	project.AddTable(posts)

	instance, err := mariaql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create instance: %v", err)
	}
	return instance
}

func TestNewFromDBML_Nil(t *testing.T) {
	if _, err := mariaql.NewFromDBML(nil); err == nil {
		t.Error("expected error for nil project")
	}
}

func TestInstance_Tables(t *testing.T) {
	instance := createTestInstance(t)
	if got, want := instance.Tables(), []string{"posts", "users"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Tables() = %v, want %v", got, want)
	}
	if instance.Project() == nil {
		t.Error("Project() = nil")
	}
}

func TestInstance_TryT(t *testing.T) {
	instance := createTestInstance(t)

	if got, err := instance.TryT("users"); err != nil || got != "users" {
		t.Errorf("TryT(users) = %q, %v", got, err)
	}
	_, err := instance.TryT("accounts")
	if !errors.Is(err, mariaql.ErrUnknownName) {
		t.Errorf("TryT(accounts) error = %v, want %v", err, mariaql.ErrUnknownName)
	}
	var verr *mariaql.ValidationError
	if !errors.As(err, &verr) || verr.Clause != "table" || verr.Value != "accounts" {
		t.Errorf("TryT(accounts) error = %#v", err)
	}
}

func TestInstance_TryC(t *testing.T) {
	instance := createTestInstance(t)

	valid := []string{"id", "title", "users.email", "posts.user_id", "*", "users.*"}
	for _, name := range valid {
		if got, err := instance.TryC(name); err != nil || got != name {
			t.Errorf("TryC(%q) = %q, %v", name, got, err)
		}
	}

	invalid := []string{"password", "users.title", "accounts.id", "posts.email", ""}
	for _, name := range invalid {
		if _, err := instance.TryC(name); !errors.Is(err, mariaql.ErrUnknownName) {
			t.Errorf("TryC(%q) error = %v, want %v", name, err, mariaql.ErrUnknownName)
		}
	}
}

func TestInstance_Cs(t *testing.T) {
	instance := createTestInstance(t)

	cols, err := instance.Cs("users.id", "users.email")
	if err != nil {
		t.Fatalf("Cs() error = %v", err)
	}
	got := mariaql.Select(cols...).From(instance.T("users")).MustRender()
	if want := "SELECT\n `users`.`id`, `users`.`email`\n FROM `users`\n"; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}

	if _, err := instance.Cs("id", "nope"); err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestInstance_Panics(t *testing.T) {
	instance := createTestInstance(t)

	for name, fn := range map[string]func(){
		"T": func() { instance.T("nope") },
		"C": func() { instance.C("users.nope") },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestInstance_InStatement(t *testing.T) {
	instance := createTestInstance(t)

	got := mariaql.Select(instance.C("posts.title")).
		From(instance.T("posts")).
		InnerJoinUsing(instance.T("users"), "id").
		WhereEqual(instance.C("users.active"), true).
		MustRender()
	want := "SELECT\n `posts`.`title`\n FROM `posts`\n INNER JOIN `users` USING (`id`)\n WHERE `users`.`active` = TRUE\n"
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}
