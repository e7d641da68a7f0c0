package clause

import (
	"errors"
	"testing"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

func TestOrdering_Render(t *testing.T) {
	var o Ordering
	o.Add(types.NoDirection, "name")
	o.Add("desc", "created_at", types.Raw{SQL: "RAND()"})

	got, err := o.Render("ORDER BY", nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := " ORDER BY `name`, `created_at` DESC, RAND() DESC"
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestOrdering_InvalidDirection(t *testing.T) {
	var o Ordering
	o.Add("SIDEWAYS", "name")
	_, err := o.Render("ORDER BY", nil)
	if !errors.Is(err, render.ErrInvalidDirection) {
		t.Errorf("Render() error = %v, want ErrInvalidDirection", err)
	}
}

func TestAssignments_Render(t *testing.T) {
	var a Assignments
	a.Set("name", "Alice")
	a.Set("updated_at", types.Raw{SQL: "NOW()"})
	a.Set("name", "Bob")

	got, err := a.Render("SET", nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := " SET `name` = 'Bob', `updated_at` = NOW()"
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}

func TestRows_Render(t *testing.T) {
	var r Rows
	r.Add(1, "a")
	r.Add(2, nil)

	got, err := r.Render(nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := " VALUES (1, 'a'),\n (2, NULL)"
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestLimit_Render(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		offset []int
		want   string
		err    error
	}{
		{"count", 10, nil, " LIMIT 10", nil},
		{"count and offset", 10, []int{20}, " LIMIT 10 OFFSET 20", nil},
		{"zero count", 0, nil, "", render.ErrInvalidLimit},
		{"negative count", -1, nil, "", render.ErrInvalidLimit},
		{"zero offset", 5, []int{0}, "", render.ErrInvalidLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Limit
			l.Set(tt.count, tt.offset...)
			got, err := l.Render()
			if !errors.Is(err, tt.err) {
				t.Fatalf("Render() error = %v, want %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLimit_Unset(t *testing.T) {
	var l Limit
	l.Set(5)
	l.Reset()
	if l.IsSet() {
		t.Error("IsSet() = true after Reset")
	}
	if got, _ := l.Render(); got != "" {
		t.Errorf("SQL = %q, want empty", got)
	}
}

func TestOptionSet_Render(t *testing.T) {
	set := OptionSet{
		Clause:    "SELECT",
		Allowed:   []string{"ALL", "DISTINCT", "DISTINCTROW", "SQL_CACHE", "SQL_NO_CACHE"},
		Exclusive: [][]string{{"ALL", "DISTINCT", "DISTINCTROW"}, {"SQL_CACHE", "SQL_NO_CACHE"}},
	}

	got, err := set.Render([]string{"distinct", "SQL_NO_CACHE", "DISTINCT"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := " DISTINCT SQL_NO_CACHE"; got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}

	if _, err := set.Render([]string{"FAST"}); !errors.Is(err, render.ErrInvalidOption) {
		t.Errorf("unknown option error = %v, want ErrInvalidOption", err)
	}
	if _, err := set.Render([]string{"ALL", "DISTINCT"}); !errors.Is(err, render.ErrOptionConflict) {
		t.Errorf("conflict error = %v, want ErrOptionConflict", err)
	}
	if got, _ := set.Render(nil); got != "" {
		t.Errorf("empty SQL = %q, want empty", got)
	}
}
