package mariaql_test

import (
	"strings"
	"testing"

	"github.com/zoobzio/mariaql"
)

var injectionAttempts = []struct {
	name  string
	input string
}{
	{"DROP TABLE", "email; DROP TABLE users; --"},
	{"Union injection", "id UNION SELECT * FROM passwords"},
	{"OR 1=1", "id OR 1=1"},
	{"Comment injection", "id/**/OR/**/1=1"},
	{"Backtick injection", "id` FROM users; DROP TABLE users; --"},
	{"Quote injection", "id' OR '1'='1"},
	{"Double quote injection", `id" OR "1"="1`},
	{"Backslash quote", `id\' OR 1=1 -- `},
	{"Null byte injection", "id\x00 OR 1=1"},
	{"Whitespace tricks", "id\nOR\n1=1"},
	{"Function injection", "id) OR SLEEP(10)--"},
}

// TestInjection_Instance verifies that names outside the schema are rejected.
func TestInjection_Instance(t *testing.T) {
	instance := createTestInstance(t)

	for _, attempt := range injectionAttempts {
		t.Run(attempt.name, func(t *testing.T) {
			if _, err := instance.TryC(attempt.input); err == nil {
				t.Errorf("TryC accepted %q", attempt.input)
			}
			if _, err := instance.TryT(attempt.input); err == nil {
				t.Errorf("TryT accepted %q", attempt.input)
			}
		})
	}
}

// TestInjection_Identifiers verifies that a hostile identifier stays one
// backtick-quoted name.
func TestInjection_Identifiers(t *testing.T) {
	for _, attempt := range injectionAttempts {
		t.Run(attempt.name, func(t *testing.T) {
			got := mariaql.ProtectIdentifier(strings.ReplaceAll(attempt.input, ".", ""))
			inner := got[1 : len(got)-1]
			if got[0] != '`' || got[len(got)-1] != '`' {
				t.Fatalf("ProtectIdentifier() = %q, not quoted", got)
			}
			if strings.Contains(strings.ReplaceAll(inner, "``", ""), "`") {
				t.Errorf("ProtectIdentifier() = %q leaks a bare backtick", got)
			}
		})
	}
}

// TestInjection_Values verifies that a hostile value stays one string literal.
func TestInjection_Values(t *testing.T) {
	for _, attempt := range injectionAttempts {
		t.Run(attempt.name, func(t *testing.T) {
			got, err := mariaql.Select().From("users").WhereEqual("email", attempt.input).Render()
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			line := strings.TrimSuffix(strings.SplitN(got, " WHERE ", 2)[1], "\n")
			literal := strings.TrimPrefix(line, "`email` = ")
			if literal[0] != '\'' || literal[len(literal)-1] != '\'' {
				t.Fatalf("literal %q is not quoted", literal)
			}
			body := literal[1 : len(literal)-1]
			for i := 0; i < len(body); i++ {
				switch body[i] {
				case '\\':
					i++
				case '\'', '\n', 0:
					t.Fatalf("literal %q leaks %q at %d", literal, body[i], i)
				}
			}
		})
	}
}
