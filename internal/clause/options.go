package clause

import (
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
)

// OptionSet is a keyword allow-list for statement options such as DISTINCT or
// LOW_PRIORITY. Each exclusive group admits at most one of its members.
type OptionSet struct {
	Clause    string
	Allowed   []string
	Exclusive [][]string
}

// Render validates options and renders them space separated with a leading
// space. Options are case-insensitive; duplicates render once.
func (s OptionSet) Render(options []string) (string, error) {
	if len(options) == 0 {
		return "", nil
	}
	seen := make(map[string]bool, len(options))
	normalized := make([]string, 0, len(options))
	for _, opt := range options {
		n := strings.ToUpper(strings.TrimSpace(opt))
		if !s.allowed(n) {
			return "", render.Invalid(render.ErrInvalidOption, s.Clause, opt)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}
	for _, group := range s.Exclusive {
		var present []string
		for _, member := range group {
			if seen[member] {
				present = append(present, member)
			}
		}
		if len(present) > 1 {
			return "", render.State(render.ErrOptionConflict, s.Clause, strings.Join(present, " and ")+" are mutually exclusive")
		}
	}
	return " " + strings.Join(normalized, " "), nil
}

func (s OptionSet) allowed(option string) bool {
	for _, a := range s.Allowed {
		if a == option {
			return true
		}
	}
	return false
}
