package mariaql

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/mariaql/internal/render"
)

var errUnknownName = errors.New("unknown name")

// Instance validates table and column names against a DBML schema.
type Instance struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables map[string]map[string]bool // table -> column set
}

// NewFromDBML creates an Instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*Instance, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	i := &Instance{
		project: project,
		tables:  make(map[string]map[string]bool),
	}
	for _, table := range project.Tables {
		columns := make(map[string]bool, len(table.Columns))
		for _, col := range table.Columns {
			columns[col.Name] = true
		}
		i.tables[table.Name] = columns
	}
	return i, nil
}

// Project returns the DBML project the instance was built from.
func (i *Instance) Project() *dbml.Project { return i.project }

// Tables returns the table names in the schema, sorted.
func (i *Instance) Tables() []string {
	names := make([]string, 0, len(i.tables))
	for name := range i.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TryT returns name if it is a table in the schema.
func (i *Instance) TryT(name string) (string, error) {
	if _, ok := i.tables[name]; !ok {
		return "", render.Invalid(errUnknownName, "table", name)
	}
	return name, nil
}

// T returns name if it is a table in the schema and panics otherwise.
func (i *Instance) T(name string) string {
	t, err := i.TryT(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC returns name if it is a column in the schema. A dotted name
// (table.column) is checked against that table only; an undotted name may
// belong to any table. A * column is accepted for any known table.
func (i *Instance) TryC(name string) (string, error) {
	table, column, dotted := strings.Cut(name, ".")
	if !dotted {
		if name == "*" {
			return name, nil
		}
		for _, columns := range i.tables {
			if columns[name] {
				return name, nil
			}
		}
		return "", render.Invalid(errUnknownName, "column", name)
	}

	columns, ok := i.tables[table]
	if !ok {
		return "", render.Invalid(errUnknownName, "table", table)
	}
	if column != "*" && !columns[column] {
		return "", render.Invalid(errUnknownName, "column", name)
	}
	return name, nil
}

// C returns name if it is a column in the schema and panics otherwise.
func (i *Instance) C(name string) string {
	c, err := i.TryC(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Cs validates several columns at once and returns them as select
// expressions.
func (i *Instance) Cs(names ...string) ([]any, error) {
	out := make([]any, len(names))
	for n, name := range names {
		c, err := i.TryC(name)
		if err != nil {
			return nil, err
		}
		out[n] = c
	}
	return out, nil
}
