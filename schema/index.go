package schema

import (
	"slices"
	"strconv"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
)

// IndexKind is the kind of an index or key definition.
type IndexKind int

const (
	IndexPlain IndexKind = iota + 1
	IndexPrimary
	IndexUnique
	IndexFullText
	IndexSpatial
	IndexForeign
)

var indexKeywords = map[IndexKind]string{
	IndexPlain:    "KEY",
	IndexPrimary:  "PRIMARY KEY",
	IndexUnique:   "UNIQUE KEY",
	IndexFullText: "FULLTEXT KEY",
	IndexSpatial:  "SPATIAL KEY",
	IndexForeign:  "FOREIGN KEY",
}

// String returns the SQL keyword of the kind.
func (k IndexKind) String() string {
	if kw, ok := indexKeywords[k]; ok {
		return kw
	}
	return "UNKNOWN"
}

// ReferenceOption is a foreign key ON DELETE or ON UPDATE action.
type ReferenceOption string

const (
	Restrict ReferenceOption = "RESTRICT"
	Cascade  ReferenceOption = "CASCADE"
	SetNull  ReferenceOption = "SET NULL"
	NoAction ReferenceOption = "NO ACTION"
)

func (o ReferenceOption) normalize() ReferenceOption {
	return ReferenceOption(strings.Join(strings.Fields(strings.ToUpper(string(o))), " "))
}

func (o ReferenceOption) valid() bool {
	switch o.normalize() {
	case Restrict, Cascade, SetNull, NoAction:
		return true
	}
	return false
}

// Index is an index or key definition.
type Index struct {
	name       string
	constraint string
	refTable   string
	onDelete   ReferenceOption
	onUpdate   ReferenceOption
	columns    []string
	refColumns []string
	kind       IndexKind
}

// NewIndex returns an index of the given kind over columns.
func NewIndex(kind IndexKind, columns ...string) *Index {
	return &Index{kind: kind, columns: slices.Clone(columns)}
}

// Key returns a plain index.
func Key(columns ...string) *Index { return NewIndex(IndexPlain, columns...) }

// PrimaryKey returns a primary key over columns.
func PrimaryKey(columns ...string) *Index  { return NewIndex(IndexPrimary, columns...) }
// UniqueKey returns a unique index over columns.
func UniqueKey(columns ...string) *Index   { return NewIndex(IndexUnique, columns...) }
// FullTextKey returns a full-text index over columns.
func FullTextKey(columns ...string) *Index { return NewIndex(IndexFullText, columns...) }
// SpatialKey returns a spatial index over columns.
func SpatialKey(columns ...string) *Index  { return NewIndex(IndexSpatial, columns...) }

// ForeignKey returns a foreign key over columns. References must be set
// before it renders.
func ForeignKey(columns ...string) *Index { return NewIndex(IndexForeign, columns...) }

// Kind returns the index kind.
func (i *Index) Kind() IndexKind { return i.kind }

// Name sets the index name. PRIMARY KEY renders without a name.
func (i *Index) Name(name string) *Index {
	i.name = name
	return i
}

// Constraint sets the constraint symbol. Only PRIMARY, UNIQUE and FOREIGN
// keys accept one.
func (i *Index) Constraint(symbol string) *Index {
	i.constraint = symbol
	return i
}

// References sets the referenced table and columns of a foreign key.
func (i *Index) References(table string, columns ...string) *Index {
	i.refTable = table
	i.refColumns = slices.Clone(columns)
	return i
}

// OnDelete sets the referential action taken when a referenced row is deleted.
func (i *Index) OnDelete(option ReferenceOption) *Index {
	i.onDelete = option
	return i
}

// OnUpdate sets the referential action taken when a referenced key changes.
func (i *Index) OnUpdate(option ReferenceOption) *Index {
	i.onUpdate = option
	return i
}

// Render renders the definition.
func (i *Index) Render() (string, error) {
	if i == nil {
		return "", render.State(render.ErrMissingClause, "index", "a definition is required")
	}
	kw, ok := indexKeywords[i.kind]
	if !ok {
		return "", render.Invalid(render.ErrInvalidOptionValue, "index", strconv.Itoa(int(i.kind)), "unknown index kind")
	}
	if len(i.columns) == 0 {
		return "", render.State(render.ErrMissingColumns, kw, "at least one column is required")
	}

	var sql strings.Builder
	if i.constraint != "" {
		switch i.kind {
		case IndexPrimary, IndexUnique, IndexForeign:
		default:
			return "", render.Invalid(render.ErrConstraintNotAllowed, kw, i.constraint)
		}
		sql.WriteString("CONSTRAINT " + render.ProtectIdentifier(i.constraint) + " ")
	}

	sql.WriteString(kw)
	if i.name != "" && i.kind != IndexPrimary {
		sql.WriteString(" " + render.ProtectIdentifier(i.name))
	}
	sql.WriteString(" (" + protectList(i.columns) + ")")

	if i.kind != IndexForeign {
		if i.refTable != "" || len(i.refColumns) > 0 || i.onDelete != "" || i.onUpdate != "" {
			return "", render.Invalid(render.ErrAttributeNotAllowed, kw, "REFERENCES")
		}
		return sql.String(), nil
	}

	if i.refTable == "" || len(i.refColumns) == 0 {
		return "", render.State(render.ErrMissingReferences, kw, "REFERENCES table and columns are required")
	}
	sql.WriteString(" REFERENCES " + render.ProtectIdentifier(i.refTable) + " (" + protectList(i.refColumns) + ")")

	for _, action := range []struct {
		keyword string
		option  ReferenceOption
	}{{"ON DELETE", i.onDelete}, {"ON UPDATE", i.onUpdate}} {
		if action.option == "" {
			continue
		}
		if !action.option.valid() {
			return "", render.Invalid(render.ErrInvalidReferenceOption, action.keyword, string(action.option))
		}
		sql.WriteString(" " + action.keyword + " " + string(action.option.normalize()))
	}
	return sql.String(), nil
}

func protectList(names []string) string {
	protected := make([]string, len(names))
	for i, n := range names {
		protected[i] = render.ProtectIdentifier(n)
	}
	return strings.Join(protected, ", ")
}
