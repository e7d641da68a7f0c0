package schema

import (
	"slices"
	"strconv"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

type keyType int

const (
	noKey keyType = iota
	uniqueKey
	primaryKey
)

// Column is a column definition: a kind plus its attributes. Attributes that
// do not apply to the kind are rejected when the definition renders.
type Column struct {
	def           any
	onUpdate      any
	null          *bool
	comment       *string
	charset       string
	collate       string
	after         string
	length        []int
	values        []string
	kind          ColumnKind
	key           keyType
	hasDefault    bool
	hasOnUpdate   bool
	unsigned      bool
	zerofill      bool
	autoIncrement bool
	first         bool
}

// NewColumn returns a definition of the given kind. length holds the display
// width, length or precision and scale, depending on the kind.
func NewColumn(kind ColumnKind, length ...int) *Column {
	return &Column{kind: kind, length: slices.Clone(length)}
}

// TinyInt returns a TINYINT column with an optional display width.
func TinyInt(length ...int) *Column { return NewColumn(KindTinyInt, length...) }

// SmallInt returns a SMALLINT column with an optional display width.
func SmallInt(length ...int) *Column { return NewColumn(KindSmallInt, length...) }

// MediumInt returns a MEDIUMINT column with an optional display width.
func MediumInt(length ...int) *Column { return NewColumn(KindMediumInt, length...) }

// Int returns an INT column with an optional display width.
func Int(length ...int) *Column { return NewColumn(KindInt, length...) }

// BigInt returns a BIGINT column with an optional display width.
func BigInt(length ...int) *Column { return NewColumn(KindBigInt, length...) }

// Decimal takes an optional precision and scale.
func Decimal(precision ...int) *Column { return NewColumn(KindDecimal, precision...) }

// Float returns a FLOAT column with an optional precision and scale.
func Float(precision ...int) *Column { return NewColumn(KindFloat, precision...) }

// Double returns a DOUBLE column with an optional precision and scale.
func Double(precision ...int) *Column { return NewColumn(KindDouble, precision...) }

// Bit returns a BIT column of an optional width.
func Bit(length ...int) *Column { return NewColumn(KindBit, length...) }

// Boolean returns a BOOLEAN column.
func Boolean() *Column { return NewColumn(KindBoolean) }

// Char returns a CHAR column of an optional length.
func Char(length ...int) *Column { return NewColumn(KindChar, length...) }

// Varchar requires a length.
func Varchar(length ...int) *Column { return NewColumn(KindVarchar, length...) }

// Binary returns a BINARY column of an optional length.
func Binary(length ...int) *Column { return NewColumn(KindBinary, length...) }

// Varbinary requires a length.
func Varbinary(length ...int) *Column { return NewColumn(KindVarbinary, length...) }

// TinyText returns a TINYTEXT column.
func TinyText() *Column { return NewColumn(KindTinyText) }

// Text returns a TEXT column of an optional length.
func Text(length ...int) *Column { return NewColumn(KindText, length...) }

// MediumText returns a MEDIUMTEXT column.
func MediumText() *Column { return NewColumn(KindMediumText) }

// LongText returns a LONGTEXT column.
func LongText() *Column { return NewColumn(KindLongText) }

// TinyBlob returns a TINYBLOB column.
func TinyBlob() *Column { return NewColumn(KindTinyBlob) }

// Blob returns a BLOB column of an optional length.
func Blob(length ...int) *Column { return NewColumn(KindBlob, length...) }

// MediumBlob returns a MEDIUMBLOB column.
func MediumBlob() *Column { return NewColumn(KindMediumBlob) }

// LongBlob returns a LONGBLOB column.
func LongBlob() *Column { return NewColumn(KindLongBlob) }

// Enum holds the permitted values in order.
func Enum(values ...string) *Column {
	return &Column{kind: KindEnum, values: slices.Clone(values)}
}

// Set holds the permitted members in order.
func Set(values ...string) *Column {
	return &Column{kind: KindSet, values: slices.Clone(values)}
}

// JSON returns a JSON column.
func JSON() *Column { return NewColumn(KindJSON) }

// Date returns a DATE column.
func Date() *Column { return NewColumn(KindDate) }

// Time takes an optional fractional seconds precision.
func Time(fsp ...int) *Column { return NewColumn(KindTime, fsp...) }

// DateTime takes an optional fractional seconds precision.
func DateTime(fsp ...int) *Column { return NewColumn(KindDateTime, fsp...) }

// Timestamp takes an optional fractional seconds precision.
func Timestamp(fsp ...int) *Column { return NewColumn(KindTimestamp, fsp...) }

// Year returns a YEAR column.
func Year(length ...int) *Column { return NewColumn(KindYear, length...) }

// Geometry returns a GEOMETRY column.
func Geometry() *Column { return NewColumn(KindGeometry) }

// Point returns a POINT column.
func Point() *Column { return NewColumn(KindPoint) }

// LineString returns a LINESTRING column.
func LineString() *Column { return NewColumn(KindLineString) }

// Polygon returns a POLYGON column.
func Polygon() *Column { return NewColumn(KindPolygon) }

// MultiPoint returns a MULTIPOINT column.
func MultiPoint() *Column { return NewColumn(KindMultiPoint) }

// MultiLineString returns a MULTILINESTRING column.
func MultiLineString() *Column { return NewColumn(KindMultiLineString) }

// MultiPolygon returns a MULTIPOLYGON column.
func MultiPolygon() *Column { return NewColumn(KindMultiPolygon) }

// GeometryCollection returns a GEOMETRYCOLLECTION column.
func GeometryCollection() *Column { return NewColumn(KindGeometryCollection) }

// Kind returns the column kind.
func (c *Column) Kind() ColumnKind { return c.kind }

// Null allows NULL values.
func (c *Column) Null() *Column {
	v := true
	c.null = &v
	return c
}

// NotNull rejects NULL values.
func (c *Column) NotNull() *Column {
	v := false
	c.null = &v
	return c
}

// Default sets the default value. Go values are quoted; expressions such as
// Raw("CURRENT_TIMESTAMP") render verbatim. A nil value renders DEFAULT NULL.
func (c *Column) Default(value any) *Column {
	c.def = value
	c.hasDefault = true
	return c
}

// Comment sets the column comment.
func (c *Column) Comment(comment string) *Column {
	c.comment = &comment
	return c
}

// Charset sets the character set of a text column.
func (c *Column) Charset(charset string) *Column {
	c.charset = charset
	return c
}

// Collate sets the collation of a text column.
func (c *Column) Collate(collation string) *Column {
	c.collate = collation
	return c
}

// Unsigned marks a numeric column UNSIGNED.
func (c *Column) Unsigned() *Column {
	c.unsigned = true
	return c
}

// Zerofill marks a numeric column ZEROFILL.
func (c *Column) Zerofill() *Column {
	c.zerofill = true
	return c
}

// AutoIncrement marks an integer column AUTO_INCREMENT.
func (c *Column) AutoIncrement() *Column {
	c.autoIncrement = true
	return c
}

// OnUpdate sets the ON UPDATE value of a DATETIME or TIMESTAMP column.
func (c *Column) OnUpdate(value any) *Column {
	c.onUpdate = value
	c.hasOnUpdate = true
	return c
}

// Unique adds an inline UNIQUE KEY.
func (c *Column) Unique() *Column {
	c.key = uniqueKey
	return c
}

// PrimaryKey adds an inline PRIMARY KEY.
func (c *Column) PrimaryKey() *Column {
	c.key = primaryKey
	return c
}

// First places the column first. Positions are only valid in ALTER TABLE.
func (c *Column) First() *Column {
	c.first = true
	return c
}

// After places the column after another. Positions are only valid in ALTER
// TABLE.
func (c *Column) After(column string) *Column {
	c.after = column
	return c
}

// Render renders the definition without the column name. Positions are
// rejected unless alter is true.
func (c *Column) Render(alter bool) (string, error) {
	if c == nil {
		return "", render.State(render.ErrMissingClause, "column", "a definition is required")
	}
	info, ok := kinds[c.kind]
	if !ok {
		return "", render.Invalid(render.ErrInvalidOptionValue, "column", strconv.Itoa(int(c.kind)), "unknown column kind")
	}
	kw := info.keyword

	var sql strings.Builder
	sql.WriteString(kw)

	switch info.family {
	case familyEnum:
		if len(c.values) == 0 {
			return "", render.State(render.ErrMissingLength, kw, "at least one value is required")
		}
		values := make([]string, len(c.values))
		for i, v := range c.values {
			values[i], _ = render.Quote(v)
		}
		sql.WriteString("(" + strings.Join(values, ", ") + ")")
	default:
		length, err := c.renderLength(kw, info)
		if err != nil {
			return "", err
		}
		sql.WriteString(length)
	}

	if c.unsigned || c.zerofill {
		if !c.kind.numeric() {
			return "", render.Invalid(render.ErrAttributeNotAllowed, kw, "UNSIGNED/ZEROFILL")
		}
		if c.unsigned {
			sql.WriteString(" UNSIGNED")
		}
		if c.zerofill {
			sql.WriteString(" ZEROFILL")
		}
	}

	if c.charset != "" || c.collate != "" {
		if !c.kind.textual() {
			return "", render.Invalid(render.ErrAttributeNotAllowed, kw, "CHARACTER SET/COLLATE")
		}
		if c.charset != "" {
			if !types.IsCharset(c.charset) {
				return "", render.Invalid(render.ErrInvalidOptionValue, "CHARACTER SET", c.charset)
			}
			sql.WriteString(" CHARACTER SET " + strings.ToLower(c.charset))
		}
		if c.collate != "" {
			if !types.IsCollation(c.collate) {
				return "", render.Invalid(render.ErrInvalidOptionValue, "COLLATE", c.collate)
			}
			sql.WriteString(" COLLATE " + strings.ToLower(c.collate))
		}
	}

	if c.null != nil {
		if *c.null {
			sql.WriteString(" NULL")
		} else {
			sql.WriteString(" NOT NULL")
		}
	}

	if c.hasDefault {
		def, err := render.Value(c.def, nil)
		if err != nil {
			return "", err
		}
		sql.WriteString(" DEFAULT " + def)
	}

	if c.autoIncrement {
		if kinds[c.kind].family != familyInteger {
			return "", render.Invalid(render.ErrAttributeNotAllowed, kw, "AUTO_INCREMENT")
		}
		sql.WriteString(" AUTO_INCREMENT")
	}

	if c.hasOnUpdate {
		if !c.kind.onUpdate() {
			return "", render.Invalid(render.ErrAttributeNotAllowed, kw, "ON UPDATE")
		}
		v, err := render.Value(c.onUpdate, nil)
		if err != nil {
			return "", err
		}
		sql.WriteString(" ON UPDATE " + v)
	}

	if c.comment != nil {
		comment, _ := render.Quote(*c.comment)
		sql.WriteString(" COMMENT " + comment)
	}

	switch c.key {
	case uniqueKey:
		sql.WriteString(" UNIQUE KEY")
	case primaryKey:
		sql.WriteString(" PRIMARY KEY")
	}

	if c.first || c.after != "" {
		if !alter {
			return "", render.Invalid(render.ErrAttributeNotAllowed, kw, "FIRST/AFTER", "positions are only valid in ALTER TABLE")
		}
		if c.first && c.after != "" {
			return "", render.State(render.ErrClauseConflict, kw, "FIRST and AFTER are mutually exclusive")
		}
		if c.first {
			sql.WriteString(" FIRST")
		} else {
			sql.WriteString(" AFTER " + render.ProtectIdentifier(c.after))
		}
	}

	return sql.String(), nil
}

func (c *Column) renderLength(kw string, info kindInfo) (string, error) {
	n := len(c.length)
	if n < info.minLength {
		return "", render.State(render.ErrMissingLength, kw, "a length is required")
	}
	if n > info.maxLength {
		return "", render.Invalid(render.ErrInvalidLength, kw, joinInts(c.length), "too many length arguments")
	}
	if n == 0 {
		return "", nil
	}
	if info.family == familyTemporal && c.kind != KindYear {
		if fsp := c.length[0]; fsp < 0 || fsp > 6 {
			return "", render.Invalid(render.ErrInvalidLength, kw, joinInts(c.length), "fractional seconds precision is 0 to 6")
		}
		return "(" + joinInts(c.length) + ")", nil
	}
	for i, l := range c.length {
		// Scale may be zero, every other length must be positive.
		if l < 0 || (l == 0 && i == 0) {
			return "", render.Invalid(render.ErrInvalidLength, kw, joinInts(c.length))
		}
	}
	if n == 2 && c.length[1] > c.length[0] {
		return "", render.Invalid(render.ErrInvalidLength, kw, joinInts(c.length), "scale exceeds precision")
	}
	return "(" + joinInts(c.length) + ")", nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
