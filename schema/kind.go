package schema

import "strings"

// ColumnKind is a MariaDB column data type.
type ColumnKind int

const (
	KindTinyInt ColumnKind = iota + 1
	KindSmallInt
	KindMediumInt
	KindInt
	KindBigInt
	KindDecimal
	KindFloat
	KindDouble
	KindBit
	KindBoolean
	KindChar
	KindVarchar
	KindBinary
	KindVarbinary
	KindTinyText
	KindText
	KindMediumText
	KindLongText
	KindTinyBlob
	KindBlob
	KindMediumBlob
	KindLongBlob
	KindEnum
	KindSet
	KindJSON
	KindDate
	KindTime
	KindDateTime
	KindTimestamp
	KindYear
	KindGeometry
	KindPoint
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

type family int

const (
	familyInteger family = iota + 1
	familyReal
	familyBit
	familyText
	familyBinary
	familyEnum
	familyJSON
	familyTemporal
	familySpatial
)

type kindInfo struct {
	keyword   string
	family    family
	minLength int
	maxLength int
}

var kinds = map[ColumnKind]kindInfo{
	KindTinyInt:            {"TINYINT", familyInteger, 0, 1},
	KindSmallInt:           {"SMALLINT", familyInteger, 0, 1},
	KindMediumInt:          {"MEDIUMINT", familyInteger, 0, 1},
	KindInt:                {"INT", familyInteger, 0, 1},
	KindBigInt:             {"BIGINT", familyInteger, 0, 1},
	KindDecimal:            {"DECIMAL", familyReal, 0, 2},
	KindFloat:              {"FLOAT", familyReal, 0, 2},
	KindDouble:             {"DOUBLE", familyReal, 0, 2},
	KindBit:                {"BIT", familyBit, 0, 1},
	KindBoolean:            {"BOOLEAN", familyBit, 0, 0},
	KindChar:               {"CHAR", familyText, 0, 1},
	KindVarchar:            {"VARCHAR", familyText, 1, 1},
	KindBinary:             {"BINARY", familyBinary, 0, 1},
	KindVarbinary:          {"VARBINARY", familyBinary, 1, 1},
	KindTinyText:           {"TINYTEXT", familyText, 0, 0},
	KindText:               {"TEXT", familyText, 0, 1},
	KindMediumText:         {"MEDIUMTEXT", familyText, 0, 0},
	KindLongText:           {"LONGTEXT", familyText, 0, 0},
	KindTinyBlob:           {"TINYBLOB", familyBinary, 0, 0},
	KindBlob:               {"BLOB", familyBinary, 0, 1},
	KindMediumBlob:         {"MEDIUMBLOB", familyBinary, 0, 0},
	KindLongBlob:           {"LONGBLOB", familyBinary, 0, 0},
	KindEnum:               {"ENUM", familyEnum, 0, 0},
	KindSet:                {"SET", familyEnum, 0, 0},
	KindJSON:               {"JSON", familyJSON, 0, 0},
	KindDate:               {"DATE", familyTemporal, 0, 0},
	KindTime:               {"TIME", familyTemporal, 0, 1},
	KindDateTime:           {"DATETIME", familyTemporal, 0, 1},
	KindTimestamp:          {"TIMESTAMP", familyTemporal, 0, 1},
	KindYear:               {"YEAR", familyTemporal, 0, 1},
	KindGeometry:           {"GEOMETRY", familySpatial, 0, 0},
	KindPoint:              {"POINT", familySpatial, 0, 0},
	KindLineString:         {"LINESTRING", familySpatial, 0, 0},
	KindPolygon:            {"POLYGON", familySpatial, 0, 0},
	KindMultiPoint:         {"MULTIPOINT", familySpatial, 0, 0},
	KindMultiLineString:    {"MULTILINESTRING", familySpatial, 0, 0},
	KindMultiPolygon:       {"MULTIPOLYGON", familySpatial, 0, 0},
	KindGeometryCollection: {"GEOMETRYCOLLECTION", familySpatial, 0, 0},
}

// String returns the SQL keyword of the kind.
func (k ColumnKind) String() string {
	if info, ok := kinds[k]; ok {
		return info.keyword
	}
	return "UNKNOWN"
}

// ParseColumnKind maps a SQL type keyword to its kind.
func ParseColumnKind(keyword string) (ColumnKind, bool) {
	keyword = strings.ToUpper(strings.TrimSpace(keyword))
	for k, info := range kinds {
		if info.keyword == keyword {
			return k, true
		}
	}
	return 0, false
}

func (k ColumnKind) numeric() bool {
	f := kinds[k].family
	return f == familyInteger || f == familyReal
}

func (k ColumnKind) textual() bool {
	f := kinds[k].family
	return f == familyText || f == familyEnum
}

func (k ColumnKind) onUpdate() bool {
	return k == KindDateTime || k == KindTimestamp
}
