package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/mariaql/internal/render"
	"github.com/zoobzio/mariaql/internal/types"
)

// TableOption is a CREATE/ALTER TABLE option.
type TableOption int

const (
	OptionAutoIncrement TableOption = iota + 1
	OptionAvgRowLength
	OptionCharset
	OptionChecksum
	OptionCollate
	OptionComment
	OptionConnection
	OptionDataDirectory
	OptionDelayKeyWrite
	OptionEncrypted
	OptionEncryptionKeyID
	OptionEngine
	OptionIETFQuotes
	OptionIndexDirectory
	OptionInsertMethod
	OptionKeyBlockSize
	OptionMaxRows
	OptionMinRows
	OptionPackKeys
	OptionPageChecksum
	OptionPageCompressed
	OptionPageCompressionLevel
	OptionPassword
	OptionRowFormat
	OptionSequence
	OptionStatsAutoRecalc
	OptionStatsPersistent
	OptionStatsSamplePages
	OptionTransactional
	OptionUnion
)

// optionRule renders the value of one option or rejects it.
type optionRule struct {
	name  string
	check func(value any) (string, bool)
}

var optionRules = map[TableOption]optionRule{
	OptionAutoIncrement:        {"AUTO_INCREMENT", intRange(0, -1)},
	OptionAvgRowLength:         {"AVG_ROW_LENGTH", intRange(0, -1)},
	OptionCharset:              {"CHARSET", charsetValue},
	OptionChecksum:             {"CHECKSUM", zeroOne},
	OptionCollate:              {"COLLATE", collationValue},
	OptionComment:              {"COMMENT", quoted},
	OptionConnection:           {"CONNECTION", quoted},
	OptionDataDirectory:        {"DATA DIRECTORY", quoted},
	OptionDelayKeyWrite:        {"DELAY_KEY_WRITE", zeroOne},
	OptionEncrypted:            {"ENCRYPTED", yesNo},
	OptionEncryptionKeyID:      {"ENCRYPTION_KEY_ID", intRange(1, -1)},
	OptionEngine:               {"ENGINE", enum(engines...)},
	OptionIETFQuotes:           {"IETF_QUOTES", yesNo},
	OptionIndexDirectory:       {"INDEX DIRECTORY", quoted},
	OptionInsertMethod:         {"INSERT_METHOD", enum("NO", "FIRST", "LAST")},
	OptionKeyBlockSize:         {"KEY_BLOCK_SIZE", intRange(0, -1)},
	OptionMaxRows:              {"MAX_ROWS", intRange(0, -1)},
	OptionMinRows:              {"MIN_ROWS", intRange(0, -1)},
	OptionPackKeys:             {"PACK_KEYS", zeroOneDefault},
	OptionPageChecksum:         {"PAGE_CHECKSUM", zeroOne},
	OptionPageCompressed:       {"PAGE_COMPRESSED", zeroOne},
	OptionPageCompressionLevel: {"PAGE_COMPRESSION_LEVEL", intRange(0, 9)},
	OptionPassword:             {"PASSWORD", quoted},
	OptionRowFormat:            {"ROW_FORMAT", enum("DEFAULT", "DYNAMIC", "FIXED", "COMPRESSED", "REDUNDANT", "COMPACT", "PAGE")},
	OptionSequence:             {"SEQUENCE", zeroOne},
	OptionStatsAutoRecalc:      {"STATS_AUTO_RECALC", zeroOneDefault},
	OptionStatsPersistent:      {"STATS_PERSISTENT", zeroOneDefault},
	OptionStatsSamplePages:     {"STATS_SAMPLE_PAGES", either(enum("DEFAULT"), intRange(1, 65535))},
	OptionTransactional:        {"TRANSACTIONAL", zeroOne},
	OptionUnion:                {"UNION", tableList},
}

var engines = []string{
	"InnoDB", "Aria", "MyISAM", "MEMORY", "CSV", "ARCHIVE", "BLACKHOLE",
	"MRG_MyISAM", "CONNECT", "SEQUENCE", "SPIDER", "ColumnStore", "RocksDB",
	"S3", "FEDERATED",
}

// optionAliases maps alternative spellings accepted by ParseTableOption.
var optionAliases = map[string]TableOption{
	"CHARACTER SET":         OptionCharset,
	"DEFAULT CHARSET":       OptionCharset,
	"DEFAULT CHARACTER SET": OptionCharset,
	"DEFAULT COLLATE":       OptionCollate,
	"DATA_DIRECTORY":        OptionDataDirectory,
	"INDEX_DIRECTORY":       OptionIndexDirectory,
}

// String returns the SQL name of the option.
func (o TableOption) String() string {
	if rule, ok := optionRules[o]; ok {
		return rule.name
	}
	return "UNKNOWN"
}

// ParseTableOption maps a MariaDB table option name to its enum value. Names
// are case-insensitive.
func ParseTableOption(name string) (TableOption, error) {
	n := strings.Join(strings.Fields(strings.ToUpper(name)), " ")
	if opt, ok := optionAliases[n]; ok {
		return opt, nil
	}
	for opt, rule := range optionRules {
		if rule.name == n {
			return opt, nil
		}
	}
	return 0, render.Invalid(render.ErrUnknownOption, "table options", name)
}

// RenderTableOption validates value for opt and renders `NAME = value`.
func RenderTableOption(opt TableOption, value any) (string, error) {
	rule, ok := optionRules[opt]
	if !ok {
		return "", render.Invalid(render.ErrUnknownOption, "table options", strconv.Itoa(int(opt)))
	}
	v, ok := rule.check(value)
	if !ok {
		return "", render.Invalid(render.ErrInvalidOptionValue, rule.name, fmt.Sprint(value))
	}
	return rule.name + " = " + v, nil
}

func intRange(low, high int64) func(any) (string, bool) {
	return func(value any) (string, bool) {
		n, ok := toInt(value)
		if !ok || n < low || (high >= 0 && n > high) {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	}
}

func toInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) > 1<<62 {
			return 0, false
		}
		return int64(v), true
	case uint64:
		if v > 1<<62 {
			return 0, false
		}
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	}
	return 0, false
}

func zeroOne(value any) (string, bool) {
	if b, ok := value.(bool); ok {
		if b {
			return "1", true
		}
		return "0", true
	}
	return intRange(0, 1)(value)
}

func zeroOneDefault(value any) (string, bool) {
	if v, ok := enum("DEFAULT")(value); ok {
		return v, true
	}
	return zeroOne(value)
}

func yesNo(value any) (string, bool) {
	if b, ok := value.(bool); ok {
		if b {
			return "YES", true
		}
		return "NO", true
	}
	return enum("YES", "NO")(value)
}

// enum accepts one of the allowed strings case-insensitively and renders its
// canonical spelling.
func enum(allowed ...string) func(any) (string, bool) {
	return func(value any) (string, bool) {
		s, ok := value.(string)
		if !ok {
			return "", false
		}
		for _, a := range allowed {
			if strings.EqualFold(a, strings.TrimSpace(s)) {
				return a, true
			}
		}
		return "", false
	}
}

func either(checks ...func(any) (string, bool)) func(any) (string, bool) {
	return func(value any) (string, bool) {
		for _, check := range checks {
			if v, ok := check(value); ok {
				return v, true
			}
		}
		return "", false
	}
}

func charsetValue(value any) (string, bool) {
	s, ok := value.(string)
	if !ok || !types.IsCharset(s) {
		return "", false
	}
	return strings.ToLower(s), true
}

func collationValue(value any) (string, bool) {
	s, ok := value.(string)
	if !ok || !types.IsCollation(s) {
		return "", false
	}
	return strings.ToLower(s), true
}

func quoted(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	q, err := render.Quote(s)
	return q, err == nil
}

func tableList(value any) (string, bool) {
	tables, ok := value.([]string)
	if !ok || len(tables) == 0 {
		return "", false
	}
	return "(" + protectList(tables) + ")", true
}

type optionEntry struct {
	value any
	name  string
	opt   TableOption
}

// tableOptions keeps options in the order they were first set. Setting an
// option again replaces its value.
type tableOptions struct {
	entries []optionEntry
}

func (t *tableOptions) set(opt TableOption, name string, value any) {
	for i, e := range t.entries {
		if (name == "" && e.name == "" && e.opt == opt) || (name != "" && e.name == name) {
			t.entries[i].value = value
			return
		}
	}
	t.entries = append(t.entries, optionEntry{opt: opt, name: name, value: value})
}

func (t *tableOptions) len() int {
	return len(t.entries)
}

// render resolves every option name before rendering any value.
func (t *tableOptions) render() ([]string, error) {
	resolved := make([]TableOption, len(t.entries))
	for i, e := range t.entries {
		opt := e.opt
		if e.name != "" {
			var err error
			if opt, err = ParseTableOption(e.name); err != nil {
				return nil, err
			}
		}
		if _, ok := optionRules[opt]; !ok {
			return nil, render.Invalid(render.ErrUnknownOption, "table options", strconv.Itoa(int(opt)))
		}
		resolved[i] = opt
	}
	out := make([]string, 0, len(t.entries))
	for i, e := range t.entries {
		line, err := RenderTableOption(resolved[i], e.value)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}
