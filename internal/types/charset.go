package types

import "strings"

var charsets = map[string]bool{
	"armscii8": true, "ascii": true, "big5": true, "binary": true,
	"cp1250": true, "cp1251": true, "cp1256": true, "cp1257": true,
	"cp850": true, "cp852": true, "cp866": true, "cp932": true,
	"dec8": true, "eucjpms": true, "euckr": true, "gb2312": true,
	"gbk": true, "geostd8": true, "greek": true, "hebrew": true,
	"hp8": true, "keybcs2": true, "koi8r": true, "koi8u": true,
	"latin1": true, "latin2": true, "latin5": true, "latin7": true,
	"macce": true, "macroman": true, "sjis": true, "swe7": true,
	"tis620": true, "ucs2": true, "ujis": true, "utf16": true,
	"utf16le": true, "utf32": true, "utf8": true, "utf8mb3": true,
	"utf8mb4": true,
}

// IsCharset reports whether name is a MariaDB character set.
func IsCharset(name string) bool {
	return charsets[strings.ToLower(name)]
}

// IsCollation reports whether name is shaped like a collation of a known
// character set, for example utf8mb4_unicode_ci. The bare name binary is
// also accepted.
func IsCollation(name string) bool {
	n := strings.ToLower(name)
	if n == "binary" {
		return true
	}
	i := strings.IndexByte(n, '_')
	if i <= 0 || i == len(n)-1 {
		return false
	}
	for j := 0; j < len(n); j++ {
		c := n[j]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return charsets[n[:i]]
}
