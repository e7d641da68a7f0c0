package driver

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MariaDB server error numbers.
const (
	ErrNumBadField        = 1054
	ErrNumDupEntry        = 1062
	ErrNumParse           = 1064
	ErrNumNoSuchTable     = 1146
	ErrNumLockWaitTimeout = 1205
	ErrNumLockDeadlock    = 1213
)

// ErrorNumber returns the server error number carried by err, or 0.
func ErrorNumber(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

// IsDuplicateEntry reports whether err is a unique key violation.
func IsDuplicateEntry(err error) bool { return ErrorNumber(err) == ErrNumDupEntry }

// IsNoSuchTable reports whether err names a missing table.
func IsNoSuchTable(err error) bool { return ErrorNumber(err) == ErrNumNoSuchTable }

// IsSyntaxError reports whether the server rejected the statement text.
func IsSyntaxError(err error) bool { return ErrorNumber(err) == ErrNumParse }

// IsBadField reports an unknown column error.
func IsBadField(err error) bool { return ErrorNumber(err) == ErrNumBadField }

// IsRetryable reports whether err is a deadlock or lock wait timeout. The
// builder never retries; callers decide.
func IsRetryable(err error) bool {
	n := ErrorNumber(err)
	return n == ErrNumLockDeadlock || n == ErrNumLockWaitTimeout
}
