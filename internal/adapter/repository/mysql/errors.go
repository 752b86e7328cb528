package mysql

import (
	"errors"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL error numbers we translate at this boundary.
const (
	erDupEntry        = 1062
	erSignalException = 1644 // raised by the final-state trigger via SIGNAL 45000
)

// isDuplicateKey matches unique-constraint violations across the drivers we
// run against (mysql in production, sqlite in tests).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) {
		return me.Number == erDupEntry
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isFinalStateVeto matches the BEFORE UPDATE trigger rejecting a write to a
// row already in a terminal state.
func isFinalStateVeto(err error) bool {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) {
		return me.Number == erSignalException && strings.Contains(me.Message, "final state")
	}
	return err != nil && strings.Contains(err.Error(), "final state")
}
