// Package storeerr classifies constraint violations reported by the store.
//
// gorm translates driver errors into gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated when the connection is opened with
// TranslateError. The message checks cover connections opened without it.
package storeerr

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueViolation reports a unique index rejecting a write.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports a write referencing a missing row.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23503") || strings.Contains(msg, "FOREIGN KEY constraint failed")
}
