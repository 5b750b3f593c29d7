package storeerr_test

import (
	"errors"
	"fmt"
	"testing"

	"courierservice/internal/adapters/out/postgres/storeerr"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, storeerr.IsUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, storeerr.IsUniqueViolation(errors.New(
		`ERROR: duplicate key value violates unique constraint "idx_users_phone_number" (SQLSTATE 23505)`)))
	assert.True(t, storeerr.IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.phone_number (2067)")))
	assert.False(t, storeerr.IsUniqueViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, storeerr.IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, storeerr.IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, storeerr.IsForeignKeyViolation(errors.New(
		`ERROR: insert or update on table "orders" violates foreign key constraint (SQLSTATE 23503)`)))
	assert.True(t, storeerr.IsForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")))
	assert.False(t, storeerr.IsForeignKeyViolation(errors.New("connection refused")))
	assert.False(t, storeerr.IsForeignKeyViolation(nil))
}
