package kernel_test

import (
	"testing"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id, err := kernel.NewID(7)
	require.NoError(t, err)
	assert.Equal(t, "7", id.String())
	assert.False(t, id.IsZero())

	_, err = kernel.NewID(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = kernel.NewID(-3)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestAccountKind(t *testing.T) {
	kind, err := kernel.ParseAccountKind("courier")
	require.NoError(t, err)
	assert.Equal(t, kernel.CourierAccount, kind)
	assert.Equal(t, "USER", kernel.UserAccount.String())

	_, err = kernel.ParseAccountKind("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, kernel.UnknownAccount.Validate())
}
