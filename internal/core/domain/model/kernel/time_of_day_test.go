package kernel_test

import (
	"testing"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Run("full_layout", func(t *testing.T) {
		tod, err := kernel.ParseTimeOfDay("09:30:15")
		require.NoError(t, err)
		assert.Equal(t, "09:30:15", tod.String())
	})

	t.Run("short_layout", func(t *testing.T) {
		tod, err := kernel.ParseTimeOfDay("22:00")
		require.NoError(t, err)
		assert.Equal(t, "22:00:00", tod.String())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := kernel.ParseTimeOfDay("25:00:00")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewTimeOfDay_OutOfRange(t *testing.T) {
	_, err := kernel.NewTimeOfDay(10, 60, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestTimeOfDay_Before(t *testing.T) {
	open, _ := kernel.NewTimeOfDay(9, 0, 0)
	closing, _ := kernel.NewTimeOfDay(23, 0, 0)

	assert.True(t, open.Before(closing))
	assert.False(t, closing.Before(open))
	assert.False(t, open.Before(open))
}
