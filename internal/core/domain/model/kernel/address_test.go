package kernel_test

import (
	"testing"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("valid_address", func(t *testing.T) {
		// When
		addr, err := kernel.NewAddress("Екатеринбург", " Ленина ", "5a")

		// Then
		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "Екатеринбург", addr.City())
		assert.Equal(t, "Ленина", addr.Street())
		assert.Equal(t, "5a", addr.HouseNumber())
	})

	t.Run("empty_city_defaults", func(t *testing.T) {
		// When
		addr, err := kernel.NewAddress("", "Республики", "1")

		// Then
		require.NoError(t, err)
		assert.Equal(t, kernel.DefaultCity, addr.City())
	})

	t.Run("missing_street_and_house_are_reported_together", func(t *testing.T) {
		// When
		_, err := kernel.NewAddress("Тюмень", "", "")

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "house number")
	})
}

func TestAddress_OnSameStreet(t *testing.T) {
	home, _ := kernel.NewAddress("", "Республики", "12")
	restaurant, _ := kernel.NewAddress("", " Республики ", "200")
	lowercase, _ := kernel.NewAddress("", "республики", "200")
	elsewhere, _ := kernel.NewAddress("", "Мельникайте", "12")

	assert.True(t, home.OnSameStreet(restaurant))
	assert.False(t, home.OnSameStreet(lowercase))
	assert.False(t, home.OnSameStreet(elsewhere))
}

func TestAddress_ZeroValueIsInvalid(t *testing.T) {
	var addr kernel.Address
	assert.Equal(t, kernel.ErrAddressIsNotConstructed, addr.Validate())
}
