package credentials_test

import (
	"testing"

	"courierservice/internal/adapters/out/credentials"
	"courierservice/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := credentials.NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	require.NoError(t, hasher.Compare(hash, "s3cret"))
}

func TestBcryptHasher_Compare_WrongPassword(t *testing.T) {
	hasher := credentials.NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	err = hasher.Compare(hash, "other")
	require.ErrorIs(t, err, ports.ErrPasswordMismatch)
}

func TestBcryptHasher_Compare_MalformedHash(t *testing.T) {
	hasher := credentials.NewBcryptHasher()

	err := hasher.Compare("not-a-hash", "s3cret")
	require.ErrorIs(t, err, ports.ErrPasswordMismatch)
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := credentials.NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
