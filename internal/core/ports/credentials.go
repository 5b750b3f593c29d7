package ports

import (
	"errors"
	"time"

	"courierservice/internal/core/domain/model/kernel"
)

var (
	// ErrPasswordMismatch is returned by PasswordHasher.Compare.
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrInvalidAccessToken covers malformed, forged and expired tokens.
	ErrInvalidAccessToken = errors.New("access token is invalid")
)

// PasswordHasher hides the password hashing scheme.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AccessToken is an issued bearer token.
type AccessToken struct {
	Value     string
	ExpiresAt time.Time
}

// Subject is what a verified token says about its holder.
type Subject struct {
	Kind  kernel.AccountKind
	Phone kernel.PhoneNumber
}

// TokenIssuer issues bearer tokens whose subject is the account phone number.
type TokenIssuer interface {
	Issue(kind kernel.AccountKind, phone kernel.PhoneNumber) (AccessToken, error)
}

// TokenVerifier verifies bearer tokens produced by TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (Subject, error)
}
