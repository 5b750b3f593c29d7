package credentials

import (
	"errors"
	"fmt"
	"time"

	"courierservice/internal/core/domain/model/kernel"
	"courierservice/internal/core/ports"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	_ ports.TokenIssuer   = (*JWTTokens)(nil)
	_ ports.TokenVerifier = (*JWTTokens)(nil)

	ErrSecretIsRequired = errors.New("jwt secret is required")
)

type accessClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// JWTTokens issues and verifies HS256 access tokens.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
	clock  ports.Clock
}

func NewJWTTokens(secret string, ttl time.Duration, clock ports.Clock) (*JWTTokens, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt ttl must be positive, got %s", ttl)
	}
	return &JWTTokens{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

func (t *JWTTokens) Issue(kind kernel.AccountKind, phone kernel.PhoneNumber) (ports.AccessToken, error) {
	if err := errors.Join(kind.Validate(), phone.Validate()); err != nil {
		return ports.AccessToken{}, err
	}

	now := t.clock.Now()
	expiresAt := now.Add(t.ttl)
	claims := accessClaims{
		Kind: kind.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   phone.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return ports.AccessToken{}, err
	}

	return ports.AccessToken{Value: signed, ExpiresAt: expiresAt}, nil
}

// Verify checks signature, algorithm and expiry. Every failure wraps
// ports.ErrInvalidAccessToken.
func (t *JWTTokens) Verify(token string) (ports.Subject, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		return ports.Subject{}, errors.Join(ports.ErrInvalidAccessToken, err)
	}
	if !parsed.Valid {
		return ports.Subject{}, ports.ErrInvalidAccessToken
	}

	kind, err := kernel.ParseAccountKind(claims.Kind)
	if err != nil {
		return ports.Subject{}, errors.Join(ports.ErrInvalidAccessToken, err)
	}
	phone, err := kernel.NewPhoneNumber(claims.Subject)
	if err != nil {
		return ports.Subject{}, errors.Join(ports.ErrInvalidAccessToken, err)
	}

	return ports.Subject{Kind: kind, Phone: phone}, nil
}
