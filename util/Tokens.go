package util

import (
	"errors"
	"time"

	"bookstore-api/dto"
	"bookstore-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenLifetime matches the issuing behavior this service replaces.
// Override with JWT_TTL; there is no refresh endpoint, so short lifetimes
// force a full re-login.
const DefaultTokenLifetime = 5 * time.Minute

var (
	ErrConfiguration    = errors.New("missing or invalid signing key")
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")
	ErrInsufficientRole = errors.New("insufficient role")
)

// TokenIssuer signs and verifies bearer tokens with a server-held symmetric
// key. It is constructed once at startup and shared read-only by all
// requests, so no locking is needed.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

func NewTokenIssuer(secret, issuer string, lifetime time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrConfiguration
	}
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		lifetime: lifetime,
	}, nil
}

func (ti *TokenIssuer) Lifetime() time.Duration {
	return ti.lifetime
}

// BuildClaims produces the claim set for a verified user: subject (email),
// a fresh jti, the user id, and one role entry per assigned role.
func (ti *TokenIssuer) BuildClaims(user *model.User, now time.Time) dto.AuthClaims {
	return dto.AuthClaims{
		UserID: user.ID.String(),
		Roles:  user.RoleNames(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ID:        uuid.NewString(),
			Issuer:    ti.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.lifetime)),
		},
	}
}

// Issue signs a claim set for the user into a transportable token string.
func (ti *TokenIssuer) Issue(user *model.User) (string, error) {
	return ti.IssueAt(user, time.Now())
}

func (ti *TokenIssuer) IssueAt(user *model.User, now time.Time) (string, error) {
	claims := ti.BuildClaims(user, now)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// Verify checks a presented token's structure, signature and expiration and
// returns its claim set. Failures map to exactly one of ErrMalformedToken,
// ErrInvalidSignature or ErrExpiredToken.
func (ti *TokenIssuer) Verify(tokenString string) (*dto.AuthClaims, error) {
	claims := &dto.AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return ti.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		default:
			return nil, ErrMalformedToken
		}
	}
	if !token.Valid {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// Authorize runs the full gate for a presented token: verify, then require
// the claim set's roles to intersect requiredRoles when non-empty.
func (ti *TokenIssuer) Authorize(tokenString string, requiredRoles ...string) (*dto.AuthClaims, error) {
	claims, err := ti.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if !claims.HasAnyRole(requiredRoles...) {
		return nil, ErrInsufficientRole
	}
	return claims, nil
}
