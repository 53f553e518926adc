package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TypeAccess is the type tag embedded in access credentials.
	TypeAccess = "access"
	// TypeRefresh is the type tag embedded in refresh credentials.
	TypeRefresh = "refresh"

	// DefaultAccessTTL is the access credential lifetime.
	DefaultAccessTTL = 15 * time.Minute
	// DefaultRefreshTTL is the refresh credential lifetime.
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// New creates a Codec from the given config. The refresh secret must differ
// from the access secret so a leaked access token cannot be replayed as a
// refresh token.
func New(cfg Config) (*Codec, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, ErrSecretRequired
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, ErrSameSecret
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}
	return &Codec{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		issuer:        cfg.Issuer,
		clock:         time.Now,
	}, nil
}

// WithClock replaces the codec's time source. Used by tests to pin expiry boundaries.
func (c *Codec) WithClock(clock func() time.Time) *Codec {
	c.clock = clock
	return c
}

// AccessTTL returns the configured access credential lifetime.
func (c *Codec) AccessTTL() time.Duration { return c.accessTTL }

// RefreshTTL returns the configured refresh credential lifetime.
func (c *Codec) RefreshTTL() time.Duration { return c.refreshTTL }

// IssueAccess mints a signed access credential for the identity.
func (c *Codec) IssueAccess(identity Identity) (string, error) {
	return c.issue(identity, TypeAccess, c.accessSecret, c.accessTTL, true)
}

// IssueRefresh mints a signed refresh credential for the identity.
// Refresh credentials carry no role claim; role is re-resolved on rotation.
func (c *Codec) IssueRefresh(identity Identity) (string, error) {
	return c.issue(identity, TypeRefresh, c.refreshSecret, c.refreshTTL, false)
}

// VerifyAccess verifies an access credential and returns its claims.
func (c *Codec) VerifyAccess(tokenString string) (Claims, error) {
	return c.verify(tokenString, TypeAccess, c.accessSecret)
}

// VerifyRefresh verifies a refresh credential and returns its claims.
func (c *Codec) VerifyRefresh(tokenString string) (Claims, error) {
	return c.verify(tokenString, TypeRefresh, c.refreshSecret)
}

func (c *Codec) issue(identity Identity, typ string, secret []byte, ttl time.Duration, withRole bool) (string, error) {
	now := c.clock()
	claims := Claims{
		Email: identity.Email,
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}
	if withRole {
		claims.Role = identity.Role
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func (c *Codec) verify(tokenString, wantType string, secret []byte) (Claims, error) {
	if tokenString == "" {
		return Claims{}, ErrInvalidToken
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, keyFunc, jwt.WithTimeFunc(c.clock))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	if claims.Type != wantType {
		return Claims{}, ErrInvalidToken
	}
	return *claims, nil
}
