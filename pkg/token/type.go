package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the subject a credential is minted for.
type Identity struct {
	ID    string
	Email string
	Role  string
}

// Claims represents the signed credential claims.
// Type discriminates access credentials from refresh credentials.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// Config holds the signing configuration for the Codec.
type Config struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// Codec mints and verifies signed, time-bounded credentials.
// Verification is pure: no I/O, safe for concurrent use.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	clock         func() time.Time
}
