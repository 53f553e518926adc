package auth

import (
	"time"

	"classhub-api/internal/model"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

// TokenOutput carries a freshly minted credential pair and the identity it
// was minted for. TTLs ride along so the delivery layer can set cookie
// expiries without knowing the signing configuration.
type TokenOutput struct {
	AccessToken  string
	RefreshToken string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	User         model.User
}
