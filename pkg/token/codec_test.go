package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New(Config{
		AccessSecret:  "access-secret-for-tests-0123456789ab",
		RefreshSecret: "refresh-secret-for-tests-0123456789a",
		Issuer:        "classhub-test",
	})
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{AccessSecret: "", RefreshSecret: "x"})
	require.ErrorIs(t, err, ErrSecretRequired)

	_, err = New(Config{AccessSecret: "same", RefreshSecret: "same"})
	require.ErrorIs(t, err, ErrSameSecret)
}

func TestAccessRoundTrip(t *testing.T) {
	c := testCodec(t)
	identity := Identity{ID: "5f0c2a4e-0000-4000-8000-000000000001", Email: "a@x.com", Role: "teacher"}

	tokenString, err := c.IssueAccess(identity)
	require.NoError(t, err)

	claims, err := c.VerifyAccess(tokenString)
	require.NoError(t, err)
	require.Equal(t, identity.ID, claims.Subject)
	require.Equal(t, identity.Email, claims.Email)
	require.Equal(t, identity.Role, claims.Role)
	require.Equal(t, TypeAccess, claims.Type)
}

func TestRefreshRoundTrip(t *testing.T) {
	c := testCodec(t)
	identity := Identity{ID: "5f0c2a4e-0000-4000-8000-000000000002", Email: "b@x.com"}

	tokenString, err := c.IssueRefresh(identity)
	require.NoError(t, err)

	claims, err := c.VerifyRefresh(tokenString)
	require.NoError(t, err)
	require.Equal(t, identity.ID, claims.Subject)
	require.Equal(t, identity.Email, claims.Email)
	require.Empty(t, claims.Role)
	require.Equal(t, TypeRefresh, claims.Type)
}

// A credential minted by one issuer must never verify under the other,
// regardless of expiry.
func TestTypeConfusionRejected(t *testing.T) {
	c := testCodec(t)
	identity := Identity{ID: "u1", Email: "a@x.com", Role: "admin"}

	accessToken, err := c.IssueAccess(identity)
	require.NoError(t, err)
	refreshToken, err := c.IssueRefresh(identity)
	require.NoError(t, err)

	_, err = c.VerifyRefresh(accessToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = c.VerifyAccess(refreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyCollapsesFailures(t *testing.T) {
	c := testCodec(t)

	_, err := c.VerifyAccess("")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = c.VerifyAccess("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	other, err := New(Config{
		AccessSecret:  "a-completely-different-access-secret",
		RefreshSecret: "a-completely-different-refresh-secre",
	})
	require.NoError(t, err)
	foreign, err := other.IssueAccess(Identity{ID: "u1", Email: "a@x.com", Role: "student"})
	require.NoError(t, err)

	_, err = c.VerifyAccess(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshExpiryBoundary(t *testing.T) {
	c := testCodec(t)

	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.WithClock(func() time.Time { return issuedAt })

	refreshToken, err := c.IssueRefresh(Identity{ID: "u1", Email: "a@x.com"})
	require.NoError(t, err)

	// 1 second before the 7-day expiry: still valid.
	c.WithClock(func() time.Time { return issuedAt.Add(c.RefreshTTL() - time.Second) })
	_, err = c.VerifyRefresh(refreshToken)
	require.NoError(t, err)

	// Past expiry: invalid.
	c.WithClock(func() time.Time { return issuedAt.Add(c.RefreshTTL() + time.Second) })
	_, err = c.VerifyRefresh(refreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessExpiry(t *testing.T) {
	c := testCodec(t)

	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.WithClock(func() time.Time { return issuedAt })

	accessToken, err := c.IssueAccess(Identity{ID: "u1", Email: "a@x.com", Role: "student"})
	require.NoError(t, err)

	c.WithClock(func() time.Time { return issuedAt.Add(c.AccessTTL() + time.Minute) })
	_, err = c.VerifyAccess(accessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}
