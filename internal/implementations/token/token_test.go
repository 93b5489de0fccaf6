package token

import (
	"testing"
	"time"

	"github.com/Sommysab/auth-service/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

const (
	USER_ID     = 42
	SECRET      = "test-secret"
	ACCESS_TTL  = 15 * time.Minute
	REFRESH_TTL = 7 * 24 * time.Hour
)

type clock struct {
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	return c.now
}

func TestIssuedTokensValidate(t *testing.T) {
	// Setup ---
	clock := newClock()
	issuer := NewJWT(SECRET, ACCESS_TTL, REFRESH_TTL, clock.Now)

	// Exercise ---
	pair, err := issuer.IssueTokens(USER_ID)

	// Verify ---
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)
	require.NotEqual(t, string(pair.Access), string(pair.Refresh))

	userID, err := issuer.ValidateAccessToken(pair.Access)
	require.NoError(t, err)
	require.Equal(t, user.ID(USER_ID), userID)

	userID, err = issuer.ValidateRefreshToken(pair.Refresh)
	require.NoError(t, err)
	require.Equal(t, user.ID(USER_ID), userID)
}

func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	// Setup ---
	clock := newClock()
	issuer := NewJWT(SECRET, ACCESS_TTL, REFRESH_TTL, clock.Now)
	pair, err := issuer.IssueTokens(USER_ID)
	require.NoError(t, err)

	// Exercise ---
	_, accessAsRefreshErr := issuer.ValidateRefreshToken(user.RefreshToken(pair.Access))
	_, refreshAsAccessErr := issuer.ValidateAccessToken(user.AccessToken(pair.Refresh))

	// Verify ---
	require.ErrorIs(t, accessAsRefreshErr, user.ErrInvalidSessionToken)
	require.ErrorIs(t, refreshAsAccessErr, user.ErrInvalidSessionToken)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	// Setup ---
	clock := newClock()
	issuer := NewJWT(SECRET, ACCESS_TTL, REFRESH_TTL, clock.Now)
	pair, err := issuer.IssueTokens(USER_ID)
	require.NoError(t, err)

	// Exercise ---
	clock.now = clock.now.Add(ACCESS_TTL + time.Minute)
	_, accessErr := issuer.ValidateAccessToken(pair.Access)
	_, refreshErr := issuer.ValidateRefreshToken(pair.Refresh)

	// Verify ---
	require.ErrorIs(t, accessErr, user.ErrInvalidSessionToken)
	require.NoError(t, refreshErr)
}

func TestExpiredRefreshTokenRejected(t *testing.T) {
	// Setup ---
	clock := newClock()
	issuer := NewJWT(SECRET, ACCESS_TTL, REFRESH_TTL, clock.Now)
	pair, err := issuer.IssueTokens(USER_ID)
	require.NoError(t, err)

	// Exercise ---
	clock.now = clock.now.Add(REFRESH_TTL + time.Minute)
	_, err = issuer.ValidateRefreshToken(pair.Refresh)

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidSessionToken)
}

func TestTokenSignedWithAnotherSecretRejected(t *testing.T) {
	// Setup ---
	clock := newClock()
	issuer := NewJWT(SECRET, ACCESS_TTL, REFRESH_TTL, clock.Now)
	otherIssuer := NewJWT("another-secret", ACCESS_TTL, REFRESH_TTL, clock.Now)
	pair, err := otherIssuer.IssueTokens(USER_ID)
	require.NoError(t, err)

	// Exercise ---
	_, err = issuer.ValidateAccessToken(pair.Access)

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidSessionToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	// Setup ---
	clock := newClock()
	issuer := NewJWT(SECRET, ACCESS_TTL, REFRESH_TTL, clock.Now)

	cases := []struct {
		id    string
		token string
	}{
		{id: "empty", token: ""},
		{id: "not a jwt", token: "not-a-jwt"},
		{id: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Exercise ---
			_, err := issuer.ValidateAccessToken(user.AccessToken(testcase.token))

			// Verify ---
			require.ErrorIs(t, err, user.ErrInvalidSessionToken)
		})
	}
}
