package auth

import (
	"context"
	"testing"

	c "github.com/Sommysab/auth-service/internal/core/domain/common"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"

	"github.com/stretchr/testify/require"
)

const USER_ID = 42

type input struct {
	User user.User
}

func (i input) WithAuthenticatedUser(u user.User) Input {
	i.User = u
	return i
}

type result struct{}

type stubService struct {
	WasCalled bool
	GotInput  input
}

func newStubService() *stubService {
	return &stubService{}
}

func (s *stubService) Run(ctx context.Context, input input) (result result, err error) {
	s.WasCalled = true
	s.GotInput = input
	return result, nil
}

type suite struct {
	userRepo *user.FakeUserRepository
	issuer   *user.FakeTokenPairIssuer
	inner    *stubService
	service  services.Service[input, result]
}

func setupSuite() *suite {
	s := &suite{
		userRepo: user.NewFakeUserRepository(),
		issuer:   user.NewFakeTokenPairIssuer(),
		inner:    newStubService(),
	}
	s.userRepo.Users = []user.User{{
		ID:           USER_ID,
		Email:        c.NewEmail("test@test.test"),
		PasswordHash: user.PasswordHash("some-hash"),
	}}
	s.service = WithAuthentication[input, result](s.issuer, s.userRepo, s.inner)
	return s
}

func TestAuthenticatedUserInjected(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	pair, err := suite.issuer.IssueTokens(USER_ID)
	require.NoError(t, err)
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, pair.Access)

	// Exercise ---
	_, err = suite.service.Run(ctx, input{})

	// Verify ---
	require.NoError(t, err)
	require.True(t, suite.inner.WasCalled)
	require.Equal(t, user.ID(USER_ID), suite.inner.GotInput.User.ID)
}

func TestMissingTokenRejected(t *testing.T) {
	// Setup ---
	suite := setupSuite()

	// Exercise ---
	_, err := suite.service.Run(context.Background(), input{})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidSessionToken)
	require.False(t, suite.inner.WasCalled)
}

func TestInvalidTokenRejected(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	ctx := context.WithValue(
		context.Background(),
		CONTEXT_AUTH_TOKEN_KEY,
		user.AccessToken("never-issued"),
	)

	// Exercise ---
	_, err := suite.service.Run(ctx, input{})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidSessionToken)
	require.False(t, suite.inner.WasCalled)
}

func TestDeletedUserRejected(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	pair, err := suite.issuer.IssueTokens(USER_ID)
	require.NoError(t, err)
	suite.userRepo.Users = nil
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, pair.Access)

	// Exercise ---
	_, err = suite.service.Run(ctx, input{})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidSessionToken)
	require.False(t, suite.inner.WasCalled)
}
