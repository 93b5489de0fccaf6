package getuserbyaccesstoken

import (
	"context"
	"testing"

	c "github.com/Sommysab/auth-service/internal/core/domain/common"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"

	"github.com/stretchr/testify/require"
)

const USER_ID = 42

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	issuer   *user.FakeTokenPairIssuer
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{
		ID:           USER_ID,
		Email:        c.NewEmail("test@test.test"),
		PasswordHash: user.PasswordHash("some-hash"),
		FullName:     "Test User",
	}}
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: userRepo,
		issuer:   user.NewFakeTokenPairIssuer(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.issuer)
}

func TestUserResolvedByAccessToken(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	pair, err := suite.issuer.IssueTokens(USER_ID)
	require.NoError(t, err)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Token: pair.Access})

	// Verify ---
	require.NoError(t, err)
	require.Equal(t, user.ID(USER_ID), result.User.ID)
	require.Equal(t, "Test User", result.User.FullName)
}

func TestInvalidAccessTokenRejected(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: "never-issued"})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidSessionToken)
}

func TestDeletedUserRejected(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()
	pair, err := suite.issuer.IssueTokens(USER_ID)
	require.NoError(t, err)
	suite.userRepo.Users = nil

	// Exercise ---
	_, err = service.Run(context.Background(), Input{Token: pair.Access})

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidSessionToken)
}
