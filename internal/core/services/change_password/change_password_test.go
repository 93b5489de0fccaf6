package changepassword

import (
	"context"
	"testing"

	c "github.com/Sommysab/auth-service/internal/core/domain/common"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"

	"github.com/stretchr/testify/require"
)

const USER_ID = 123

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	hasher   *user.FakePasswordHasher
}

func setupSuite() *suite {
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{ID: USER_ID, Email: c.NewEmail("test@test.test")}}
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: userRepo,
		hasher:   user.NewFakePasswordHasher(),
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher)
}

func TestPasswordSuccessfullyChanged(t *testing.T) {
	cases := []struct {
		id              string
		currentPassword string
		newPassword     string
	}{
		{id: "1", currentPassword: "test-1", newPassword: "test-2"},
		{id: "2", currentPassword: "test-2", newPassword: "test-2"},
		{id: "3", currentPassword: "aaaaaaaa", newPassword: "bbbbbbbb"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			suite := setupSuite()
			service := suite.createService()

			// Exercise ---
			input := Input{
				CurrentPassword: user.RawPassword(testcase.currentPassword),
				NewPassword:     user.RawPassword(testcase.newPassword),
			}
			input.User.ID = USER_ID
			input.User.PasswordHash = hashPassword(testcase.currentPassword, suite.hasher)
			_, err := service.Run(context.Background(), input)

			// Verify ---
			require.NoError(t, err)
			assertPasswordValid(t, suite, testcase.newPassword)
		})
	}
}

func TestCurrentPasswordInvalid(t *testing.T) {
	// Setup ---
	suite := setupSuite()
	service := suite.createService()

	// Exercise ---
	input := Input{
		CurrentPassword: user.RawPassword("invalid-password"),
		NewPassword:     user.RawPassword("new-password"),
	}
	input.User.ID = USER_ID
	input.User.PasswordHash = hashPassword("valid-password", suite.hasher)
	_, err := service.Run(context.Background(), input)

	// Verify ---
	require.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func hashPassword(raw string, hasher user.PasswordHasher) user.PasswordHash {
	hash, err := hasher.HashPassword(user.RawPassword(raw))
	if err != nil {
		panic(err)
	}
	return hash
}

func assertPasswordValid(t *testing.T, suite *suite, password string) {
	t.Helper()

	u, err := suite.userRepo.GetByID(context.Background(), USER_ID)
	require.NoError(t, err)
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword(password), u.PasswordHash))
}
