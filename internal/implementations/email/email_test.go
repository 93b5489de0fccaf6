package email

import (
	"context"
	"testing"

	c "github.com/Sommysab/auth-service/internal/core/domain/common"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

func TestLogOnlySenderNeverFails(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	sender := NewLogOnlySender(log)
	u := user.User{ID: 42, Email: c.NewEmail("test@test.test")}

	// Exercise ---
	err := sender.SendToken(context.Background(), u, user.PasswordResetToken("some-token"))

	// Verify ---
	require.NoError(t, err)
	require.Len(t, log.Logged, 1)
	require.Equal(t, logging.INFO, log.Logged[0].Level)
}

func TestLogOnlySenderDoesNotLogTheToken(t *testing.T) {
	// Setup ---
	log := logging.NewFakeLogger()
	sender := NewLogOnlySender(log)
	u := user.User{ID: 42, Email: c.NewEmail("test@test.test")}

	// Exercise ---
	err := sender.SendToken(context.Background(), u, user.PasswordResetToken("secret-token"))

	// Verify ---
	require.NoError(t, err)
	for _, record := range log.Logged {
		require.NotContains(t, record.Msg, "secret-token")
		for _, entry := range record.Entries {
			require.NotEqual(t, "secret-token", entry.Value)
		}
	}
}
