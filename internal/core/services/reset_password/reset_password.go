package resetpassword

import (
	"context"
	"errors"

	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"
)

type Input struct {
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "reset-password::" + string(i.Token)
}

type Result struct{}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	resetTokenCache user.ResetTokenCache
	passwordHasher  user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetTokenCache user.ResetTokenCache,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetTokenCache == nil {
		panic(e.NewNilArgumentError("resetTokenCache"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		resetTokenCache: resetTokenCache,
		passwordHasher:  passwordHasher,
	}
}

// Run redeems a reset token. The token is consumed atomically before the
// credential is mutated: of two concurrent redemptions of the same token
// exactly one wins, and a spent token can never be replayed. If the mutation
// fails after consumption the password stays unchanged and the user has to
// request a new token.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	userID, found, err := s.resetTokenCache.Consume(ctx, input.Token)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not consume password reset token.",
			logging.Entry("err", err),
		)
		return result, err
	}
	if !found {
		return result, user.ErrInvalidPasswordResetToken
	}

	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Account deleted after the token was issued. Reported to the client
		// exactly like an invalid token.
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("userID", userID))
		return result, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}
	err = s.userRepository.SetPassword(ctx, u.ID, newPasswordHash)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "Could not update user password, user does not exist.", logging.Entry("userID", userID))
		return result, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userID", userID),
	)
	return result, nil
}
