package changepassword

import (
	"context"

	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"
	"github.com/Sommysab/auth-service/internal/core/services/auth"
)

type Input struct {
	User            user.User
	CurrentPassword user.RawPassword
	NewPassword     user.RawPassword
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !s.passwordHasher.ValidatePassword(input.CurrentPassword, input.User.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}
	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}
	err = s.userRepository.SetPassword(ctx, input.User.ID, newPasswordHash)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not change user password.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"User password has been changed.",
		logging.Entry("userID", input.User.ID),
	)
	return result, nil
}
