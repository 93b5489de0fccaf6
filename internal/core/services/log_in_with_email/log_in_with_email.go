package loginwithemail

import (
	"context"
	"errors"

	c "github.com/Sommysab/auth-service/internal/core/domain/common"
	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"
)

type Input struct {
	Email    c.Email
	Password user.RawPassword
}

func (i Input) GetRateLimitKey() string {
	return "log-in-with-email::" + string(i.Email)
}

type Result struct {
	Tokens user.TokenPair
}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	passwordHasher  user.PasswordHasher
	tokenPairIssuer user.TokenPairIssuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	tokenPairIssuer user.TokenPairIssuer,
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
	if tokenPairIssuer == nil {
		panic(e.NewNilArgumentError("tokenPairIssuer"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		passwordHasher:  passwordHasher,
		tokenPairIssuer: tokenPairIssuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(input.Password)
		return result, user.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(input.Password, u.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	tokens, err := s.tokenPairIssuer.IssueTokens(u.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue tokens for user.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"User successfully authenticated, token pair issued.",
		logging.Entry("userID", u.ID),
	)
	return Result{Tokens: tokens}, nil
}
