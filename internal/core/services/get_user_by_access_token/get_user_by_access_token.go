package getuserbyaccesstoken

import (
	"context"
	"errors"

	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"
)

type Input struct {
	Token user.AccessToken
}

type Result struct {
	User user.User
}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	tokenPairIssuer user.TokenPairIssuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenPairIssuer user.TokenPairIssuer,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenPairIssuer == nil {
		panic(e.NewNilArgumentError("tokenPairIssuer"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenPairIssuer: tokenPairIssuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	userID, err := s.tokenPairIssuer.ValidateAccessToken(input.Token)
	if err != nil {
		return result, user.ErrInvalidSessionToken
	}
	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidSessionToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by access token.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{User: u}, nil
}
