package refreshsession

import (
	"context"
	"errors"

	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"
)

type Input struct {
	RefreshToken user.RefreshToken
}

type Result struct {
	Tokens user.TokenPair
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
	userID, err := s.tokenPairIssuer.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return result, user.ErrInvalidSessionToken
	}

	// The account may be gone since the refresh token was issued.
	u, err := s.userRepository.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidSessionToken
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for session refresh.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return result, err
	}

	tokens, err := s.tokenPairIssuer.IssueTokens(u.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue new token pair.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Tokens: tokens}, nil
}
