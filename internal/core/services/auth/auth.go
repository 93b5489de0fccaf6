package auth

import (
	"context"

	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/user"
	"github.com/Sommysab/auth-service/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type service[T Input, S any] struct {
	tokenPairIssuer user.TokenPairIssuer
	userRepository  user.UserRepository
	inner           services.Service[T, S]
}

// WithAuthentication decorates a service so that it only runs for requests
// carrying a valid access token, with the resolved user injected into the
// input.
func WithAuthentication[T Input, S any](
	tokenPairIssuer user.TokenPairIssuer,
	userRepository user.UserRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if tokenPairIssuer == nil {
		panic(e.NewNilArgumentError("tokenPairIssuer"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		tokenPairIssuer: tokenPairIssuer,
		userRepository:  userRepository,
		inner:           inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.AccessToken)
	if !ok {
		return result, user.ErrInvalidSessionToken
	}
	userID, err := s.tokenPairIssuer.ValidateAccessToken(authToken)
	if err != nil {
		return result, user.ErrInvalidSessionToken
	}
	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return result, user.ErrInvalidSessionToken
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(u).(T))
}
