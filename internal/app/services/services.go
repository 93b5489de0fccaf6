package services

import (
	"github.com/Sommysab/auth-service/internal/app/deps"
	drl "github.com/Sommysab/auth-service/internal/core/domain/rate_limiter"
	"github.com/Sommysab/auth-service/internal/core/services"
	"github.com/Sommysab/auth-service/internal/core/services/auth"
	changepassword "github.com/Sommysab/auth-service/internal/core/services/change_password"
	getuserbyaccesstoken "github.com/Sommysab/auth-service/internal/core/services/get_user_by_access_token"
	loginwithemail "github.com/Sommysab/auth-service/internal/core/services/log_in_with_email"
	ratelimiting "github.com/Sommysab/auth-service/internal/core/services/rate_limiting"
	refreshsession "github.com/Sommysab/auth-service/internal/core/services/refresh_session"
	resetpassword "github.com/Sommysab/auth-service/internal/core/services/reset_password"
	sendpasswordresettoken "github.com/Sommysab/auth-service/internal/core/services/send_password_reset_token"
	signupwithemail "github.com/Sommysab/auth-service/internal/core/services/sign_up_with_email"
)

type Services struct {
	SignUpWithEmail        services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	RefreshSession         services.Service[refreshsession.Input, refreshsession.Result]
	GetUserByAccessToken   services.Service[getuserbyaccesstoken.Input, getuserbyaccesstoken.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	ChangePassword         services.Service[changepassword.Input, changepassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
			deps.TokenPairIssuer,
		),
	)
	s.RefreshSession = refreshsession.New(
		deps.Logger,
		deps.UserRepository,
		deps.TokenPairIssuer,
	)
	s.GetUserByAccessToken = getuserbyaccesstoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.TokenPairIssuer,
	)
	s.SendPasswordResetToken = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendpasswordresettoken.New(
			deps.Logger,
			deps.UserRepository,
			deps.ResetTokenCache,
			deps.PasswordResetTokenSender,
		),
	)
	s.ResetPassword = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Minute, Value: 5},
		resetpassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.ResetTokenCache,
			deps.PasswordHasher,
		),
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.TokenPairIssuer,
		deps.UserRepository,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)

	return s
}
