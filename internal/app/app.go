package app

import (
	"net/http"
	"time"

	"github.com/Sommysab/auth-service/internal/app/deps"
	"github.com/Sommysab/auth-service/internal/app/services"
	"github.com/Sommysab/auth-service/internal/http/handlers/auth"
	loginwithemail "github.com/Sommysab/auth-service/internal/http/handlers/auth/log_in_with_email"
	me "github.com/Sommysab/auth-service/internal/http/handlers/auth/me"
	refreshsession "github.com/Sommysab/auth-service/internal/http/handlers/auth/refresh_session"
	resetpassword "github.com/Sommysab/auth-service/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "github.com/Sommysab/auth-service/internal/http/handlers/auth/send_password_reset_token"
	signupwithemail "github.com/Sommysab/auth-service/internal/http/handlers/auth/sign_up_with_email"
	changepassword "github.com/Sommysab/auth-service/internal/http/handlers/user/change_password"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/token/refresh", refreshsession.New(s.RefreshSession))
	authRouter.Method(http.MethodGet, "/me", me.New(s.GetUserByAccessToken))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetAuthTokenToContext)
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserByAccessToken))
	profileRouter.Method(http.MethodPut, "/password", changepassword.New(s.ChangePassword))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)

	return &http.Server{
		Handler:           router,
		Addr:              deps.Config.HTTPAddress,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
