package token

import (
	"fmt"
	"time"

	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// JWT issues HS256-signed access/refresh token pairs. Tokens carry no
// credential state: validity depends only on the signature and expiry, so a
// password change does not revoke outstanding tokens.
type JWT struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewJWT(secret string, accessTTL, refreshTTL time.Duration, now func() time.Time) *JWT {
	if secret == "" {
		panic(e.NewNilArgumentError("secret"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &JWT{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        now,
	}
}

func (i *JWT) IssueTokens(userID user.ID) (pair user.TokenPair, err error) {
	access, err := i.sign(userID, tokenTypeAccess, i.accessTTL)
	if err != nil {
		return pair, err
	}
	refresh, err := i.sign(userID, tokenTypeRefresh, i.refreshTTL)
	if err != nil {
		return pair, err
	}
	return user.TokenPair{
		Access:  user.AccessToken(access),
		Refresh: user.RefreshToken(refresh),
	}, nil
}

func (i *JWT) ValidateAccessToken(token user.AccessToken) (user.ID, error) {
	return i.parse(string(token), tokenTypeAccess)
}

func (i *JWT) ValidateRefreshToken(token user.RefreshToken) (user.ID, error) {
	return i.parse(string(token), tokenTypeRefresh)
}

func (i *JWT) sign(userID user.ID, tokenType string, ttl time.Duration) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"user_id":    int64(userID),
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		"jti":        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

func (i *JWT) parse(rawToken string, expectedType string) (userID user.ID, err error) {
	parsed, err := jwt.Parse(
		rawToken,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return i.secret, nil
		},
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return userID, user.ErrInvalidSessionToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return userID, user.ErrInvalidSessionToken
	}
	if tokenType, _ := claims["token_type"].(string); tokenType != expectedType {
		return userID, user.ErrInvalidSessionToken
	}
	rawUserID, ok := claims["user_id"].(float64)
	if !ok {
		return userID, user.ErrInvalidSessionToken
	}
	return user.ID(rawUserID), nil
}
