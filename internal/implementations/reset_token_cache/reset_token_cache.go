package resettokencache

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strconv"
	"time"

	e "github.com/Sommysab/auth-service/internal/core/domain/errors"
	"github.com/Sommysab/auth-service/internal/core/domain/logging"
	"github.com/Sommysab/auth-service/internal/core/domain/user"

	"github.com/go-redis/redis/v9"
)

const KEY_PREFIX = "pwdreset:"

// 24 random bytes encode to 32 URL-safe characters (192 bits of entropy).
const tokenByteLen = 24

// Redis stores reset tokens as pwdreset:<token> -> userID with a TTL. The
// cache is shared by all processes; GETDEL gives the atomic check-and-delete
// that keeps a token single-use under concurrent redemption.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	tokenTTL    time.Duration
}

func NewRedis(redisClient *redis.Client, log logging.Logger, tokenTTL time.Duration) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Redis{redisClient: redisClient, log: log, tokenTTL: tokenTTL}
}

func (c *Redis) Issue(ctx context.Context, userID user.ID) (token user.PasswordResetToken, err error) {
	token, err = generateToken()
	if err != nil {
		return token, err
	}
	err = c.redisClient.Set(ctx, KEY_PREFIX+string(token), int64(userID), c.tokenTTL).Err()
	if err != nil {
		c.log.Error(
			ctx,
			"Could not store password reset token.",
			logging.Entry("userID", userID),
			logging.Entry("err", err),
		)
		return "", err
	}
	return token, nil
}

func (c *Redis) Resolve(
	ctx context.Context,
	token user.PasswordResetToken,
) (userID user.ID, found bool, err error) {
	rawUserID, err := c.redisClient.Get(ctx, KEY_PREFIX+string(token)).Result()
	if errors.Is(err, redis.Nil) {
		return userID, false, nil
	}
	if err != nil {
		c.log.Error(ctx, "Could not resolve password reset token.", logging.Entry("err", err))
		return userID, false, err
	}
	return decodeUserID(rawUserID)
}

func (c *Redis) Consume(
	ctx context.Context,
	token user.PasswordResetToken,
) (userID user.ID, found bool, err error) {
	rawUserID, err := c.redisClient.GetDel(ctx, KEY_PREFIX+string(token)).Result()
	if errors.Is(err, redis.Nil) {
		return userID, false, nil
	}
	if err != nil {
		c.log.Error(ctx, "Could not consume password reset token.", logging.Entry("err", err))
		return userID, false, err
	}
	return decodeUserID(rawUserID)
}

func (c *Redis) Invalidate(ctx context.Context, token user.PasswordResetToken) error {
	err := c.redisClient.Del(ctx, KEY_PREFIX+string(token)).Err()
	if err != nil {
		c.log.Error(ctx, "Could not invalidate password reset token.", logging.Entry("err", err))
		return err
	}
	return nil
}

func generateToken() (user.PasswordResetToken, error) {
	b := make([]byte, tokenByteLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return user.PasswordResetToken(base64.RawURLEncoding.EncodeToString(b)), nil
}

func decodeUserID(raw string) (userID user.ID, found bool, err error) {
	rawInt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return userID, false, err
	}
	return user.ID(rawInt), true, nil
}
