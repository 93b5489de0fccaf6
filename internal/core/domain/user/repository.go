package user

import (
	"context"
	"time"

	c "github.com/Sommysab/auth-service/internal/core/domain/common"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	FullName     string
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash) error
}
