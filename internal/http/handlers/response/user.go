package response

import (
	"time"

	"github.com/Sommysab/auth-service/internal/core/domain/user"
)

// User never carries the password hash.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.FullName = du.FullName
	u.CreatedAt = du.CreatedAt
}
