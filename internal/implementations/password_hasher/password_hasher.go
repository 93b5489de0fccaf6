package passwordhasher

import (
	"github.com/Sommysab/auth-service/internal/core/domain/user"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords with bcrypt after appending a server-side pepper.
// The pepper lives only in configuration, so database hashes alone are not
// enough to mount an offline attack.
type Bcrypt struct {
	pepper []byte
	cost   int
}

// NewBcrypt clamps out-of-range costs to the bcrypt default instead of
// letting GenerateFromPassword fail at request time.
func NewBcrypt(pepper string, cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{pepper: []byte(pepper), cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (user.PasswordHash, error) {
	hash, err := bcrypt.GenerateFromPassword(h.peppered(password), h.cost)
	if err != nil {
		return "", err
	}
	return user.PasswordHash(hash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.peppered(password)) == nil
}

func (h *Bcrypt) peppered(password user.RawPassword) []byte {
	return append([]byte(password), h.pepper...)
}
