package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
	"time"

	c "github.com/Sommysab/auth-service/internal/core/domain/common"
)

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		FullName:     input.FullName,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type fakeResetTokenEntry struct {
	userID    ID
	expiresAt time.Time
}

// FakeResetTokenCache is an in-memory stand-in for the Redis-backed cache.
// Expiry is driven by the injected Now func so tests can advance the clock.
type FakeResetTokenCache struct {
	Now         func() time.Time
	TTL         time.Duration
	ReturnError bool

	entries map[PasswordResetToken]fakeResetTokenEntry
	counter int
	lock    sync.Mutex
}

func NewFakeResetTokenCache(now func() time.Time, ttl time.Duration) *FakeResetTokenCache {
	return &FakeResetTokenCache{
		Now:     now,
		TTL:     ttl,
		entries: make(map[PasswordResetToken]fakeResetTokenEntry),
	}
}

func (c *FakeResetTokenCache) Issue(ctx context.Context, userID ID) (PasswordResetToken, error) {
	if c.ReturnError {
		return "", fmt.Errorf("could not issue reset token for user %d", userID)
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	c.counter++
	token := PasswordResetToken(fmt.Sprintf("reset-token-%d", c.counter))
	c.entries[token] = fakeResetTokenEntry{userID: userID, expiresAt: c.Now().Add(c.TTL)}
	return token, nil
}

func (c *FakeResetTokenCache) Resolve(
	ctx context.Context,
	token PasswordResetToken,
) (userID ID, found bool, err error) {
	if c.ReturnError {
		return userID, false, fmt.Errorf("could not resolve reset token")
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	entry, ok := c.entries[token]
	if !ok || !entry.expiresAt.After(c.Now()) {
		return userID, false, nil
	}
	return entry.userID, true, nil
}

func (c *FakeResetTokenCache) Consume(
	ctx context.Context,
	token PasswordResetToken,
) (userID ID, found bool, err error) {
	if c.ReturnError {
		return userID, false, fmt.Errorf("could not consume reset token")
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	entry, ok := c.entries[token]
	if !ok || !entry.expiresAt.After(c.Now()) {
		return userID, false, nil
	}
	delete(c.entries, token)
	return entry.userID, true, nil
}

func (c *FakeResetTokenCache) Invalidate(ctx context.Context, token PasswordResetToken) error {
	if c.ReturnError {
		return fmt.Errorf("could not invalidate reset token")
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.entries, token)
	return nil
}

func (c *FakeResetTokenCache) StoredCount() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.entries)
}

type FakePasswordResetTokenSender struct {
	SentTo      []User
	SentTokens  []PasswordResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendToken(
	ctx context.Context,
	u User,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token to user %d", u.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.SentTo = append(s.SentTo, u)
	s.SentTokens = append(s.SentTokens, token)
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.SentTo)
}

type FakeTokenPairIssuer struct {
	ReturnError bool

	userIDByAccess  map[AccessToken]ID
	userIDByRefresh map[RefreshToken]ID
	counter         int
	lock            sync.Mutex
}

func NewFakeTokenPairIssuer() *FakeTokenPairIssuer {
	return &FakeTokenPairIssuer{
		userIDByAccess:  make(map[AccessToken]ID),
		userIDByRefresh: make(map[RefreshToken]ID),
	}
}

func (i *FakeTokenPairIssuer) IssueTokens(userID ID) (pair TokenPair, err error) {
	if i.ReturnError {
		return pair, fmt.Errorf("could not issue tokens for user %d", userID)
	}
	i.lock.Lock()
	defer i.lock.Unlock()
	i.counter++
	pair = TokenPair{
		Access:  AccessToken(fmt.Sprintf("access-%d", i.counter)),
		Refresh: RefreshToken(fmt.Sprintf("refresh-%d", i.counter)),
	}
	i.userIDByAccess[pair.Access] = userID
	i.userIDByRefresh[pair.Refresh] = userID
	return pair, nil
}

func (i *FakeTokenPairIssuer) ValidateAccessToken(token AccessToken) (ID, error) {
	i.lock.Lock()
	defer i.lock.Unlock()
	userID, ok := i.userIDByAccess[token]
	if !ok {
		return ID(0), ErrInvalidSessionToken
	}
	return userID, nil
}

func (i *FakeTokenPairIssuer) ValidateRefreshToken(token RefreshToken) (ID, error) {
	i.lock.Lock()
	defer i.lock.Unlock()
	userID, ok := i.userIDByRefresh[token]
	if !ok {
		return ID(0), ErrInvalidSessionToken
	}
	return userID, nil
}
