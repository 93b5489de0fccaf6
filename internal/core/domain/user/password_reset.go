package user

import "context"

type PasswordResetToken string

// ResetTokenCache stores short-lived, single-use password reset tokens mapped
// to the user they were issued for. Expiry is enforced by the underlying
// store, not by the callers. Tokens that never existed, already expired or
// were already consumed are all reported as not found.
//
// Lookup and delete errors mean the store itself is unavailable and must not
// be mistaken for a missing token.
type ResetTokenCache interface {
	// Issue generates an opaque random token and stores the token -> userID
	// mapping with the cache's TTL.
	Issue(ctx context.Context, userID ID) (PasswordResetToken, error)
	// Resolve returns the user the token was issued for without consuming it.
	Resolve(ctx context.Context, token PasswordResetToken) (userID ID, found bool, err error)
	// Consume atomically resolves and invalidates the token. Of two
	// concurrent Consume calls with the same token exactly one observes
	// found == true.
	Consume(ctx context.Context, token PasswordResetToken) (userID ID, found bool, err error)
	// Invalidate removes the token. Invalidating an absent token is a no-op.
	Invalidate(ctx context.Context, token PasswordResetToken) error
}

type PasswordResetTokenSender interface {
	SendToken(ctx context.Context, u User, token PasswordResetToken) error
}
