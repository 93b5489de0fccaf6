package user

type AccessToken string

type RefreshToken string

type TokenPair struct {
	Access  AccessToken
	Refresh RefreshToken
}

// TokenPairIssuer issues and validates signed session tokens. The issuer is
// stateless with respect to credentials: a password change does not revoke
// previously issued tokens, and every login re-verifies against the current
// password hash.
type TokenPairIssuer interface {
	IssueTokens(userID ID) (TokenPair, error)
	ValidateAccessToken(token AccessToken) (ID, error)
	ValidateRefreshToken(token RefreshToken) (ID, error)
}
