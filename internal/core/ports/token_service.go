package ports

// TokenClaims is the identity embedded in a signed session token.
type TokenClaims struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// TokenService issues and verifies signed bearer tokens. Stateless: no
// server-side session or revocation state exists, so a token stays valid
// until its TTL elapses.
type TokenService interface {
	Issue(claims TokenClaims) (string, error)
	// Verify returns domain.ErrTokenExpired for elapsed tokens and
	// domain.ErrTokenInvalid for any signature or format failure.
	Verify(token string) (TokenClaims, error)
}
