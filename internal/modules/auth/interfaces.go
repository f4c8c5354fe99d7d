package auth

// TokenIssuer signs bearer tokens for a freshly established session.
type TokenIssuer interface {
	GenerateToken(userID string, role string) (string, error)
}
