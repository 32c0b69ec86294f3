package service

// TokenService defines the interface for issuing and verifying signed,
// time-limited identity tokens. Tokens are opaque bearer credentials; there is
// no server-side session state and verification is purely cryptographic.
type TokenService interface {
	// Issue creates a signed token embedding the user identifier as a claim,
	// expiring after the configured lifetime.
	Issue(userID int64) (string, error)

	// Verify checks the token signature and expiry and returns the embedded
	// user identifier. Any malformed, tampered or expired token yields an error.
	Verify(token string) (int64, error)
}
