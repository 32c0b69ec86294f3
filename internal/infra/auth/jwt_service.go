// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskhub/config"
	"taskhub/internal/domain/service"
	"taskhub/internal/errors"
)

// tokenClaims is the JWT payload. It carries only the user identifier beside
// the registered claims.
type tokenClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	expiry time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.Expiry <= 0 {
		return nil, errors.New("jwt expiry must be positive")
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		expiry: cfg.JWT.Expiry,
	}, nil
}

// Issue creates a signed token embedding the user identifier, expiring after
// the configured lifetime.
func (s *jwtService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token signature and expiry and returns the embedded user
// identifier. golang-jwt rejects expired tokens during parsing.
func (s *jwtService) Verify(tokenString string) (int64, error) {
	claims := new(tokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}

	return claims.UserID, nil
}
