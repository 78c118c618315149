// Package auth issues and verifies the short-lived access tokens carried in
// the Authorization header.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gainsystem/pkg/config"
)

var ErrInvalidAccessToken = errors.New("invalid access token")

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret    []byte
	accessTTL time.Duration
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:    []byte(cfg.SecretKey),
		accessTTL: cfg.AccessTokenTTL,
	}
}

// Generate signs an access token carrying the subject email and an expiry
// computed from the configured TTL.
func (m *JWTManager) Generate(email string) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks the signature and requires both the email and expiry claims
// to be present and the token unexpired. Callers treat any failure as "no
// authenticated subject", not as an error to surface.
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, ErrInvalidAccessToken
	}
	if claims.Email == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidAccessToken
	}
	if time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrInvalidAccessToken
	}

	return claims, nil
}
