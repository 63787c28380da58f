package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoption-market/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty      = errors.New("token is empty")
	ErrSecretEmpty     = errors.New("jwt secret is not configured")
	ErrMissingUserID   = errors.New("token claims missing user id")
	ErrUnexpectedAlg   = errors.New("unexpected signing method")
	ErrInvalidToken    = errors.New("invalid token")
	ErrClaimsWrongType = errors.New("unexpected claims type")
)

// Verifier implements auth.AuthVerifier over HMAC-signed JWTs, the shape the
// upstream session service issues.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrSecretEmpty
	}
	return &Verifier{secret: []byte(secret)}, nil
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedAlg
		}
		return v.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify failed: %w", err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Claims{}, ErrClaimsWrongType
	}

	claims := auth.Claims{
		UserID: stringClaim(mapClaims, "sub"),
		Email:  stringClaim(mapClaims, "email"),
		Role:   stringClaim(mapClaims, "role"),
	}
	if claims.UserID == "" {
		return auth.Claims{}, ErrMissingUserID
	}
	if claims.Role == "" {
		claims.Role = auth.RoleMember
	}

	return claims, nil
}

func stringClaim(m jwt.MapClaims, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
