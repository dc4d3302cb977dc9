// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService is the session gate: it issues and verifies the opaque
// authenticated-identity tokens consumed by the core. The core never
// inspects tokens itself; it trusts the identity this service hands back.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
