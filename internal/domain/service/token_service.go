package service

import (
	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// AccessClaims is the identity carried by an access token.
type AccessClaims struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// TokenVerifier validates access tokens issued by the external auth service.
type TokenVerifier interface {
	// ValidateAccessToken parses and verifies a bearer token.
	ValidateAccessToken(tokenString string) (*AccessClaims, error)
}
