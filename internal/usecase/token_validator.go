package usecase

import (
	"context"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/pkg/jwt"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/mock_token_validator.go -package=usecasemock

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateToken also rejects tokens whose user no longer exists.
	ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserReadStore
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserReadStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	if _, err := t.users.FindByID(ctx, claims.UserID); err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
