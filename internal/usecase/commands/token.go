package commands

import (
	"sala-agenda/internal/domain/staff"
	"sala-agenda/internal/pkg/errs"
	"sala-agenda/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator verifies an access token and yields the staff identity the
// handlers attach to the request context.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, staff.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, staff.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrTokenValidation)
	}

	return claims.UserID, role, nil
}
