package jwttoken

import (
	authmw "radar/pkg/platform/middleware/auth"
	"radar/pkg/requestcontext"
)

type bearer struct {
	service *JWTService
}

// Bearer returns the validator the auth middleware checks Authorization
// headers with. Only subject and role travel into the request context.
func (s *JWTService) Bearer() authmw.JWTValidator {
	return bearer{service: s}
}

func (b bearer) ValidateToken(tokenString string) (*authmw.JWTClaims, error) {
	claims, err := b.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &authmw.JWTClaims{Subject: claims.Subject, Role: requestcontext.Role(claims.Role)}, nil
}
