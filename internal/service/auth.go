package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

type AuthService struct {
	sessionRepo ports.SessionRepo
	secret      []byte
}

func NewAuthService(sessionRepo ports.SessionRepo, secret string) *AuthService {
	return &AuthService{
		sessionRepo: sessionRepo,
		secret:      []byte(secret),
	}
}

// Authenticate verifies a bearer token and returns the user id it carries.
// A token is only accepted while its session row still exists: signing out
// invalidates the token even before it expires.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return 0, domain.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	rawID, ok := claims["userId"].(float64)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	userID := int64(rawID)

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return 0, domain.ErrUnauthorized
		}
		return 0, fmt.Errorf("get session: %w", err)
	}
	if session.UserID != userID {
		return 0, domain.ErrUnauthorized
	}

	return userID, nil
}
