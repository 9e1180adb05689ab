package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": userID})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewAuthService(sessionRepo, testSecret)

	token := signToken(t, testSecret, 1)
	sessionRepo.EXPECT().GetByToken(mock.Anything, token).
		Return(&domain.Session{ID: 3, UserID: 1, Token: token}, nil)

	userID, err := svc.Authenticate(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}

func TestAuthService_Authenticate_BadSignature(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewAuthService(sessionRepo, testSecret)

	token := signToken(t, "other-secret", 1)

	_, err := svc.Authenticate(context.Background(), token)

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_Garbage(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewAuthService(sessionRepo, testSecret)

	_, err := svc.Authenticate(context.Background(), "not-a-jwt")

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_NoSession(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewAuthService(sessionRepo, testSecret)

	token := signToken(t, testSecret, 1)
	sessionRepo.EXPECT().GetByToken(mock.Anything, token).
		Return(nil, domain.ErrSessionNotFound)

	_, err := svc.Authenticate(context.Background(), token)

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_SessionUserMismatch(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewAuthService(sessionRepo, testSecret)

	token := signToken(t, testSecret, 1)
	sessionRepo.EXPECT().GetByToken(mock.Anything, token).
		Return(&domain.Session{ID: 3, UserID: 2, Token: token}, nil)

	_, err := svc.Authenticate(context.Background(), token)

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
