package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type SessionRepo interface {
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
}
