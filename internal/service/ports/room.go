package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
