package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingRepo interface {
	GetByUser(ctx context.Context, userID int64) (*domain.UserBooking, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error)
	Create(ctx context.Context, userID, roomID int64) (int64, error)
	Replace(ctx context.Context, bookingID, userID, roomID int64) (int64, error)
}
