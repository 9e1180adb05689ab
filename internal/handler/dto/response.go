package dto

import (
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	HotelID   int64  `json:"hotelId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type BookingResponse struct {
	ID   int64        `json:"id"`
	Room RoomResponse `json:"Room"`
}

type BookingIDResponse struct {
	BookingID int64 `json:"bookingId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.UserBooking) BookingResponse {
	return BookingResponse{
		ID: b.ID,
		Room: RoomResponse{
			ID:        b.Room.ID,
			Name:      b.Room.Name,
			Capacity:  b.Room.Capacity,
			HotelID:   b.Room.HotelID,
			CreatedAt: b.Room.CreatedAt.Format(time.RFC3339),
			UpdatedAt: b.Room.UpdatedAt.Format(time.RFC3339),
		},
	}
}
