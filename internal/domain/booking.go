package domain

import "time"

type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserBooking is the read model for a user's current booking: the booking
// id together with the room it occupies.
type UserBooking struct {
	ID   int64 `json:"id"`
	Room Room  `json:"room"`
}
