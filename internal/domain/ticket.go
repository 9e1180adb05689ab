package domain

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// Enrollment is a user's registration for the event. One per user.
type Enrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type TicketType struct {
	ID            int64 `json:"id"`
	IsRemote      bool  `json:"is_remote"`
	IncludesHotel bool  `json:"includes_hotel"`
}

type Ticket struct {
	ID           int64        `json:"id"`
	EnrollmentID int64        `json:"enrollment_id"`
	Status       TicketStatus `json:"status"`
	TicketType   TicketType   `json:"ticket_type"`
}
