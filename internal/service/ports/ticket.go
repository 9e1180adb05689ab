package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type TicketRepo interface {
	GetEnrollmentByUser(ctx context.Context, userID int64) (*domain.Enrollment, error)
	GetByEnrollment(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}
