package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	ticketRepo  ports.TicketRepo
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	ticketRepo ports.TicketRepo,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*domain.UserBooking, error) {
	return s.bookingRepo.GetByUser(ctx, userID)
}

func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID int64) (int64, error) {
	// Сначала право на отель, потом комната: без права бронировать
	// нет смысла ходить за комнатой.
	if err := s.checkEligibility(ctx, userID); err != nil {
		return 0, err
	}

	if err := s.validateRoom(ctx, roomID); err != nil {
		return 0, err
	}

	id, err := s.bookingRepo.Create(ctx, userID, roomID)
	if err != nil {
		return 0, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Any("booking_id", id),
		logger.Any("user_id", userID),
		logger.Any("room_id", roomID),
	)

	return id, nil
}

func (s *BookingService) ChangeBooking(ctx context.Context, userID, bookingID, roomID int64) (int64, error) {
	// Смена доступна только держателю брони; право на отель заново
	// не проверяется, бронь уже была выдана.
	if _, err := s.bookingRepo.GetByUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return 0, domain.ErrNoActiveBooking
		}
		return 0, fmt.Errorf("get current booking: %w", err)
	}

	if err := s.validateRoom(ctx, roomID); err != nil {
		return 0, err
	}

	newID, err := s.bookingRepo.Replace(ctx, bookingID, userID, roomID)
	if err != nil {
		return 0, fmt.Errorf("replace booking: %w", err)
	}

	s.logger.Info("booking changed",
		logger.Any("old_booking_id", bookingID),
		logger.Any("booking_id", newID),
		logger.Any("user_id", userID),
		logger.Any("room_id", roomID),
	)

	return newID, nil
}

// checkEligibility enforces the hotel-access rules: an enrollment with a
// paid, in-person ticket whose type includes a hotel stay.
func (s *BookingService) checkEligibility(ctx context.Context, userID int64) error {
	enrollment, err := s.ticketRepo.GetEnrollmentByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return domain.ErrHotelAccessDenied
		}
		return fmt.Errorf("get enrollment: %w", err)
	}

	ticket, err := s.ticketRepo.GetByEnrollment(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return domain.ErrHotelAccessDenied
		}
		return fmt.Errorf("get ticket: %w", err)
	}

	if ticket.Status != domain.TicketStatusPaid {
		return domain.ErrHotelAccessDenied
	}
	if ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return domain.ErrHotelAccessDenied
	}

	return nil
}

// validateRoom is advisory: the repository re-checks capacity under a row
// lock, so a race here only costs an extra round-trip, never an overbook.
func (s *BookingService) validateRoom(ctx context.Context, roomID int64) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("get room: %w", err)
	}

	occupants, err := s.bookingRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("list occupants: %w", err)
	}
	if len(occupants) >= room.Capacity {
		return domain.ErrRoomFull
	}

	return nil
}
