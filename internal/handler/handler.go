package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	GetBooking(ctx context.Context, userID int64) (*domain.UserBooking, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (int64, error)
	ChangeBooking(ctx context.Context, userID, bookingID, roomID int64) (int64, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
	}
}

func (h *Handler) GetBooking(c *ginext.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "roomId is required"})
		return
	}

	bookingID, err := h.bookingService.CreateBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: bookingID})
}

func (h *Handler) ChangeBooking(c *ginext.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "roomId is required"})
		return
	}

	newID, err := h.bookingService.ChangeBooking(c.Request.Context(), userID, bookingID, req.RoomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingIDResponse{BookingID: newID})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrHotelAccessDenied),
		errors.Is(err, domain.ErrRoomFull),
		errors.Is(err, domain.ErrNoActiveBooking),
		errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func userIDFrom(c *ginext.Context) (int64, bool) {
	v, ok := c.Get(middleware.UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
