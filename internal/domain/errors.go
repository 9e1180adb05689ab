package domain

import "errors"

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrTicketNotFound     = errors.New("ticket not found")
)

var (
	ErrHotelAccessDenied = errors.New("ticket does not grant hotel access")
	ErrRoomFull          = errors.New("room has no vacancy")
	ErrNoActiveBooking   = errors.New("user has no booking to change")
	ErrAlreadyBooked     = errors.New("user already has a booking")
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionNotFound = errors.New("session not found")
)

var (
	ErrValidation = errors.New("validation error")
)
