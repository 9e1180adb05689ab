package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/HotelBooker/internal/handler/mocks"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(bookingSvc)

	// Аутентификация подменена: кладём userID так же, как middleware.TokenAuth.
	fakeAuth := func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, int64(1))
		c.Next()
	}

	r := ginext.New("test")
	booking := r.Group("/booking", fakeAuth)
	{
		booking.GET("", h.GetBooking)
		booking.POST("", h.CreateBooking)
		booking.PUT("/:bookingId", h.ChangeBooking)
	}

	return bookingSvc, r
}

func TestHandler_GetBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	now := time.Now()
	bookingSvc.EXPECT().GetBooking(mock.Anything, int64(1)).Return(&domain.UserBooking{
		ID: 42,
		Room: domain.Room{
			ID: 7, Name: "101", Capacity: 2, HotelID: 1,
			CreatedAt: now, UpdatedAt: now,
		},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(7), resp.Room.ID)
	assert.Equal(t, "101", resp.Room.Name)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().GetBooking(mock.Anything, int64(1)).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/booking", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(7)).Return(int64(99), nil)

	body, _ := json.Marshal(dto.BookRequest{RoomID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(99), resp.BookingID)
}

func TestHandler_CreateBooking_MissingRoomID(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_RoomNotFound(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(7)).Return(int64(0), domain.ErrRoomNotFound)

	body, _ := json.Marshal(dto.BookRequest{RoomID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateBooking_AccessDenied(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(7)).Return(int64(0), domain.ErrHotelAccessDenied)

	body, _ := json.Marshal(dto.BookRequest{RoomID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateBooking_RoomFull(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(7)).Return(int64(0), domain.ErrRoomFull)

	body, _ := json.Marshal(dto.BookRequest{RoomID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreateBooking_InternalError(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().CreateBooking(mock.Anything, int64(1), int64(7)).Return(int64(0), errors.New("db down"))

	body, _ := json.Marshal(dto.BookRequest{RoomID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/booking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

func TestHandler_ChangeBooking_Success(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().ChangeBooking(mock.Anything, int64(1), int64(42), int64(8)).Return(int64(100), nil)

	body, _ := json.Marshal(dto.BookRequest{RoomID: 8})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingIDResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.BookingID)
}

func TestHandler_ChangeBooking_BadBookingID(t *testing.T) {
	_, r := setupRouter(t)

	body, _ := json.Marshal(dto.BookRequest{RoomID: 8})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/abc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ChangeBooking_NoActiveBooking(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().ChangeBooking(mock.Anything, int64(1), int64(42), int64(8)).Return(int64(0), domain.ErrNoActiveBooking)

	body, _ := json.Marshal(dto.BookRequest{RoomID: 8})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/42", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ChangeBooking_ForeignBooking(t *testing.T) {
	bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().ChangeBooking(mock.Anything, int64(1), int64(777), int64(8)).Return(int64(0), domain.ErrBookingNotFound)

	body, _ := json.Marshal(dto.BookRequest{RoomID: 8})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/booking/777", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
