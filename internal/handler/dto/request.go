package dto

type BookRequest struct {
	RoomID int64 `json:"roomId" binding:"required"`
}
