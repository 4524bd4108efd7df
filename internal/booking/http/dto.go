package http

import (
	"time"

	"github.com/roomdesk/meeting-room-backend/internal/booking"
)

type CreateBookingRequest struct {
	RoomName  string    `json:"room_name" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	BookedBy  string    `json:"booked_by" binding:"required"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if !r.StartTime.Before(r.EndTime) {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

type BookingResponse struct {
	ID        string    `json:"id"`
	RoomName  string    `json:"room_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	BookedBy  string    `json:"booked_by"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		RoomName:  b.RoomName,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		BookedBy:  b.BookedBy,
		CreatedAt: b.CreatedAt,
	}
}

// CreateBookingResponse adds the mirror outcome: the booking is committed
// either way, mirrored=false only flags a failed audit append.
type CreateBookingResponse struct {
	BookingResponse
	Mirrored bool `json:"mirrored"`
}
