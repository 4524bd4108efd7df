package booking

import (
	"net/http"
	"time"

	"github.com/roomdesk/meeting-room-backend/internal/pkg/apperror"
)

var (
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
)

// Booking reserves a room for the half-open interval [StartTime, EndTime).
// Bookings are immutable once committed and live for the process lifetime;
// there is no cancellation or expiry.
type Booking struct {
	ID        string
	RoomName  string
	StartTime time.Time
	EndTime   time.Time
	BookedBy  string
	CreatedAt time.Time
}

// Overlaps reports whether the booking's interval intersects [start, end).
// Two intervals conflict unless one entirely precedes the other, so a shared
// boundary (one ends exactly when the other starts) is not a conflict.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndTime) && end.After(b.StartTime)
}
