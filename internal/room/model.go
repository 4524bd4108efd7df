package room

import (
	"net/http"
	"time"

	"github.com/roomdesk/meeting-room-backend/internal/pkg/apperror"
)

var (
	ErrDuplicateName   = apperror.New(http.StatusConflict, "room name already registered")
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "room name cannot be empty")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be a positive integer")
)

// Room is a bookable meeting room. Name is the primary key of the registry;
// Capacity and Amenities are informational and never drive any rejection.
// Rooms are immutable once registered: no field is written after Register
// returns, so repositories may hand out shared pointers.
type Room struct {
	Name      string
	Capacity  int
	Amenities []string
	CreatedAt time.Time
}
