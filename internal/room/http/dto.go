package http

import (
	"time"

	"github.com/roomdesk/meeting-room-backend/internal/room"
)

type CreateRoomRequest struct {
	Name      string   `json:"name" binding:"required"`
	Capacity  int      `json:"capacity" binding:"required,gt=0"`
	Amenities []string `json:"amenities"`
}

type RoomResponse struct {
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Amenities []string  `json:"amenities"`
	CreatedAt time.Time `json:"created_at"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return RoomResponse{
		Name:      r.Name,
		Capacity:  r.Capacity,
		Amenities: amenities,
		CreatedAt: r.CreatedAt,
	}
}

// CreateRoomResponse adds the mirror outcome: the room is committed either
// way, mirrored=false only flags a failed audit append.
type CreateRoomResponse struct {
	RoomResponse
	Mirrored bool `json:"mirrored"`
}
