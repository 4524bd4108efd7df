package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/roomdesk/meeting-room-backend/internal/mirror"
	"github.com/roomdesk/meeting-room-backend/internal/room"
)

type CreateRequest struct {
	RoomName  string
	StartTime time.Time
	EndTime   time.Time
	BookedBy  string
}

// CreateResult reports the committed booking plus whether the audit mirror
// accepted the record. A false Mirrored never means the booking failed.
type CreateResult struct {
	Booking  *Booking
	Mirrored bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	List(ctx context.Context) ([]*Booking, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	mirror      mirror.Mirror
}

func NewService(repo Repository, roomService room.Service, m mirror.Mirror) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		mirror:      m,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	// 1. Validate Time Range. The half-open overlap rule assumes well-formed
	// intervals, so degenerate and inverted ones are rejected outright.
	if !req.StartTime.Before(req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	// 2. Validate Room Exists. Rooms are never deleted, so the room cannot
	// vanish between this check and the insert below.
	if _, err := s.roomService.GetByName(ctx, req.RoomName); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// 3. Conflict Scan + Append. Atomic inside the repository.
	booking := &Booking{
		ID:        uuid.NewString(),
		RoomName:  req.RoomName,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BookedBy:  req.BookedBy,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, booking); err != nil {
		return nil, err
	}

	// 4. Mirror after the commit; a failure here must not unwind it.
	mirrored := true
	if err := s.mirror.Append(ctx, bookingRecord(booking)); err != nil {
		log.Printf("mirror append failed for booking %s: %v", booking.ID, err)
		mirrored = false
	}

	return &CreateResult{Booking: booking, Mirrored: mirrored}, nil
}

func (s *service) List(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx)
}

func bookingRecord(b *Booking) mirror.Record {
	return mirror.Record{
		Kind: mirror.KindBooking,
		Fields: []string{
			b.ID,
			b.RoomName,
			b.StartTime.Format(time.RFC3339),
			b.EndTime.Format(time.RFC3339),
			b.BookedBy,
			b.CreatedAt.Format(time.RFC3339),
		},
	}
}
