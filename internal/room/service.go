package room

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/roomdesk/meeting-room-backend/internal/mirror"
)

type RegisterRequest struct {
	Name      string
	Capacity  int
	Amenities []string
}

// RegisterResult reports the committed room plus whether the audit mirror
// accepted the record. A false Mirrored never means the registration failed.
type RegisterResult struct {
	Room     *Room
	Mirrored bool
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	GetByName(ctx context.Context, name string) (*Room, error)
	List(ctx context.Context) (map[string]*Room, error)
}

type service struct {
	repo   Repository
	mirror mirror.Mirror
}

func NewService(repo Repository, m mirror.Mirror) Service {
	return &service{
		repo:   repo,
		mirror: m,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	room := &Room{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Amenities: req.Amenities,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, room); err != nil {
		return nil, err
	}

	// Mirror after the commit; a failure here must not unwind it.
	mirrored := true
	if err := s.mirror.Append(ctx, roomRecord(room)); err != nil {
		log.Printf("mirror append failed for room %q: %v", room.Name, err)
		mirrored = false
	}

	return &RegisterResult{Room: room, Mirrored: mirrored}, nil
}

func (s *service) GetByName(ctx context.Context, name string) (*Room, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *service) List(ctx context.Context) (map[string]*Room, error) {
	return s.repo.List(ctx)
}

func roomRecord(r *Room) mirror.Record {
	return mirror.Record{
		Kind: mirror.KindRoom,
		Fields: []string{
			r.Name,
			strconv.Itoa(r.Capacity),
			strings.Join(r.Amenities, ";"),
			r.CreatedAt.Format(time.RFC3339),
		},
	}
}
