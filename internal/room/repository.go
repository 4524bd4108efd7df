package room

import (
	"context"
	"sync"
)

type Repository interface {
	// Insert stores the room, failing with ErrDuplicateName when the name is
	// already taken. The uniqueness check and the insert are one critical
	// section; the registry is unchanged on failure.
	Insert(ctx context.Context, r *Room) error
	GetByName(ctx context.Context, name string) (*Room, error)
	List(ctx context.Context) (map[string]*Room, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewMemoryRepository returns an in-memory Repository. State lives for the
// process lifetime; there is no persistence.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		rooms: make(map[string]*Room),
	}
}

func (r *memoryRepository) Insert(_ context.Context, room *Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rooms[room.Name]; exists {
		return ErrDuplicateName
	}
	r.rooms[room.Name] = room
	return nil
}

func (r *memoryRepository) GetByName(_ context.Context, name string) (*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[name]
	if !ok {
		return nil, ErrNotFound
	}
	return room, nil
}

func (r *memoryRepository) List(_ context.Context) (map[string]*Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*Room, len(r.rooms))
	for name, room := range r.rooms {
		out[name] = room
	}
	return out, nil
}
