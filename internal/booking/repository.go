package booking

import (
	"context"
	"sync"
)

type Repository interface {
	// Insert appends the booking unless it overlaps an existing booking for
	// the same room, in which case it fails with ErrTimeConflict and leaves
	// the ledger unchanged. The conflict scan and the append are one critical
	// section, so two concurrent inserts with overlapping intervals can never
	// both commit.
	Insert(ctx context.Context, b *Booking) error
	// List returns all bookings in creation order.
	List(ctx context.Context) ([]*Booking, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	all    []*Booking
	byRoom map[string][]*Booking
}

// NewMemoryRepository returns an in-memory Repository. The per-room index
// keeps the conflict scan linear in one room's bookings rather than the whole
// ledger; state lives for the process lifetime.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byRoom: make(map[string][]*Booking),
	}
}

func (r *memoryRepository) Insert(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byRoom[b.RoomName] {
		if existing.Overlaps(b.StartTime, b.EndTime) {
			return ErrTimeConflict
		}
	}

	r.all = append(r.all, b)
	r.byRoom[b.RoomName] = append(r.byRoom[b.RoomName], b)
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Booking, len(r.all))
	copy(out, r.all)
	return out, nil
}
