package mirror

import (
	"context"
	"sync"
)

// MemoryMirror keeps audit records in process memory. It is the fallback when
// no spreadsheet is configured, and the implementation tests run against.
type MemoryMirror struct {
	mu   sync.RWMutex
	rows []Record
}

func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{}
}

func (m *MemoryMirror) Append(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, rec)
	return nil
}

func (m *MemoryMirror) Records(_ context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, len(m.rows))
	copy(out, m.rows)
	return out, nil
}
