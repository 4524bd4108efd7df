package mirror

import "context"

// Record kinds emitted by the core services.
const (
	KindRoom    = "room"
	KindBooking = "booking"
)

// Record is one flat audit row: a kind tag followed by the mutation's fields.
type Record struct {
	Kind   string
	Fields []string
}

// Mirror is an append-only audit log that receives a Record after each
// committed mutation. Appends are best-effort: callers report a failed append
// but never unwind the mutation that produced it, and must not invoke Append
// while holding a store lock.
type Mirror interface {
	Append(ctx context.Context, rec Record) error
	Records(ctx context.Context) ([]Record, error)
}
