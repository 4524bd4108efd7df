package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	b := &Booking{StartTime: at(10, 0), EndTime: at(11, 0)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"entirely before", at(8, 0), at(9, 0), false},
		{"entirely after", at(12, 0), at(13, 0), false},
		{"touching start boundary", at(9, 0), at(10, 0), false},
		{"touching end boundary", at(11, 0), at(12, 0), false},
		{"identical interval", at(10, 0), at(11, 0), true},
		{"contained within", at(10, 15), at(10, 45), true},
		{"containing", at(9, 0), at(12, 0), true},
		{"overlapping head", at(9, 30), at(10, 30), true},
		{"overlapping tail", at(10, 30), at(11, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.start, tt.end))
		})
	}
}
