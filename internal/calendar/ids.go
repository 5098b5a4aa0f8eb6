package calendar

import (
	"sync"

	"github.com/google/uuid"
)

// IDSource assigns opaque identifiers to events at creation time.
//
// Identifiers are per-process: the persisted format carries no id field,
// so loading a calendar assigns fresh ids. Stability within a process is
// what positional selection in the CLI relies on.
type IDSource interface {
	NewID() string
}

// UUIDSource generates time-sortable UUIDv7 identifiers.
//
// UUIDv7 embeds a timestamp in the most significant bits, so ids created
// later sort later. This keeps id order aligned with creation order when
// debugging a data file side by side with logs.
//
// Uses github.com/google/uuid for RFC 4122 compliant UUIDs.
type UUIDSource struct{}

// NewID creates a new UUIDv7 and returns it as a hyphenated string.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDSource) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SequenceSource returns predetermined identifiers for testing.
//
// Tests provide a known sequence and can then assert on exact ids in
// output and deletion paths.
type SequenceSource struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewSequenceSource creates a source that returns ids in order.
//
// Example:
//
//	src := NewSequenceSource("ev-1", "ev-2")
//	src.NewID() // "ev-1"
//	src.NewID() // "ev-2"
//	src.NewID() // panic: all ids exhausted
func NewSequenceSource(ids ...string) *SequenceSource {
	return &SequenceSource{ids: ids}
}

// NewID returns the next predetermined identifier.
//
// Panics when all ids have been consumed. This is a fail-fast approach
// to catch test misconfiguration (the test created more events than it
// declared ids for).
func (s *SequenceSource) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx >= len(s.ids) {
		panic("SequenceSource: all ids exhausted")
	}
	id := s.ids[s.idx]
	s.idx++
	return id
}
