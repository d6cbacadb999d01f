package state

import (
	"sync"
	"time"
)

// Snapshot is the latest server-liveness reading available to the UI.
type Snapshot struct {
	Up                  bool
	Checked             bool // at least one probe has completed
	LastChecked         time.Time
	ConsecutiveFailures int // probes that ended in a transport failure
}

// IsOffline returns true when the server has been unreachable for multiple
// probes in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the liveness snapshot. The prober
// goroutine writes; the UI reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one probe. reachable distinguishes a
// transport failure from a server that answered with a non-200.
func (s *Store) Update(up, reachable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Up = up
	s.snapshot.Checked = true
	s.snapshot.LastChecked = time.Now()
	if reachable {
		s.snapshot.ConsecutiveFailures = 0
	} else {
		s.snapshot.ConsecutiveFailures++
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
