// Package reporting keeps the shell's view of what the launcher has done.
//
// The launcher itself is fire-and-forget, so the store records launches,
// not lifetimes: a snapshot says "a spawn succeeded at this time with this
// PID" or "a spawn failed with this error", never "the process is still
// running". The dashboard panels and the status tool read from here; every
// command path writes through Set after calling the launcher.
package reporting

import (
	"sync"
	"time"
)

// Well-known snapshot labels.
const (
	LabelBackend  = "backend"
	LabelServices = "services"
)

// State describes the last launch attempt for a label.
type State string

const (
	// StateIdle means nothing has been launched yet.
	StateIdle State = "idle"
	// StateLaunching means a launch is in flight.
	StateLaunching State = "launching"
	// StateLaunched means the last spawn succeeded.
	StateLaunched State = "launched"
	// StateFailed means the last spawn failed.
	StateFailed State = "failed"
)

// Snapshot is the recorded outcome of the most recent launch attempt for a
// label.
type Snapshot struct {
	Label       string
	State       State
	PID         int
	Detail      string
	Err         error
	LastUpdated time.Time
}

// Update is the caller-supplied part of a snapshot; the store adds the
// timestamp.
type Update struct {
	Label  string
	State  State
	PID    int
	Detail string
	Err    error
}

// Subscription delivers every snapshot written to the store. The channel is
// buffered; a subscriber that stops draining loses events rather than
// blocking writers.
type Subscription struct {
	Channel chan Snapshot

	mu     sync.Mutex
	closed bool
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.Channel)
		s.closed = true
	}
}

func (s *Subscription) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

const subscriptionBufferSize = 64

// Store is a thread-safe label-to-snapshot table with change
// notifications.
type Store struct {
	mu          sync.RWMutex
	snapshots   map[string]Snapshot
	subscribers map[*Subscription]struct{}
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		snapshots:   make(map[string]Snapshot),
		subscribers: make(map[*Subscription]struct{}),
	}
}

// Set records a launch outcome and notifies subscribers. It returns the
// stamped snapshot.
func (s *Store) Set(update Update) Snapshot {
	snapshot := Snapshot{
		Label:       update.Label,
		State:       update.State,
		PID:         update.PID,
		Detail:      update.Detail,
		Err:         update.Err,
		LastUpdated: time.Now(),
	}

	s.mu.Lock()
	s.snapshots[update.Label] = snapshot
	subs := make([]*Subscription, 0, len(s.subscribers))
	for sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		if sub.isClosed() {
			s.Unsubscribe(sub)
			continue
		}
		select {
		case sub.Channel <- snapshot:
		default:
			// Subscriber is not draining; drop rather than stall a
			// launch path.
		}
	}

	return snapshot
}

// Get returns the snapshot for label, if one was ever recorded.
func (s *Store) Get(label string) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot, ok := s.snapshots[label]
	return snapshot, ok
}

// All returns a copy of every recorded snapshot, keyed by label.
func (s *Store) All() map[string]Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]Snapshot, len(s.snapshots))
	for label, snapshot := range s.snapshots {
		result[label] = snapshot
	}
	return result
}

// Subscribe registers for every future snapshot write.
func (s *Store) Subscribe() *Subscription {
	sub := &Subscription{
		Channel: make(chan Snapshot, subscriptionBufferSize),
	}
	s.mu.Lock()
	s.subscribers[sub] = struct{}{}
	s.mu.Unlock()
	return sub
}

// Unsubscribe removes and closes a subscription.
func (s *Store) Unsubscribe(sub *Subscription) {
	s.mu.Lock()
	_, ok := s.subscribers[sub]
	delete(s.subscribers, sub)
	s.mu.Unlock()
	if ok {
		sub.close()
	}
}
