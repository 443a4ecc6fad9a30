package store

import (
	"slices"
	"sync"
)

// Listener is notified after every dispatch with the new state.
// Listeners run on the dispatching goroutine and must not call Dispatch.
type Listener func(state State, change Change)

// Ticket identifies one fetch issued for a section.
type Ticket struct {
	Section Section
	Seq     uint64
}

// Store is the single owner of the client state. It is created once per process and
// shared by reference; dispatches are applied one at a time in the order they arrive.
type Store struct {
	dispatchMu sync.Mutex

	mu        sync.RWMutex
	state     State
	seq       map[Section]uint64
	listeners []subscription
	nextID    int
}

type subscription struct {
	id       int
	listener Listener
}

func New() *Store {
	return NewWithState(InitialState())
}

func NewWithState(state State) *Store {
	return &Store{
		state: state,
		seq:   make(map[Section]uint64, len(AllSections)),
	}
}

// State returns a snapshot of the current state.
// The slices of a snapshot are shared and must be treated as read-only.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Dispatch(action Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.apply(action)
}

// Subscribe registers listener and returns a function that removes it.
// The returned function waits for a dispatch in progress, so once it returns the
// listener is never called again. It must not be called from a listener.
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, listener: listener})
	return func() {
		s.dispatchMu.Lock()
		defer s.dispatchMu.Unlock()
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Begin issues a new request sequence number for section. Any ticket issued
// earlier for the same section becomes stale.
func (s *Store) Begin(section Section) Ticket {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[section]++
	return Ticket{Section: section, Seq: s.seq[section]}
}

// Current reports whether ticket is the latest issued for its section.
func (s *Store) Current(ticket Ticket) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq[ticket.Section] == ticket.Seq
}

// Commit dispatches actions only if ticket is still the latest issued for its
// section. It reports whether the actions were applied.
func (s *Store) Commit(ticket Ticket, actions ...Action) bool {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	if !s.Current(ticket) {
		return false
	}
	for _, action := range actions {
		s.apply(action)
	}
	return true
}

func (s *Store) apply(action Action) {
	s.mu.Lock()
	next, change := Reduce(s.state, action)
	s.state = next
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.listener(next, change)
	}
}
