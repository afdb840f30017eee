// Package cart implements the in-memory cart state store as an explicit
// reducer: pure transitions over immutable CartState snapshots, held by a
// Store that notifies subscribers after each dispatch. Exactly one session
// owns one store.
package cart

import (
	"sync"

	"github.com/webqianduansong/shn-jade-demo-sub001/internal/domain"
)

// Action is a cart state transition request.
type Action interface {
	isAction()
}

// Add merges a quantity into the line item for ProductID, appending a new
// item when absent.
type Add struct {
	ProductID string
	Quantity  int
}

// Remove drops the line item for ProductID.
type Remove struct {
	ProductID string
}

// Clear empties the cart.
type Clear struct{}

func (Add) isAction()    {}
func (Remove) isAction() {}
func (Clear) isAction()  {}

// Reduce applies an action to a state snapshot and returns the next state.
// It is pure: the input state is never mutated.
func Reduce(state domain.CartState, action Action) domain.CartState {
	switch a := action.(type) {
	case Add:
		if a.ProductID == "" || a.Quantity <= 0 {
			return state
		}
		return state.Add(a.ProductID, a.Quantity)
	case Remove:
		return state.Remove(a.ProductID)
	case Clear:
		return state.Clear()
	default:
		return state
	}
}

// Store holds the current cart snapshot and fans out changes to subscribers.
type Store struct {
	mu    sync.Mutex
	state domain.CartState
	subs  map[int]func(domain.CartState)
	next  int
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{
		state: domain.CartState{},
		subs:  make(map[int]func(domain.CartState)),
	}
}

// Dispatch runs the action through Reduce, installs the new snapshot, and
// notifies subscribers. It returns the resulting state.
func (s *Store) Dispatch(action Action) domain.CartState {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := s.snapshotLocked()
	subs := make([]func(domain.CartState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return snapshot
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to run after every dispatch and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(domain.CartState)) func() {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotLocked() domain.CartState {
	out := make(domain.CartState, len(s.state))
	copy(out, s.state)
	return out
}
