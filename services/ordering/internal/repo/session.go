package repo

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/cart"
)

type sessionCart struct {
	mu    sync.Mutex
	state cart.State
}

// SessionStore keeps one cart per session in memory. The least recently used
// sessions are evicted once capacity is reached.
type SessionStore struct {
	mu    sync.Mutex
	carts *lru.Cache
}

func NewSessionStore(capacity int) (*SessionStore, error) {
	c, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	return &SessionStore{carts: c}, nil
}

func (s *SessionStore) get(id uuid.UUID) *sessionCart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.carts.Get(id); ok {
		return v.(*sessionCart)
	}
	sc := &sessionCart{}
	s.carts.Add(id, sc)
	return sc
}

// Snapshot returns the current state of the session's cart. Unknown sessions
// start empty.
func (s *SessionStore) Snapshot(id uuid.UUID) cart.State {
	sc := s.get(id)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.state
}

// Apply runs one transition on the session's cart and returns the states
// before and after it. Transitions on the same session are serialised.
func (s *SessionStore) Apply(id uuid.UUID, a cart.Action) (before, after cart.State) {
	sc := s.get(id)
	sc.mu.Lock()
	defer sc.mu.Unlock()
	before = sc.state
	sc.state = cart.Reduce(sc.state, a)
	return before, sc.state
}

func (s *SessionStore) Len() int {
	return s.carts.Len()
}
