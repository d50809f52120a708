package page

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/mosaicnetworks/fairshow/src/progress"
)

// DefaultMaxSessions is the store capacity used when none is given.
const DefaultMaxSessions = 1000

// RunnerFactory builds the VDF progress runner of a new session.
type RunnerFactory func(sessionID string) *progress.Runner

// Store keeps sessions in an in-memory LRU cache. When the cache is full the
// least recently used session is evicted; nothing is persisted, so a restart
// forgets every session.
type Store struct {
	cache     *lru.Cache
	newRunner RunnerFactory
}

// NewStore creates a Store holding at most size sessions. A non-positive size
// falls back to DefaultMaxSessions. newRunner may be nil, in which case
// sessions have no progress runner.
func NewStore(size int, newRunner RunnerFactory) *Store {
	if size <= 0 {
		size = DefaultMaxSessions
	}

	// lru.New only fails on a non-positive size
	cache, _ := lru.New(size)

	return &Store{
		cache:     cache,
		newRunner: newRunner,
	}
}

// Create registers a fresh session under a new random ID.
func (st *Store) Create() *Session {
	s := NewSession(uuid.New().String())
	if st.newRunner != nil {
		s.runner = st.newRunner(s.ID)
	}
	st.cache.Add(s.ID, s)
	return s
}

// Get returns the session with the given ID, if any, and marks it as recently
// used.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := st.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// Delete forgets a session, which resets it on the next request.
func (st *Store) Delete(id string) {
	st.cache.Remove(id)
}

// Len ...
func (st *Store) Len() int {
	return st.cache.Len()
}
