package client

import "sync"

// PersistedSession is the {token, user} pair kept between runs. Both fields
// must be present for a stored session to count as usable.
type PersistedSession struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (p PersistedSession) complete() bool {
	return p.Token != "" && p.User.ID != ""
}

// SessionStore persists the session and broadcasts changes to watchers.
// Several logical owners (browser tabs, worker processes) may share one
// store; writers must assume other watchers observe every change.
type SessionStore interface {
	Load() (PersistedSession, bool)
	Save(PersistedSession)
	Clear()
	// Watch returns a channel that receives a tick after every Save or
	// Clear, plus a cancel func that releases the watcher.
	Watch() (<-chan struct{}, func())
}

// MemoryStore is an in-process SessionStore. It is the reference
// implementation for the change-broadcast contract and the test double for
// persistent backends.
type MemoryStore struct {
	mu       sync.Mutex
	session  PersistedSession
	present  bool
	watchers map[int]chan struct{}
	nextID   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{watchers: map[int]chan struct{}{}}
}

func (s *MemoryStore) Load() (PersistedSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.present
}

func (s *MemoryStore) Save(session PersistedSession) {
	s.mu.Lock()
	s.session = session
	s.present = true
	s.notifyLocked()
	s.mu.Unlock()
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	s.session = PersistedSession{}
	s.present = false
	s.notifyLocked()
	s.mu.Unlock()
}

func (s *MemoryStore) Watch() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan struct{}, 1)
	s.watchers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(ch)
		}
	}
	return ch, cancel
}

// notifyLocked coalesces: a watcher that has not drained the previous tick
// does not get another one, which is fine because watchers re-read the
// store on every tick.
func (s *MemoryStore) notifyLocked() {
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
