package client

import (
	"context"
	"errors"
	"sync"
)

// Status is the session state machine:
// loading -> {authenticated, unauthenticated};
// authenticated -> unauthenticated (logout, terminal refresh failure,
// or an external store clear); unauthenticated -> loading (login attempt).
type Status string

const (
	StatusLoading         Status = "loading"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// ErrMissingCredentials is returned by Login before any network call when
// email or password is empty.
var ErrMissingCredentials = errors.New("email and password are required")

// Session is the manager's observable state.
type Session struct {
	User        User
	AccessToken string
	Status      Status
}

// Manager owns the client-side session: it persists it, validates it on
// startup, refreshes it through the Coordinator and reconciles external
// store changes so two contexts sharing one store cannot disagree about
// being signed in.
type Manager struct {
	api   *API
	store SessionStore
	coord *Coordinator

	mu      sync.Mutex
	session Session
	subs    map[int]func(Session)
	nextSub int

	stopWatch func()
}

func NewManager(api *API, store SessionStore) *Manager {
	m := &Manager{
		api:     api,
		store:   store,
		session: Session{Status: StatusLoading},
		subs:    map[int]func(Session){},
	}
	m.coord = NewCoordinator(api, store, m.teardown)

	ch, cancel := store.Watch()
	m.stopWatch = cancel
	go m.watchLoop(ch)

	return m
}

// NewTransport returns a RoundTripper wired to this session: it attaches
// the current access token and coordinates refresh-and-retry on 401.
func (m *Manager) NewTransport() *Transport {
	return &Transport{
		Coordinator: m.coord,
		Token:       m.AccessToken,
	}
}

// Session returns a snapshot of the current session.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// AccessToken returns the current access token, or "" when signed out.
// The persisted store is authoritative: the Coordinator writes rotated
// tokens there first.
func (m *Manager) AccessToken() string {
	if persisted, ok := m.store.Load(); ok {
		return persisted.Token
	}
	return ""
}

// Subscribe registers a callback invoked on every status transition and
// returns an unsubscribe func. The callback runs synchronously with the
// transition; keep it short.
func (m *Manager) Subscribe(fn func(Session)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Close stops the watch loop. The session state is left as-is.
func (m *Manager) Close() {
	if m.stopWatch != nil {
		m.stopWatch()
	}
}

// Initialize resolves the startup state: a complete persisted pair is
// verified against the profile endpoint; anything less is unauthenticated
// without a network call.
func (m *Manager) Initialize(ctx context.Context) {
	persisted, ok := m.store.Load()
	if !ok || !persisted.complete() {
		m.setSession(Session{Status: StatusUnauthenticated})
		return
	}

	user, err := m.api.Profile(ctx, persisted.Token)
	if err != nil {
		// Any failure — network, 401, malformed — clears the stale pair.
		m.store.Clear()
		m.setSession(Session{Status: StatusUnauthenticated})
		return
	}

	m.setSession(Session{User: user, AccessToken: persisted.Token, Status: StatusAuthenticated})
}

// Login authenticates and persists the session. Validation failures are
// local and never reach the network.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	m.setSession(Session{Status: StatusLoading})

	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.setSession(Session{Status: StatusUnauthenticated})
		return err
	}

	m.store.Save(PersistedSession{Token: res.Token, User: res.User})
	m.setSession(Session{User: res.User, AccessToken: res.Token, Status: StatusAuthenticated})
	return nil
}

// Logout signs out. The server call is best-effort: logout always succeeds
// locally even when the network is down.
func (m *Manager) Logout(ctx context.Context) {
	_ = m.api.Logout(ctx)
	m.store.Clear()
	m.setSession(Session{Status: StatusUnauthenticated})
}

// RefreshUser re-validates the profile with the current token. A 401 goes
// through one coordinated refresh and a single retry; terminal failure
// clears the session.
func (m *Manager) RefreshUser(ctx context.Context) error {
	token := m.AccessToken()
	if token == "" {
		m.teardown()
		return ErrMissingCredentials
	}

	user, err := m.api.Profile(ctx, token)
	if err == nil {
		m.adopt(user, token)
		return nil
	}
	if !IsUnauthorized(err) {
		return err
	}

	newToken, err := m.coord.Refresh(ctx)
	if err != nil {
		// Coordinator already cleared the store and tore the session down.
		return err
	}

	user, err = m.api.Profile(ctx, newToken)
	if err != nil {
		m.store.Clear()
		m.teardown()
		return err
	}

	m.adopt(user, newToken)
	return nil
}

func (m *Manager) adopt(user User, token string) {
	m.store.Save(PersistedSession{Token: token, User: user})
	m.setSession(Session{User: user, AccessToken: token, Status: StatusAuthenticated})
}

func (m *Manager) teardown() {
	m.setSession(Session{Status: StatusUnauthenticated})
}

// watchLoop reconciles external store changes: a session that disappeared
// while we believed we were signed in signs us out; one that appeared while
// we were not is adopted. This is what keeps one tab from staying "signed
// in" after another tab logged out.
func (m *Manager) watchLoop(ch <-chan struct{}) {
	for range ch {
		persisted, ok := m.store.Load()

		m.mu.Lock()
		current := m.session
		m.mu.Unlock()

		switch {
		case (!ok || !persisted.complete()) && current.Status == StatusAuthenticated:
			m.setSession(Session{Status: StatusUnauthenticated})
		case ok && persisted.complete() && current.Status != StatusAuthenticated:
			m.setSession(Session{
				User:        persisted.User,
				AccessToken: persisted.Token,
				Status:      StatusAuthenticated,
			})
		}
	}
}

func (m *Manager) setSession(s Session) {
	m.mu.Lock()
	changed := m.session.Status != s.Status ||
		m.session.AccessToken != s.AccessToken ||
		m.session.User != s.User
	m.session = s
	subs := make([]func(Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range subs {
		fn(s)
	}
}
