package client

import (
	"context"
	"sync"
)

type refreshResult struct {
	token string
	err   error
}

// Coordinator serializes credential refreshes: when many requests observe an
// expired access token at once, exactly one refresh round-trip happens and
// every caller receives the same rotated token.
type Coordinator struct {
	api   *API
	store SessionStore

	// onFailure runs after a terminal refresh failure, once the persisted
	// session has been cleared. The session manager hooks its teardown here.
	onFailure func()

	mu         sync.Mutex
	refreshing bool
	waiters    []chan refreshResult
}

func NewCoordinator(api *API, store SessionStore, onFailure func()) *Coordinator {
	return &Coordinator{
		api:       api,
		store:     store,
		onFailure: onFailure,
	}
}

// Refresh returns a fresh access token. If a refresh is already in flight
// the call waits for its result instead of issuing a second one.
func (c *Coordinator) Refresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.refreshing {
		ch := make(chan refreshResult, 1)
		c.waiters = append(c.waiters, ch)
		c.mu.Unlock()

		select {
		case res := <-ch:
			return res.token, res.err
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	c.refreshing = true
	c.mu.Unlock()

	token, user, err := c.api.Refresh(ctx)

	c.mu.Lock()
	c.refreshing = false
	waiters := c.waiters
	c.waiters = nil
	c.mu.Unlock()

	if err != nil {
		for _, ch := range waiters {
			ch <- refreshResult{err: err}
		}
		c.store.Clear()
		if c.onFailure != nil {
			c.onFailure()
		}
		return "", err
	}

	c.store.Save(PersistedSession{Token: token, User: user})
	for _, ch := range waiters {
		ch <- refreshResult{token: token}
	}
	return token, nil
}
