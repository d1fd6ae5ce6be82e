package cart

import (
	"sync"
	"time"
)

const (
	cartIdleTTL   = time.Hour
	cartSweepTick = 10 * time.Minute
)

type cartEntry struct {
	store    *Store
	lastSeen time.Time
}

// Manager owns the live carts, keyed by cart token. Carts are in-memory
// only; a cart untouched for cartIdleTTL is swept away.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
}

func NewManager() *Manager {
	m := &Manager{carts: make(map[string]*cartEntry)}
	go m.sweepLoop()
	return m
}

func (m *Manager) sweepLoop() {
	ticker := time.NewTicker(cartSweepTick)
	defer ticker.Stop()
	for range ticker.C {
		m.dropIdle(time.Now().Add(-cartIdleTTL))
	}
}

func (m *Manager) dropIdle(cutoff time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for token, e := range m.carts {
		if e.lastSeen.Before(cutoff) {
			delete(m.carts, token)
		}
	}
}

// Get returns the cart for the token, creating it on first use.
func (m *Manager) Get(token string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.carts[token]
	if !ok {
		e = &cartEntry{store: NewStore()}
		m.carts[token] = e
	}
	e.lastSeen = time.Now()
	return e.store
}

// Drop forgets the cart for the token.
func (m *Manager) Drop(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, token)
}
