package state

import (
	"sync"

	"sunlight-vm-backend/internal/domain"
)

// Store is the state container owned by one authenticated session. It is
// hydrated from the remote lists at login and discarded at logout; nothing
// in it survives the session.
type Store struct {
	SessionID string
	UserID    string

	Units         Collection[domain.Unit]
	Bookings      Collection[domain.Booking]
	Expenses      Collection[domain.Expense]
	Subscriptions Collection[domain.Subscription]
	SessionLogs   Collection[domain.SessionLog]
}

func NewStore(sessionID, userID string) *Store {
	return &Store{SessionID: sessionID, UserID: userID}
}

// Manager tracks the live session stores by session id.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

func (m *Manager) Put(st *Store) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stores[st.SessionID] = st
}

func (m *Manager) Get(sessionID string) (*Store, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.stores[sessionID]
	return st, ok
}

// Remove drops a session's store, releasing its working set.
func (m *Manager) Remove(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.stores)
}
