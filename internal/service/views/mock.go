package views

import (
	"context"
	"sync"
)

// MockGuard implements Guard in memory for unit tests.
type MockGuard struct {
	mu   sync.Mutex
	seen map[string]bool

	// Error, when set, is returned by FirstView.
	Error error
}

// NewMockGuard creates a new in-memory guard.
func NewMockGuard() *MockGuard {
	return &MockGuard{seen: make(map[string]bool)}
}

func (m *MockGuard) FirstView(ctx context.Context, sessionID, quoteID string) (bool, error) {
	if m.Error != nil {
		return false, m.Error
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := guardKey(sessionID, quoteID)
	if m.seen[key] {
		return false, nil
	}
	m.seen[key] = true
	return true, nil
}

// Compile-time interface check
var _ Guard = (*MockGuard)(nil)
