package quote

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockQuoteService implements Service for unit tests.
type MockQuoteService struct {
	mu     sync.RWMutex
	quotes map[string]*Quote

	// Error, when set, is returned by every operation.
	Error error
}

// NewMockQuoteService creates a new mock service.
func NewMockQuoteService() *MockQuoteService {
	return &MockQuoteService{
		quotes: make(map[string]*Quote),
	}
}

// Seed inserts a quote directly, bypassing validation.
func (m *MockQuoteService) Seed(q Quote) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := q
	m.quotes[q.ID] = &cp
}

func (m *MockQuoteService) Create(ctx context.Context, userID string, services []ServiceLine) (*Quote, error) {
	if m.Error != nil {
		return nil, m.Error
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	q := &Quote{
		ID:         uuid.NewString(),
		UserID:     userID,
		Services:   services,
		Total:      TotalOf(services),
		Status:     StatusDraft,
		CreatedAt:  now,
		ValidUntil: now.AddDate(0, 0, validityDays),
	}
	m.quotes[q.ID] = q

	cp := *q
	return &cp, nil
}

func (m *MockQuoteService) List(ctx context.Context, userID string) ([]Quote, error) {
	if m.Error != nil {
		return nil, m.Error
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Quote
	for _, q := range m.quotes {
		if q.UserID == userID {
			out = append(out, *q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MockQuoteService) Get(ctx context.Context, id string) (*Quote, error) {
	if m.Error != nil {
		return nil, m.Error
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	q, exists := m.quotes[id]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (m *MockQuoteService) GetOwned(ctx context.Context, userID, id string) (*Quote, error) {
	q, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.UserID != userID {
		return nil, ErrNotFound
	}
	return q, nil
}

func (m *MockQuoteService) UpdateStatus(ctx context.Context, userID, id string, status Status) (*Quote, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	q, exists := m.quotes[id]
	if !exists || q.UserID != userID {
		return nil, ErrNotFound
	}
	q.Status = status
	cp := *q
	return &cp, nil
}

func (m *MockQuoteService) Delete(ctx context.Context, userID, id string) error {
	if m.Error != nil {
		return m.Error
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	q, exists := m.quotes[id]
	if !exists || q.UserID != userID {
		return ErrNotFound
	}
	delete(m.quotes, id)
	return nil
}

func (m *MockQuoteService) IncrementViews(ctx context.Context, id string) error {
	if m.Error != nil {
		return m.Error
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	q, exists := m.quotes[id]
	if !exists {
		return ErrNotFound
	}
	q.ViewCount++
	now := time.Now().UTC()
	q.LastViewed = &now
	return nil
}

func (m *MockQuoteService) MarkViewed(ctx context.Context, id string) error {
	if m.Error != nil {
		return m.Error
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	q, exists := m.quotes[id]
	if !exists {
		return ErrNotFound
	}
	if q.Status == StatusSent {
		q.Status = StatusViewed
	}
	return nil
}

// Clear removes all quotes (useful for test cleanup).
func (m *MockQuoteService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes = make(map[string]*Quote)
}

// Compile-time interface check
var _ Service = (*MockQuoteService)(nil)
