package profile

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockProfileService implements Service for unit tests.
type MockProfileService struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewMockProfileService creates a new mock service.
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{
		profiles: make(map[string]*Profile),
	}
}

func (m *MockProfileService) Create(ctx context.Context, userID string, params CreateParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[userID]; exists {
		return nil, ErrAlreadyExists
	}

	now := time.Now().UTC()
	p := &Profile{
		ID:         userID,
		Name:       strings.TrimSpace(params.Name),
		Email:      strings.ToLower(strings.TrimSpace(params.Email)),
		Profession: strings.TrimSpace(params.Profession),
		WhatsApp:   strings.TrimSpace(params.WhatsApp),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.profiles[userID] = p
	return p, nil
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *MockProfileService) Update(ctx context.Context, userID string, params UpdateParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}

	if params.Name != nil {
		p.Name = strings.TrimSpace(*params.Name)
	}
	if params.Email != nil {
		p.Email = strings.ToLower(strings.TrimSpace(*params.Email))
	}
	if params.Profession != nil {
		p.Profession = strings.TrimSpace(*params.Profession)
	}
	if params.WhatsApp != nil {
		p.WhatsApp = strings.TrimSpace(*params.WhatsApp)
	}
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

// Clear removes all profiles (useful for test cleanup).
func (m *MockProfileService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]*Profile)
}

// Compile-time interface check
var _ Service = (*MockProfileService)(nil)
