package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// mockAccount holds a registered test account.
type mockAccount struct {
	UID      string
	Password string
}

// MockIdentityService implements Service for unit tests.
type MockIdentityService struct {
	mu       sync.Mutex
	accounts map[string]mockAccount
	revoked  map[string]bool

	// Error, when set, is returned by every operation.
	Error error
}

// NewMockIdentityService creates a new mock service.
func NewMockIdentityService() *MockIdentityService {
	return &MockIdentityService{
		accounts: make(map[string]mockAccount),
		revoked:  make(map[string]bool),
	}
}

func (m *MockIdentityService) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	if m.Error != nil {
		return nil, m.Error
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(params.Email))
	if _, exists := m.accounts[email]; exists {
		return nil, ErrEmailExists
	}

	uid := uuid.NewString()
	m.accounts[email] = mockAccount{UID: uid, Password: params.Password}

	return &Session{
		UID:          uid,
		Email:        email,
		IDToken:      "id-token-" + uid,
		RefreshToken: "refresh-token-" + uid,
		ExpiresIn:    "3600",
	}, nil
}

func (m *MockIdentityService) Login(ctx context.Context, email, password string) (*Session, error) {
	if m.Error != nil {
		return nil, m.Error
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	acct, exists := m.accounts[email]
	if !exists || acct.Password != password {
		return nil, ErrInvalidCredentials
	}

	return &Session{
		UID:          acct.UID,
		Email:        email,
		IDToken:      "id-token-" + acct.UID,
		RefreshToken: "refresh-token-" + acct.UID,
		ExpiresIn:    "3600",
	}, nil
}

func (m *MockIdentityService) Logout(ctx context.Context, uid string) error {
	if m.Error != nil {
		return m.Error
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[uid] = true
	return nil
}

// Revoked reports whether Logout was called for the given uid.
func (m *MockIdentityService) Revoked(uid string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[uid]
}

// Compile-time interface check
var _ Service = (*MockIdentityService)(nil)
