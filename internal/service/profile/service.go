package profile

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

// Profile represents a professional's stored profile data.
type Profile struct {
	ID         string
	Name       string
	Email      string
	Profession string
	WhatsApp   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateParams for creating a profile.
type CreateParams struct {
	Name       string
	Email      string
	Profession string
	WhatsApp   string
}

// UpdateParams for updating a profile. Nil fields are left unchanged.
type UpdateParams struct {
	Name       *string
	Email      *string
	Profession *string
	WhatsApp   *string
}

// Service defines profile operations.
//
// Implementations must normalize input data:
//   - Email: lowercase and trim whitespace
//   - WhatsApp: trim whitespace
type Service interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Profile, error)
	Get(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, params UpdateParams) (*Profile, error)
}
