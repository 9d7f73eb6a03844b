package quote

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound        = errors.New("quote not found")
	ErrNoValidServices = errors.New("quote has no valid service lines")
	ErrInvalidStatus   = errors.New("invalid quote status")
)

// Status tracks a quote through its lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusViewed    Status = "viewed"
	StatusResponded Status = "responded"
	StatusAccepted  Status = "accepted"
)

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusViewed, StatusResponded, StatusAccepted:
		return true
	}
	return false
}

// ServiceLine is one priced item on a quote.
type ServiceLine struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

// ResponseChannel identifies how a client responded.
type ResponseChannel string

const (
	ChannelWhatsApp ResponseChannel = "whatsapp"
	ChannelEmail    ResponseChannel = "email"
	ChannelChat     ResponseChannel = "chat"
)

// Response records a client reaction to a shared quote.
type Response struct {
	ID            string
	QuoteID       string
	ClientName    string
	ClientContact string
	Message       string
	Channel       ResponseChannel
	CreatedAt     time.Time
}

// Quote is a priced proposal a professional shares with a client.
type Quote struct {
	ID         string
	UserID     string
	Services   []ServiceLine
	Total      float64
	Status     Status
	CreatedAt  time.Time
	ValidUntil time.Time
	ViewCount  int
	LastViewed *time.Time
	Responses  []Response
}

// IsExpired reports whether the quote's validity window has passed.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.ValidUntil)
}

// validityDays is how long a quote stays open after creation.
const validityDays = 30

// Service defines quote operations.
type Service interface {
	// Create stores a new quote for the given owner. Lines must already
	// be validated; the store computes total and validity.
	Create(ctx context.Context, userID string, services []ServiceLine) (*Quote, error)

	// List returns all quotes owned by userID, newest first.
	List(ctx context.Context, userID string) ([]Quote, error)

	// GetOwned fetches a quote and enforces ownership. A quote owned by
	// someone else reads as ErrNotFound so existence never leaks.
	GetOwned(ctx context.Context, userID, id string) (*Quote, error)

	// Get fetches a quote without an ownership check, for the public
	// share page.
	Get(ctx context.Context, id string) (*Quote, error)

	// UpdateStatus sets the lifecycle status of an owned quote.
	UpdateStatus(ctx context.Context, userID, id string, status Status) (*Quote, error)

	// Delete removes an owned quote.
	Delete(ctx context.Context, userID, id string) error

	// IncrementViews bumps the view counter and stamps the view time.
	IncrementViews(ctx context.Context, id string) error

	// MarkViewed promotes a sent quote to viewed. Quotes in any other
	// status are left untouched.
	MarkViewed(ctx context.Context, id string) error
}
