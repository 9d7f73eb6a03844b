package quote

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
)

const quotesCollection = "quotes"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidStatus):
		return "invalid_status"
	default:
		return "internal_error"
	}
}

// firestoreServiceLine maps one service line to its document shape.
type firestoreServiceLine struct {
	ID          string  `firestore:"id"`
	Name        string  `firestore:"name"`
	Description string  `firestore:"description"`
	Price       float64 `firestore:"price"`
}

// firestoreResponse maps a client response to its document shape.
type firestoreResponse struct {
	ID            string    `firestore:"id"`
	ClientName    string    `firestore:"clientName"`
	ClientContact string    `firestore:"clientContact"`
	Message       string    `firestore:"message"`
	Channel       string    `firestore:"type"`
	CreatedAt     time.Time `firestore:"createdAt"`
}

// firestoreQuote maps to the Firestore document structure.
type firestoreQuote struct {
	UserID     string                 `firestore:"userId"`
	Services   []firestoreServiceLine `firestore:"services"`
	Total      float64                `firestore:"total"`
	Status     string                 `firestore:"status"`
	CreatedAt  time.Time              `firestore:"createdAt"`
	ValidUntil time.Time              `firestore:"validUntil"`
	ViewCount  int                    `firestore:"viewCount"`
	LastViewed *time.Time             `firestore:"lastViewed"`
	Responses  []firestoreResponse    `firestore:"responses"`
}

func (fq firestoreQuote) toQuote(id string) *Quote {
	services := make([]ServiceLine, len(fq.Services))
	for i, line := range fq.Services {
		services[i] = ServiceLine(line)
	}

	var responses []Response
	for _, r := range fq.Responses {
		responses = append(responses, Response{
			ID:            r.ID,
			QuoteID:       id,
			ClientName:    r.ClientName,
			ClientContact: r.ClientContact,
			Message:       r.Message,
			Channel:       ResponseChannel(r.Channel),
			CreatedAt:     r.CreatedAt,
		})
	}

	return &Quote{
		ID:         id,
		UserID:     fq.UserID,
		Services:   services,
		Total:      fq.Total,
		Status:     Status(fq.Status),
		CreatedAt:  fq.CreatedAt,
		ValidUntil: fq.ValidUntil,
		ViewCount:  fq.ViewCount,
		LastViewed: fq.LastViewed,
		Responses:  responses,
	}
}

// FirestoreStore implements Service using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create stores a new quote. Total and validity are derived here so the
// stored document never disagrees with its lines.
func (s *FirestoreStore) Create(ctx context.Context, userID string, services []ServiceLine) (*Quote, error) {
	now := time.Now().UTC()

	lines := make([]firestoreServiceLine, len(services))
	for i, line := range services {
		if line.ID == "" {
			line.ID = uuid.NewString()
		}
		lines[i] = firestoreServiceLine(line)
	}

	fq := firestoreQuote{
		UserID:     userID,
		Services:   lines,
		Total:      TotalOf(services),
		Status:     string(StatusDraft),
		CreatedAt:  now,
		ValidUntil: now.AddDate(0, 0, validityDays),
	}

	docRef := s.client.Collection(quotesCollection).NewDoc()
	if _, err := docRef.Set(ctx, fq); err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "quote", docRef.ID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", userID, "quote", docRef.ID, "success", nil)

	return fq.toQuote(docRef.ID), nil
}

// List returns all quotes owned by userID, newest first.
func (s *FirestoreStore) List(ctx context.Context, userID string) ([]Quote, error) {
	iter := s.client.Collection(quotesCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var quotes []Quote
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var fq firestoreQuote
		if err := doc.DataTo(&fq); err != nil {
			return nil, err
		}
		quotes = append(quotes, *fq.toQuote(doc.Ref.ID))
	}
	return quotes, nil
}

// Get fetches a quote by ID without an ownership check.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*Quote, error) {
	doc, err := s.client.Collection(quotesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fq firestoreQuote
	if err := doc.DataTo(&fq); err != nil {
		return nil, err
	}
	return fq.toQuote(doc.Ref.ID), nil
}

// GetOwned fetches a quote and enforces ownership.
func (s *FirestoreStore) GetOwned(ctx context.Context, userID, id string) (*Quote, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.UserID != userID {
		return nil, ErrNotFound
	}
	return q, nil
}

// UpdateStatus sets the lifecycle status of an owned quote.
func (s *FirestoreStore) UpdateStatus(ctx context.Context, userID, id string, newStatus Status) (*Quote, error) {
	if !ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	docRef := s.client.Collection(quotesCollection).Doc(id)

	var result *Quote

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fq firestoreQuote
		if err := doc.DataTo(&fq); err != nil {
			return err
		}
		if fq.UserID != userID {
			return ErrNotFound
		}

		fq.Status = string(newStatus)
		if err := tx.Set(docRef, fq); err != nil {
			return err
		}

		result = fq.toQuote(id)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update_status", userID, "quote", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update_status", userID, "quote", id, "success",
		map[string]any{"status": string(newStatus)})

	return result, nil
}

// Delete removes an owned quote.
func (s *FirestoreStore) Delete(ctx context.Context, userID, id string) error {
	docRef := s.client.Collection(quotesCollection).Doc(id)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fq firestoreQuote
		if err := doc.DataTo(&fq); err != nil {
			return err
		}
		if fq.UserID != userID {
			return ErrNotFound
		}

		return tx.Delete(docRef)
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "delete", userID, "quote", id, "failure",
			map[string]any{"error": categorizeError(err)})
		return err
	}

	applog.LogAuditEvent(ctx, "delete", userID, "quote", id, "success", nil)

	return nil
}

// IncrementViews bumps the view counter and stamps the view time using
// server-side operators, so concurrent viewers never lose counts.
func (s *FirestoreStore) IncrementViews(ctx context.Context, id string) error {
	docRef := s.client.Collection(quotesCollection).Doc(id)
	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "viewCount", Value: firestore.Increment(1)},
		{Path: "lastViewed", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// MarkViewed promotes a sent quote to viewed inside a transaction so a
// concurrent owner-side status change is never clobbered.
func (s *FirestoreStore) MarkViewed(ctx context.Context, id string) error {
	docRef := s.client.Collection(quotesCollection).Doc(id)

	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fq firestoreQuote
		if err := doc.DataTo(&fq); err != nil {
			return err
		}
		if Status(fq.Status) != StatusSent {
			return nil
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "status", Value: string(StatusViewed)},
		})
	})
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
