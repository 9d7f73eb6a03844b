package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
)

const usersCollection = "users"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestoreProfile maps to the Firestore document structure.
type firestoreProfile struct {
	Name       string    `firestore:"name"`
	Email      string    `firestore:"email"`
	Profession string    `firestore:"profession"`
	WhatsApp   string    `firestore:"whatsapp"`
	CreatedAt  time.Time `firestore:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt"`
}

func (fp firestoreProfile) toProfile(userID string) *Profile {
	return &Profile{
		ID:         userID,
		Name:       fp.Name,
		Email:      fp.Email,
		Profession: fp.Profession,
		WhatsApp:   fp.WhatsApp,
		CreatedAt:  fp.CreatedAt,
		UpdatedAt:  fp.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create creates a new profile using a transaction to prevent duplicates.
func (s *FirestoreStore) Create(ctx context.Context, userID string, params CreateParams) (*Profile, error) {
	docRef := s.client.Collection(usersCollection).Doc(userID)
	now := time.Now().UTC()

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyExists
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		fp := firestoreProfile{
			Name:       strings.TrimSpace(params.Name),
			Email:      strings.ToLower(strings.TrimSpace(params.Email)),
			Profession: strings.TrimSpace(params.Profession),
			WhatsApp:   strings.TrimSpace(params.WhatsApp),
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}

		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", userID, "profile", userID, "success", nil)

	return result, nil
}

// Get retrieves a profile by user ID.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*Profile, error) {
	docRef := s.client.Collection(usersCollection).Doc(userID)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}

	return fp.toProfile(userID), nil
}

// Update updates a profile using a transaction for atomicity.
func (s *FirestoreStore) Update(ctx context.Context, userID string, params UpdateParams) (*Profile, error) {
	docRef := s.client.Collection(usersCollection).Doc(userID)

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return err
		}

		if params.Name != nil {
			fp.Name = strings.TrimSpace(*params.Name)
		}
		if params.Email != nil {
			fp.Email = strings.ToLower(strings.TrimSpace(*params.Email))
		}
		if params.Profession != nil {
			fp.Profession = strings.TrimSpace(*params.Profession)
		}
		if params.WhatsApp != nil {
			fp.WhatsApp = strings.TrimSpace(*params.WhatsApp)
		}
		fp.UpdatedAt = time.Now().UTC()

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}

		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update", userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update", userID, "profile", userID, "success", nil)

	return result, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
