package identity

import (
	"context"
	"errors"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
	"github.com/LucasManfrin/Orcamentos/internal/service/profile"
)

// Gateway implements Service on top of the Admin SDK for account
// management and the REST client for password sign-in.
type Gateway struct {
	auth     *fbauth.Client
	signIn   *Client
	profiles profile.Service
}

// NewGateway creates a new identity gateway.
func NewGateway(auth *fbauth.Client, signIn *Client, profiles profile.Service) *Gateway {
	return &Gateway{
		auth:     auth,
		signIn:   signIn,
		profiles: profiles,
	}
}

// Register creates the auth account, writes the profile document and
// signs the new user in. If the profile write fails the account is kept;
// the profile can be completed later through the profile endpoint.
func (g *Gateway) Register(ctx context.Context, params RegisterParams) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))

	userParams := (&fbauth.UserToCreate{}).
		Email(email).
		Password(params.Password).
		DisplayName(strings.TrimSpace(params.Name))

	record, err := g.auth.CreateUser(ctx, userParams)
	if err != nil {
		applog.LogAuditEvent(ctx, "register", "anonymous", "account", email, "failure",
			map[string]any{"error": categorizeCreateError(err)})
		return nil, mapCreateError(err)
	}

	if _, err := g.profiles.Create(ctx, record.UID, profile.CreateParams{
		Name:       params.Name,
		Email:      email,
		Profession: params.Profession,
		WhatsApp:   params.WhatsApp,
	}); err != nil {
		applog.LogError(ctx, "profile creation failed after account creation", err,
			zap.String("uid", record.UID))
	}

	applog.LogAuditEvent(ctx, "register", record.UID, "account", record.UID, "success", nil)

	return g.signIn.SignInWithPassword(ctx, email, params.Password)
}

// Login exchanges e-mail and password for a session.
func (g *Gateway) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	session, err := g.signIn.SignInWithPassword(ctx, email, password)
	if err != nil {
		applog.LogAuditEvent(ctx, "login", "anonymous", "session", email, "failure",
			map[string]any{"error": categorizeSignInError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "login", session.UID, "session", session.UID, "success", nil)
	return session, nil
}

// Logout revokes all refresh tokens for the user. Existing ID tokens
// stay valid until expiry but fail revocation checks immediately.
func (g *Gateway) Logout(ctx context.Context, uid string) error {
	if err := g.auth.RevokeRefreshTokens(ctx, uid); err != nil {
		applog.LogAuditEvent(ctx, "logout", uid, "session", uid, "failure",
			map[string]any{"error": "internal_error"})
		return err
	}
	applog.LogAuditEvent(ctx, "logout", uid, "session", uid, "success", nil)
	return nil
}

func mapCreateError(err error) error {
	if fbauth.IsEmailAlreadyExists(err) {
		return ErrEmailExists
	}
	return err
}

func categorizeCreateError(err error) string {
	if fbauth.IsEmailAlreadyExists(err) {
		return "email_exists"
	}
	return "internal_error"
}

func categorizeSignInError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrUserDisabled):
		return "user_disabled"
	case errors.Is(err, ErrTooManyAttempts):
		return "too_many_attempts"
	default:
		return "internal_error"
	}
}

// Compile-time interface check
var _ Service = (*Gateway)(nil)
