package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com"

// Client performs password sign-in against the Identity Toolkit REST API.
// The Admin SDK has no password verification, so sign-in goes through the
// same endpoint browser clients use, authenticated with the web API key.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Identity Toolkit client.
func NewClient(httpClient *http.Client, apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword exchanges credentials for a session.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding sign-in request: %w", err)
	}

	u := c.baseURL + "/v1/accounts:signInWithPassword?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling identity provider: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var er errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&er); decodeErr != nil {
			return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
		}
		return nil, mapSignInError(ctx, er.Error.Message)
	}

	var sr signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding sign-in response: %w", err)
	}

	return &Session{
		UID:          sr.LocalID,
		Email:        sr.Email,
		IDToken:      sr.IDToken,
		RefreshToken: sr.RefreshToken,
		ExpiresIn:    sr.ExpiresIn,
	}, nil
}

// mapSignInError converts Identity Toolkit error codes to service errors.
// Codes may carry a suffix, e.g. "TOO_MANY_ATTEMPTS_TRY_LATER : ...".
func mapSignInError(ctx context.Context, code string) error {
	base, _, _ := strings.Cut(code, " ")
	switch base {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return ErrInvalidCredentials
	case "USER_DISABLED":
		return ErrUserDisabled
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return ErrTooManyAttempts
	case "EMAIL_EXISTS":
		return ErrEmailExists
	case "WEAK_PASSWORD":
		return ErrWeakPassword
	default:
		applog.LogWarn(ctx, "unexpected identity provider error",
			zap.String("code", base))
		return fmt.Errorf("%w: %s", ErrUpstream, base)
	}
}
