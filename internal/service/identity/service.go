package identity

import (
	"context"
	"errors"
)

// Service errors
var (
	// ErrInvalidCredentials covers wrong password and unknown e-mail alike
	// so responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailExists indicates the e-mail is already registered.
	ErrEmailExists = errors.New("email already in use")

	// ErrUserDisabled indicates the account has been disabled.
	ErrUserDisabled = errors.New("user disabled")

	// ErrTooManyAttempts indicates sign-in has been throttled.
	ErrTooManyAttempts = errors.New("too many sign-in attempts")

	// ErrWeakPassword indicates the password fails policy requirements.
	ErrWeakPassword = errors.New("password too weak")

	// ErrUpstream indicates an unexpected identity provider failure.
	ErrUpstream = errors.New("identity provider error")
)

// Message returns the user-facing pt-BR message for a sign-in or
// registration failure. Unknown errors get a generic message.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "E-mail ou senha incorretos"
	case errors.Is(err, ErrEmailExists):
		return "Este e-mail já está em uso"
	case errors.Is(err, ErrUserDisabled):
		return "Esta conta foi desativada"
	case errors.Is(err, ErrTooManyAttempts):
		return "Muitas tentativas. Tente novamente mais tarde"
	case errors.Is(err, ErrWeakPassword):
		return "A senha deve ter pelo menos 6 caracteres"
	default:
		return "Erro ao autenticar. Tente novamente"
	}
}

// Session holds the credentials returned after a successful sign-in.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresIn    string
}

// RegisterParams for creating a new account with its profile.
type RegisterParams struct {
	Name       string
	Email      string
	Password   string
	Profession string
	WhatsApp   string
}

// Service defines account lifecycle operations.
type Service interface {
	// Register creates the account and its profile document, then signs
	// the new user in.
	Register(ctx context.Context, params RegisterParams) (*Session, error)

	// Login exchanges e-mail and password for a session.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout revokes all refresh tokens for the user.
	Logout(ctx context.Context, uid string) error
}
