package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	platformauth "github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	identitysvc "github.com/LucasManfrin/Orcamentos/internal/service/identity"
)

// Register registers authentication endpoints.
func Register(api huma.API, svc identitysvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-account",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Register a new account",
		Description:   "Creates an account with its professional profile and signs the new user in.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
		session, err := svc.Register(ctx, identitysvc.RegisterParams{
			Name:       input.Body.Name,
			Email:      input.Body.Email,
			Password:   input.Body.Password,
			Profession: input.Body.Profession,
			WhatsApp:   input.Body.WhatsApp,
		})
		if err != nil {
			return nil, mapIdentityError(err)
		}
		return &RegisterOutput{Body: toHTTPSession(session)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Sign in",
		Description: "Exchanges e-mail and password for a session.",
		Tags:        []string{"Auth"},
	}, func(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
		session, err := svc.Login(ctx, input.Body.Email, input.Body.Password)
		if err != nil {
			return nil, mapIdentityError(err)
		}
		return &LoginOutput{Body: toHTTPSession(session)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "logout",
		Method:        http.MethodPost,
		Path:          "/auth/logout",
		Summary:       "Sign out everywhere",
		Description:   "Revokes all refresh tokens for the authenticated user.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *LogoutInput) (*struct{}, error) {
		user := platformauth.UserFromContext(ctx)

		if err := svc.Logout(ctx, user.UID); err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}
		return nil, nil
	})
}

// mapIdentityError translates service failures into responses carrying
// the user-facing pt-BR message.
func mapIdentityError(err error) error {
	msg := identitysvc.Message(err)
	switch {
	case errors.Is(err, identitysvc.ErrInvalidCredentials):
		return huma.Error401Unauthorized(msg)
	case errors.Is(err, identitysvc.ErrUserDisabled):
		return huma.Error403Forbidden(msg)
	case errors.Is(err, identitysvc.ErrTooManyAttempts):
		return huma.Error429TooManyRequests(msg)
	case errors.Is(err, identitysvc.ErrEmailExists):
		return huma.Error409Conflict(msg)
	case errors.Is(err, identitysvc.ErrWeakPassword):
		return huma.Error422UnprocessableEntity(msg)
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPSession(s *identitysvc.Session) Session {
	return Session{
		UID:          s.UID,
		Email:        s.Email,
		IDToken:      s.IDToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
	}
}
