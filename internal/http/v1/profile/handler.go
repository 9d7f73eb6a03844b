package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	"github.com/LucasManfrin/Orcamentos/internal/platform/timeutil"
	profilesvc "github.com/LucasManfrin/Orcamentos/internal/service/profile"
)

// Register registers profile endpoints.
func Register(api huma.API, svc profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profile",
		Summary:       "Create professional profile",
		Description:   "Creates the profile for the authenticated user. Normally written during registration; this covers accounts whose profile write failed.",
		Tags:          []string{"Profile"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		profile, err := svc.Create(ctx, user.UID, profilesvc.CreateParams{
			Name:       input.Body.Name,
			Email:      input.Body.Email,
			Profession: input.Body.Profession,
			WhatsApp:   input.Body.WhatsApp,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileCreateOutput{
			Location: "/v1/profile",
			Body:     toHTTPProfile(profile),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get current user's profile",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ProfileGetInput) (*ProfileGetOutput, error) {
		user := auth.UserFromContext(ctx)

		profile, err := svc.Get(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileGetOutput{
			Body: toHTTPProfile(profile),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPatch,
		Path:        "/profile",
		Summary:     "Update current user's profile",
		Description: "Updates fields on the authenticated user's profile. Only provided fields are updated.",
		Tags:        []string{"Profile"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileUpdateOutput, error) {
		user := auth.UserFromContext(ctx)
		if !hasProfileUpdateFields(input) {
			return nil, huma.Error422UnprocessableEntity("at least one field must be provided")
		}

		profile, err := svc.Update(ctx, user.UID, profilesvc.UpdateParams{
			Name:       input.Body.Name,
			Email:      input.Body.Email,
			Profession: input.Body.Profession,
			WhatsApp:   input.Body.WhatsApp,
		})
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileUpdateOutput{
			Body: toHTTPProfile(profile),
		}, nil
	})
}

func hasProfileUpdateFields(input *ProfileUpdateInput) bool {
	return input.Body.Name != nil ||
		input.Body.Email != nil ||
		input.Body.Profession != nil ||
		input.Body.WhatsApp != nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, profilesvc.ErrAlreadyExists):
		return huma.Error409Conflict("profile already exists")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	return Profile{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Profession: p.Profession,
		WhatsApp:   p.WhatsApp,
		CreatedAt:  timeutil.Time{Time: p.CreatedAt},
		UpdatedAt:  timeutil.Time{Time: p.UpdatedAt},
	}
}
