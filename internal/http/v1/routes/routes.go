package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	authhandler "github.com/LucasManfrin/Orcamentos/internal/http/v1/auth"
	"github.com/LucasManfrin/Orcamentos/internal/http/v1/dashboard"
	"github.com/LucasManfrin/Orcamentos/internal/http/v1/health"
	"github.com/LucasManfrin/Orcamentos/internal/http/v1/profile"
	"github.com/LucasManfrin/Orcamentos/internal/http/v1/public"
	"github.com/LucasManfrin/Orcamentos/internal/http/v1/quotes"
	"github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	identitysvc "github.com/LucasManfrin/Orcamentos/internal/service/identity"
	profilesvc "github.com/LucasManfrin/Orcamentos/internal/service/profile"
	quotesvc "github.com/LucasManfrin/Orcamentos/internal/service/quote"
	"github.com/LucasManfrin/Orcamentos/internal/service/views"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	verifier auth.Verifier,
	identityService identitysvc.Service,
	profileService profilesvc.Service,
	quoteService quotesvc.Service,
	viewService *views.Service,
	baseURL string,
) {
	prefix := apiPrefix(api)

	// Apply auth middleware for protected endpoints
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	health.Register(api)
	authhandler.Register(api, identityService)
	profile.Register(api, profileService)
	quotes.Register(api, quoteService, baseURL, prefix)
	dashboard.Register(api, quoteService)
	public.Register(api, quoteService, profileService, viewService)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
