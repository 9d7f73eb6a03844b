package public

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	profilesvc "github.com/LucasManfrin/Orcamentos/internal/service/profile"
	quotesvc "github.com/LucasManfrin/Orcamentos/internal/service/quote"
	"github.com/LucasManfrin/Orcamentos/internal/service/views"
)

// fallbackName covers quotes whose owner has no profile document.
const fallbackName = "Profissional"

// QuoteGetInput for GET /public/quotes/{id}
type QuoteGetInput struct {
	ID string `path:"id" maxLength:"128" doc:"Quote identifier"`
}

// QuoteGetOutput for GET /public/quotes/{id}
type QuoteGetOutput struct {
	Body SharedQuote
}

// ViewInput for POST /public/quotes/{id}/views
type ViewInput struct {
	ID   string `path:"id" maxLength:"128" doc:"Quote identifier"`
	Body struct {
		SessionID string `json:"sessionId" minLength:"1" maxLength:"128" required:"true" doc:"Visitor session identifier"`
	}
}

// ViewOutput for POST /public/quotes/{id}/views
type ViewOutput struct {
	Body struct {
		Counted bool `json:"counted" doc:"Whether this view was counted. Repeat views from the same session are not."`
	}
}

// Register registers the unauthenticated share endpoints.
func Register(api huma.API, quotes quotesvc.Service, profiles profilesvc.Service, viewSvc *views.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "get-shared-quote",
		Method:      http.MethodGet,
		Path:        "/public/quotes/{id}",
		Summary:     "View a shared quote",
		Description: "Returns the client-facing view of a quote. No authentication required; the link itself is the credential.",
		Tags:        []string{"Public"},
	}, func(ctx context.Context, input *QuoteGetInput) (*QuoteGetOutput, error) {
		q, err := quotes.Get(ctx, input.ID)
		if err != nil {
			if errors.Is(err, quotesvc.ErrNotFound) {
				return nil, huma.Error404NotFound("quote not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}

		pro := Professional{Name: fallbackName}
		var whatsapp, email string
		if p, err := profiles.Get(ctx, q.UserID); err == nil {
			pro.Name = p.Name
			pro.Profession = p.Profession
			whatsapp = p.WhatsApp
			email = p.Email
		}

		out := toSharedQuote(q, pro)
		out.SessionID = uuid.NewString()

		if q.IsExpired(time.Now().UTC()) {
			out.Expired = true
			out.RenewalLink = quotesvc.WhatsAppLink(whatsapp, quotesvc.RenewalMessage(pro.Name))
			return &QuoteGetOutput{Body: out}, nil
		}

		msg := quotesvc.ContactMessage(pro.Name, q)
		contact := ContactLinks{
			WhatsApp: quotesvc.WhatsAppLink(whatsapp, msg),
			Email:    quotesvc.MailtoLink(email, "Sobre o seu orçamento", msg),
		}
		if contact.WhatsApp != "" || contact.Email != "" {
			out.Contact = &contact
		}

		return &QuoteGetOutput{Body: out}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "record-quote-view",
		Method:      http.MethodPost,
		Path:        "/public/quotes/{id}/views",
		Summary:     "Record a view of a shared quote",
		Description: "Counts one view per visitor session. The first counted view marks a sent quote as viewed.",
		Tags:        []string{"Public"},
	}, func(ctx context.Context, input *ViewInput) (*ViewOutput, error) {
		counted, err := viewSvc.RecordView(ctx, input.Body.SessionID, input.ID)
		if err != nil {
			if errors.Is(err, quotesvc.ErrNotFound) {
				return nil, huma.Error404NotFound("quote not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}

		out := &ViewOutput{}
		out.Body.Counted = counted
		return out, nil
	})
}
