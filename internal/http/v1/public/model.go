package public

import (
	"github.com/LucasManfrin/Orcamentos/internal/money"
	"github.com/LucasManfrin/Orcamentos/internal/platform/timeutil"
	quotesvc "github.com/LucasManfrin/Orcamentos/internal/service/quote"
)

// Professional is what a client sees about the quote's author.
type Professional struct {
	Name       string `json:"name"                 doc:"Display name"         example:"Maria Silva"`
	Profession string `json:"profession,omitempty" doc:"Trade or profession"  example:"Eletricista"`
}

// ServiceLine is one priced item on the shared quote.
type ServiceLine struct {
	Name           string `json:"name"                  doc:"Service name"`
	Description    string `json:"description,omitempty" doc:"Service description"`
	PriceFormatted string `json:"priceFormatted"        doc:"Price formatted in pt-BR" example:"R$ 250,00"`
}

// ContactLinks carries prefilled channels for responding to the quote.
type ContactLinks struct {
	WhatsApp string `json:"whatsapp,omitempty" doc:"wa.me deep link with a prefilled message"`
	Email    string `json:"email,omitempty"    doc:"mailto link with a prefilled message"`
}

// SharedQuote is the public view of a quote.
type SharedQuote struct {
	ID             string        `json:"id"`
	Professional   Professional  `json:"professional"`
	Services       []ServiceLine `json:"services"`
	TotalFormatted string        `json:"totalFormatted" doc:"Total formatted in pt-BR" example:"R$ 1.234,56"`
	CreatedAt      timeutil.Time `json:"createdAt"`
	ValidUntil     timeutil.Time `json:"validUntil"`
	Expired        bool          `json:"expired"        doc:"Whether the validity window has passed"`
	Contact        *ContactLinks `json:"contact,omitempty" doc:"Ways to respond. Omitted when the quote has expired."`
	RenewalLink    string        `json:"renewalLink,omitempty" doc:"wa.me link to ask for a fresh quote. Present only when expired."`
	SessionID      string        `json:"sessionId"      doc:"Session identifier for view tracking. Reuse a stored one when available."`
}

func toSharedQuote(q *quotesvc.Quote, pro Professional) SharedQuote {
	services := make([]ServiceLine, len(q.Services))
	for i, line := range q.Services {
		services[i] = ServiceLine{
			Name:           line.Name,
			Description:    line.Description,
			PriceFormatted: money.Format(line.Price),
		}
	}

	return SharedQuote{
		ID:             q.ID,
		Professional:   pro,
		Services:       services,
		TotalFormatted: money.Format(q.Total),
		CreatedAt:      timeutil.Time{Time: q.CreatedAt},
		ValidUntil:     timeutil.Time{Time: q.ValidUntil},
	}
}
