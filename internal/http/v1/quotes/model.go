package quotes

import (
	"github.com/LucasManfrin/Orcamentos/internal/money"
	"github.com/LucasManfrin/Orcamentos/internal/platform/timeutil"
	quotesvc "github.com/LucasManfrin/Orcamentos/internal/service/quote"
)

// ServiceLine represents one priced item on a quote response.
type ServiceLine struct {
	ID             string  `json:"id"                    doc:"Line identifier"`
	Name           string  `json:"name"                  doc:"Service name"        example:"Instalação elétrica"`
	Description    string  `json:"description,omitempty" doc:"Service description" example:"Troca de fiação da cozinha"`
	Price          float64 `json:"price"                 doc:"Price in reais"      example:"250"`
	PriceFormatted string  `json:"priceFormatted"        doc:"Price formatted in pt-BR" example:"R$ 250,00"`
}

// ClientResponse records a client reaction to a shared quote.
type ClientResponse struct {
	ID            string        `json:"id"`
	ClientName    string        `json:"clientName,omitempty"`
	ClientContact string        `json:"clientContact"`
	Message       string        `json:"message"`
	Type          string        `json:"type" enum:"whatsapp,email,chat"`
	CreatedAt     timeutil.Time `json:"createdAt"`
}

// Quote represents a quote response.
type Quote struct {
	ID             string           `json:"id"                   doc:"Unique identifier"`
	Services       []ServiceLine    `json:"services"             doc:"Priced service lines"`
	Total          float64          `json:"total"                doc:"Sum of line prices in reais" example:"1234.56"`
	TotalFormatted string           `json:"totalFormatted"       doc:"Total formatted in pt-BR"    example:"R$ 1.234,56"`
	Status         string           `json:"status"               doc:"Lifecycle status"            enum:"draft,sent,viewed,responded,accepted"`
	CreatedAt      timeutil.Time    `json:"createdAt"            doc:"Creation timestamp"`
	ValidUntil     timeutil.Time    `json:"validUntil"           doc:"Last day the quote is valid"`
	ViewCount      int              `json:"viewCount"            doc:"Distinct sessions that viewed the quote"`
	LastViewed     *timeutil.Time   `json:"lastViewed,omitempty" doc:"Most recent view timestamp"`
	PublicLink     string           `json:"publicLink"           doc:"Shareable client-facing URL"`
	Responses      []ClientResponse `json:"responses,omitempty"  doc:"Client responses"`
}

func toHTTPQuote(q *quotesvc.Quote, baseURL string) Quote {
	services := make([]ServiceLine, len(q.Services))
	for i, line := range q.Services {
		services[i] = ServiceLine{
			ID:             line.ID,
			Name:           line.Name,
			Description:    line.Description,
			Price:          line.Price,
			PriceFormatted: money.Format(line.Price),
		}
	}

	var responses []ClientResponse
	for _, r := range q.Responses {
		responses = append(responses, ClientResponse{
			ID:            r.ID,
			ClientName:    r.ClientName,
			ClientContact: r.ClientContact,
			Message:       r.Message,
			Type:          string(r.Channel),
			CreatedAt:     timeutil.Time{Time: r.CreatedAt},
		})
	}

	var lastViewed *timeutil.Time
	if q.LastViewed != nil {
		lastViewed = &timeutil.Time{Time: *q.LastViewed}
	}

	return Quote{
		ID:             q.ID,
		Services:       services,
		Total:          q.Total,
		TotalFormatted: money.Format(q.Total),
		Status:         string(q.Status),
		CreatedAt:      timeutil.Time{Time: q.CreatedAt},
		ValidUntil:     timeutil.Time{Time: q.ValidUntil},
		ViewCount:      q.ViewCount,
		LastViewed:     lastViewed,
		PublicLink:     quotesvc.PublicLink(baseURL, q.ID),
		Responses:      responses,
	}
}
