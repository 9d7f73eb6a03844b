package quotes

import "github.com/LucasManfrin/Orcamentos/internal/platform/pagination"

// ServiceLineInput is one line of a quote being created. Lines may be
// partially filled; blank or unpriced lines are dropped, mirroring how
// drafts are assembled one field at a time.
type ServiceLineInput struct {
	Name        string  `json:"name,omitempty"        maxLength:"200"  doc:"Service name"                         example:"Instalação elétrica"`
	Description string  `json:"description,omitempty" maxLength:"1000" doc:"Service description"                  example:"Troca de fiação da cozinha"`
	Price       float64 `json:"price,omitempty"       minimum:"0"      doc:"Price in reais"                       example:"250"`
	PriceInput  string  `json:"priceInput,omitempty"  maxLength:"30"   doc:"Free-form price text, e.g. 1.234,56. Takes precedence over price." example:"250,00"`
}

// QuoteCreateInput for POST /quotes
type QuoteCreateInput struct {
	Body struct {
		Services []ServiceLineInput `json:"services" minItems:"1" maxItems:"50" required:"true" doc:"Service lines"`
	}
}

// QuotesListInput for GET /quotes
type QuotesListInput struct {
	pagination.Params
	Search string `query:"search" doc:"Case-insensitive match on service names" example:"pintura"`
	Status string `query:"status" doc:"Filter by lifecycle status; all or omission matches every status" enum:"all,draft,sent,viewed,responded,accepted"`
}

// QuoteGetInput for GET /quotes/{id}
type QuoteGetInput struct {
	ID string `path:"id" maxLength:"128" doc:"Quote identifier"`
}

// QuoteStatusInput for PATCH /quotes/{id}/status
type QuoteStatusInput struct {
	ID   string `path:"id" maxLength:"128" doc:"Quote identifier"`
	Body struct {
		Status string `json:"status" required:"true" enum:"draft,sent,viewed,responded,accepted" doc:"New lifecycle status"`
	}
}

// QuoteDeleteInput for DELETE /quotes/{id}
type QuoteDeleteInput struct {
	ID string `path:"id" maxLength:"128" doc:"Quote identifier"`
}
