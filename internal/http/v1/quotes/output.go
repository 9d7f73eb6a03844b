package quotes

// QuoteCreateOutput for POST /quotes (201 Created)
type QuoteCreateOutput struct {
	Location string `header:"Location" doc:"URL of created quote"`
	Body     Quote
}

// ListData is the response body containing paginated quotes.
type ListData struct {
	Quotes []Quote `json:"quotes" doc:"Page of quotes"`
	Total  int     `json:"total"  doc:"Total count of quotes matching the filter" example:"12"`
}

// QuotesListOutput is the response wrapper with pagination Link header.
type QuotesListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData
}

// QuoteGetOutput for GET /quotes/{id}
type QuoteGetOutput struct {
	Body Quote
}

// QuoteStatusOutput for PATCH /quotes/{id}/status
type QuoteStatusOutput struct {
	Body Quote
}
