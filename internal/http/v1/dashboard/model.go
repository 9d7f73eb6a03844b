package dashboard

// Stats aggregates a professional's quote activity.
type Stats struct {
	TotalQuotes             int     `json:"totalQuotes"             doc:"All quotes ever created"`
	MonthlyQuotes           int     `json:"monthlyQuotes"           doc:"Quotes created this calendar month"`
	PendingQuotes           int     `json:"pendingQuotes"           doc:"Quotes awaiting a decision (sent or viewed)"`
	ResponseRate            float64 `json:"responseRate"            doc:"Percentage of quotes that got any response" example:"50"`
	ConversionRate          float64 `json:"conversionRate"          doc:"Percentage of quotes accepted"              example:"25"`
	TotalRevenue            float64 `json:"totalRevenue"            doc:"Sum of all quote totals in reais"`
	TotalRevenueFormatted   string  `json:"totalRevenueFormatted"   doc:"Total revenue formatted in pt-BR"   example:"R$ 1.234,56"`
	MonthlyRevenue          float64 `json:"monthlyRevenue"          doc:"Quote totals this calendar month"`
	MonthlyRevenueFormatted string  `json:"monthlyRevenueFormatted" doc:"Monthly revenue formatted in pt-BR" example:"R$ 300,00"`
	AvgQuoteValue           float64 `json:"avgQuoteValue"           doc:"Average quote total in reais"`
	AvgQuoteValueFormatted  string  `json:"avgQuoteValueFormatted"  doc:"Average quote value formatted in pt-BR"`
}

// Goals tracks monthly targets against current progress.
type Goals struct {
	QuoteTarget     int     `json:"quoteTarget"     doc:"Monthly quote target"            example:"15"`
	QuoteProgress   int     `json:"quoteProgress"   doc:"Quotes created this month"`
	RevenueTarget   float64 `json:"revenueTarget"   doc:"Monthly revenue target in reais" example:"1200"`
	RevenueProgress float64 `json:"revenueProgress" doc:"Quote totals this calendar month in reais"`
}
