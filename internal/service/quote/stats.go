package quote

import (
	"math"
	"strings"
	"time"
)

// Stats aggregates a professional's quote activity for the dashboard.
type Stats struct {
	TotalQuotes    int
	MonthlyQuotes  int
	PendingQuotes  int
	ResponseRate   float64
	ConversionRate float64
	TotalRevenue   float64
	MonthlyRevenue float64
	AvgQuoteValue  float64
}

// ComputeStats derives dashboard metrics from a professional's quotes.
//
// Rates are rounded whole percentages over all quotes. Revenue sums the
// total of every quote regardless of status. Pending covers quotes
// awaiting a decision (sent or viewed). Monthly figures use the calendar
// month of now.
func ComputeStats(quotes []Quote, now time.Time) Stats {
	var s Stats
	s.TotalQuotes = len(quotes)
	if s.TotalQuotes == 0 {
		return s
	}

	year, month, _ := now.Date()

	var responded, accepted int

	for _, q := range quotes {
		s.TotalRevenue += q.Total

		qy, qm, _ := q.CreatedAt.Date()
		if qy == year && qm == month {
			s.MonthlyQuotes++
			s.MonthlyRevenue += q.Total
		}

		switch q.Status {
		case StatusSent, StatusViewed:
			s.PendingQuotes++
		case StatusResponded:
			responded++
		case StatusAccepted:
			accepted++
		}
	}

	total := float64(s.TotalQuotes)
	s.ResponseRate = math.Round(float64(responded+accepted) / total * 100)
	s.ConversionRate = math.Round(float64(accepted) / total * 100)
	s.AvgQuoteValue = s.TotalRevenue / total

	return s
}

// Filter narrows quotes by a case-insensitive search over service names
// and by lifecycle status. Empty arguments match everything.
func Filter(quotes []Quote, search string, status Status) []Quote {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if status != "" && q.Status != status {
			continue
		}
		if search != "" && !matchesSearch(q, search) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func matchesSearch(q Quote, search string) bool {
	for _, line := range q.Services {
		if strings.Contains(strings.ToLower(line.Name), search) {
			return true
		}
	}
	return false
}
