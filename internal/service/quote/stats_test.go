package quote

import (
	"testing"
	"time"
)

func quoteWith(status Status, total float64, createdAt time.Time) Quote {
	return Quote{
		ID:         "q-" + string(status),
		UserID:     "user-1",
		Services:   []ServiceLine{{ID: "s1", Name: "Serviço", Price: total}},
		Total:      total,
		Status:     status,
		CreatedAt:  createdAt,
		ValidUntil: createdAt.AddDate(0, 0, 30),
	}
}

func TestComputeStatsRates(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	quotes := []Quote{
		quoteWith(StatusAccepted, 100, now),
		quoteWith(StatusAccepted, 200, now),
		quoteWith(StatusSent, 50, now),
		quoteWith(StatusViewed, 75, now),
	}

	s := ComputeStats(quotes, now)

	if s.ConversionRate != 50 {
		t.Errorf("ConversionRate = %v, want 50", s.ConversionRate)
	}
	if s.ResponseRate != 50 {
		t.Errorf("ResponseRate = %v, want 50", s.ResponseRate)
	}
	if s.PendingQuotes != 2 {
		t.Errorf("PendingQuotes = %d, want 2", s.PendingQuotes)
	}
	if s.TotalRevenue != 425 {
		t.Errorf("TotalRevenue = %v, want 425", s.TotalRevenue)
	}
	if s.AvgQuoteValue != 106.25 {
		t.Errorf("AvgQuoteValue = %v, want 106.25", s.AvgQuoteValue)
	}
}

func TestComputeStatsRevenueCountsAllStatuses(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	quotes := []Quote{
		quoteWith(StatusAccepted, 100, now),
		quoteWith(StatusSent, 50, now),
	}

	s := ComputeStats(quotes, now)

	if s.TotalRevenue != 150 {
		t.Errorf("TotalRevenue = %v, want 150", s.TotalRevenue)
	}
	if s.MonthlyRevenue != 150 {
		t.Errorf("MonthlyRevenue = %v, want 150", s.MonthlyRevenue)
	}
	if s.AvgQuoteValue != s.TotalRevenue/float64(s.TotalQuotes) {
		t.Errorf("AvgQuoteValue = %v, want TotalRevenue/TotalQuotes = %v",
			s.AvgQuoteValue, s.TotalRevenue/float64(s.TotalQuotes))
	}
}

func TestComputeStatsRatesRounded(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	quotes := []Quote{
		quoteWith(StatusAccepted, 100, now),
		quoteWith(StatusSent, 50, now),
		quoteWith(StatusDraft, 75, now),
	}

	s := ComputeStats(quotes, now)

	// 1 of 3 is 33.33...; rates come back as rounded whole percentages.
	if s.ConversionRate != 33 {
		t.Errorf("ConversionRate = %v, want 33", s.ConversionRate)
	}
	if s.ResponseRate != 33 {
		t.Errorf("ResponseRate = %v, want 33", s.ResponseRate)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil, time.Now())
	if s != (Stats{}) {
		t.Errorf("ComputeStats(nil) = %+v, want zero value", s)
	}
}

func TestComputeStatsMonthlyWindow(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC)

	quotes := []Quote{
		quoteWith(StatusAccepted, 100, thisMonth),
		quoteWith(StatusAccepted, 500, lastMonth),
		quoteWith(StatusSent, 50, thisMonth),
	}

	s := ComputeStats(quotes, now)

	if s.MonthlyQuotes != 2 {
		t.Errorf("MonthlyQuotes = %d, want 2", s.MonthlyQuotes)
	}
	if s.MonthlyRevenue != 150 {
		t.Errorf("MonthlyRevenue = %v, want 150", s.MonthlyRevenue)
	}
	if s.TotalRevenue != 650 {
		t.Errorf("TotalRevenue = %v, want 650", s.TotalRevenue)
	}
}

func TestQuoteIsExpired(t *testing.T) {
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	q := quoteWith(StatusSent, 100, created)

	if q.IsExpired(created.AddDate(0, 0, 30)) {
		t.Error("quote expired exactly at validUntil, want still valid")
	}
	if !q.IsExpired(created.AddDate(0, 0, 31)) {
		t.Error("quote still valid one day past validUntil")
	}
}

func TestFilter(t *testing.T) {
	now := time.Now().UTC()
	quotes := []Quote{
		{ID: "1", Status: StatusSent, Services: []ServiceLine{{Name: "Pintura externa", Price: 100}}, CreatedAt: now},
		{ID: "2", Status: StatusAccepted, Services: []ServiceLine{{Name: "Jardinagem", Price: 80}}, CreatedAt: now},
		{ID: "3", Status: StatusSent, Services: []ServiceLine{{Name: "Pintura interna", Price: 120}}, CreatedAt: now},
	}

	t.Run("by search", func(t *testing.T) {
		got := Filter(quotes, "pintura", "")
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
	})

	t.Run("by status", func(t *testing.T) {
		got := Filter(quotes, "", StatusAccepted)
		if len(got) != 1 || got[0].ID != "2" {
			t.Fatalf("got %+v, want quote 2", got)
		}
	})

	t.Run("combined", func(t *testing.T) {
		got := Filter(quotes, "PINTURA", StatusSent)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
	})

	t.Run("no filters", func(t *testing.T) {
		if got := Filter(quotes, "", ""); len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
	})
}
