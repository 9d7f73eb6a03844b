package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/LucasManfrin/Orcamentos/internal/money"
	"github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	quotesvc "github.com/LucasManfrin/Orcamentos/internal/service/quote"
)

// Default monthly targets shown until configurable goals ship.
const (
	defaultQuoteTarget   = 15
	defaultRevenueTarget = 1200
)

// StatsOutput for GET /dashboard/stats
type StatsOutput struct {
	Body Stats
}

// GoalsOutput for GET /dashboard/goals
type GoalsOutput struct {
	Body Goals
}

// GoalsUpdateInput for PUT /dashboard/goals
type GoalsUpdateInput struct {
	Body struct {
		QuoteTarget   int     `json:"quoteTarget"   minimum:"1" doc:"Monthly quote target"`
		RevenueTarget float64 `json:"revenueTarget" minimum:"0" doc:"Monthly revenue target in reais"`
	}
}

// ExportInput for POST /dashboard/export
type ExportInput struct {
	Body struct {
		Format string `json:"format" enum:"xlsx,csv" default:"xlsx" doc:"Export file format"`
	}
}

// Register registers dashboard endpoints.
func Register(api huma.API, svc quotesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-stats",
		Method:      http.MethodGet,
		Path:        "/dashboard/stats",
		Summary:     "Dashboard metrics",
		Description: "Aggregates the authenticated user's quotes into dashboard metrics.",
		Tags:        []string{"Dashboard"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
		user := auth.UserFromContext(ctx)

		quotes, err := svc.List(ctx, user.UID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		s := quotesvc.ComputeStats(quotes, time.Now().UTC())
		return &StatsOutput{Body: toHTTPStats(s)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "dashboard-goals",
		Method:      http.MethodGet,
		Path:        "/dashboard/goals",
		Summary:     "Monthly goals",
		Description: "Returns the default monthly targets with the user's current progress.",
		Tags:        []string{"Dashboard"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *struct{}) (*GoalsOutput, error) {
		user := auth.UserFromContext(ctx)

		quotes, err := svc.List(ctx, user.UID)
		if err != nil {
			return nil, huma.Error500InternalServerError("internal error")
		}

		s := quotesvc.ComputeStats(quotes, time.Now().UTC())
		return &GoalsOutput{
			Body: Goals{
				QuoteTarget:     defaultQuoteTarget,
				QuoteProgress:   s.MonthlyQuotes,
				RevenueTarget:   defaultRevenueTarget,
				RevenueProgress: s.MonthlyRevenue,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "dashboard-goals-update",
		Method:      http.MethodPut,
		Path:        "/dashboard/goals",
		Summary:     "Update monthly goals",
		Tags:        []string{"Dashboard"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *GoalsUpdateInput) (*struct{}, error) {
		return nil, huma.Error501NotImplemented("custom goals are not available yet")
	})

	huma.Register(api, huma.Operation{
		OperationID: "dashboard-export",
		Method:      http.MethodPost,
		Path:        "/dashboard/export",
		Summary:     "Export quotes to a spreadsheet",
		Tags:        []string{"Dashboard"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, _ *ExportInput) (*struct{}, error) {
		return nil, huma.Error501NotImplemented("spreadsheet export is not available yet")
	})
}

func toHTTPStats(s quotesvc.Stats) Stats {
	return Stats{
		TotalQuotes:             s.TotalQuotes,
		MonthlyQuotes:           s.MonthlyQuotes,
		PendingQuotes:           s.PendingQuotes,
		ResponseRate:            s.ResponseRate,
		ConversionRate:          s.ConversionRate,
		TotalRevenue:            s.TotalRevenue,
		TotalRevenueFormatted:   money.Format(s.TotalRevenue),
		MonthlyRevenue:          s.MonthlyRevenue,
		MonthlyRevenueFormatted: money.Format(s.MonthlyRevenue),
		AvgQuoteValue:           s.AvgQuoteValue,
		AvgQuoteValueFormatted:  money.Format(s.AvgQuoteValue),
	}
}
