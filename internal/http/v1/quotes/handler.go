package quotes

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/LucasManfrin/Orcamentos/internal/money"
	"github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	"github.com/LucasManfrin/Orcamentos/internal/platform/pagination"
	quotesvc "github.com/LucasManfrin/Orcamentos/internal/service/quote"
)

const cursorType = "quote"

// Register registers quote management endpoints.
func Register(api huma.API, svc quotesvc.Service, baseURL, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-quote",
		Method:        http.MethodPost,
		Path:          "/quotes",
		Summary:       "Create a quote",
		Description:   "Creates a quote from the given service lines. Lines without a name or a positive price are dropped; a quote needs at least one valid line.",
		Tags:          []string{"Quotes"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *QuoteCreateInput) (*QuoteCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		lines := make([]quotesvc.ServiceLine, len(input.Body.Services))
		for i, in := range input.Body.Services {
			price := in.Price
			if in.PriceInput != "" {
				price = money.ParseInput(in.PriceInput)
			}
			lines[i] = quotesvc.ServiceLine{
				Name:        in.Name,
				Description: in.Description,
				Price:       price,
			}
		}

		valid := quotesvc.ValidServices(lines)
		if len(valid) == 0 {
			return nil, huma.Error422UnprocessableEntity("at least one service line needs a name and a price")
		}

		q, err := svc.Create(ctx, user.UID, valid)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &QuoteCreateOutput{
			Location: prefix + "/quotes/" + q.ID,
			Body:     toHTTPQuote(q, baseURL),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-quotes",
		Method:      http.MethodGet,
		Path:        "/quotes",
		Summary:     "List quotes",
		Description: "Returns the authenticated user's quotes, newest first, filtered by search text and status. Use the cursor from the Link header to navigate between pages.",
		Tags:        []string{"Quotes"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *QuotesListInput) (*QuotesListOutput, error) {
		user := auth.UserFromContext(ctx)

		cursor, err := pagination.DecodeCursor(input.Cursor)
		if err != nil {
			return nil, huma.Error400BadRequest("invalid cursor format")
		}
		if cursor.Type != "" && cursor.Type != cursorType {
			return nil, huma.Error400BadRequest("cursor type mismatch")
		}

		all, err := svc.List(ctx, user.UID)
		if err != nil {
			return nil, mapServiceError(err)
		}

		status := input.Status
		if status == "all" {
			status = ""
		}
		filtered := quotesvc.Filter(all, input.Search, quotesvc.Status(status))

		query := url.Values{}
		if input.Search != "" {
			query.Set("search", input.Search)
		}
		if input.Status != "" {
			query.Set("status", input.Status)
		}

		result := pagination.Paginate(
			filtered,
			cursor,
			input.DefaultLimit(),
			cursorType,
			func(q quotesvc.Quote) string { return q.ID },
			prefix+"/quotes",
			query,
		)

		page := make([]Quote, len(result.Items))
		for i := range result.Items {
			page[i] = toHTTPQuote(&result.Items[i], baseURL)
		}

		return &QuotesListOutput{
			Link: result.LinkHeader,
			Body: ListData{
				Quotes: page,
				Total:  result.Total,
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-quote",
		Method:      http.MethodGet,
		Path:        "/quotes/{id}",
		Summary:     "Get a quote",
		Tags:        []string{"Quotes"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *QuoteGetInput) (*QuoteGetOutput, error) {
		user := auth.UserFromContext(ctx)

		q, err := svc.GetOwned(ctx, user.UID, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &QuoteGetOutput{Body: toHTTPQuote(q, baseURL)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-quote-status",
		Method:      http.MethodPatch,
		Path:        "/quotes/{id}/status",
		Summary:     "Update a quote's status",
		Tags:        []string{"Quotes"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *QuoteStatusInput) (*QuoteStatusOutput, error) {
		user := auth.UserFromContext(ctx)

		q, err := svc.UpdateStatus(ctx, user.UID, input.ID, quotesvc.Status(input.Body.Status))
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &QuoteStatusOutput{Body: toHTTPQuote(q, baseURL)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-quote",
		Method:        http.MethodDelete,
		Path:          "/quotes/{id}",
		Summary:       "Delete a quote",
		Tags:          []string{"Quotes"},
		DefaultStatus: http.StatusNoContent,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *QuoteDeleteInput) (*struct{}, error) {
		user := auth.UserFromContext(ctx)

		if err := svc.Delete(ctx, user.UID, input.ID); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, quotesvc.ErrNotFound):
		return huma.Error404NotFound("quote not found")
	case errors.Is(err, quotesvc.ErrInvalidStatus):
		return huma.Error422UnprocessableEntity("invalid status")
	case errors.Is(err, quotesvc.ErrNoValidServices):
		return huma.Error422UnprocessableEntity("at least one service line needs a name and a price")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
