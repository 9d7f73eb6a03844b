package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Output for GET /health.
type Output struct {
	Body struct {
		Status string `json:"status" doc:"Service health" example:"ok"`
	}
}

// Register registers the health endpoint. It stays unauthenticated so
// load balancers can probe it.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		out := &Output{}
		out.Body.Status = "ok"
		return out, nil
	})
}
