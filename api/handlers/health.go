// ABOUTME: Health handler for the Huma API
// ABOUTME: Liveness endpoint for load balancers and uptime checks

package handlers

import (
	"context"
	"net/http"

	"trends-app-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns a liveness payload while the server is up",
		Tags:        []string{"Health"},
	}, h.GetHealth)
}

// GetHealthInput defines the input for the GetHealth operation
type GetHealthInput struct{}

// GetHealthOutput defines the output for the GetHealth operation
type GetHealthOutput struct {
	Body responses.HealthResponse
}

// GetHealth handles the GET /health endpoint
func (h *HealthHandler) GetHealth(ctx context.Context, input *GetHealthInput) (*GetHealthOutput, error) {
	return &GetHealthOutput{
		Body: responses.HealthResponse{
			Status:  "ok",
			Version: h.version,
		},
	}, nil
}
