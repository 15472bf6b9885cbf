// ABOUTME: Prompt handlers for the Huma API
// ABOUTME: Serves the canned analysis and forecast prompt texts as static resources

package handlers

import (
	"context"
	"net/http"

	"trends-app-api/api/dto/responses"
	"trends-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

const analysisPrompt = "You are an expert analyst specializing in software engineering and tech market trends. " +
	"Analyze the provided multi-source signals (Reddit mentions + sentiment, pricing and demand from freelance markets, " +
	"and search popularity), highlight the top technologies, summarize drivers, and point to credible signals. " +
	"Keep it concise and actionable."

const forecastPrompt = "You are a forecasting assistant. Based on past trend trajectories and current momentum, " +
	"estimate the short-term (1-3 months) and medium-term (6-12 months) outlook for each technology. " +
	"State assumptions and confidence levels."

var prompts = map[string]string{
	"analysis_prompt": analysisPrompt,
	"forecast_prompt": forecastPrompt,
}

// PromptHandler serves named prompt texts
type PromptHandler struct{}

// NewPromptHandler creates a new prompt handler
func NewPromptHandler() *PromptHandler {
	return &PromptHandler{}
}

// RegisterRoutes registers all prompt-related routes
func (h *PromptHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getPrompt",
		Method:      http.MethodGet,
		Path:        "/prompts/{name}",
		Summary:     "Get a named analysis prompt",
		Description: "Returns the canned prompt text for downstream analysis tooling",
		Tags:        []string{"Prompts"},
	}, h.GetPrompt)
}

// GetPromptInput defines the input for the GetPrompt operation
type GetPromptInput struct {
	Name string `path:"name" doc:"Prompt identifier (analysis_prompt or forecast_prompt)"`
}

// GetPromptOutput defines the output for the GetPrompt operation
type GetPromptOutput struct {
	Body responses.PromptResponse
}

// GetPrompt handles the GET /prompts/{name} endpoint
func (h *PromptHandler) GetPrompt(ctx context.Context, input *GetPromptInput) (*GetPromptOutput, error) {
	prompt, exists := prompts[input.Name]
	if !exists {
		return nil, toHumaError(&errors.NotFoundError{Resource: "prompt", ID: input.Name})
	}

	return &GetPromptOutput{
		Body: responses.PromptResponse{
			Name:   input.Name,
			Prompt: prompt,
		},
	}, nil
}
