package handlers

import (
	"encoding/json"
	"testing"

	"trends-app-api/api/dto/responses"

	"github.com/danielgtaylor/huma/v2/humatest"
)

func TestPromptHandler_GetPrompt(t *testing.T) {
	handler := NewPromptHandler()
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	for _, name := range []string{"analysis_prompt", "forecast_prompt"} {
		resp := api.Get("/prompts/" + name)

		if resp.Code != 200 {
			t.Fatalf("GET /prompts/%s status = %d, want 200", name, resp.Code)
		}

		var body responses.PromptResponse
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if body.Name != name {
			t.Errorf("Name = %s, want %s", body.Name, name)
		}

		if body.Prompt == "" {
			t.Errorf("Prompt for %s is empty", name)
		}
	}
}

func TestPromptHandler_GetPrompt_Unknown(t *testing.T) {
	handler := NewPromptHandler()
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/prompts/unknown_prompt")

	if resp.Code != 404 {
		t.Errorf("Expected status 404 for unknown prompt, got %d", resp.Code)
	}
}

func TestHealthHandler_GetHealth(t *testing.T) {
	handler := NewHealthHandler("1.0.0")
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/health")

	if resp.Code != 200 {
		t.Fatalf("Expected status 200, got %d", resp.Code)
	}

	var body responses.HealthResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if body.Status != "ok" {
		t.Errorf("Status = %s, want ok", body.Status)
	}

	if body.Version != "1.0.0" {
		t.Errorf("Version = %s, want 1.0.0", body.Version)
	}
}
