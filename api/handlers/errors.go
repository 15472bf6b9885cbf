// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"trends-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	// Check for specific error types
	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsUpstream(err) {
		// Upstream errors normally stop at the adapter boundary; one
		// escaping this far still gets a meaningful status code.
		if upErr, ok := err.(*errors.UpstreamError); ok {
			switch {
			case upErr.StatusCode >= 500:
				return huma.Error503ServiceUnavailable("Upstream source error", err)
			case upErr.StatusCode == 429:
				return huma.Error429TooManyRequests("Rate limited by upstream source")
			case upErr.StatusCode >= 400:
				return huma.Error400BadRequest("Upstream source request error", err)
			default:
				return huma.Error500InternalServerError("Unexpected upstream response", err)
			}
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
