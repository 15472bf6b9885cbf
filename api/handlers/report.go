// ABOUTME: Report handlers for the Huma API
// ABOUTME: Runs a trend search and renders the aggregation as a report file

package handlers

import (
	"context"
	"net/http"

	"trends-app-api/api/dto/mappers"
	"trends-app-api/api/dto/requests"
	"trends-app-api/api/dto/responses"
	"trends-app-api/core/domain"
	"trends-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// TrendSearcher is the slice of the analysis service the report handler needs
type TrendSearcher interface {
	SearchTrends(ctx context.Context, keywords []string, timeframe, region string) (*domain.TrendsAnalysis, error)
}

// ReportService interface defines the methods needed from the report service
type ReportService interface {
	Generate(ctx context.Context, analysis *domain.TrendsAnalysis, format string, includeCharts bool) (*domain.ReportResult, error)
}

// ReportHandler handles report generation HTTP requests
type ReportHandler struct {
	trends  TrendSearcher
	reports ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(trends TrendSearcher, reports ReportService) *ReportHandler {
	return &ReportHandler{
		trends:  trends,
		reports: reports,
	}
}

// RegisterRoutes registers all report-related routes
func (h *ReportHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generateReport",
		Method:      http.MethodPost,
		Path:        "/reports",
		Summary:     "Generate a trend report",
		Description: "Renders a supplied aggregation, or runs a trend search for the given keywords, in the requested format",
		Tags:        []string{"Reports"},
	}, h.GenerateReport)
}

// GenerateReportInput defines the input for the GenerateReport operation
type GenerateReportInput struct {
	Body requests.ReportRequest `json:"body"`
}

// GenerateReportOutput defines the output for the GenerateReport operation
type GenerateReportOutput struct {
	Body responses.ReportResponse
}

// GenerateReport handles the POST /reports endpoint. An inline data
// payload is rendered as-is; otherwise the report runs a fresh trend
// search over the given keywords.
func (h *ReportHandler) GenerateReport(ctx context.Context, input *GenerateReportInput) (*GenerateReportOutput, error) {
	input.Body.ApplyDefaults()

	analysis := mappers.ToTrendsAnalysis(input.Body.Data)
	if analysis == nil {
		if len(input.Body.Keywords) == 0 {
			return nil, toHumaError(&errors.ValidationError{
				Field:   "keywords",
				Message: "required unless an inline data payload is provided",
			})
		}

		var err error
		analysis, err = h.trends.SearchTrends(ctx, input.Body.Keywords, input.Body.Timeframe, input.Body.Region)
		if err != nil {
			return nil, toHumaError(err)
		}
	}

	result, err := h.reports.Generate(ctx, analysis, input.Body.Format, *input.Body.IncludeCharts)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GenerateReportOutput{Body: *mappers.ToReportResponse(result)}, nil
}
