// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"github.com/jinzhu/copier"

	"trends-app-api/api/dto/requests"
	"trends-app-api/api/dto/responses"
	"trends-app-api/core/domain"
)

// ToRedditAnalysisResponse converts a domain RedditAnalysis to its DTO
func ToRedditAnalysisResponse(analysis *domain.RedditAnalysis) *responses.RedditAnalysisResponse {
	if analysis == nil {
		return nil
	}

	response := &responses.RedditAnalysisResponse{}
	_ = copier.Copy(response, analysis)

	if response.TopTechnologies == nil {
		response.TopTechnologies = []responses.TechnologyScoreResponse{}
	}
	if response.Sentiment == nil {
		response.Sentiment = map[string]responses.SentimentScoreResponse{}
	}

	return response
}

// ToFreelanceAnalysisResponse converts a domain FreelanceAnalysis to its DTO
func ToFreelanceAnalysisResponse(analysis *domain.FreelanceAnalysis) *responses.FreelanceAnalysisResponse {
	if analysis == nil {
		return nil
	}

	response := &responses.FreelanceAnalysisResponse{}
	_ = copier.Copy(response, analysis)

	if response.TopTechnologies == nil {
		response.TopTechnologies = []responses.TechnologyScoreResponse{}
	}

	return response
}

// ToTrendsAnalysisResponse converts a domain TrendsAnalysis to its DTO
func ToTrendsAnalysisResponse(analysis *domain.TrendsAnalysis) *responses.TrendsAnalysisResponse {
	if analysis == nil {
		return nil
	}

	response := &responses.TrendsAnalysisResponse{}
	_ = copier.Copy(response, analysis)

	if response.TopTechnologies == nil {
		response.TopTechnologies = []responses.TechnologyScoreResponse{}
	}
	if response.Sources == nil {
		response.Sources = []responses.SourceResultResponse{}
	}
	for i := range response.Sources {
		if response.Sources[i].TopTechnologies == nil {
			response.Sources[i].TopTechnologies = []responses.TechnologyScoreResponse{}
		}
	}

	return response
}

// ToTechnologyHistoryResponse converts a domain TechnologyHistory to its DTO
func ToTechnologyHistoryResponse(history domain.TechnologyHistory) *responses.TechnologyHistoryResponse {
	response := &responses.TechnologyHistoryResponse{}
	_ = copier.Copy(response, &history)

	if response.History == nil {
		response.History = []responses.TrendPointResponse{}
	}

	return response
}

// ToHistoryComparisonResponse converts a domain HistoryComparison to its DTO
func ToHistoryComparisonResponse(comparison *domain.HistoryComparison) *responses.HistoryComparisonResponse {
	if comparison == nil {
		return nil
	}

	response := &responses.HistoryComparisonResponse{}
	_ = copier.Copy(response, comparison)

	if response.Series == nil {
		response.Series = []responses.TrendPointResponse{}
	}
	if response.Anomalies == nil {
		response.Anomalies = []int{}
	}

	return response
}

// ToTrendsAnalysis converts an inline aggregation payload to its domain model
func ToTrendsAnalysis(payload *requests.TrendsAnalysisPayload) *domain.TrendsAnalysis {
	if payload == nil {
		return nil
	}

	analysis := &domain.TrendsAnalysis{}
	_ = copier.Copy(analysis, payload)
	return analysis
}

// ToReportResponse converts a domain ReportResult to its DTO
func ToReportResponse(result *domain.ReportResult) *responses.ReportResponse {
	if result == nil {
		return nil
	}

	return &responses.ReportResponse{
		Path:   result.Path,
		Format: result.Format,
		Status: string(result.Status),
	}
}
