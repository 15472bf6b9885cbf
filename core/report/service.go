// ABOUTME: Report generation service rendering analysis results to files
// ABOUTME: HTML is fully supported; pdf and excel report their absence

package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"trends-app-api/core/domain"
	"trends-app-api/core/errors"
	"trends-app-api/core/interfaces"
)

const (
	FormatHTML  = "html"
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// Service renders trend analyses into report files.
type Service struct {
	logger    interfaces.Logger
	outputDir string
	tmpl      *template.Template
}

// NewService creates a report service writing into outputDir.
func NewService(logger interfaces.Logger, outputDir string) *Service {
	return &Service{
		logger:    logger,
		outputDir: outputDir,
		tmpl: template.Must(template.New("report").Funcs(template.FuncMap{
			"inc": func(i int) int { return i + 1 },
			"barWidth": func(mentions, max float64) int {
				return int(mentions / max * 300)
			},
		}).Parse(reportTemplate)),
	}
}

type reportData struct {
	Analysis      *domain.TrendsAnalysis
	IncludeCharts bool
	MaxMentions   float64
}

// Generate renders the analysis in the requested format and returns the
// written file's location. Unsupported formats are reported rather than
// failed so callers can fall back to html.
func (s *Service) Generate(ctx context.Context, analysis *domain.TrendsAnalysis, format string, includeCharts bool) (*domain.ReportResult, error) {
	switch format {
	case FormatHTML:
		return s.generateHTML(analysis, includeCharts)
	case FormatPDF, FormatExcel:
		s.logInfo("Report format not implemented", map[string]interface{}{
			"format": format,
		})
		return &domain.ReportResult{
			Format: format,
			Status: domain.StatusNotImplemented,
		}, nil
	default:
		return nil, &errors.ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, expected html, pdf or excel", format),
		}
	}
}

func (s *Service) generateHTML(analysis *domain.TrendsAnalysis, includeCharts bool) (*domain.ReportResult, error) {
	if analysis == nil {
		return nil, &errors.ValidationError{Field: "analysis", Message: "cannot be nil"}
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, errors.WrapError(err, "failed to create report directory")
	}

	data := reportData{
		Analysis:      analysis,
		IncludeCharts: includeCharts,
		MaxMentions:   maxMentions(analysis.TopTechnologies),
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, errors.WrapError(err, "failed to render report")
	}

	path := filepath.Join(s.outputDir, fmt.Sprintf("trends-report-%s.html", uuid.NewString()))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, errors.WrapError(err, "failed to write report")
	}

	s.logInfo("Report written", map[string]interface{}{
		"path":   path,
		"format": FormatHTML,
	})

	return &domain.ReportResult{
		Path:   path,
		Format: FormatHTML,
		Status: domain.StatusOK,
	}, nil
}

// maxMentions scales the chart bars against the largest entry.
func maxMentions(scores []domain.TechnologyScore) float64 {
	max := 1.0
	for _, score := range scores {
		if score.Mentions > max {
			max = score.Mentions
		}
	}
	return max
}

func (s *Service) logInfo(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Info(msg, fields)
	}
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Technology Trends Report {{.Analysis.Date}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; margin-top: 1rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
.bar { background: #4c7ebf; height: 1rem; display: inline-block; }
.status { color: #666; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>Technology Trends Report</h1>
<p>Date: {{.Analysis.Date}} &middot; Timeframe: {{.Analysis.Timeframe}} &middot; Region: {{.Analysis.Region}}</p>
<h2>Top Technologies</h2>
{{if .Analysis.TopTechnologies}}
<table>
<tr><th>Rank</th><th>Technology</th><th>Mentions</th>{{if .IncludeCharts}}<th>Chart</th>{{end}}</tr>
{{$max := .MaxMentions}}{{$charts := .IncludeCharts}}{{range $i, $score := .Analysis.TopTechnologies}}
<tr>
<td>{{inc $i}}</td>
<td>{{$score.Technology}}</td>
<td>{{$score.Mentions}}</td>
{{if $charts}}<td><span class="bar" style="width: {{barWidth $score.Mentions $max}}px"></span></td>{{end}}
</tr>
{{end}}
</table>
{{else}}
<p>No technology data available.</p>
{{end}}
<h2>Sources</h2>
<ul>
{{range .Analysis.Sources}}
<li>{{.Source}} <span class="status">({{.Status}})</span></li>
{{end}}
</ul>
</body>
</html>
`
