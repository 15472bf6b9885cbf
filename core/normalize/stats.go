// ABOUTME: Trend statistics over historical series
// ABOUTME: Simple growth rate and z-score anomaly detection

package normalize

import (
	"math"

	"trends-app-api/core/domain"
)

// DefaultZThreshold is the z-score above which a value counts as an
// anomaly.
const DefaultZThreshold = 3.0

// GrowthRate computes (last - first) / |first| over a time-ordered
// series. It returns 0 when fewer than two points exist or the first
// value is zero. The zero-start guard is a compatibility policy, not a
// mathematically meaningful growth rate; callers depend on it.
func GrowthRate(series []domain.TrendPoint) float64 {
	if len(series) < 2 {
		return 0
	}
	first := series[0].Value
	last := series[len(series)-1].Value
	if first == 0 {
		return 0
	}
	return (last - first) / math.Abs(first)
}

// DetectAnomalies returns the indices of values whose distance from the
// mean reaches zThreshold standard deviations. Standard deviation is
// the sample deviation (denominator n-1, guarded to at least 1). An
// empty input or zero variance yields no anomalies.
func DetectAnomalies(values []float64, zThreshold float64) []int {
	if len(values) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	denom := len(values) - 1
	if denom < 1 {
		denom = 1
	}
	std := math.Sqrt(variance / float64(denom))
	if std == 0 {
		return nil
	}

	var anomalies []int
	for i, v := range values {
		if math.Abs(v-mean)/std >= zThreshold {
			anomalies = append(anomalies, i)
		}
	}
	return anomalies
}
