package scoring

import (
	"math"
	"time"

	"creditscoring/internal/pkg/consts"
)

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev is the population standard deviation.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// valueConsistency converts the coefficient of variation of a series into a
// [0,1] measure: evenly sized values score near 1, erratic ones near 0.
func valueConsistency(values []float64) float64 {
	m := mean(values)
	c := 1 - stdDev(values)/math.Max(m, 1)
	return math.Min(math.Max(c, 0), 1)
}

// timingConsistency measures how evenly spaced a sequence of timestamped
// events is, from the day-gaps between consecutive events sorted by time.
// With fewer than two events there is nothing to measure; 0.5 is assumed.
func timingConsistency(times []time.Time) float64 {
	if len(times) < 2 {
		return 0.5
	}

	sorted := make([]time.Time, len(times))
	copy(sorted, times)
	sortTimes(sorted)

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps = append(gaps, sorted[i].Sub(sorted[i-1]).Hours()/24)
	}

	return valueConsistency(gaps)
}

func sortTimes(times []time.Time) {
	for i := 1; i < len(times); i++ {
		for j := i; j > 0 && times[j].Before(times[j-1]); j-- {
			times[j], times[j-1] = times[j-1], times[j]
		}
	}
}

// monthlyRegularity buckets events by calendar month and measures how even
// the monthly counts are. Too little history to judge defaults to 0.3.
func monthlyRegularity(times []time.Time) float64 {
	if len(times) < 3 {
		return 0.3
	}

	monthlyCounts := make(map[string]int)
	for _, t := range times {
		monthlyCounts[t.Format("2006-01")]++
	}
	if len(monthlyCounts) < 2 {
		return 0.3
	}

	counts := make([]float64, 0, len(monthlyCounts))
	for _, c := range monthlyCounts {
		counts = append(counts, float64(c))
	}

	return valueConsistency(counts)
}

// clampScore bounds a raw sub-score to the valid credit score range.
func clampScore(score float64) float64 {
	return math.Max(consts.ScoreMin, math.Min(consts.ScoreMax, score))
}

func daysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}
