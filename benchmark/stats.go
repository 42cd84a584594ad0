package benchmark

import (
	"math"
	"sort"
)

// Stats are aggregated timing statistics over a set of runs, in
// milliseconds. Plain structured data for the presentation layer.
type Stats struct {
	MinMs    float64
	MaxMs    float64
	AvgMs    float64
	MedianMs float64
	StdDevMs float64
	TotalMs  float64
}

// computeStats aggregates per-run wall times. The standard deviation is the
// population form, matching the per-run sample being the whole population of
// the benchmark.
func computeStats(times []float64) Stats {
	if len(times) == 0 {
		return Stats{}
	}
	s := Stats{MinMs: times[0], MaxMs: times[0]}
	for _, t := range times {
		s.TotalMs += t
		if t < s.MinMs {
			s.MinMs = t
		}
		if t > s.MaxMs {
			s.MaxMs = t
		}
	}
	s.AvgMs = s.TotalMs / float64(len(times))

	variance := 0.0
	for _, t := range times {
		d := t - s.AvgMs
		variance += d * d
	}
	s.StdDevMs = math.Sqrt(variance / float64(len(times)))

	sorted := make([]float64, len(times))
	copy(sorted, times)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		s.MedianMs = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		s.MedianMs = sorted[mid]
	}
	return s
}
