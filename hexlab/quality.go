package hexlab

import (
	"github.com/unixpickle/essentials"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// QualityStats summarizes a Measure over every cell of a mesh.
type QualityStats struct {
	Measure Measure

	Min      float64
	Max      float64
	Mean     float64
	Variance float64

	NormalizedMin float64
	NormalizedMax float64
}

// Normalize maps a native value of s.Measure to [0, 1] using the range
// observed over the mesh.
func (s *QualityStats) Normalize(q float64) float64 {
	return s.Measure.Normalize(q, s.Min, s.Max)
}

// Denormalize maps a normalized value back to the native range.
func (s *QualityStats) Denormalize(x float64) float64 {
	return s.Measure.Denormalize(x, s.Min, s.Max)
}

// EvaluateQuality computes measure for every cell of m, storing the results
// in m.Quality and m.NormalizedQuality.
//
// The avgVolume argument is only used by size-aware measures.
//
// If concurrency is 0, GOMAXPROCS is used.
func EvaluateQuality(m *Mesh, measure Measure, avgVolume float64, concurrency int) QualityStats {
	n := len(m.Cells)
	if len(m.Quality) != n {
		m.Quality = make([]float64, n)
		m.NormalizedQuality = make([]float64, n)
	}
	stats := QualityStats{Measure: measure}
	if n == 0 {
		return stats
	}

	essentials.ConcurrentMap(concurrency, n, func(i int) {
		m.Quality[i] = measure.Evaluate(NewHexCorners(m.CellCorners(i)), avgVolume)
	})

	stats.Min = floats.Min(m.Quality)
	stats.Max = floats.Max(m.Quality)
	stats.Mean, stats.Variance = stat.PopMeanVariance(m.Quality, nil)

	for i, q := range m.Quality {
		m.NormalizedQuality[i] = stats.Normalize(q)
	}
	stats.NormalizedMin = floats.Min(m.NormalizedQuality)
	stats.NormalizedMax = floats.Max(m.NormalizedQuality)
	return stats
}

// AverageVolume computes the mean signed volume of the cells.
func AverageVolume(m *Mesh) float64 {
	if len(m.Cells) == 0 {
		return 0
	}
	var sum float64
	for i := range m.Cells {
		sum += HexVolume(NewHexCorners(m.CellCorners(i)))
	}
	return sum / float64(len(m.Cells))
}
