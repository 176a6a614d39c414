package mazega

import (
	"math"
	"sort"
)

// GenerationStats summarises the fitness of one evaluated generation.
type GenerationStats struct {
	Generation int
	Best       float64
	Mean       float64
	Stdev      float64
	Min        float64
	Median     float64
	Total      float64 // Population fitness as stored by EvalPopulation
	BestGenes  string  // Rendering of the best individual
	Solved     bool
}

// NewGenerationStats computes the statistics of an evaluated population.
// solved is decided by the caller because the success cutoff depends on the goal bonus.
func NewGenerationStats(generation int, pop *Population, solved bool) (GenerationStats, error) {
	best, err := pop.Fittest(0)
	if err != nil {
		return GenerationStats{}, err
	}
	values := pop.Fitnesses()
	return GenerationStats{
		Generation: generation,
		Best:       MaxFloat(values),
		Mean:       Mean(values),
		Stdev:      Stdev(values),
		Min:        MinFloat(values),
		Median:     Median(values),
		Total:      pop.PopulationFitness(),
		BestGenes:  best.String(),
		Solved:     solved,
	}, nil
}

// Mean calculates the average of a slice of float64 values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return Sum(values) / float64(len(values))
}

// Stdev calculates the sample standard deviation of a slice of float64 values.
func Stdev(values []float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(values)-1))
}

// Sum calculates the sum of a slice of float64 values.
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// MaxFloat returns the largest value, or negative infinity for an empty slice.
func MaxFloat(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(-1)
	}
	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// MinFloat returns the smallest value, or positive infinity for an empty slice.
func MinFloat(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(1)
	}
	minVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
	}
	return minVal
}

// Median calculates the median of a slice of float64 values.
// Returns NaN if the slice is empty.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}

	// Sort a copy, the caller's order is kept.
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2.0
}
