package mazega

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// Solution is the saved form of a run's best individual. Only the winner is
// written; populations are not persisted.
type Solution struct {
	Chromosome    []Move
	Fitness       float64
	SurvivalDepth int
	Generations   int
	Outcome       Outcome
	Path          []Position
	Grid          [][]int
}

// NewSolution captures the best individual of a result.
func NewSolution(r *Result) *Solution {
	return &Solution{
		Chromosome:    r.Best.Chromosome(),
		Fitness:       r.Best.Fitness(),
		SurvivalDepth: r.Best.SurvivalDepth(),
		Generations:   r.Generations,
		Outcome:       r.Outcome,
		Path:          r.Path,
		Grid:          r.Grid,
	}
}

// Individual rebuilds the evaluated individual.
func (s *Solution) Individual() *Individual {
	ind := NewIndividual(s.Chromosome)
	ind.SetFitness(s.Fitness)
	ind.SetSurvivalDepth(s.SurvivalDepth)
	return ind
}

// SaveSolution writes the solution to a gzip compressed gob file.
func SaveSolution(filePath string, s *Solution) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create solution file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(s); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode solution: %w", err)
	}
	// Close flushes the gzip footer, its error matters.
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush solution file '%s': %w", filePath, err)
	}
	return nil
}

// LoadSolution reads a solution written by SaveSolution.
func LoadSolution(filePath string) (*Solution, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open solution file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for solution: %w", err)
	}
	defer gzReader.Close()

	s := &Solution{}
	if err := gob.NewDecoder(gzReader).Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode solution: %w", err)
	}
	return s, nil
}
