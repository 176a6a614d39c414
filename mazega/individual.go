package mazega

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// FitnessUnset marks an individual that has not been evaluated yet. It is below
// any fitness a robot run can produce.
const FitnessUnset = -1.0

var (
	ErrGeneOutOfRange           = errors.New("gene offset out of range")
	ErrInvalidMove              = errors.New("invalid move code")
	ErrChromosomeLengthMismatch = errors.New("chromosome lengths differ")
)

// Individual is a single candidate solution: a fixed-length chromosome of moves,
// its fitness, and how many of its genes the robot actually used.
type Individual struct {
	chromosome    []Move
	fitness       float64
	survivalDepth int
}

// NewIndividual creates an individual with a copy of the given chromosome.
func NewIndividual(chromosome []Move) *Individual {
	c := make([]Move, len(chromosome))
	copy(c, chromosome)
	return &Individual{chromosome: c, fitness: FitnessUnset, survivalDepth: -1}
}

// NewRandomIndividual creates an individual whose genes are drawn uniformly from the four moves.
func NewRandomIndividual(length int, rng *rand.Rand) *Individual {
	c := make([]Move, length)
	for i := range c {
		c[i] = RandomMove(rng)
	}
	return &Individual{chromosome: c, fitness: FitnessUnset, survivalDepth: -1}
}

// Len returns the chromosome length.
func (ind *Individual) Len() int { return len(ind.chromosome) }

// Chromosome returns a copy of the genes.
func (ind *Individual) Chromosome() []Move {
	c := make([]Move, len(ind.chromosome))
	copy(c, ind.chromosome)
	return c
}

// Gene returns the gene at offset.
func (ind *Individual) Gene(offset int) (Move, error) {
	if offset < 0 || offset >= len(ind.chromosome) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrGeneOutOfRange, offset, len(ind.chromosome))
	}
	return ind.chromosome[offset], nil
}

// SetGene overwrites the gene at offset.
func (ind *Individual) SetGene(offset int, gene Move) error {
	if offset < 0 || offset >= len(ind.chromosome) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrGeneOutOfRange, offset, len(ind.chromosome))
	}
	if !gene.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMove, int(gene))
	}
	ind.chromosome[offset] = gene
	return nil
}

func (ind *Individual) Fitness() float64           { return ind.fitness }
func (ind *Individual) SetFitness(fitness float64) { ind.fitness = fitness }

// SurvivalDepth is the number of genes consumed before the robot stopped, or -1 if never evaluated.
func (ind *Individual) SurvivalDepth() int     { return ind.survivalDepth }
func (ind *Individual) SetSurvivalDepth(d int) { ind.survivalDepth = d }

// Clone returns a deep copy, fitness and survival depth included.
func (ind *Individual) Clone() *Individual {
	c := NewIndividual(ind.chromosome)
	c.fitness = ind.fitness
	c.survivalDepth = ind.survivalDepth
	return c
}

// String renders the genes the robot executed before it stopped.
func (ind *Individual) String() string {
	n := min(ind.survivalDepth, len(ind.chromosome))
	if n <= 0 {
		return ""
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = ind.chromosome[i].String()
	}
	return strings.Join(parts, " ")
}
