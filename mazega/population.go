package mazega

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var (
	ErrIndexOutOfRange      = errors.New("population index out of range")
	ErrIncompletePopulation = errors.New("population has empty slots")
)

// Population is a fixed-size collection of individuals for one generation.
type Population struct {
	individuals       []*Individual
	populationFitness float64
}

// NewPopulation creates a population with size empty slots.
func NewPopulation(size int) (*Population, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: population size cannot be negative (%d)", ErrInvalidConfig, size)
	}
	return &Population{
		individuals:       make([]*Individual, size),
		populationFitness: FitnessUnset,
	}, nil
}

// NewRandomPopulation creates a population filled with random individuals.
func NewRandomPopulation(size, chromosomeLength int, rng *rand.Rand) (*Population, error) {
	if chromosomeLength < 1 {
		return nil, fmt.Errorf("%w: chromosome length must be positive (%d)", ErrInvalidConfig, chromosomeLength)
	}
	p, err := NewPopulation(size)
	if err != nil {
		return nil, err
	}
	for i := range p.individuals {
		p.individuals[i] = NewRandomIndividual(chromosomeLength, rng)
	}
	return p, nil
}

// Size returns the number of slots.
func (p *Population) Size() int { return len(p.individuals) }

// Individuals returns a copy of the slot slice. The individuals themselves are shared.
func (p *Population) Individuals() []*Individual {
	out := make([]*Individual, len(p.individuals))
	copy(out, p.individuals)
	return out
}

// Individual returns the individual stored at index i.
func (p *Population) Individual(i int) (*Individual, error) {
	if i < 0 || i >= len(p.individuals) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(p.individuals))
	}
	return p.individuals[i], nil
}

// SetIndividual stores ind at index i.
func (p *Population) SetIndividual(i int, ind *Individual) error {
	if i < 0 || i >= len(p.individuals) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(p.individuals))
	}
	p.individuals[i] = ind
	return nil
}

// Shuffle permutes the individuals in place.
func (p *Population) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.individuals), func(i, j int) {
		p.individuals[i], p.individuals[j] = p.individuals[j], p.individuals[i]
	})
}

// Ranked returns the individuals sorted by fitness, best first. Equal fitness
// keeps storage order. The returned slice is a snapshot; storage is not reordered.
func (p *Population) Ranked() ([]*Individual, error) {
	ranked := make([]*Individual, len(p.individuals))
	for i, ind := range p.individuals {
		if ind == nil {
			return nil, fmt.Errorf("%w: slot %d", ErrIncompletePopulation, i)
		}
		ranked[i] = ind
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness() > ranked[j].Fitness()
	})
	return ranked, nil
}

// Fittest returns the individual at the given fitness rank; rank 0 is the best.
// The ranking is derived from the current fitness values on every call.
func (p *Population) Fittest(rank int) (*Individual, error) {
	if rank < 0 || rank >= len(p.individuals) {
		return nil, fmt.Errorf("%w: rank %d not in [0,%d)", ErrIndexOutOfRange, rank, len(p.individuals))
	}
	ranked, err := p.Ranked()
	if err != nil {
		return nil, err
	}
	return ranked[rank], nil
}

// Fitnesses returns the fitness of every populated slot in storage order.
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, 0, len(p.individuals))
	for _, ind := range p.individuals {
		if ind != nil {
			out = append(out, ind.Fitness())
		}
	}
	return out
}

func (p *Population) SetPopulationFitness(total float64) { p.populationFitness = total }

// PopulationFitness returns the total stored by the last evaluation.
func (p *Population) PopulationFitness() float64 { return p.populationFitness }
