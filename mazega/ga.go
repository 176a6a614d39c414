package mazega

import (
	"fmt"
	"math/rand"
)

// Params are the hyperparameters of the genetic algorithm.
type Params struct {
	PopulationSize int
	MutationRate   float64 // Probability that a single gene is replaced
	CrossoverRate  float64 // Probability that a non-elite individual produces an offspring
	ElitismCount   int     // Best individuals copied through unchanged
	TournamentSize int
	Robot          RobotSettings
}

// Validate fails on the first parameter outside its allowed range. Nothing is clamped.
func (p Params) Validate() error {
	if p.PopulationSize < 1 {
		return fmt.Errorf("%w: pop_size must be positive", ErrInvalidConfig)
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return fmt.Errorf("%w: mutation_rate must be between 0 and 1", ErrInvalidConfig)
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return fmt.Errorf("%w: crossover_rate must be between 0 and 1", ErrInvalidConfig)
	}
	if p.ElitismCount < 0 || p.ElitismCount > p.PopulationSize {
		return fmt.Errorf("%w: elitism must be between 0 and pop_size (%d)", ErrInvalidConfig, p.PopulationSize)
	}
	if p.TournamentSize < 1 || p.TournamentSize > p.PopulationSize {
		return fmt.Errorf("%w: tournament_size must be between 1 and pop_size (%d)", ErrInvalidConfig, p.PopulationSize)
	}
	return p.Robot.Validate()
}

// GeneticAlgorithm evolves move sequences that steer a robot through a maze.
//
// It uses tournament selection, single-point crossover, per-gene mutation and
// elitism. All randomness comes from the source passed to NewGeneticAlgorithm,
// so a fixed seed reproduces a run exactly. A GeneticAlgorithm is not safe for
// concurrent use.
type GeneticAlgorithm struct {
	params Params
	rng    *rand.Rand
}

// NewGeneticAlgorithm validates params and returns an engine drawing from rng.
func NewGeneticAlgorithm(params Params, rng *rand.Rand) (*GeneticAlgorithm, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: genetic algorithm requires a random source", ErrInvalidConfig)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &GeneticAlgorithm{params: params, rng: rng}, nil
}

// Params returns the engine's hyperparameters.
func (ga *GeneticAlgorithm) Params() Params { return ga.params }

// InitPopulation creates the first generation of random individuals.
func (ga *GeneticAlgorithm) InitPopulation(chromosomeLength int) (*Population, error) {
	return NewRandomPopulation(ga.params.PopulationSize, chromosomeLength, ga.rng)
}

// CalcFitness runs a robot with the individual's chromosome and stores the move
// count as fitness and the consumed genes as survival depth.
func (ga *GeneticAlgorithm) CalcFitness(ind *Individual, maze *Maze) float64 {
	robot := NewRobot(ind.chromosome, maze, ga.params.Robot)
	robot.Run()

	fitness := float64(robot.Moves())
	ind.SetFitness(fitness)
	ind.SetSurvivalDepth(robot.Step())
	return fitness
}

// EvalPopulation evaluates every individual and stores the sum of their fitness
// on the population. It must run once per generation before ranking is trusted.
func (ga *GeneticAlgorithm) EvalPopulation(pop *Population, maze *Maze) error {
	total := 0.0
	for i, ind := range pop.individuals {
		if ind == nil {
			return fmt.Errorf("%w: slot %d", ErrIncompletePopulation, i)
		}
		total += ga.CalcFitness(ind, maze)
	}
	pop.SetPopulationFitness(total)
	return nil
}

// IsTerminationConditionMet reports whether the generation count has passed the limit.
func (ga *GeneticAlgorithm) IsTerminationConditionMet(generationsCount, maxGenerations int) bool {
	return generationsCount > maxGenerations
}

// IsSolution reports whether the individual's fitness includes the goal bonus.
func (ga *GeneticAlgorithm) IsSolution(ind *Individual) bool {
	return ind != nil && ind.Fitness() > float64(ga.params.Robot.GoalBonus)
}

// SelectParent picks TournamentSize distinct individuals at random and returns
// the fittest of them. Ties go to the first one sampled. The population itself
// is not reordered.
func (ga *GeneticAlgorithm) SelectParent(pop *Population) (*Individual, error) {
	n := pop.Size()
	k := ga.params.TournamentSize
	if k > n {
		return nil, fmt.Errorf("tournament size %d exceeds population size %d", k, n)
	}

	// Partial Fisher-Yates over the indices: the first k entries are a uniform sample without replacement.
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	var best *Individual
	for i := 0; i < k; i++ {
		j := i + ga.rng.Intn(n-i)
		indices[i], indices[j] = indices[j], indices[i]

		candidate := pop.individuals[indices[i]]
		if candidate == nil {
			return nil, fmt.Errorf("%w: slot %d", ErrIncompletePopulation, indices[i])
		}
		if best == nil || candidate.Fitness() > best.Fitness() {
			best = candidate
		}
	}
	return best, nil
}

// CrossoverPopulation builds the next population with single-point crossover.
//
// Individuals are visited in fitness rank order. The best ElitismCount are
// copied through untouched. Every other individual, with CrossoverRate
// probability, is replaced by an offspring taking its genes before a random
// swap point and a tournament-selected parent's genes from the swap point on:
//
//	Parent1: AAAAAAAAAA
//	Parent2: BBBBBBBBBB
//	Child  : AAAABBBBBB
//
// Otherwise the parent is copied through.
func (ga *GeneticAlgorithm) CrossoverPopulation(pop *Population) (*Population, error) {
	ranked, err := pop.Ranked()
	if err != nil {
		return nil, err
	}
	next, err := NewPopulation(len(ranked))
	if err != nil {
		return nil, err
	}

	for rank, parent1 := range ranked {
		if rank < ga.params.ElitismCount || ga.rng.Float64() >= ga.params.CrossoverRate {
			next.individuals[rank] = parent1.Clone()
			continue
		}

		parent2, err := ga.SelectParent(pop)
		if err != nil {
			return nil, fmt.Errorf("selecting second parent for rank %d: %w", rank, err)
		}
		swapPoint := ga.rng.Intn(parent1.Len() + 1)
		child, err := SinglePointCrossover(parent1, parent2, swapPoint)
		if err != nil {
			return nil, fmt.Errorf("crossover for rank %d: %w", rank, err)
		}
		next.individuals[rank] = child
	}

	return next, nil
}

// SinglePointCrossover returns an offspring with parent1's genes before
// swapPoint and parent2's genes from swapPoint on. swapPoint is clamped to
// [0, parent1.Len()]. Both parents must have the same chromosome length.
// The offspring is unevaluated.
func SinglePointCrossover(parent1, parent2 *Individual, swapPoint int) (*Individual, error) {
	n := parent1.Len()
	if parent2.Len() != n {
		return nil, fmt.Errorf("%w: %d and %d", ErrChromosomeLengthMismatch, n, parent2.Len())
	}
	swapPoint = max(0, min(swapPoint, n))

	genes := make([]Move, n)
	copy(genes[:swapPoint], parent1.chromosome[:swapPoint])
	copy(genes[swapPoint:], parent2.chromosome[swapPoint:])
	return &Individual{chromosome: genes, fitness: FitnessUnset, survivalDepth: -1}, nil
}

// MutatePopulation builds the next population with per-gene mutation.
//
// Individuals are visited in fitness rank order. The best ElitismCount are
// copied through untouched. For every other individual each gene is replaced
// by a random move with MutationRate probability.
func (ga *GeneticAlgorithm) MutatePopulation(pop *Population) (*Population, error) {
	ranked, err := pop.Ranked()
	if err != nil {
		return nil, err
	}
	next, err := NewPopulation(len(ranked))
	if err != nil {
		return nil, err
	}

	for rank, ind := range ranked {
		mutant := ind.Clone()
		if rank >= ga.params.ElitismCount {
			for gene := range mutant.chromosome {
				if ga.params.MutationRate > ga.rng.Float64() {
					mutant.chromosome[gene] = RandomMove(ga.rng)
				}
			}
		}
		next.individuals[rank] = mutant
	}

	return next, nil
}
