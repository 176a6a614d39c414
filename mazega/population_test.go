package mazega

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// populationWithFitness builds a population whose individual i has a single
// gene and the i-th fitness value.
func populationWithFitness(t *testing.T, fitness ...float64) *Population {
	t.Helper()
	pop, err := NewPopulation(len(fitness))
	require.NoError(t, err)
	for i, f := range fitness {
		ind := NewIndividual([]Move{Moves[i%len(Moves)]})
		ind.SetFitness(f)
		require.NoError(t, pop.SetIndividual(i, ind))
	}
	return pop
}

func TestPopulationFittestRanksDescending(t *testing.T) {
	pop := populationWithFitness(t, 3, 9, 1, 9, 5)

	var got []float64
	for rank := 0; rank < pop.Size(); rank++ {
		ind, err := pop.Fittest(rank)
		require.NoError(t, err)
		got = append(got, ind.Fitness())
	}
	assert.Equal(t, []float64{9, 9, 5, 3, 1}, got)

	// Ties keep storage order.
	first, _ := pop.Fittest(0)
	second, _ := pop.Fittest(1)
	stored1, _ := pop.Individual(1)
	stored3, _ := pop.Individual(3)
	assert.Same(t, stored1, first)
	assert.Same(t, stored3, second)
}

func TestPopulationFittestTracksFitnessChanges(t *testing.T) {
	pop := populationWithFitness(t, 1, 2, 3)
	low, _ := pop.Individual(0)
	low.SetFitness(10)

	best, err := pop.Fittest(0)
	require.NoError(t, err)
	assert.Same(t, low, best)
}

func TestPopulationFittestIsMaximum(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(rng.Intn(20))
	}
	pop := populationWithFitness(t, values...)

	best, err := pop.Fittest(0)
	require.NoError(t, err)
	for _, ind := range pop.Individuals() {
		assert.GreaterOrEqual(t, best.Fitness(), ind.Fitness())
	}
}

func TestPopulationRankedDoesNotReorderStorage(t *testing.T) {
	pop := populationWithFitness(t, 1, 3, 2)
	before := pop.Individuals()

	ranked, err := pop.Ranked()
	require.NoError(t, err)
	assert.Equal(t, 3.0, ranked[0].Fitness())
	assert.Equal(t, before, pop.Individuals())
}

func TestPopulationIndexErrors(t *testing.T) {
	pop, err := NewPopulation(2)
	require.NoError(t, err)

	_, err = pop.Individual(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, pop.SetIndividual(-1, NewIndividual(nil)), ErrIndexOutOfRange)
	_, err = pop.Fittest(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = pop.Fittest(0)
	assert.ErrorIs(t, err, ErrIncompletePopulation)

	_, err = NewPopulation(-1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewRandomPopulation(3, 0, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPopulationShuffleKeepsMembers(t *testing.T) {
	pop := populationWithFitness(t, 0, 1, 2, 3, 4, 5, 6, 7)
	before := pop.Individuals()

	pop.Shuffle(rand.New(rand.NewSource(11)))
	assert.ElementsMatch(t, before, pop.Individuals())
	assert.Equal(t, 8, pop.Size())
}

func TestPopulationFitnessBookkeeping(t *testing.T) {
	pop, err := NewRandomPopulation(4, 10, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, FitnessUnset, pop.PopulationFitness())

	pop.SetPopulationFitness(42)
	assert.Equal(t, 42.0, pop.PopulationFitness())
	for _, ind := range pop.Individuals() {
		assert.Equal(t, 10, ind.Len())
	}
}
