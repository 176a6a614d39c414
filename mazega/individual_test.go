package mazega

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndividualCopiesChromosome(t *testing.T) {
	genes := []Move{Up, Down, Left}
	ind := NewIndividual(genes)
	genes[0] = Right

	g, err := ind.Gene(0)
	require.NoError(t, err)
	assert.Equal(t, Up, g)
	assert.Equal(t, 3, ind.Len())
	assert.Equal(t, FitnessUnset, ind.Fitness())
	assert.Equal(t, -1, ind.SurvivalDepth())
}

func TestNewRandomIndividualDrawsValidMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ind := NewRandomIndividual(400, rng)

	seen := map[Move]bool{}
	for _, g := range ind.Chromosome() {
		require.True(t, g.Valid(), "gene %d", g)
		seen[g] = true
	}
	assert.Len(t, seen, 4)
}

func TestIndividualGeneBounds(t *testing.T) {
	ind := NewIndividual([]Move{Up, Down})

	_, err := ind.Gene(2)
	assert.ErrorIs(t, err, ErrGeneOutOfRange)
	_, err = ind.Gene(-1)
	assert.ErrorIs(t, err, ErrGeneOutOfRange)
	assert.ErrorIs(t, ind.SetGene(2, Left), ErrGeneOutOfRange)
	assert.ErrorIs(t, ind.SetGene(0, Move(0)), ErrInvalidMove)

	require.NoError(t, ind.SetGene(1, Left))
	g, err := ind.Gene(1)
	require.NoError(t, err)
	assert.Equal(t, Left, g)
	assert.Equal(t, 2, ind.Len())
}

func TestIndividualStringShowsExecutedPrefix(t *testing.T) {
	ind := NewIndividual([]Move{Down, Right, Up, Left})
	assert.Equal(t, "", ind.String())

	ind.SetSurvivalDepth(2)
	assert.Equal(t, "4 3", ind.String())

	ind.SetSurvivalDepth(10)
	assert.Equal(t, "4 3 1 2", ind.String())
}

func TestIndividualCloneIsIndependent(t *testing.T) {
	ind := NewIndividual([]Move{Down, Right})
	ind.SetFitness(12)
	ind.SetSurvivalDepth(1)

	c := ind.Clone()
	assert.Equal(t, ind.Chromosome(), c.Chromosome())
	assert.Equal(t, 12.0, c.Fitness())
	assert.Equal(t, 1, c.SurvivalDepth())

	require.NoError(t, c.SetGene(0, Up))
	g, _ := ind.Gene(0)
	assert.Equal(t, Down, g)
}

func TestMoveOffsets(t *testing.T) {
	cases := map[Move][2]int{Up: {-1, 0}, Left: {0, -1}, Right: {0, 1}, Down: {1, 0}}
	for m, want := range cases {
		dx, dy := m.Offset()
		assert.Equal(t, want, [2]int{dx, dy}, m.Name())
	}
	assert.False(t, Move(5).Valid())
	assert.Equal(t, "invalid", Move(0).Name())
}
