package mazega

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	stats    []GenerationStats
	finished *Result
	failAt   int
}

func (r *recordingReporter) GenerationEvaluated(s GenerationStats) error {
	r.stats = append(r.stats, s)
	if r.failAt > 0 && s.Generation == r.failAt {
		return errors.New("reporter full")
	}
	return nil
}

func (r *recordingReporter) Finished(res *Result) error {
	r.finished = res
	return nil
}

func runParams() Params {
	return Params{
		PopulationSize: 20,
		MutationRate:   1,
		CrossoverRate:  0.5,
		ElitismCount:   1,
		TournamentSize: 3,
		Robot:          DefaultRobotSettings(),
	}
}

func TestRunStopsOnSolution(t *testing.T) {
	m, err := NewMaze([][]int{{2, 4}})
	require.NoError(t, err)
	ga := newTestGA(t, runParams(), 21)
	rep := &recordingReporter{}

	result, err := ga.Run(context.Background(), m, RunOptions{
		ChromosomeLength: 5,
		MaxGenerations:   50,
		StopOnSolution:   true,
		Reporters:        []Reporter{rep},
	})
	require.NoError(t, err)

	assert.True(t, result.Solved)
	assert.Equal(t, Reached, result.Outcome)
	assert.Equal(t, 101.0, result.Best.Fitness())
	assert.Equal(t, "3", result.Best.String())
	assert.Equal(t, []Position{{0, 0}, {0, 1}}, result.Path)
	assert.Less(t, result.Generations, 50)

	require.Len(t, rep.stats, result.Generations)
	last := rep.stats[len(rep.stats)-1]
	assert.True(t, last.Solved)
	assert.Equal(t, result.Generations, last.Generation)
	for _, s := range rep.stats[:len(rep.stats)-1] {
		assert.False(t, s.Solved)
	}
	assert.Same(t, result, rep.finished)
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	m, err := NewMaze([][]int{{2, 1}, {1, 4}})
	require.NoError(t, err)
	ga := newTestGA(t, runParams(), 5)
	rep := &recordingReporter{}

	result, err := ga.Run(context.Background(), m, RunOptions{
		ChromosomeLength: 5,
		MaxGenerations:   4,
		StopOnSolution:   true,
		Reporters:        []Reporter{rep},
	})
	require.NoError(t, err)

	assert.False(t, result.Solved)
	assert.Equal(t, 4, result.Generations)
	assert.Equal(t, Destroyed, result.Outcome)
	assert.Equal(t, 1.0, result.Best.Fitness())
	require.Len(t, rep.stats, 4)
	for i, s := range rep.stats {
		assert.Equal(t, i+1, s.Generation)
		assert.Equal(t, 20.0, s.Total)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	m, err := NewMaze([][]int{{2, 1}, {1, 4}})
	require.NoError(t, err)
	ga := newTestGA(t, runParams(), 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ga.Run(ctx, m, RunOptions{ChromosomeLength: 5, MaxGenerations: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunPropagatesReporterErrors(t *testing.T) {
	m, err := NewMaze([][]int{{2, 1}, {1, 4}})
	require.NoError(t, err)
	ga := newTestGA(t, runParams(), 5)

	_, err = ga.Run(context.Background(), m, RunOptions{
		ChromosomeLength: 5,
		MaxGenerations:   10,
		Reporters:        []Reporter{&recordingReporter{failAt: 2}},
	})
	assert.ErrorContains(t, err, "reporter full")
}

func TestRunRejectsBadOptions(t *testing.T) {
	m, err := NewMaze([][]int{{2, 4}})
	require.NoError(t, err)
	ga := newTestGA(t, runParams(), 5)

	_, err = ga.Run(context.Background(), m, RunOptions{ChromosomeLength: 5})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = ga.Run(context.Background(), m, RunOptions{MaxGenerations: 3})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTextReporter(t *testing.T) {
	m, err := NewMaze([][]int{{2, 1}, {1, 4}})
	require.NoError(t, err)
	ga := newTestGA(t, runParams(), 5)
	var buf bytes.Buffer

	_, err = ga.Run(context.Background(), m, RunOptions{
		ChromosomeLength: 5,
		MaxGenerations:   2,
		Reporters:        []Reporter{&TextReporter{W: &buf, Verbose: true}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "G1 Best solution (1):")
	assert.Contains(t, out, "G2 Best solution (1):")
	assert.Contains(t, out, " mean 1.00, stdev 0.00, median 1, total 20\n")
	assert.Contains(t, out, "Stopped after 2 generations")
	assert.Equal(t, 2, strings.Count(out, "Best solution (1):"))
	assert.Contains(t, out, "Route: (none)\n")
}

func TestTextReporterNamesRoute(t *testing.T) {
	best := NewIndividual([]Move{Right, Down, Up})
	best.SetFitness(102)
	best.SetSurvivalDepth(2)
	var buf bytes.Buffer

	quiet := &TextReporter{W: &buf}
	require.NoError(t, quiet.Finished(&Result{Best: best, Generations: 1, Outcome: Reached}))
	assert.NotContains(t, buf.String(), "Route:")

	buf.Reset()
	verbose := &TextReporter{W: &buf, Verbose: true}
	require.NoError(t, verbose.Finished(&Result{Best: best, Generations: 1, Outcome: Reached}))
	assert.Contains(t, buf.String(), "Best solution (102, reached): 3 4\n")
	assert.Contains(t, buf.String(), "Route: right, down\n")
}
