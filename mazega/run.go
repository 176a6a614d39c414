package mazega

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// RunOptions controls an evolution run.
type RunOptions struct {
	ChromosomeLength int
	MaxGenerations   int
	StopOnSolution   bool // Stop as soon as the best individual reaches the goal
	Reporters        []Reporter
}

// Result is the outcome of an evolution run.
type Result struct {
	Best        *Individual // Deep copy of the fittest individual of the last generation
	Generations int         // Number of generations evaluated
	Solved      bool
	Outcome     Outcome    // Terminal state when Best is replayed
	Path        []Position // Cells visited when Best is replayed
	Grid        [][]int    // Maze with the replayed path marked Visited
	Elapsed     time.Duration
}

// Reporter receives progress from Run.
type Reporter interface {
	GenerationEvaluated(stats GenerationStats) error
	Finished(result *Result) error
}

// Run drives the standard loop: evaluate, then crossover, mutate and evaluate
// again until MaxGenerations generations have been evaluated or, with
// StopOnSolution, the best individual reaches the goal.
func (ga *GeneticAlgorithm) Run(ctx context.Context, maze *Maze, opts RunOptions) (*Result, error) {
	if opts.MaxGenerations < 1 {
		return nil, fmt.Errorf("%w: max_generations must be positive", ErrInvalidConfig)
	}
	start := time.Now()

	pop, err := ga.InitPopulation(opts.ChromosomeLength)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize population: %w", err)
	}
	if err := ga.EvalPopulation(pop, maze); err != nil {
		return nil, fmt.Errorf("evaluation failed in generation 1: %w", err)
	}

	generation := 1
	solved := false
	for {
		best, err := pop.Fittest(0)
		if err != nil {
			return nil, err
		}
		solved = ga.IsSolution(best)

		stats, err := NewGenerationStats(generation, pop, solved)
		if err != nil {
			return nil, err
		}
		for _, r := range opts.Reporters {
			if err := r.GenerationEvaluated(stats); err != nil {
				return nil, fmt.Errorf("reporter failed in generation %d: %w", generation, err)
			}
		}

		if opts.StopOnSolution && solved {
			break
		}
		if ga.IsTerminationConditionMet(generation+1, opts.MaxGenerations) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled after generation %d: %w", generation, err)
		}

		pop, err = ga.CrossoverPopulation(pop)
		if err != nil {
			return nil, fmt.Errorf("crossover failed in generation %d: %w", generation, err)
		}
		pop, err = ga.MutatePopulation(pop)
		if err != nil {
			return nil, fmt.Errorf("mutation failed in generation %d: %w", generation, err)
		}
		generation++
		if err := ga.EvalPopulation(pop, maze); err != nil {
			return nil, fmt.Errorf("evaluation failed in generation %d: %w", generation, err)
		}
	}

	best, err := pop.Fittest(0)
	if err != nil {
		return nil, err
	}
	robot := NewRobot(best.chromosome, maze, ga.params.Robot)
	outcome := robot.Run()

	result := &Result{
		Best:        best.Clone(),
		Generations: generation,
		Solved:      solved,
		Outcome:     outcome,
		Path:        robot.Path(),
		Grid:        robot.VisitedGrid(),
		Elapsed:     time.Since(start),
	}
	for _, r := range opts.Reporters {
		if err := r.Finished(result); err != nil {
			return result, fmt.Errorf("reporter failed after run: %w", err)
		}
	}
	return result, nil
}

// TextReporter prints one progress line per generation.
type TextReporter struct {
	W       io.Writer
	Verbose bool // Also print fitness statistics and the named route
}

func (t *TextReporter) GenerationEvaluated(s GenerationStats) error {
	_, err := fmt.Fprintf(t.W, "G%d Best solution (%g): %s\n", s.Generation, s.Best, s.BestGenes)
	if err != nil || !t.Verbose {
		return err
	}
	_, err = fmt.Fprintf(t.W, " mean %.2f, stdev %.2f, median %g, total %s\n",
		s.Mean, s.Stdev, s.Median, humanize.Commaf(s.Total))
	return err
}

func (t *TextReporter) Finished(r *Result) error {
	_, err := fmt.Fprintf(t.W, "Stopped after %s generations in %s.\nBest solution (%g, %s): %s\n",
		humanize.Comma(int64(r.Generations)), r.Elapsed.Round(time.Millisecond),
		r.Best.Fitness(), r.Outcome, r.Best)
	if err != nil || !t.Verbose {
		return err
	}
	_, err = fmt.Fprintf(t.W, "Route: %s\n", routeNames(r.Best))
	return err
}

// routeNames names the genes the individual survived, in order.
func routeNames(ind *Individual) string {
	n := min(ind.SurvivalDepth(), ind.Len())
	if n <= 0 {
		return "(none)"
	}
	names := make([]string, n)
	for i, m := range ind.chromosome[:n] {
		names[i] = m.Name()
	}
	return strings.Join(names, ", ")
}
