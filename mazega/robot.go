package mazega

import "fmt"

const (
	DefaultMaxMoves  = 99
	DefaultGoalBonus = 100
)

// RobotSettings bounds a single simulated run.
type RobotSettings struct {
	MaxMoves  int // Cap on loop iterations before the robot times out.
	GoalBonus int // Added to the move count when the goal is reached. Must exceed MaxMoves.
}

// DefaultRobotSettings returns the settings used when none are configured.
func DefaultRobotSettings() RobotSettings {
	return RobotSettings{MaxMoves: DefaultMaxMoves, GoalBonus: DefaultGoalBonus}
}

// Validate checks the settings. The bonus has to exceed the cap so that every
// run which reaches the goal scores higher than any run which does not.
func (s RobotSettings) Validate() error {
	if s.MaxMoves < 1 {
		return fmt.Errorf("%w: max_moves must be positive, got %d", ErrInvalidConfig, s.MaxMoves)
	}
	if s.GoalBonus <= s.MaxMoves {
		return fmt.Errorf("%w: goal_bonus (%d) must exceed max_moves (%d)", ErrInvalidConfig, s.GoalBonus, s.MaxMoves)
	}
	return nil
}

// Outcome is the terminal state of a robot run.
type Outcome int

const (
	Running Outcome = iota
	Reached
	TimedOut
	Destroyed
	Exhausted // Ran out of genes before any other terminal state.
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Reached:
		return "reached"
	case TimedOut:
		return "timed out"
	case Destroyed:
		return "destroyed"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Robot replays a chromosome against a maze.
// Give it a maze and a list of directions and it will attempt to reach the goal.
type Robot struct {
	maze       *Maze
	directions []Move
	settings   RobotSettings

	current Position
	moves   int
	step    int // Genes consumed by committed moves.
	outcome Outcome
	path    []Position
	grid    [][]int // Private copy of the maze, visited cells marked.
}

// NewRobot prepares a robot at the maze's start cell. The chromosome is not copied
// and must not change while the robot runs.
func NewRobot(directions []Move, maze *Maze, settings RobotSettings) *Robot {
	return &Robot{
		maze:       maze,
		directions: directions,
		settings:   settings,
		current:    maze.Start(),
		path:       []Position{maze.Start()},
		grid:       maze.Grid(),
	}
}

// Run executes the directions until the robot reaches the goal, runs out of
// moves, crashes or runs out of genes. The move counter is incremented on every
// iteration, including the one that discovers termination.
func (r *Robot) Run() Outcome {
	if r.outcome != Running {
		return r.outcome
	}

	for {
		r.moves++

		if r.moves > r.settings.MaxMoves {
			r.outcome = TimedOut
			return r.outcome
		}

		if r.step >= len(r.directions) {
			r.outcome = Exhausted
			return r.outcome
		}

		move := r.directions[r.step]
		if !move.Valid() {
			r.outcome = Destroyed
			return r.outcome
		}

		dx, dy := move.Offset()
		next := Position{X: r.current.X + dx, Y: r.current.Y + dy}
		// Bounds first: the private grid is indexed directly below.
		if !r.maze.InBounds(next.X, next.Y) || r.maze.IsWall(next.X, next.Y) {
			r.outcome = Destroyed
			return r.outcome
		}

		r.current = next
		r.grid[next.X][next.Y] = Visited
		r.path = append(r.path, next)
		r.step++

		if r.maze.PositionValue(next.X, next.Y) == Goal {
			r.moves += r.settings.GoalBonus
			r.outcome = Reached
			return r.outcome
		}
	}
}

// Moves returns the move count, bonus included. This is the fitness of the run.
func (r *Robot) Moves() int { return r.moves }

// Step returns how many genes were consumed before the run ended.
func (r *Robot) Step() int { return r.step }

// Position returns the last committed cell.
func (r *Robot) Position() Position { return r.current }

// Outcome returns the terminal state, or Running if Run has not been called.
func (r *Robot) Outcome() Outcome { return r.outcome }

// Path returns the start cell followed by every committed cell.
func (r *Robot) Path() []Position {
	out := make([]Position, len(r.path))
	copy(out, r.path)
	return out
}

// VisitedGrid returns a copy of the maze with the visited cells set to Visited.
func (r *Robot) VisitedGrid() [][]int {
	return copyGrid(r.grid)
}
