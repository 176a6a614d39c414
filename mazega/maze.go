package mazega

import (
	"errors"
	"fmt"
)

// Cell codes used in a maze grid.
const (
	Empty   = 0
	Wall    = 1
	Start   = 2
	Goal    = 4
	Visited = 5 // Only written by the robot on its private copy of the grid.
)

var (
	ErrEmptyMaze  = errors.New("maze grid has no cells")
	ErrRaggedMaze = errors.New("maze grid is not rectangular")
	ErrNoStart    = errors.New("maze has no start cell")
	ErrNoGoal     = errors.New("maze has no goal cell")
)

// Position is a cell coordinate. X indexes rows and Y indexes columns.
type Position struct {
	X, Y int
}

// String returns the coordinate as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Maze is an immutable 2-D grid of cell codes through which a robot has to move.
type Maze struct {
	grid       [][]int
	start      Position
	goal       Position
	freeSpaces int
}

// NewMaze builds a maze from a rectangular grid. The grid is copied, so later
// changes to the argument do not affect the maze.
// If the grid holds several start or goal cells, the first one found in
// row-major order is used.
func NewMaze(grid [][]int) (*Maze, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyMaze
	}

	cols := len(grid[0])
	m := &Maze{grid: make([][]int, len(grid))}
	foundStart, foundGoal := false, false

	for x, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrRaggedMaze, x, len(row), cols)
		}
		m.grid[x] = make([]int, cols)
		copy(m.grid[x], row)

		for y, v := range row {
			switch v {
			case Empty:
				m.freeSpaces++
			case Start:
				if !foundStart {
					m.start = Position{X: x, Y: y}
					foundStart = true
				}
			case Goal:
				if !foundGoal {
					m.goal = Position{X: x, Y: y}
					foundGoal = true
				}
			}
		}
	}

	if !foundStart {
		return nil, ErrNoStart
	}
	if !foundGoal {
		return nil, ErrNoGoal
	}
	return m, nil
}

// PositionValue returns the cell code at (x,y). Anything outside the grid is a wall.
func (m *Maze) PositionValue(x, y int) int {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.grid[x][y]
}

// IsWall reports whether (x,y) is a wall or lies outside the grid.
func (m *Maze) IsWall(x, y int) bool {
	return m.PositionValue(x, y) == Wall
}

// InBounds reports whether (x,y) lies inside the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x <= m.MaxX() && y <= m.MaxY()
}

// Start returns the start cell.
func (m *Maze) Start() Position { return m.start }

// Goal returns the first goal cell in row-major order. The robot stops on any goal cell.
func (m *Maze) Goal() Position { return m.goal }

// FreeCellCount returns the number of empty cells.
func (m *Maze) FreeCellCount() int { return m.freeSpaces }

// MaxX returns the largest valid row index.
func (m *Maze) MaxX() int { return len(m.grid) - 1 }

// MaxY returns the largest valid column index.
func (m *Maze) MaxY() int { return len(m.grid[0]) - 1 }

func (m *Maze) Rows() int { return len(m.grid) }
func (m *Maze) Cols() int { return len(m.grid[0]) }

// Grid returns a copy of the cell codes.
func (m *Maze) Grid() [][]int {
	return copyGrid(m.grid)
}

func copyGrid(grid [][]int) [][]int {
	out := make([][]int, len(grid))
	for i, row := range grid {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}
