package mazega

import (
	"math/rand"
	"strconv"
)

// Move is a single gene: one step in one of the four cardinal directions.
type Move int

const (
	Up    Move = 1
	Left  Move = 2
	Right Move = 3
	Down  Move = 4
)

// Moves lists every valid move in code order.
var Moves = [...]Move{Up, Left, Right, Down}

// Valid reports whether m is one of the four move codes.
func (m Move) Valid() bool {
	return m >= Up && m <= Down
}

// Offset returns the row and column delta of the move.
func (m Move) Offset() (dx, dy int) {
	switch m {
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	}
	return 0, 0
}

// String renders the numeric move code.
func (m Move) String() string {
	return strconv.Itoa(int(m))
}

// Name returns a readable direction name.
func (m Move) Name() string {
	switch m {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "invalid"
}

// RandomMove draws one of the four moves uniformly.
func RandomMove(rng *rand.Rand) Move {
	return Moves[rng.Intn(len(Moves))]
}
