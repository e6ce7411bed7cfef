// Package game implements the Tower Oops! board model: the 8x8 grid of
// stones, bombs and bananas, the row/column selection rule, and the state
// of one round between the player and the computer.
//
// The package contains pure logic with no external dependencies. The AI
// explores positions by copying them; Board is an array value type, so
// plain assignment is a deep copy and the caller's state is never touched.
package game

// CellKind is the kind of object occupying a cell on the board.
type CellKind int

const (
	Empty CellKind = iota
	Bomb
	Stone
	Banana
)

// String returns a short name for the cell kind.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Bomb:
		return "bomb"
	case Stone:
		return "stone"
	case Banana:
		return "banana"
	default:
		return "unknown"
	}
}

// Cell is a single cell on the game board. Value is the strength of the
// cell (0-3 for bombs and stones, ignored for banana and empty).
type Cell struct {
	Kind  CellKind
	Value int
}

// Axis selects which direction the next move is constrained to.
type Axis int

const (
	// AxisRow means a full row is active: the mover picks a column in that row.
	AxisRow Axis = iota
	// AxisColumn means a full column is active: the mover picks a row in it.
	AxisColumn
)

// Selection is the active axis for the next move.
type Selection struct {
	Axis  Axis
	Index int
}

// Cell returns the board coordinates of the i-th cell on the selection axis.
func (s Selection) Cell(i int) (col, row int) {
	if s.Axis == AxisRow {
		return i, s.Index
	}
	return s.Index, i
}

// Move identifies the cell a mover picks.
type Move struct {
	Col int
	Row int
}

// Mover identifies whose move is being applied.
type Mover int

const (
	MoverPlayer Mover = iota
	MoverComputer
)

// Outcome is the result of a round from the human player's perspective.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeDrawn
)

// String returns the outcome name used for persistence and display.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeDrawn:
		return "drawn"
	default:
		return "unknown"
	}
}

// Statistics holds cumulative win/loss/draw counts across rounds.
type Statistics struct {
	PlayerWins   int
	ComputerWins int
	Draws        int
}

// Record updates the statistics for a finished round.
func (s *Statistics) Record(outcome Outcome) {
	switch outcome {
	case OutcomeWon:
		s.PlayerWins++
	case OutcomeLost:
		s.ComputerWins++
	case OutcomeDrawn:
		s.Draws++
	}
}

// Reset clears all counters.
func (s *Statistics) Reset() {
	*s = Statistics{}
}
