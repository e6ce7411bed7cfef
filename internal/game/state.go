package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// MaxTower is the tower height that wins the round. Tower heights are
// clamped to [0, MaxTower] when moves are applied.
const MaxTower = 20

// ErrInvalidMove is returned when a requested move is not in the legal set.
// It is surfaced to the caller and never silently applied.
var ErrInvalidMove = errors.New("game: move is not legal in the current position")

// GameState holds everything needed for one round: the board, the active
// selection, both tower heights, and cumulative statistics across rounds.
type GameState struct {
	Board         Board
	Selection     Selection
	TowerPlayer   int
	TowerComputer int
	Outcome       Outcome
	MovesMade     int
	Stats         Statistics
}

// NewGameState creates a fresh state with a random board.
func NewGameState(rng *rand.Rand) *GameState {
	g := &GameState{}
	g.NewRound(rng)
	return g
}

// NewRound starts a fresh round, keeping cumulative statistics.
func (g *GameState) NewRound(rng *rand.Rand) {
	g.Board, g.Selection = NewRandomBoard(rng)
	g.TowerPlayer = 0
	g.TowerComputer = 0
	g.Outcome = OutcomeRunning
	g.MovesMade = 0
}

// IsValidMove reports whether picking (col, row) is legal in the current
// position: the round is running, the cell lies on the active axis, and
// the cell is not empty.
func (g *GameState) IsValidMove(m Move) bool {
	if g.Outcome != OutcomeRunning {
		return false
	}
	if !InBounds(m.Col, m.Row) {
		return false
	}
	onAxis := false
	switch g.Selection.Axis {
	case AxisRow:
		onAxis = m.Row == g.Selection.Index
	case AxisColumn:
		onAxis = m.Col == g.Selection.Index
	}
	return onAxis && g.Board[m.Col][m.Row].Kind != Empty
}

// IsTerminal reports whether the round is over.
func (g *GameState) IsTerminal() bool {
	return g.Outcome != OutcomeRunning
}

// MakeMove applies a move for the given mover. It returns ErrInvalidMove if
// the move is not in the legal set. A legal move adjusts the mover's tower
// (stones build it up, bombs knock it down, bananas leave it alone), flips
// the selection axis through the picked cell unless it was a banana, clears
// the cell, and finishes the round when a tower reaches MaxTower or the new
// axis has no cells left.
//
// The caller drives turn order; MakeMove does not trigger the opponent.
func (g *GameState) MakeMove(m Move, mover Mover) error {
	if !g.IsValidMove(m) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidMove, m.Col, m.Row)
	}

	cell := g.Board[m.Col][m.Row]

	tower := &g.TowerPlayer
	if mover == MoverComputer {
		tower = &g.TowerComputer
	}

	switch cell.Kind {
	case Stone:
		*tower = min(*tower+cell.Value+1, MaxTower)
	case Bomb:
		*tower = max(*tower-cell.Value-1, 0)
	}

	// Banana keeps the same axis; anything else flips it through the cell.
	if cell.Kind != Banana {
		if g.Selection.Axis == AxisRow {
			g.Selection = Selection{Axis: AxisColumn, Index: m.Col}
		} else {
			g.Selection = Selection{Axis: AxisRow, Index: m.Row}
		}
	}

	g.Board.ClearCell(m.Col, m.Row)
	g.MovesMade++

	if g.TowerPlayer >= MaxTower {
		g.finish(OutcomeWon)
		return nil
	}
	if g.TowerComputer >= MaxTower {
		g.finish(OutcomeLost)
		return nil
	}

	if g.Board.SelectionExhausted(g.Selection) {
		switch {
		case g.TowerPlayer > g.TowerComputer:
			g.finish(OutcomeWon)
		case g.TowerPlayer < g.TowerComputer:
			g.finish(OutcomeLost)
		default:
			g.finish(OutcomeDrawn)
		}
	}

	return nil
}

// Surrender ends the round in the computer's favor.
func (g *GameState) Surrender() {
	if g.Outcome != OutcomeRunning {
		return
	}
	g.finish(OutcomeLost)
}

func (g *GameState) finish(outcome Outcome) {
	g.Outcome = outcome
	g.Stats.Record(outcome)
}
