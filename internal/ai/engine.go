// Package ai implements the computer opponent for Tower Oops!.
//
// Five levels are supported: random, greedy, and minimax with alpha-beta
// pruning at increasing depths. The engine is stateless: each call is a
// pure function of the position and level, plus a caller-supplied rand
// source used only by the random level. Ties are broken by the first move
// encountered in the board's fixed enumeration order, so identical inputs
// always yield identical moves.
package ai

import (
	"errors"
	"math"
	"math/rand"

	"github.com/laserlicht/toweroops/internal/game"
)

// Level selects the opponent strategy.
type Level int

const (
	LevelRandom Level = iota // pick any available cell
	LevelGreedy              // best immediate cell value
	LevelNormal              // minimax, depth 2
	LevelHard                // minimax, depth 4
	LevelExpert              // minimax, depth 8
)

// MaxLevel is the strongest level, used for move tips.
const MaxLevel = LevelExpert

// Depth returns the search depth for a minimax level, or 0 for the
// non-searching levels.
func (l Level) Depth() int {
	switch l {
	case LevelNormal:
		return 2
	case LevelHard:
		return 4
	default:
		if l >= LevelExpert {
			return 8
		}
		return 0
	}
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelRandom:
		return "beginner"
	case LevelGreedy:
		return "easy"
	case LevelNormal:
		return "normal"
	case LevelHard:
		return "hard"
	case LevelExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// ErrNoMoves is returned when the active axis has no cells left. The caller
// must treat this as end-of-game, not as a failure.
var ErrNoMoves = errors.New("ai: no moves available")

// Position is the transient snapshot the engine searches over. TowerSelf is
// the tower of the side to move (the maximizer); TowerOpp the opponent's.
// The board is copied on exploration, so the caller's position is never
// modified.
type Position struct {
	Board     game.Board
	Selection game.Selection
	TowerSelf int
	TowerOpp  int
}

// ChooseMove selects a move for the side to move at the given level.
// It returns ErrNoMoves when the legal move list is empty.
func ChooseMove(pos Position, level Level, rng *rand.Rand) (game.Move, error) {
	moves := game.LegalMoves(&pos.Board, pos.Selection)
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}

	switch level {
	case LevelRandom:
		return moves[rng.Intn(len(moves))], nil
	case LevelGreedy:
		return greedyMove(&pos.Board, moves), nil
	default:
		return minimaxMove(pos, moves, level.Depth()), nil
	}
}

// greedyMove picks the move with the best immediate cell value. The first
// move achieving the best value wins ties.
func greedyMove(b *game.Board, moves []game.Move) game.Move {
	best := moves[0]
	bestScore := math.MinInt
	for _, m := range moves {
		if score := game.PickValue(b.At(m.Col, m.Row)); score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}

// Terminal and evaluation weights. Wins found deeper in the tree score
// slightly lower than immediate wins, so the engine prefers faster wins.
const (
	winScore      = 10000
	finishedScore = 5000
)

func minimaxMove(pos Position, moves []game.Move, depth int) game.Move {
	best := moves[0]
	bestScore := math.MinInt

	for _, m := range moves {
		child := applied(pos, m, true)

		// Instant win: take it without searching further.
		if child.TowerSelf >= game.MaxTower {
			return m
		}

		score := alphabeta(child, depth-1, math.MinInt, math.MaxInt, false)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}

	return best
}

// alphabeta is minimax with alpha-beta pruning. maximizing is true on the
// engine's own plies. At depth cutoff or when the axis runs dry the static
// evaluation decides.
func alphabeta(pos Position, depth, alpha, beta int, maximizing bool) int {
	if pos.TowerSelf >= game.MaxTower {
		return winScore + depth
	}
	if pos.TowerOpp >= game.MaxTower {
		return -winScore - depth
	}

	moves := game.LegalMoves(&pos.Board, pos.Selection)
	if len(moves) == 0 {
		return evaluateFinal(pos)
	}
	if depth <= 0 {
		return evaluate(pos)
	}

	if maximizing {
		best := math.MinInt
		for _, m := range moves {
			score := alphabeta(applied(pos, m, true), depth-1, alpha, beta, false)
			best = max(best, score)
			alpha = max(alpha, score)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, m := range moves {
		score := alphabeta(applied(pos, m, false), depth-1, alpha, beta, true)
		best = min(best, score)
		beta = min(beta, score)
		if alpha >= beta {
			break
		}
	}
	return best
}

// applied returns the position after the given side picks a cell. The board
// is an array value, so pos is already an independent copy of the caller's.
func applied(pos Position, m game.Move, self bool) Position {
	cell := pos.Board.At(m.Col, m.Row)

	tower := &pos.TowerSelf
	if !self {
		tower = &pos.TowerOpp
	}

	switch cell.Kind {
	case game.Stone:
		*tower = min(*tower+cell.Value+1, game.MaxTower)
	case game.Bomb:
		*tower = max(*tower-cell.Value-1, 0)
	}

	if cell.Kind != game.Banana {
		if pos.Selection.Axis == game.AxisRow {
			pos.Selection = game.Selection{Axis: game.AxisColumn, Index: m.Col}
		} else {
			pos.Selection = game.Selection{Axis: game.AxisRow, Index: m.Row}
		}
	}

	pos.Board.ClearCell(m.Col, m.Row)
	return pos
}

// evaluate scores a non-terminal position. Positive favors the engine.
// Tower lead dominates; the value and count of cells on the active axis
// capture what the side to move can reach next, discounted by the overall
// material left for the opponent to exploit.
func evaluate(pos Position) int {
	towerDiff := (pos.TowerSelf - pos.TowerOpp) * 100

	axisValue := 0
	available := 0
	for i := 0; i < game.BoardSize; i++ {
		col, row := pos.Selection.Cell(i)
		cell := pos.Board.At(col, row)
		if cell.Kind != game.Empty {
			axisValue += game.PickValue(cell)
			available++
		}
	}

	boardValue := 0
	for col := 0; col < game.BoardSize; col++ {
		for row := 0; row < game.BoardSize; row++ {
			cell := pos.Board.At(col, row)
			if cell.Kind != game.Empty {
				boardValue += game.PickValue(cell)
			}
		}
	}

	return towerDiff + axisValue*8 - boardValue/game.BoardSize + available*5
}

// evaluateFinal scores a position where the active axis is exhausted:
// the round ends and the taller tower wins.
func evaluateFinal(pos Position) int {
	switch {
	case pos.TowerSelf > pos.TowerOpp:
		return finishedScore
	case pos.TowerSelf < pos.TowerOpp:
		return -finishedScore
	default:
		return 0
	}
}
