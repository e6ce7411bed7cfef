package game

import "math/rand"

// BoardSize is the board dimension. The classic game is played on 8x8.
const BoardSize = 8

// Board is the 8x8 game board, indexed as [col][row].
// It is a value type: assignment produces an independent deep copy.
type Board [BoardSize][BoardSize]Cell

// NewRandomBoard creates a randomly populated board and an initial selection
// axis, using the classic distribution: roughly 1/11 bananas, 6/11 stones
// and 4/11 bombs, with higher strength values progressively rarer.
func NewRandomBoard(rng *rand.Rand) (Board, Selection) {
	var b Board

	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			var kind CellKind
			switch r := rng.Intn(11); {
			case r == 0:
				kind = Banana
			case r <= 6:
				kind = Stone
			default:
				kind = Bomb
			}

			value := 0
			if kind == Stone || kind == Bomb {
				switch r := rng.Intn(11); {
				case r == 0:
					value = 3
				case r <= 2:
					value = 2
				case r <= 6:
					value = 1
				}
			}

			b[col][row] = Cell{Kind: kind, Value: value}
		}
	}

	sel := Selection{Axis: AxisRow, Index: rng.Intn(BoardSize)}
	if rng.Intn(2) == 0 {
		sel.Axis = AxisColumn
	}

	return b, sel
}

// At returns the cell at (col, row).
func (b *Board) At(col, row int) Cell {
	return b[col][row]
}

// ClearCell empties the cell at (col, row).
func (b *Board) ClearCell(col, row int) {
	b[col][row] = Cell{}
}

// InBounds reports whether (col, row) is a valid board coordinate.
func InBounds(col, row int) bool {
	return col >= 0 && col < BoardSize && row >= 0 && row < BoardSize
}

// LegalMoves returns all moves available on the active selection axis:
// every non-empty cell, in ascending index order. The order is fixed so
// that searches over the move list are reproducible.
func LegalMoves(b *Board, sel Selection) []Move {
	moves := make([]Move, 0, BoardSize)
	for i := 0; i < BoardSize; i++ {
		col, row := sel.Cell(i)
		if b[col][row].Kind != Empty {
			moves = append(moves, Move{Col: col, Row: row})
		}
	}
	return moves
}

// SelectionExhausted reports whether every cell on the selection axis is
// empty, meaning no further moves are possible.
func (b *Board) SelectionExhausted(sel Selection) bool {
	for i := 0; i < BoardSize; i++ {
		col, row := sel.Cell(i)
		if b[col][row].Kind != Empty {
			return false
		}
	}
	return true
}

// PickValue is the immediate worth of picking a cell for the mover.
// Positive is good: stones grow the mover's tower, bombs shrink it,
// bananas are near-neutral but keep the axis.
func PickValue(c Cell) int {
	switch c.Kind {
	case Stone:
		return (c.Value + 1) * 10
	case Bomb:
		return -(c.Value + 1) * 10
	case Banana:
		return 1
	default:
		return 0
	}
}
