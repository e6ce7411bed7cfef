package ai

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/laserlicht/toweroops/internal/game"
)

func randomPosition(seed int64) Position {
	rng := rand.New(rand.NewSource(seed))
	board, sel := game.NewRandomBoard(rng)
	return Position{
		Board:     board,
		Selection: sel,
		TowerSelf: rng.Intn(game.MaxTower),
		TowerOpp:  rng.Intn(game.MaxTower),
	}
}

func containsMove(moves []game.Move, m game.Move) bool {
	for _, cand := range moves {
		if cand == m {
			return true
		}
	}
	return false
}

func TestChooseMoveReturnsLegalMove(t *testing.T) {
	levels := []Level{LevelRandom, LevelGreedy, LevelNormal, LevelHard, LevelExpert}

	for seed := int64(1); seed <= 10; seed++ {
		pos := randomPosition(seed)
		legal := game.LegalMoves(&pos.Board, pos.Selection)

		for _, level := range levels {
			mv, err := ChooseMove(pos, level, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("seed %d level %v: unexpected error %v", seed, level, err)
			}
			if !containsMove(legal, mv) {
				t.Errorf("seed %d level %v: move %v is not legal", seed, level, mv)
			}
		}
	}
}

func TestChooseMoveNoMovesAvailable(t *testing.T) {
	var pos Position // empty board, empty axis

	for _, level := range []Level{LevelRandom, LevelGreedy, LevelExpert} {
		_, err := ChooseMove(pos, level, rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrNoMoves) {
			t.Errorf("level %v: error = %v, want ErrNoMoves", level, err)
		}
	}
}

func TestChooseMoveDeterministic(t *testing.T) {
	for _, level := range []Level{LevelRandom, LevelGreedy, LevelNormal, LevelHard, LevelExpert} {
		pos := randomPosition(99)

		m1, err1 := ChooseMove(pos, level, rand.New(rand.NewSource(5)))
		m2, err2 := ChooseMove(pos, level, rand.New(rand.NewSource(5)))

		if err1 != nil || err2 != nil {
			t.Fatalf("level %v: errors %v / %v", level, err1, err2)
		}
		if m1 != m2 {
			t.Errorf("level %v: identical inputs gave %v then %v", level, m1, m2)
		}
	}
}

func TestChooseMoveDoesNotModifyPosition(t *testing.T) {
	pos := randomPosition(3)
	before := pos

	if _, err := ChooseMove(pos, LevelExpert, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}

	if pos != before {
		t.Error("ChooseMove must not modify the caller's position")
	}
}

func TestGreedyPicksBestImmediateValue(t *testing.T) {
	var b game.Board
	b[0][0] = game.Cell{Kind: game.Bomb, Value: 2}
	b[3][0] = game.Cell{Kind: game.Stone, Value: 3}
	b[5][0] = game.Cell{Kind: game.Stone, Value: 1}
	b[7][0] = game.Cell{Kind: game.Banana}

	pos := Position{Board: b, Selection: game.Selection{Axis: game.AxisRow, Index: 0}}

	mv, err := ChooseMove(pos, LevelGreedy, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}
	if (mv != game.Move{Col: 3, Row: 0}) {
		t.Errorf("Greedy picked %v, want the value-3 stone at (3,0)", mv)
	}
}

func TestGreedyTieBreaksFirstInOrder(t *testing.T) {
	var b game.Board
	b[2][4] = game.Cell{Kind: game.Stone, Value: 2}
	b[6][4] = game.Cell{Kind: game.Stone, Value: 2}

	pos := Position{Board: b, Selection: game.Selection{Axis: game.AxisRow, Index: 4}}

	mv, err := ChooseMove(pos, LevelGreedy, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}
	if (mv != game.Move{Col: 2, Row: 4}) {
		t.Errorf("Tie must go to the first move in enumeration order, got %v", mv)
	}
}

func TestMinimaxTakesImmediateWin(t *testing.T) {
	var b game.Board
	b[1][0] = game.Cell{Kind: game.Stone, Value: 0} // +1, no win
	b[4][0] = game.Cell{Kind: game.Stone, Value: 3} // +4, wins
	b[6][0] = game.Cell{Kind: game.Banana}

	pos := Position{
		Board:     b,
		Selection: game.Selection{Axis: game.AxisRow, Index: 0},
		TowerSelf: 17,
	}

	for _, level := range []Level{LevelNormal, LevelHard, LevelExpert} {
		mv, err := ChooseMove(pos, level, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("level %v: ChooseMove failed: %v", level, err)
		}
		if (mv != game.Move{Col: 4, Row: 0}) {
			t.Errorf("level %v: picked %v, want the winning stone at (4,0)", level, mv)
		}
	}
}

func TestMinimaxAvoidsHandingOverTheWin(t *testing.T) {
	// The opponent is one stone away from winning. Every move flips the
	// axis; the engine must not pick the column that leaves the opponent
	// a big stone to finish with.
	var b game.Board
	b[0][0] = game.Cell{Kind: game.Stone, Value: 1} // flips to column 0
	b[0][3] = game.Cell{Kind: game.Stone, Value: 3} // opponent would win here
	b[5][0] = game.Cell{Kind: game.Stone, Value: 1} // flips to column 5
	b[5][3] = game.Cell{Kind: game.Bomb, Value: 2}

	pos := Position{
		Board:     b,
		Selection: game.Selection{Axis: game.AxisRow, Index: 0},
		TowerOpp:  17,
	}

	mv, err := ChooseMove(pos, LevelHard, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("ChooseMove failed: %v", err)
	}
	if (mv == game.Move{Col: 0, Row: 0}) {
		t.Errorf("Engine handed the opponent a winning stone with %v", mv)
	}
}

// plainMinimax is an unpruned reference search used to verify that
// alpha-beta pruning never changes the chosen move.
func plainMinimax(pos Position, depth int, maximizing bool) int {
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
			best = max(best, plainMinimax(applied(pos, m, true), depth-1, false))
		}
		return best
	}

	best := math.MaxInt
	for _, m := range moves {
		best = min(best, plainMinimax(applied(pos, m, false), depth-1, true))
	}
	return best
}

func plainMinimaxMove(pos Position, depth int) game.Move {
	moves := game.LegalMoves(&pos.Board, pos.Selection)
	best := moves[0]
	bestScore := math.MinInt

	for _, m := range moves {
		child := applied(pos, m, true)
		if child.TowerSelf >= game.MaxTower {
			return m
		}
		if score := plainMinimax(child, depth-1, false); score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		pos := randomPosition(seed)

		for _, depth := range []int{2, 4} {
			moves := game.LegalMoves(&pos.Board, pos.Selection)
			if len(moves) == 0 {
				continue
			}

			pruned := minimaxMove(pos, moves, depth)
			plain := plainMinimaxMove(pos, depth)

			if pruned != plain {
				t.Errorf("seed %d depth %d: alpha-beta chose %v, plain minimax chose %v",
					seed, depth, pruned, plain)
			}
		}
	}
}

func TestLevelDepth(t *testing.T) {
	tests := []struct {
		level Level
		depth int
	}{
		{LevelRandom, 0},
		{LevelGreedy, 0},
		{LevelNormal, 2},
		{LevelHard, 4},
		{LevelExpert, 8},
	}

	for _, tc := range tests {
		if got := tc.level.Depth(); got != tc.depth {
			t.Errorf("Level %v Depth() = %d, want %d", tc.level, got, tc.depth)
		}
	}
}

func TestLevelNames(t *testing.T) {
	names := map[Level]string{
		LevelRandom: "beginner",
		LevelGreedy: "easy",
		LevelNormal: "normal",
		LevelHard:   "hard",
		LevelExpert: "expert",
	}
	for level, want := range names {
		if got := level.String(); got != want {
			t.Errorf("Level %d String() = %q, want %q", level, got, want)
		}
	}
}
