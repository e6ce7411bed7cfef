package game

import (
	"errors"
	"math/rand"
	"testing"
)

// testState builds a running state with an empty board and the given selection.
func testState(sel Selection) *GameState {
	return &GameState{Selection: sel}
}

func TestMakeMoveStone(t *testing.T) {
	g := testState(Selection{Axis: AxisRow, Index: 2})
	g.Board[4][2] = Cell{Kind: Stone, Value: 2}
	g.Board[4][6] = Cell{Kind: Stone, Value: 0} // keeps the new axis alive

	if err := g.MakeMove(Move{Col: 4, Row: 2}, MoverPlayer); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}

	if g.TowerPlayer != 3 {
		t.Errorf("Stone of value 2 should raise the tower by 3, got %d", g.TowerPlayer)
	}
	if g.TowerComputer != 0 {
		t.Errorf("Computer tower should be untouched, got %d", g.TowerComputer)
	}
	if g.Board[4][2].Kind != Empty {
		t.Error("Picked cell should be cleared")
	}
	want := Selection{Axis: AxisColumn, Index: 4}
	if g.Selection != want {
		t.Errorf("Selection should flip to %+v, got %+v", want, g.Selection)
	}
	if g.MovesMade != 1 {
		t.Errorf("MovesMade = %d, want 1", g.MovesMade)
	}
}

func TestMakeMoveBomb(t *testing.T) {
	g := testState(Selection{Axis: AxisColumn, Index: 1})
	g.TowerComputer = 5
	g.Board[1][3] = Cell{Kind: Bomb, Value: 1}
	g.Board[5][3] = Cell{Kind: Stone, Value: 0}

	if err := g.MakeMove(Move{Col: 1, Row: 3}, MoverComputer); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}

	if g.TowerComputer != 3 {
		t.Errorf("Bomb of value 1 should lower the tower by 2, got %d", g.TowerComputer)
	}
	want := Selection{Axis: AxisRow, Index: 3}
	if g.Selection != want {
		t.Errorf("Selection should flip to %+v, got %+v", want, g.Selection)
	}
}

func TestMakeMoveBombFloorsAtZero(t *testing.T) {
	g := testState(Selection{Axis: AxisRow, Index: 0})
	g.TowerPlayer = 1
	g.Board[0][0] = Cell{Kind: Bomb, Value: 3}
	g.Board[0][5] = Cell{Kind: Stone, Value: 0}

	if err := g.MakeMove(Move{Col: 0, Row: 0}, MoverPlayer); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	if g.TowerPlayer != 0 {
		t.Errorf("Tower must not go below zero, got %d", g.TowerPlayer)
	}
}

func TestMakeMoveBananaKeepsAxis(t *testing.T) {
	sel := Selection{Axis: AxisRow, Index: 5}
	g := testState(sel)
	g.Board[2][5] = Cell{Kind: Banana}
	g.Board[6][5] = Cell{Kind: Stone, Value: 1}

	if err := g.MakeMove(Move{Col: 2, Row: 5}, MoverPlayer); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}

	if g.Selection != sel {
		t.Errorf("Banana must keep the axis, got %+v", g.Selection)
	}
	if g.TowerPlayer != 0 {
		t.Errorf("Banana must not change the tower, got %d", g.TowerPlayer)
	}
}

func TestMakeMoveInvalid(t *testing.T) {
	g := testState(Selection{Axis: AxisRow, Index: 2})
	g.Board[4][2] = Cell{Kind: Stone, Value: 1}
	g.Board[4][5] = Cell{Kind: Stone, Value: 1}

	tests := []struct {
		name string
		move Move
	}{
		{"off the axis", Move{Col: 4, Row: 5}},
		{"empty cell on axis", Move{Col: 0, Row: 2}},
		{"out of bounds", Move{Col: 9, Row: 2}},
		{"negative", Move{Col: -1, Row: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.MakeMove(tc.move, MoverPlayer)
			if !errors.Is(err, ErrInvalidMove) {
				t.Errorf("MakeMove(%v) error = %v, want ErrInvalidMove", tc.move, err)
			}
		})
	}

	if g.MovesMade != 0 {
		t.Errorf("Invalid moves must not be applied, MovesMade = %d", g.MovesMade)
	}
}

func TestMakeMoveAfterGameOver(t *testing.T) {
	g := testState(Selection{Axis: AxisRow, Index: 0})
	g.Board[0][0] = Cell{Kind: Stone, Value: 1}
	g.Outcome = OutcomeLost

	if err := g.MakeMove(Move{Col: 0, Row: 0}, MoverPlayer); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("Moves after game over must fail, got %v", err)
	}
}

func TestWinAtMaxTower(t *testing.T) {
	g := testState(Selection{Axis: AxisRow, Index: 0})
	g.TowerPlayer = 18
	g.Board[3][0] = Cell{Kind: Stone, Value: 3}

	if err := g.MakeMove(Move{Col: 3, Row: 0}, MoverPlayer); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}

	if g.TowerPlayer != MaxTower {
		t.Errorf("Tower should be capped at %d, got %d", MaxTower, g.TowerPlayer)
	}
	if g.Outcome != OutcomeWon {
		t.Errorf("Outcome = %v, want won", g.Outcome)
	}
	if g.Stats.PlayerWins != 1 {
		t.Errorf("Statistics should record the win, got %+v", g.Stats)
	}
}

func TestComputerWin(t *testing.T) {
	g := testState(Selection{Axis: AxisColumn, Index: 7})
	g.TowerComputer = 19
	g.Board[7][7] = Cell{Kind: Stone, Value: 0}

	if err := g.MakeMove(Move{Col: 7, Row: 7}, MoverComputer); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	if g.Outcome != OutcomeLost {
		t.Errorf("Outcome = %v, want lost", g.Outcome)
	}
	if g.Stats.ComputerWins != 1 {
		t.Errorf("Statistics should record the loss, got %+v", g.Stats)
	}
}

func TestExhaustedAxisComparesTowers(t *testing.T) {
	tests := []struct {
		name                  string
		towerPlayer, towerCPU int
		want                  Outcome
	}{
		{"player ahead", 5, 3, OutcomeWon},
		{"computer ahead", 2, 9, OutcomeLost},
		{"equal", 4, 4, OutcomeDrawn},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := testState(Selection{Axis: AxisRow, Index: 1})
			g.TowerPlayer = tc.towerPlayer
			g.TowerComputer = tc.towerCPU
			// Last pickable cell: the flipped axis is empty afterwards.
			g.Board[3][1] = Cell{Kind: Banana}

			if err := g.MakeMove(Move{Col: 3, Row: 1}, MoverPlayer); err != nil {
				t.Fatalf("MakeMove failed: %v", err)
			}
			if g.Outcome != tc.want {
				t.Errorf("Outcome = %v, want %v", g.Outcome, tc.want)
			}
		})
	}
}

func TestSurrender(t *testing.T) {
	g := NewGameState(rand.New(rand.NewSource(1)))
	g.Surrender()

	if g.Outcome != OutcomeLost {
		t.Errorf("Outcome after surrender = %v, want lost", g.Outcome)
	}
	if g.Stats.ComputerWins != 1 {
		t.Errorf("Surrender should count as a computer win, got %+v", g.Stats)
	}

	// Surrendering a finished round changes nothing.
	g.Surrender()
	if g.Stats.ComputerWins != 1 {
		t.Errorf("Double surrender must not double-count, got %+v", g.Stats)
	}
}

func TestNewRoundKeepsStatistics(t *testing.T) {
	g := NewGameState(rand.New(rand.NewSource(1)))
	g.Surrender()

	g.NewRound(rand.New(rand.NewSource(2)))

	if g.Outcome != OutcomeRunning {
		t.Errorf("New round should be running, got %v", g.Outcome)
	}
	if g.TowerPlayer != 0 || g.TowerComputer != 0 || g.MovesMade != 0 {
		t.Error("New round should reset towers and move count")
	}
	if g.Stats.ComputerWins != 1 {
		t.Errorf("New round must keep statistics, got %+v", g.Stats)
	}
}

func TestStatisticsRecordAndReset(t *testing.T) {
	var s Statistics
	s.Record(OutcomeWon)
	s.Record(OutcomeWon)
	s.Record(OutcomeLost)
	s.Record(OutcomeDrawn)
	s.Record(OutcomeRunning) // ignored

	if s.PlayerWins != 2 || s.ComputerWins != 1 || s.Draws != 1 {
		t.Errorf("Statistics = %+v, want 2/1/1", s)
	}

	s.Reset()
	if s != (Statistics{}) {
		t.Errorf("Reset should zero the statistics, got %+v", s)
	}
}
