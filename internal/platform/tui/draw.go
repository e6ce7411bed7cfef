package tui

import (
	"fmt"

	"github.com/laserlicht/toweroops/internal/core"
	"github.com/laserlicht/toweroops/internal/game"
)

// Board layout constants, in screen cells.
const (
	boardX     = 2
	boardY     = 2
	cellWidth  = 4
	towerMaxH  = game.MaxTower
	towerYouX  = 42
	towerCPUX  = 52
	towerBaseY = boardY + towerMaxH + 1
)

// draw renders the full game view into the screen buffer.
func (m GameModel) draw(s *core.Screen) {
	s.Clear()

	s.DrawTextCentered(0, "T O W E R   O O P S !")

	m.drawBoard(s)
	m.drawTowers(s)
	m.drawStatus(s)
}

// drawBoard renders the 8x8 grid with the active axis and cursor.
func (m GameModel) drawBoard(s *core.Screen) {
	box := core.NewRect(boardX, boardY, game.BoardSize*cellWidth+3, game.BoardSize+2)
	s.DrawBox(box)

	sel := m.state.Selection
	for col := 0; col < game.BoardSize; col++ {
		for row := 0; row < game.BoardSize; row++ {
			cell := m.state.Board.At(col, row)
			x := boardX + 2 + col*cellWidth
			y := boardY + 1 + row

			onAxis := (sel.Axis == game.AxisRow && row == sel.Index) ||
				(sel.Axis == game.AxisColumn && col == sel.Index)

			symbol, color := cellFace(cell)
			if !onAxis {
				color = core.ColorGray
			}
			if m.tip != nil && m.tip.Col == col && m.tip.Row == row {
				color = core.ColorBrightYellow
			}

			s.DrawTextColored(x, y, symbol, color)

			// Cursor brackets on the cell the player is aiming at.
			cursorCol, cursorRow := sel.Cell(m.cursor)
			if col == cursorCol && row == cursorRow && !m.state.IsTerminal() {
				s.SetColored(x-1, y, '[', core.ColorBrightWhite)
				s.SetColored(x+2, y, ']', core.ColorBrightWhite)
			}
		}
	}
}

// cellFace returns the two-rune face and color for a board cell.
func cellFace(c game.Cell) (string, core.Color) {
	switch c.Kind {
	case game.Stone:
		return fmt.Sprintf("#%d", c.Value), core.ColorGreen
	case game.Bomb:
		return fmt.Sprintf("*%d", c.Value), core.ColorRed
	case game.Banana:
		return "@ ", core.ColorYellow
	default:
		return ". ", core.ColorGray
	}
}

// drawTowers renders both towers as bottom-anchored bars with labels.
func (m GameModel) drawTowers(s *core.Screen) {
	m.drawTower(s, towerYouX, "You", m.state.TowerPlayer, core.ColorCyan)
	m.drawTower(s, towerCPUX, "CPU", m.state.TowerComputer, core.ColorMagenta)
}

func (m GameModel) drawTower(s *core.Screen, x int, label string, height int, color core.Color) {
	s.DrawTextColored(x, boardY-1, fmt.Sprintf("%s %2d/%d", label, height, game.MaxTower), color)

	// Empty shaft
	s.DrawVLine(x+1, towerBaseY-towerMaxH, towerMaxH, '·', core.ColorGray)

	// Filled part, bottom-anchored
	h := core.Clamp(height, 0, towerMaxH)
	if h > 0 {
		s.DrawVLine(x+1, towerBaseY-h, h, '█', color)
	}
}

// drawStatus renders the HUD and footer.
func (m GameModel) drawStatus(s *core.Screen) {
	infoX := towerCPUX + 10
	s.DrawTextColored(infoX, boardY, fmt.Sprintf("Level: %s", m.level), core.ColorWhite)
	s.DrawTextColored(infoX, boardY+1, fmt.Sprintf("Moves: %d", m.state.MovesMade), core.ColorWhite)

	stats := m.state.Stats
	s.DrawTextColored(infoX, boardY+3, fmt.Sprintf("W %d  L %d  D %d",
		stats.PlayerWins, stats.ComputerWins, stats.Draws), core.ColorGray)

	msgY := boardY + game.BoardSize + 3
	switch {
	case m.state.Outcome == game.OutcomeWon:
		s.DrawTextColored(boardX, msgY, "You won! Press N for a new round.", core.ColorBrightGreen)
	case m.state.Outcome == game.OutcomeLost:
		s.DrawTextColored(boardX, msgY, "You lost. Press N for a new round.", core.ColorBrightRed)
	case m.state.Outcome == game.OutcomeDrawn:
		s.DrawTextColored(boardX, msgY, "Draw. Press N for a new round.", core.ColorBrightYellow)
	case m.thinking:
		s.DrawTextColored(boardX, msgY, "Computer is thinking...", core.ColorGray)
	case m.tip != nil:
		s.DrawTextColored(boardX, msgY,
			fmt.Sprintf("Tip: pick the highlighted cell (%d,%d)", m.tip.Col, m.tip.Row),
			core.ColorBrightYellow)
	default:
		s.DrawTextColored(boardX, msgY, "Your move: pick a cell on the highlighted line.", core.ColorWhite)
	}

	footer := "Arrows: Move  |  Enter: Pick  |  T: Tip  |  G: Surrender  |  N: New  |  Q: Quit"
	s.DrawTextColored(boardX, s.Height()-1, footer, core.ColorGray)
}
