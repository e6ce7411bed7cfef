package tui

import (
	"math/rand"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/laserlicht/toweroops/internal/ai"
	"github.com/laserlicht/toweroops/internal/core"
	"github.com/laserlicht/toweroops/internal/game"
	"github.com/laserlicht/toweroops/internal/storage"
)

// roundCounter issues process-unique round numbers. Uniqueness across model
// instances matters for SSH sessions, where one Bubble Tea program outlives
// individual rounds and a result computed for an abandoned round could
// otherwise be mistaken for one belonging to a later round.
var roundCounter atomic.Int64

// aiMoveMsg delivers the computer's chosen move back into the update loop.
// round identifies the round the move was computed for, so a result that
// arrives after the round was replaced is discarded instead of applied.
type aiMoveMsg struct {
	round int64
	move  game.Move
	err   error
}

// tipMsg delivers a suggested move for the player.
type tipMsg struct {
	round int64
	move  game.Move
	err   error
}

// GameModel is the Bubble Tea model for a round against the computer.
type GameModel struct {
	state      *game.GameState
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	level      ai.Level
	thinkDelay time.Duration
	rng        *rand.Rand
	keyMapper  *KeyMapper
	cursor     int   // Index along the active axis
	round      int64 // Replaced on every new round to invalidate in-flight results
	tip        *game.Move
	thinking   bool // Computer's reply is pending
	saved      bool // Whether the finished round has been recorded
	started    time.Time
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for a fresh round at the given difficulty.
func NewGameModel(store *storage.Store, cfg core.RuntimeConfig, level ai.Level, thinkDelay time.Duration) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	return GameModel{
		state:      game.NewGameState(rng),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		level:      level,
		thinkDelay: thinkDelay,
		rng:        rng,
		keyMapper:  NewKeyMapper(),
		round:      roundCounter.Add(1),
		started:    time.Now(),
	}
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case aiMoveMsg:
		return m.handleAIMove(msg)

	case tipMsg:
		if msg.round == m.round && msg.err == nil {
			move := msg.move
			m.tip = &move
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Round control works regardless of whose turn it is.
	switch action {
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionNewGame, core.ActionRestart:
		return m.startNewRound()
	}

	// Board input is locked while the computer thinks or after game over.
	if m.thinking || m.state.IsTerminal() {
		return m, nil
	}

	switch action {
	case core.ActionUp:
		if m.state.Selection.Axis == game.AxisColumn {
			m.cursor = core.Max(m.cursor-1, 0)
		}
	case core.ActionDown:
		if m.state.Selection.Axis == game.AxisColumn {
			m.cursor = core.Min(m.cursor+1, game.BoardSize-1)
		}
	case core.ActionLeft:
		if m.state.Selection.Axis == game.AxisRow {
			m.cursor = core.Max(m.cursor-1, 0)
		}
	case core.ActionRight:
		if m.state.Selection.Axis == game.AxisRow {
			m.cursor = core.Min(m.cursor+1, game.BoardSize-1)
		}

	case core.ActionConfirm:
		return m.playerMove()

	case core.ActionTip:
		return m, m.tipCmd()

	case core.ActionSurrender:
		m.state.Surrender()
		m.saveIfFinished()
	}

	return m, nil
}

// playerMove applies the move under the cursor and schedules the reply.
func (m GameModel) playerMove() (tea.Model, tea.Cmd) {
	col, row := m.state.Selection.Cell(m.cursor)
	move := game.Move{Col: col, Row: row}

	if err := m.state.MakeMove(move, game.MoverPlayer); err != nil {
		// Empty cell or off-axis pick, nothing happens.
		return m, nil
	}

	m.tip = nil
	m.cursorToSelection(move)

	if m.state.IsTerminal() {
		m.saveIfFinished()
		return m, nil
	}

	m.thinking = true
	return m, m.aiMoveCmd()
}

// handleAIMove applies the computer's reply.
func (m GameModel) handleAIMove(msg aiMoveMsg) (tea.Model, tea.Cmd) {
	if msg.round != m.round {
		// Computed for a round that has since been replaced.
		return m, nil
	}
	m.thinking = false

	if msg.err != nil {
		// No moves left: MakeMove has already finished the round on the
		// player's turn, so this only guards against stale messages.
		return m, nil
	}

	if err := m.state.MakeMove(msg.move, game.MoverComputer); err != nil {
		return m, nil
	}

	m.cursorToSelection(msg.move)
	m.saveIfFinished()
	return m, nil
}

// cursorToSelection places the cursor on the new axis at the picked cell.
func (m *GameModel) cursorToSelection(move game.Move) {
	if m.state.Selection.Axis == game.AxisColumn {
		m.cursor = move.Row
	} else {
		m.cursor = move.Col
	}
}

// startNewRound begins a fresh round, keeping cumulative statistics.
// Taking a new round number orphans any search still running for the
// previous round; its result is dropped when it arrives.
func (m GameModel) startNewRound() (tea.Model, tea.Cmd) {
	m.state.NewRound(m.rng)
	m.round = roundCounter.Add(1)
	m.cursor = 0
	m.tip = nil
	m.thinking = false
	m.saved = false
	m.started = time.Now()
	return m, nil
}

// aiMoveCmd computes the computer's reply off the update loop. The position
// snapshot and a derived rand source are taken before the goroutine starts.
func (m *GameModel) aiMoveCmd() tea.Cmd {
	pos := ai.Position{
		Board:     m.state.Board,
		Selection: m.state.Selection,
		TowerSelf: m.state.TowerComputer,
		TowerOpp:  m.state.TowerPlayer,
	}
	round := m.round
	level := m.level
	delay := m.thinkDelay
	rng := rand.New(rand.NewSource(m.rng.Int63()))

	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		move, err := ai.ChooseMove(pos, level, rng)
		return aiMoveMsg{round: round, move: move, err: err}
	}
}

// tipCmd computes a suggested move for the player at full strength.
func (m *GameModel) tipCmd() tea.Cmd {
	pos := ai.Position{
		Board:     m.state.Board,
		Selection: m.state.Selection,
		TowerSelf: m.state.TowerPlayer,
		TowerOpp:  m.state.TowerComputer,
	}
	round := m.round
	rng := rand.New(rand.NewSource(m.rng.Int63()))

	return func() tea.Msg {
		move, err := ai.ChooseMove(pos, ai.MaxLevel, rng)
		return tipMsg{round: round, move: move, err: err}
	}
}

// saveIfFinished records the finished round once.
func (m *GameModel) saveIfFinished() {
	if m.saved || !m.state.IsTerminal() {
		return
	}
	m.saved = true

	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveMatch(storage.MatchRecord{
		Outcome:       m.state.Outcome.String(),
		AILevel:       m.level.String(),
		Moves:         m.state.MovesMade,
		PlayerTower:   m.state.TowerPlayer,
		ComputerTower: m.state.TowerComputer,
		DurationSecs:  int(time.Since(m.started).Seconds()),
	})
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.draw(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a round loop.
// Returns true if the user wants to go back to the menu, false on quit.
func Run(store *storage.Store, cfg core.RuntimeConfig, level ai.Level, thinkDelay time.Duration) (goBack bool, err error) {
	model := NewGameModel(store, cfg, level, thinkDelay)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(GameModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
