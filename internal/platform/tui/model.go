package tui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mango-snake/internal/config"
	"github.com/vovakirdan/mango-snake/internal/core"
	"github.com/vovakirdan/mango-snake/internal/games/snake"
	"github.com/vovakirdan/mango-snake/internal/storage"
)

// maxFrameDelta caps the time fed to the game after a stall so a slow
// frame cannot fire several ticks' worth of movement at once.
const maxFrameDelta = 250 * time.Millisecond

// bellHold is how long the bell stays in the view. The renderer only
// flushes the latest view on its own ticker, so a bell that lives for a
// single frame can be overwritten before it is written out.
const bellHold = 50 * time.Millisecond

// bellFrames converts bellHold to frames at fps, never fewer than two.
func bellFrames(fps int) int {
	n := int((bellHold*time.Duration(fps) + time.Second - 1) / time.Second)
	return max(n, 2)
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Store    *storage.Store // Optional; nil keeps scores in memory
	Logger   *log.Logger    // Optional; nil discards
	Runtime  core.RuntimeConfig
	Embedded bool // Back returns to the menu instead of quitting
}

// GameModel is the Bubble Tea model for one game of snake.
type GameModel struct {
	game      *snake.Game
	notifier  *feedbackNotifier
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	feedback  config.FeedbackConfig
	keyMapper *KeyMapper
	help      help.Model
	look      Look

	lastFrame  time.Time
	bell       int // Frames left with the bell in the view
	runSaved   bool
	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game from cfg and wraps it in a model.
func NewGameModel(cfg config.SnakeConfig, opts GameOptions) (GameModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.FPS <= 0 {
		rt.FPS = core.DefaultConfig().FPS
	}

	notifier := newFeedbackNotifier()
	gameOpts := []snake.Option{
		snake.WithNotifier(notifier),
		snake.WithLogger(logger),
	}
	if rt.Seed != 0 {
		gameOpts = append(gameOpts, snake.WithSeed(rt.Seed))
	}
	if opts.Store != nil {
		gameOpts = append(gameOpts, snake.WithHighScoreStore(storage.NewHighScores(opts.Store, storage.DefaultGameID)))
	}

	game, err := snake.New(cfg, gameOpts...)
	if err != nil {
		return GameModel{}, err
	}

	h := help.New()
	h.ShowAll = false
	fixed := game.Config()

	return GameModel{
		game:      game,
		notifier:  notifier,
		screen:    core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 0)),
		store:     opts.Store,
		logger:    logger,
		config:    rt,
		feedback:  fixed.Feedback,
		keyMapper: NewKeyMapper(),
		help:      h,
		look:      NewLook(fixed.Appearance.Character, fixed.Appearance.Food),
		embedded:  opts.Embedded,
	}, nil
}

// Init starts the frame loop and the feedback listener.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.config.FPS), m.notifier.wait())
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case FeedbackMsg:
		m.look.Flash = m.feedback.FlashFrames
		if m.feedback.Bell {
			m.bell = bellFrames(m.config.FPS)
		}
		m.logger.Debug("food consumed", "score", msg.Score, "length", msg.Length)
		return m, m.notifier.wait()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	if d, ok := action.Direction(); ok {
		m.game.RequestDirection(d)
		return m, nil
	}

	switch action {
	case ActionQuit:
		m.saveRun()
		m.notifier.stop()
		m.quitting = true
		return m, tea.Quit

	case ActionBack:
		m.saveRun()
		m.notifier.stop()
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case ActionPause:
		m.game.TogglePause()

	case ActionReset:
		m.saveRun()
		m.game.Reset()
		m.runSaved = false
		m.look.Flash = 0
	}

	return m, nil
}

// handleFrame feeds elapsed time to the game.
func (m GameModel) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	var delta time.Duration
	if !m.lastFrame.IsZero() {
		delta = min(now.Sub(m.lastFrame), maxFrameDelta)
	}
	m.lastFrame = now

	if _, err := m.game.OnFrame(delta); err != nil {
		if errors.Is(err, snake.ErrBoardFull) {
			m.logger.Info("board full, game won", "score", m.game.Score())
		} else {
			m.logger.Error("tick failed", "error", err)
		}
	}

	if m.bell > 0 {
		m.bell--
	}
	if m.look.Flash > 0 {
		m.look.Flash--
		if m.look.Flash == 0 {
			// The HUD line changes here and would be written out again.
			m.bell = 0
		}
	}

	if m.game.Phase() == snake.PhaseGameOver {
		m.saveRun()
	}

	return m, frameCmd(m.config.FPS)
}

// saveRun records the current game once it has a score.
// Called on game over and when a game is abandoned.
func (m *GameModel) saveRun() {
	if m.runSaved {
		return
	}
	snap := m.game.Snapshot()
	if snap.Score == 0 {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	runID := uuid.New()
	_, err := m.store.SaveRun(storage.RunEntry{
		RunID:     runID,
		Score:     snap.Score,
		Length:    len(snap.Body),
		Character: string(m.look.Character),
	})
	if err != nil {
		m.logger.Warn("could not save run", "run", runID, "error", err)
		return
	}
	m.logger.Info("run recorded", "run", runID, "score", snap.Score, "length", len(snap.Body))
}

// Game returns the wrapped game.
func (m GameModel) Game() *snake.Game {
	return m.game
}

// BackToMenu returns true if the user wants to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	DrawBoard(m.screen, m.game.Snapshot(), m.game.Grid(), m.look)
	out := RenderScreen(m.screen)
	if m.bell > 0 {
		out = "\a" + out
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpLine := helpStyle.Render(m.help.View(m.keyMapper.Keys()))
	return out + "\n" + lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, helpLine)
}

// Run starts a standalone Bubble Tea program for one game.
func Run(cfg config.SnakeConfig, opts GameOptions) error {
	opts.Embedded = false
	model, err := NewGameModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
