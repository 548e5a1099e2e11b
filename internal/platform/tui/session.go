package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mango-snake/internal/config"
	"github.com/vovakirdan/mango-snake/internal/core"
	"github.com/vovakirdan/mango-snake/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for both local menu play and SSH sessions.
type SessionModel struct {
	store      *storage.Store
	snakeCfg   config.SnakeConfig
	config     core.RuntimeConfig
	logger     *log.Logger
	username   string
	sessionID  uuid.UUID
	current    sessionScreen
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model. store and logger may be nil.
func NewSessionModel(store *storage.Store, snakeCfg config.SnakeConfig, cfg core.RuntimeConfig, logger *log.Logger, username string) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sessionID := uuid.New()

	m := SessionModel{
		store:     store,
		snakeCfg:  snakeCfg,
		config:    cfg,
		logger:    logger.With("session", sessionID.String()[:8], "user", username),
		username:  username,
		sessionID: sessionID,
	}
	m.menu = NewMenuModel(snakeCfg.Appearance.Character, m.storedHighScore(), cfg)
	return m
}

// storedHighScore returns the persisted record, or 0 without a store.
func (m SessionModel) storedHighScore() int {
	if m.store == nil {
		return 0
	}
	hs, err := m.store.HighScore(storage.DefaultGameID)
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return hs
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		return m.startGame()

	case ChoiceScores:
		sb := NewScoreboardModel(m.store, m.logger, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.current = screenScores
		return m, sb.Init()
	}

	return m, cmd
}

// startGame builds a game with the character picked in the menu.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	cfg := m.snakeCfg
	cfg.Appearance.Character = m.menu.Character()
	m.snakeCfg.Appearance.Character = cfg.Appearance.Character

	gm, err := NewGameModel(cfg, GameOptions{
		Store:    m.store,
		Logger:   m.logger,
		Runtime:  m.config,
		Embedded: true,
	})
	if err != nil {
		m.logger.Error("could not start game", "error", err)
		m.menu = NewMenuModel(cfg.Appearance.Character, m.storedHighScore(), m.config)
		return m, nil
	}

	m.logger.Info("game started", "character", cfg.Appearance.Character)
	m.gameModel = &gm
	m.current = screenGame
	return m, gm.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.logger.Info("game left", "score", m.gameModel.Game().Score())
		m.gameModel = nil
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// backToMenu resets the menu, keeping the chosen character.
func (m *SessionModel) backToMenu() {
	m.current = screenMenu
	m.menu = NewMenuModel(m.snakeCfg.Appearance.Character, m.storedHighScore(), m.config)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenScores:
		if m.scoreboard != nil {
			return m.scoreboard.View()
		}
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, snakeCfg config.SnakeConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(store, snakeCfg, cfg, logger, "local")

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
