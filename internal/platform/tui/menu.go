package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mango-snake/internal/config"
	"github.com/vovakirdan/mango-snake/internal/core"
)

// MenuChoice identifies a menu entry.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceCharacter
	ChoiceScores
	ChoiceQuit
)

var menuEntries = []MenuChoice{ChoicePlay, ChoiceCharacter, ChoiceScores, ChoiceQuit}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor    int
	charIndex int
	highScore int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    MenuChoice
}

// NewMenuModel creates a menu with character preselected.
// Unknown characters fall back to the first one.
func NewMenuModel(character string, highScore int, cfg core.RuntimeConfig) MenuModel {
	idx := 0
	for i, c := range config.Characters {
		if c == character {
			idx = i
			break
		}
	}

	return MenuModel{
		charIndex: idx,
		highScore: highScore,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.chosen = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuEntries[m.cursor] == ChoiceCharacter {
			m.cycleCharacter(-1)
		}

	case MenuActionRight:
		if menuEntries[m.cursor] == ChoiceCharacter {
			m.cycleCharacter(1)
		}

	case MenuActionSelect:
		if menuEntries[m.cursor] == ChoiceCharacter {
			m.cycleCharacter(1)
			return m, nil
		}
		m.chosen = menuEntries[m.cursor]

	case MenuActionScoreboard:
		m.chosen = ChoiceScores
	}

	return m, nil
}

func (m *MenuModel) cycleCharacter(step int) {
	n := len(config.Characters)
	m.charIndex = ((m.charIndex+step)%n + n) % n
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M A N G O   S N A K E  🥭"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Record: %d", m.highScore)), m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		var label string
		switch entry {
		case ChoicePlay:
			label = "Play"
		case ChoiceCharacter:
			label = fmt.Sprintf("Character:  < %s >", m.Character())
		case ChoiceScores:
			label = "Scores"
		case ChoiceQuit:
			label = "Quit"
		}

		line := "  " + label
		if i == m.cursor {
			line = activeStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Character  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the entry the user picked, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Character returns the selected character glyph.
func (m MenuModel) Character() string {
	return config.Characters[m.charIndex]
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
