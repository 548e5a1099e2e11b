// Package tui provides the Bubble Tea front-end for Mango Snake.
// It handles the terminal UI loop, input mapping, rendering, and the SSH
// server that runs one session model per connection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message at the
// given rate. The loop stops when the model stops rescheduling it.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
