package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mango-snake/internal/games/snake"
)

// FeedbackMsg is delivered to the model after the snake eats.
type FeedbackMsg snake.FoodEvent

// feedbackNotifier forwards food events to the Bubble Tea loop. The game
// calls it under its lock, so it never blocks: when the buffer is full the
// event is dropped.
type feedbackNotifier struct {
	events chan snake.FoodEvent
	done   chan struct{}
	once   sync.Once
}

func newFeedbackNotifier() *feedbackNotifier {
	return &feedbackNotifier{
		events: make(chan snake.FoodEvent, 8),
		done:   make(chan struct{}),
	}
}

// FoodConsumed implements snake.Notifier.
func (n *feedbackNotifier) FoodConsumed(ev snake.FoodEvent) {
	select {
	case n.events <- ev:
	default:
	}
}

// wait returns a command that blocks until the next food event or until
// the notifier is stopped.
func (n *feedbackNotifier) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case ev := <-n.events:
			return FeedbackMsg(ev)
		case <-n.done:
			return nil
		}
	}
}

// stop releases any pending wait. Safe to call more than once.
func (n *feedbackNotifier) stop() {
	n.once.Do(func() { close(n.done) })
}
