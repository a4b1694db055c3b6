package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"quizdrill/internal/quiz"
)

// tickMsg drives the elapsed-time display while the session timer runs.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(quiz.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
