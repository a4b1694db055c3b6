package history

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"quizdrill/internal/quiz"
	"quizdrill/internal/router"
	"quizdrill/internal/screen"
	"quizdrill/internal/ui/layout"
	"quizdrill/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []quiz.Session
}

// HistoryScreen lists past sessions, newest first, with expandable
// per-question detail.
type HistoryScreen struct {
	engine   *quiz.Engine
	sessions []quiz.Session
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(engine *quiz.Engine) *HistoryScreen {
	return &HistoryScreen{
		engine:   engine,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		log := s.engine.Sessions().LoadHistory()
		// Newest first.
		reversed := make([]quiz.Session, 0, len(log))
		for i := len(log) - 1; i >= 0; i-- {
			reversed = append(reversed, log[i])
		}
		return historyLoadedMsg{Sessions: reversed}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.sessions = msg.Sessions
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		done, correct, wrong := tallySession(&sess)

		var accuracy float64
		if correct+wrong > 0 {
			accuracy = float64(correct) / float64(correct+wrong) * 100
		}

		category := sess.Mode.Category
		if category == "" {
			category = "all"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s/%s/%s  %d answered  %.0f%% accuracy",
			prefix, sessionDate(&sess),
			sess.Mode.StudyMode, sess.Mode.PoolMode, category,
			done, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, it := range sess.Items {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					itemLine(it)))
				b.WriteString("\n")
			}
			if len(sess.Items) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No answers this session")))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func itemLine(it *quiz.SessionItem) string {
	verdict := "·"
	verdictStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if it.IsCorrect != nil {
		if *it.IsCorrect {
			verdict, verdictStyle = "✓", theme.Correct
		} else {
			verdict, verdictStyle = "✗", theme.Incorrect
		}
	}

	chosen := "—"
	if it.Chosen != nil && *it.Chosen != "" {
		chosen = *it.Chosen
	}

	mark := " "
	if it.Marked {
		mark = "★"
	}

	rest := fmt.Sprintf(" %s  #%s  answered %s  %s",
		mark, it.QID, chosen, quiz.FormatMMSS(it.Seconds))
	return "    " + verdictStyle.Render(verdict) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(rest)
}

// sessionDate renders the session's creation day from its millisecond id.
func sessionDate(s *quiz.Session) string {
	ms, err := strconv.ParseInt(s.ID, 10, 64)
	if err != nil {
		return s.StartedAt
	}
	return time.UnixMilli(ms).Format("Jan 02, 2006 15:04")
}

func tallySession(s *quiz.Session) (done, correct, wrong int) {
	for _, it := range s.Items {
		if !it.Answered() {
			continue
		}
		done++
		if it.IsCorrect == nil {
			continue
		}
		if *it.IsCorrect {
			correct++
		} else {
			wrong++
		}
	}
	return done, correct, wrong
}
