package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdrill/internal/quiz"
	"quizdrill/internal/router"
	"quizdrill/internal/screen"
	"quizdrill/internal/screens/history"
	"quizdrill/internal/screens/play"
	"quizdrill/internal/screens/setup"
	"quizdrill/internal/ui/components"
	"quizdrill/internal/ui/theme"
)

// HomeScreen is the entry screen: bank stats plus the main menu.
type HomeScreen struct {
	engine *quiz.Engine
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(engine *quiz.Engine) *HomeScreen {
	h := &HomeScreen{engine: engine}

	items := []components.MenuItem{
		{Label: "NEW SESSION", Action: func() tea.Cmd {
			if len(engine.Bank()) == 0 {
				h.notice = "No questions yet. Import a bank with: quizdrill import <file>"
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(engine)}
			}
		}},
		{Label: "RESUME LAST", Action: func() tea.Cmd {
			if err := engine.Resume(); err != nil {
				h.notice = "No previous session to resume."
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(engine)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(engine)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		h.notice = ""
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Q U I Z D R I L L"))
	sections = append(sections, theme.Subtitle.Width(width).Render("offline question-bank practice"))
	sections = append(sections, "")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderStats()))
	sections = append(sections, "")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if h.notice != "" {
		sections = append(sections, theme.Notice.Width(width).Align(lipgloss.Center).Render(h.notice))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderStats() string {
	bankSize := len(h.engine.Bank())
	catCount := len(h.engine.Categories())
	sessCount := len(h.engine.Sessions().LoadHistory())

	line := fmt.Sprintf("%d questions   %d categories   %d sessions",
		bankSize, catCount, sessCount)

	return theme.Card.Render(theme.Body.Render(line))
}
