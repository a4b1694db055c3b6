package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdrill/internal/quiz"
	"quizdrill/internal/router"
	"quizdrill/internal/screen"
	"quizdrill/internal/screens/play"
	"quizdrill/internal/ui/components"
	"quizdrill/internal/ui/layout"
	"quizdrill/internal/ui/theme"
)

const (
	fieldPool = iota
	fieldStudy
	fieldCategory
	fieldCount
)

var poolModes = []quiz.PoolMode{quiz.PoolAll, quiz.PoolWrong, quiz.PoolUnseen}

var poolLabels = map[quiz.PoolMode]string{
	quiz.PoolAll:    "whole bank",
	quiz.PoolWrong:  "previously wrong",
	quiz.PoolUnseen: "unseen only",
}

var studyModes = []quiz.StudyMode{quiz.StudyTimed, quiz.StudyReview}

var studyLabels = map[quiz.StudyMode]string{
	quiz.StudyTimed:  "timed (judge at the end)",
	quiz.StudyReview: "review (judge instantly)",
}

// SetupScreen is the new-session form: pool, study mode, category, count.
type SetupScreen struct {
	engine *quiz.Engine

	field      int
	poolIdx    int
	studyIdx   int
	categories []string // "" first entry means all
	catIdx     int
	count      components.TextInput

	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen over the engine's current bank.
func New(engine *quiz.Engine) *SetupScreen {
	categories := append([]string{""}, engine.Categories()...)

	count := components.NewTextInput("20", true, 4)
	count.SetValue(fmt.Sprintf("%d", quiz.DefaultCount))

	return &SetupScreen{
		engine:     engine,
		categories: categories,
		count:      count,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Value"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.errMsg = ""

	switch kmsg.String() {
	case "up", "shift+tab":
		if s.field > 0 {
			s.field--
		}
		return s, nil
	case "down", "tab":
		if s.field < fieldCount {
			s.field++
		}
		return s, nil
	case "left":
		s.cycle(-1)
		return s, nil
	case "right":
		s.cycle(1)
		return s, nil
	case "enter":
		return s.start()
	}

	if s.field == fieldCount {
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) cycle(dir int) {
	switch s.field {
	case fieldPool:
		s.poolIdx = wrap(s.poolIdx+dir, len(poolModes))
	case fieldStudy:
		s.studyIdx = wrap(s.studyIdx+dir, len(studyModes))
	case fieldCategory:
		s.catIdx = wrap(s.catIdx+dir, len(s.categories))
	}
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	count, err := s.count.NumericValue()
	if err != nil {
		count = 0 // engine applies the default
	}

	opts := quiz.StartOptions{
		PoolMode:  poolModes[s.poolIdx],
		StudyMode: studyModes[s.studyIdx],
		Category:  s.categories[s.catIdx],
		Count:     count,
	}

	if err := s.engine.Start(opts); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	// Replace so Esc from the session lands on home, not this form.
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: play.New(s.engine)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	catLabel := "all categories"
	if s.categories[s.catIdx] != "" {
		catLabel = s.categories[s.catIdx]
	}

	rows := []string{
		s.renderField(fieldPool, "Pool", poolLabels[poolModes[s.poolIdx]]),
		s.renderField(fieldStudy, "Mode", studyLabels[studyModes[s.studyIdx]]),
		s.renderField(fieldCategory, "Category", catLabel),
		s.renderField(fieldCount, "Questions", s.count.View()),
	}

	form := strings.Join(rows, "\n\n")

	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("Session Setup"))
	sections = append(sections, "")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, form))

	if s.errMsg != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *SetupScreen) renderField(field int, label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(12)
	valueStyle := theme.Unselected
	prefix := "    "
	if field == s.field {
		valueStyle = theme.Selected
		prefix = "  ▸ "
	}
	return prefix + labelStyle.Render(label) + valueStyle.Render(value)
}
