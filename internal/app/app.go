package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdrill/internal/quiz"
	"quizdrill/internal/router"
	"quizdrill/internal/screen"
	"quizdrill/internal/screens/home"
	"quizdrill/internal/storage"
	"quizdrill/internal/ui/layout"
	"quizdrill/internal/ui/theme"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	st     *storage.Store
	engine *quiz.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel builds the engine over the store, restores the persisted
// theme, and opens on the home screen.
func newAppModel(st *storage.Store) AppModel {
	var themeName string
	st.Get(storage.KeyTheme, &themeName)
	theme.Apply(themeName)

	engine := quiz.NewEngine(st)
	return AppModel{
		st:     st,
		engine: engine,
		router: router.New(home.New(engine)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			name := theme.Toggle()
			_ = m.st.Put(storage.KeyTheme, name)
			return m, nil
		case "esc":
			// Screens in an inline editing or confirm state take the
			// key themselves; otherwise Esc navigates back.
			if ei, ok := m.router.Active().(screen.EscInterceptor); ok && ei.WantsEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.HeaderStatus()
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+T", Description: "Theme"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an open store.
func Run(st *storage.Store) error {
	p := tea.NewProgram(newAppModel(st))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
