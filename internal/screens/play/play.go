package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"quizdrill/internal/quiz"
	"quizdrill/internal/screen"
	"quizdrill/internal/ui/components"
	"quizdrill/internal/ui/layout"
)

// PlayScreen drives the active session: answering, navigation, marking,
// notes, and submission. All session state lives in the engine; this
// screen holds only view concerns.
type PlayScreen struct {
	engine *quiz.Engine

	editingNote   bool
	noteInput     components.TextInput
	gotoMode      bool
	gotoInput     components.TextInput
	confirmFinish bool
	showExplain   bool
	notice        string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ screen.EscInterceptor = (*PlayScreen)(nil)

// New creates a PlayScreen for the engine's active session.
func New(engine *quiz.Engine) *PlayScreen {
	s := &PlayScreen{engine: engine}
	if engine.FellBack() {
		s.notice = "No questions matched your filters; drawing from the whole bank."
	}
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	if s.engine.Timer().Running() {
		return tickCmd()
	}
	return nil
}

func (s *PlayScreen) Title() string {
	if s.engine.Submitted() {
		return "Session Review"
	}
	return "Session"
}

func (s *PlayScreen) HeaderStatus() string {
	cur, total := s.engine.Progress()
	status := fmt.Sprintf("Q %d/%d", cur, total)
	if s.engine.Session() != nil && s.engine.Session().Mode.StudyMode == quiz.StudyTimed {
		status += "  " + quiz.FormatMMSS(s.engine.Timer().Seconds())
	}
	return status
}

// WantsEsc keeps the Esc key local while an inline prompt is open.
func (s *PlayScreen) WantsEsc() bool {
	return s.editingNote || s.gotoMode || s.confirmFinish
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.confirmFinish {
		return []layout.KeyHint{
			{Key: "Y", Description: "Finish"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.editingNote {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save note"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.gotoMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Jump"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "A-D", Description: "Answer"},
		{Key: "←→", Description: "Navigate"},
		{Key: "M", Description: "Mark"},
		{Key: "N", Description: "Note"},
	}
	if s.engine.Revealed() {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Explanation"})
	}
	if s.engine.Submitted() {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "Go to"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if s.engine.Timer().Running() {
			return s, tickCmd()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.editingNote {
		var cmd tea.Cmd
		s.noteInput, cmd = s.noteInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmFinish {
		switch key {
		case "y", "Y", "enter":
			s.confirmFinish = false
			if err := s.engine.Finish(); err != nil {
				s.notice = err.Error()
			}
			return s, nil
		case "n", "N", "esc":
			s.confirmFinish = false
			return s, nil
		}
		return s, nil
	}

	if s.editingNote {
		switch key {
		case "enter":
			qid, _ := s.engine.Current()
			if qid != "" {
				if err := s.engine.Notes().Set(qid, s.noteInput.Value()); err != nil {
					s.notice = err.Error()
				}
			}
			s.editingNote = false
			return s, nil
		case "esc":
			s.editingNote = false
			return s, nil
		}
		var cmd tea.Cmd
		s.noteInput, cmd = s.noteInput.Update(msg)
		return s, cmd
	}

	if s.gotoMode {
		switch key {
		case "enter":
			if n, err := s.gotoInput.NumericValue(); err == nil {
				s.engine.Goto(n - 1)
				s.showExplain = false
			}
			s.gotoMode = false
			return s, nil
		case "esc":
			s.gotoMode = false
			return s, nil
		}
		var cmd tea.Cmd
		s.gotoInput, cmd = s.gotoInput.Update(msg)
		return s, cmd
	}

	s.notice = ""

	switch key {
	case "left", "h", "p":
		s.engine.Prev()
		s.showExplain = false
		return s, nil
	case "right", "l", "space":
		s.engine.Next()
		s.showExplain = false
		return s, nil
	case "m":
		if err := s.engine.ToggleMark(); err != nil {
			s.notice = err.Error()
		}
		return s, nil
	case "n":
		qid, _ := s.engine.Current()
		if qid == "" {
			return s, nil
		}
		s.noteInput = components.NewTextInput("Write a note...", false, 200)
		s.noteInput.SetValue(s.engine.Notes().Get(qid))
		s.editingNote = true
		return s, s.noteInput.Init()
	case "e":
		if s.engine.Revealed() {
			s.showExplain = !s.showExplain
		} else {
			s.notice = "Explanations unlock after you finish."
		}
		return s, nil
	case "f":
		if !s.engine.Submitted() {
			s.confirmFinish = true
		}
		return s, nil
	case "g":
		s.gotoInput = components.NewTextInput("#", true, 3)
		s.gotoMode = true
		return s, s.gotoInput.Init()
	}

	// Answer letters, plus 1-4 as aliases.
	if idx := answerIndex(key); idx >= 0 {
		_, q := s.engine.Current()
		if q != nil && idx < len(q.Options) {
			letter := string(rune('A' + idx))
			if err := s.engine.ChooseAnswer(letter); err != nil {
				s.notice = err.Error()
			}
		}
		return s, nil
	}

	return s, nil
}

// answerIndex maps an answer key press to an option index, -1 otherwise.
func answerIndex(key string) int {
	if len(key) != 1 {
		return -1
	}
	c := key[0]
	switch {
	case c >= 'a' && c <= 'z':
		if strings.ContainsRune("abcd", rune(c)) {
			return int(c - 'a')
		}
	case c >= '1' && c <= '9':
		return int(c - '1')
	}
	return -1
}
