package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"quizdrill/internal/ui/theme"
)

// OptionList renders a question's answer options with letter labels.
// It is a pure view: the caller owns chosen/correct state and the
// reveal rule (review mode or a submitted session).
type OptionList struct {
	Options  []string
	Chosen   int  // index of the recorded answer, -1 when unanswered
	Correct  int  // index of the correct option
	Revealed bool // correctness highlighting allowed
	Locked   bool // answering disabled
}

// View renders the option lines.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		letter := string(rune('A' + i))
		prefix := "  "
		if i == o.Chosen {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, letter, opt)

		if o.Revealed {
			switch {
			case i == o.Correct:
				s += theme.Correct.Render(line) + "\n"
			case i == o.Chosen:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
			continue
		}

		if i == o.Chosen {
			s += theme.Selected.Render(line) + "\n"
		} else if o.Locked {
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
