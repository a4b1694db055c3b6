package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdrill/internal/ui/theme"
)

// CircleState classifies one question cell in the overview grid.
type CircleState int

const (
	CircleUnanswered CircleState = iota
	CircleAnswered               // answered but not yet judged
	CircleCorrect
	CircleWrong
)

// Circle is one cell of the question-overview grid.
type Circle struct {
	State   CircleState
	Marked  bool
	Current bool
}

// RenderCircles lays the cells out in rows of perRow, each cell showing
// its 1-based question number. Marked cells carry a star; the current
// cell is bracketed.
func RenderCircles(cells []Circle, perRow int) string {
	if perRow <= 0 {
		perRow = 10
	}

	var rows []string
	var row []string
	for i, c := range cells {
		label := fmt.Sprintf("%2d", i+1)
		if c.Marked {
			label += "*"
		} else {
			label += " "
		}
		if c.Current {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}

		var style lipgloss.Style
		switch c.State {
		case CircleCorrect:
			style = theme.Correct
		case CircleWrong:
			style = theme.Incorrect
		case CircleAnswered:
			style = theme.Selected
		default:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if c.Marked {
			style = style.Underline(true)
		}

		row = append(row, style.Render(label))
		if len(row) == perRow || i == len(cells)-1 {
			rows = append(rows, strings.Join(row, ""))
			row = nil
		}
	}
	return strings.Join(rows, "\n")
}
