package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizdrill/internal/bank"
	"quizdrill/internal/quiz"
	"quizdrill/internal/ui/components"
	"quizdrill/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.confirmFinish {
		return renderFinishConfirm(width, height, s.engine)
	}

	qid, q := s.engine.Current()
	if qid == "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Nothing to practice. Import a bank first.")
	}

	var b strings.Builder

	b.WriteString(s.renderInfoLine(width, qid))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q == nil {
		// The bank was re-imported under this session; the id is gone.
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(fmt.Sprintf("Question %s is no longer in the bank.", qid)))
		b.WriteString("\n")
		return b.String()
	}

	stemStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, stemStyle.Render(q.Stem)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderOptions(q)))

	if s.gotoMode {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render("Go to question: ")+s.gotoInput.View()))
	}

	if s.showExplain && s.revealedFor(qid) && q.Explanation != "" {
		b.WriteString("\n\n")
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.TextDim)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(q.Explanation)))
	}

	b.WriteString("\n\n")
	b.WriteString(s.renderNote(width, qid))

	b.WriteString("\n\n")
	if s.engine.Submitted() {
		b.WriteString(s.renderSummary(width))
	} else {
		done, _, _ := s.engine.Tally()
		bar := components.ProgressBar{
			Done:  done,
			Total: len(s.engine.Playlist()),
			Width: min(width-8, 50),
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Notice.Width(width).Align(lipgloss.Center).Render(s.notice))
	}

	return b.String()
}

// renderInfoLine shows category and mark state left, mode right.
func (s *PlayScreen) renderInfoLine(width int, qid string) string {
	_, q := s.engine.Current()

	category := ""
	if q != nil {
		category = bank.EffectiveCategory(q, s.engine.CategoryMap())
	}
	if category == "" {
		category = "uncategorized"
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + category)

	if it := s.engine.ItemFor(qid); it != nil && it.Marked {
		left += theme.Marked.Render("  ★ marked")
	}

	mode := ""
	if sess := s.engine.Session(); sess != nil {
		mode = string(sess.Mode.StudyMode)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(mode)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// revealedFor reports whether correctness may be shown for qid: always
// after submission, and in review mode once the question is answered.
func (s *PlayScreen) revealedFor(qid string) bool {
	if s.engine.Submitted() {
		return true
	}
	return s.engine.Revealed() && s.engine.ItemFor(qid).Answered()
}

func (s *PlayScreen) renderOptions(q *bank.Question) string {
	qid, _ := s.engine.Current()

	chosen := -1
	if it := s.engine.ItemFor(qid); it != nil && it.Chosen != nil && *it.Chosen != "" {
		chosen = int((*it.Chosen)[0] - 'A')
	}

	correct := -1
	if q.Answer != "" {
		correct = int(q.Answer[0] - 'A')
	}

	list := components.OptionList{
		Options:  q.Options,
		Chosen:   chosen,
		Correct:  correct,
		Revealed: s.revealedFor(qid),
		Locked:   s.engine.Locked(),
	}
	return list.View()
}

func (s *PlayScreen) renderNote(width int, qid string) string {
	if s.editingNote {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render("Note: ")+s.noteInput.View())
	}
	note := s.engine.Notes().Get(qid)
	if note == "" {
		return ""
	}
	noteStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.TextDim).
		Italic(true)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, noteStyle.Render("Note: "+note))
}

// renderSummary shows the post-submission tallies and question grid.
func (s *PlayScreen) renderSummary(width int) string {
	done, correct, wrong := s.engine.Tally()
	total := len(s.engine.Playlist())

	tally := fmt.Sprintf("%d answered   %s %d   %s %d   %d skipped",
		done,
		theme.Correct.Render("✓"), correct,
		theme.Incorrect.Render("✗"), wrong,
		total-done)

	cells := make([]components.Circle, 0, total)
	for i, qid := range s.engine.Playlist() {
		it := s.engine.ItemFor(qid)
		c := components.Circle{Current: i == s.engine.Index()}
		if it != nil {
			c.Marked = it.Marked
			switch {
			case it.IsCorrect != nil && *it.IsCorrect:
				c.State = components.CircleCorrect
			case it.IsCorrect != nil:
				c.State = components.CircleWrong
			case it.Answered():
				c.State = components.CircleAnswered
			}
		}
		cells = append(cells, c)
	}

	grid := components.RenderCircles(cells, 10)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(tally)) +
		"\n\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, grid)
}

func renderFinishConfirm(width, height int, e *quiz.Engine) string {
	done, _, _ := e.Tally()
	total := len(e.Playlist())

	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Finish and grade this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d answered. Unanswered questions stay unscored.", done, total)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, finish"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
