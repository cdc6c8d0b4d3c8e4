package game

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/mathdrop/internal/session"
	"github.com/abhisek/mathdrop/internal/ui/components"
	"github.com/abhisek/mathdrop/internal/ui/theme"
)

// footerRows is the space below the field: ground, progress and input lines.
const footerRows = 4

func (g *GameScreen) View(width, height int) string {
	if g.confirmQuit {
		return renderCentered(width, height,
			theme.Title.Render("End this game?")+"\n\n"+
				theme.Hint.Render("Y to end, N to keep playing"))
	}
	if g.state.Phase == sess.PhasePaused {
		return renderCentered(width, height,
			theme.Title.Render("Paused")+"\n\n"+
				theme.Hint.Render("press P to resume"))
	}

	fieldHeight := height - footerRows
	if fieldHeight < 1 {
		fieldHeight = 1
	}

	var b strings.Builder
	b.WriteString(renderField(g.state.Falling, width, fieldHeight))
	b.WriteString("\n")
	b.WriteString(theme.Ground.Render(strings.Repeat("▀", max(width, 0))))
	b.WriteString("\n")
	b.WriteString(g.renderProgress(width))
	b.WriteString("\n")
	b.WriteString(g.renderInput(width))
	return b.String()
}

// renderField draws the falling equations into fieldHeight rows.
func renderField(falling []*sess.Falling, width, fieldHeight int) string {
	rows := make([][]*sess.Falling, fieldHeight)
	for _, f := range falling {
		row := int(f.Height * float64(fieldHeight))
		if row >= fieldHeight {
			row = fieldHeight - 1
		}
		if row < 0 {
			row = 0
		}
		rows[row] = append(rows[row], f)
	}

	lines := make([]string, fieldHeight)
	for i, items := range rows {
		lines[i] = renderRow(items, width)
	}
	return strings.Join(lines, "\n")
}

// renderRow lays out the bubbles of one row left to right by column,
// nudging overlapping bubbles to the right.
func renderRow(items []*sess.Falling, width int) string {
	if len(items) == 0 {
		return ""
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Column < items[j].Column })

	var b strings.Builder
	cursor := 0
	for _, f := range items {
		bubble := bubbleStyle(f.Height).Render(f.Equation.Text)
		w := lipgloss.Width(bubble)

		col := int(f.Column * float64(width-w))
		if col < cursor {
			col = cursor
		}
		if col+w > width {
			continue
		}
		b.WriteString(strings.Repeat(" ", col-cursor))
		b.WriteString(bubble)
		cursor = col + w + 1
		if cursor <= width {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func bubbleStyle(height float64) lipgloss.Style {
	switch {
	case height >= 0.85:
		return theme.BubbleDanger
	case height >= 0.6:
		return theme.BubbleWarn
	default:
		return theme.BubbleCalm
	}
}

func (g *GameScreen) renderProgress(width int) string {
	per := g.state.Config.CorrectPerLevel
	if per <= 0 {
		return ""
	}
	done := g.state.CorrectCount % per
	bar := components.NewProgressBar(
		fmt.Sprintf("  Level %d", g.state.Level),
		float64(done)/float64(per),
		fmt.Sprintf("%d/%d", done, per),
		min(width-2, 60),
	)
	return bar.View()
}

func (g *GameScreen) renderInput(width int) string {
	line := "  Answer: " + g.input.View()
	if g.flash != "" && g.state.Elapsed < g.flashUntil {
		style := theme.Incorrect
		if g.flashCorrect {
			style = theme.Correct
		}
		line += "   " + style.Render(g.flash)
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
