package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrop/internal/ui/theme"
)

// MenuItem is one entry in a Menu. Badge is optional context drawn to the
// right of the label, e.g. the grade a PLAY entry will start.
type MenuItem struct {
	Label    string
	Badge    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu. Up and down wrap around and skip disabled items.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Selected = m.step(0, 1)
	return m
}

// step walks from start in direction dir (+1 or -1), wrapping, and returns
// the first enabled index. It returns start when nothing is enabled.
func (m Menu) step(start, dir int) int {
	n := len(m.Items)
	if n == 0 {
		return 0
	}
	i := start
	for range n {
		if i >= 0 && i < n && !m.Items[i].Disabled {
			return i
		}
		i = ((i+dir)%n + n) % n
	}
	return max(start, 0)
}

// SetBadge replaces the badge of the item with the given label.
func (m *Menu) SetBadge(label, badge string) {
	for i := range m.Items {
		if m.Items[i].Label == label {
			m.Items[i].Badge = badge
		}
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.step((m.Selected-1+n)%n, -1)
	case "down", "j", "tab":
		m.Selected = m.step((m.Selected+1)%n, 1)
	case "enter":
		if m.Selected >= 0 && m.Selected < n {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

// View renders the menu with labels padded to a common width so badges line up.
func (m Menu) View() string {
	labelWidth := 0
	for _, item := range m.Items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Label))
	}

	var b strings.Builder
	for i, item := range m.Items {
		label := item.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(item.Label))

		var line string
		switch {
		case item.Disabled:
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + label)
		case i == m.Selected:
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + label)
		default:
			line = lipgloss.NewStyle().Foreground(theme.Text).Render("    " + label)
		}
		if item.Badge != "" {
			line += "  " + theme.Hint.Render(item.Badge)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
