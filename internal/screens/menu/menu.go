package menu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrop/internal/mathgen"
	"github.com/abhisek/mathdrop/internal/router"
	"github.com/abhisek/mathdrop/internal/screen"
	"github.com/abhisek/mathdrop/internal/screens/game"
	"github.com/abhisek/mathdrop/internal/screens/leaderboard"
	"github.com/abhisek/mathdrop/internal/screens/welcome"
	"github.com/abhisek/mathdrop/internal/ui/components"
	"github.com/abhisek/mathdrop/internal/ui/layout"
	"github.com/abhisek/mathdrop/internal/ui/theme"
)

// gradeTopics is the one-line description shown under each grade.
var gradeTopics = map[int]string{
	2: "Addition and subtraction",
	3: "Add, subtract, multiply and divide",
	4: "All four operations, bigger numbers",
	5: "All operations plus fractions",
}

// MenuScreen is the main menu: pick a grade, then play.
type MenuScreen struct {
	deps game.Deps
	menu components.Menu
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)

// New creates a MenuScreen. deps.Grade is the initially selected grade.
func New(deps game.Deps) *MenuScreen {
	deps.Grade = mathgen.ClampGrade(deps.Grade)
	m := &MenuScreen{deps: deps}
	m.menu = components.NewMenu([]components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			g := game.New(m.deps)
			return func() tea.Msg { return router.PushScreenMsg{Screen: g} }
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			board := leaderboard.New(m.deps.Scores, m.deps.Grade, m.deps.DeviceID)
			return func() tea.Msg { return router.PushScreenMsg{Screen: board} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	m.syncBadges()
	return m
}

// syncBadges shows the selected grade next to the entries that use it.
func (m *MenuScreen) syncBadges() {
	badge := fmt.Sprintf("Grade %d", m.deps.Grade)
	m.menu.SetBadge("PLAY", badge)
	m.menu.SetBadge("LEADERBOARD", badge)
}

// Grade returns the selected grade.
func (m *MenuScreen) Grade() int {
	return m.deps.Grade
}

func (m *MenuScreen) Init() tea.Cmd {
	return nil
}

func (m *MenuScreen) Title() string {
	return "Menu"
}

func (m *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Grade"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch key := kmsg.String(); key {
		case "left", "h":
			m.deps.Grade = mathgen.ClampGrade(m.deps.Grade - 1)
			m.syncBadges()
			return m, nil
		case "right", "l":
			m.deps.Grade = mathgen.ClampGrade(m.deps.Grade + 1)
			m.syncBadges()
			return m, nil
		case "2", "3", "4", "5":
			m.deps.Grade = int(key[0] - '0')
			m.syncBadges()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *MenuScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, welcome.RenderBanner(width))
	sections = append(sections, m.renderGradePicker())
	sections = append(sections, theme.Hint.Render(gradeTopics[m.deps.Grade]))
	sections = append(sections, m.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *MenuScreen) renderGradePicker() string {
	var parts []string
	for g := mathgen.MinGrade; g <= mathgen.MaxGrade; g++ {
		label := fmt.Sprintf(" %d ", g)
		if g == m.deps.Grade {
			parts = append(parts, theme.Selected.Render("["+strings.TrimSpace(label)+"]"))
		} else {
			parts = append(parts, theme.Unselected.Render(label))
		}
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Grade  ") + strings.Join(parts, " ")
}
