package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrop/internal/mathgen"
	"github.com/abhisek/mathdrop/internal/router"
	"github.com/abhisek/mathdrop/internal/screen"
	"github.com/abhisek/mathdrop/internal/store"
	"github.com/abhisek/mathdrop/internal/ui/layout"
	"github.com/abhisek/mathdrop/internal/ui/theme"
)

// Size is how many entries the board shows.
const Size = 10

type scoresLoadedMsg struct {
	Grade  int
	Scores []store.HighScore
	Err    error
}

// LeaderboardScreen lists the top local scores, optionally for one grade.
type LeaderboardScreen struct {
	repo     store.HighScoreRepo
	grade    int // 0 = all grades
	deviceID string
	scores   []store.HighScore
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen filtered to grade (0 for all). Entries
// from deviceID are highlighted.
func New(repo store.HighScoreRepo, grade int, deviceID string) *LeaderboardScreen {
	return &LeaderboardScreen{repo: repo, grade: grade, deviceID: deviceID}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return s.load()
}

func (s *LeaderboardScreen) load() tea.Cmd {
	repo, grade := s.repo, s.grade
	if repo == nil {
		return func() tea.Msg { return scoresLoadedMsg{Grade: grade} }
	}
	return func() tea.Msg {
		scores, err := repo.Leaderboard(context.Background(), grade, Size)
		return scoresLoadedMsg{Grade: grade, Scores: scores, Err: err}
	}
}

func (s *LeaderboardScreen) Title() string {
	if s.grade == 0 {
		return "Leaderboard"
	}
	return fmt.Sprintf("Leaderboard · Grade %d", s.grade)
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Grade"},
		{Key: "Esc", Description: "Back"},
	}
}

// Grade returns the active grade filter.
func (s *LeaderboardScreen) Grade() int {
	return s.grade
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoresLoadedMsg:
		if msg.Grade != s.grade {
			return s, nil // stale
		}
		s.loaded = true
		s.errMsg = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.scores = msg.Scores
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			return s, s.setGrade(prevGrade(s.grade))
		case "right", "l":
			return s, s.setGrade(nextGrade(s.grade))
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) setGrade(grade int) tea.Cmd {
	s.grade = grade
	s.loaded = false
	s.scores = nil
	return s.load()
}

// nextGrade cycles All -> 2 -> 3 -> 4 -> 5 -> All.
func nextGrade(g int) int {
	switch {
	case g == 0:
		return mathgen.MinGrade
	case g >= mathgen.MaxGrade:
		return 0
	default:
		return g + 1
	}
}

func prevGrade(g int) int {
	switch {
	case g == 0:
		return mathgen.MaxGrade
	case g <= mathgen.MinGrade:
		return 0
	default:
		return g - 1
	}
}

func (s *LeaderboardScreen) View(width, height int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle(), s.renderTabs()))
	b.WriteString("\n\n")

	switch {
	case s.errMsg != "":
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error), "Error: "+s.errMsg))
		return b.String()
	case !s.loaded:
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "Loading scores..."))
		return b.String()
	case len(s.scores) == 0:
		b.WriteString(center(theme.Hint, "No scores yet. Go play!"))
		return b.String()
	}

	header := fmt.Sprintf("%-4s %-20s %7s %5s %5s %8s", "#", "Name", "Score", "Grade", "Level", "Accuracy")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(header)))
	b.WriteString("\n")

	for i, hs := range s.scores {
		line := fmt.Sprintf("%-4d %-20s %7d %5d %5d %7.0f%%",
			i+1, truncate(hs.PlayerName, 20), hs.Score, hs.Grade, hs.Level, hs.Accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == 0:
			style = style.Foreground(theme.Accent).Bold(true)
		case s.deviceID != "" && hs.DeviceID == s.deviceID:
			style = style.Foreground(theme.Secondary)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *LeaderboardScreen) renderTabs() string {
	grades := []int{0}
	for g := mathgen.MinGrade; g <= mathgen.MaxGrade; g++ {
		grades = append(grades, g)
	}

	tabs := make([]string, 0, len(grades))
	for _, g := range grades {
		label := "All"
		if g != 0 {
			label = fmt.Sprintf("Grade %d", g)
		}
		if g == s.grade {
			tabs = append(tabs, theme.Selected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
