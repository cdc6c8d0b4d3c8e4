package gameover

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrop/internal/logger"
	"github.com/abhisek/mathdrop/internal/router"
	"github.com/abhisek/mathdrop/internal/screen"
	"github.com/abhisek/mathdrop/internal/screens/leaderboard"
	"github.com/abhisek/mathdrop/internal/session"
	"github.com/abhisek/mathdrop/internal/store"
	"github.com/abhisek/mathdrop/internal/ui/components"
	"github.com/abhisek/mathdrop/internal/ui/layout"
	"github.com/abhisek/mathdrop/internal/ui/theme"
)

// MaxNameLength bounds the player name stored with a high score.
const MaxNameLength = 20

// Options configures a GameOverScreen.
type Options struct {
	Scores     store.HighScoreRepo // nil disables saving
	DeviceID   string
	PlayerName string
	Logger     *slog.Logger

	// PlayAgain builds a fresh game screen.
	PlayAgain func() screen.Screen
}

type bestsLoadedMsg struct {
	Bests []store.HighScore
	Err   error
}

type scoreSavedMsg struct {
	Err error
}

// GameOverScreen shows the final stats and offers to save a high score.
type GameOverScreen struct {
	summary *session.Summary
	opts    Options
	input   components.TextInput

	previousBest int
	bestsLoaded  bool
	saving       bool
	saved        bool
	errMsg       string
}

var _ screen.Screen = (*GameOverScreen)(nil)
var _ screen.KeyHintProvider = (*GameOverScreen)(nil)
var _ screen.EscapeHandler = (*GameOverScreen)(nil)

// New creates a GameOverScreen for a finished session.
func New(summary *session.Summary, opts Options) *GameOverScreen {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	input := components.NewTextInput("your name", components.ModeFree, MaxNameLength)
	input.Model.SetValue(opts.PlayerName)
	return &GameOverScreen{
		summary: summary,
		opts:    opts,
		input:   input,
	}
}

func (s *GameOverScreen) Init() tea.Cmd {
	if !s.canSave() {
		return nil
	}
	repo, deviceID := s.opts.Scores, s.opts.DeviceID
	return tea.Batch(s.input.Init(), func() tea.Msg {
		bests, err := repo.PersonalBests(context.Background(), deviceID)
		return bestsLoadedMsg{Bests: bests, Err: err}
	})
}

func (s *GameOverScreen) Title() string {
	return "Game Over"
}

func (s *GameOverScreen) HandlesEscape() bool {
	return true
}

func (s *GameOverScreen) KeyHints() []layout.KeyHint {
	if s.canSave() && !s.saved {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save score"},
			{Key: "Esc", Description: "Skip"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Play again"},
		{Key: "L", Description: "Leaderboard"},
		{Key: "Esc", Description: "Menu"},
	}
}

// IsNewBest reports whether this game beat every earlier score on the device.
func (s *GameOverScreen) IsNewBest() bool {
	return s.bestsLoaded && s.summary.Score > 0 && s.summary.Score > s.previousBest
}

func (s *GameOverScreen) canSave() bool {
	return s.opts.Scores != nil
}

func (s *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bestsLoadedMsg:
		if msg.Err != nil {
			s.opts.Logger.Warn("failed to load personal bests", "error", msg.Err)
			return s, nil
		}
		s.bestsLoaded = true
		if len(msg.Bests) > 0 {
			s.previousBest = msg.Bests[0].Score
		}
		return s, nil

	case scoreSavedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = "Could not save score"
			s.opts.Logger.Error("failed to save high score", "error", msg.Err)
			return s, nil
		}
		s.saved = true
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *GameOverScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.canSave() && !s.saved {
		switch key {
		case "esc":
			s.saved = true // skipped
			return s, nil
		case "enter":
			return s.save()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch key {
	case "r", "R", "enter":
		if s.opts.PlayAgain != nil {
			next := s.opts.PlayAgain()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	case "l", "L":
		board := leaderboard.New(s.opts.Scores, s.summary.Grade, s.opts.DeviceID)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: board} }
	case "esc", "q":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *GameOverScreen) save() (screen.Screen, tea.Cmd) {
	if s.saving {
		return s, nil
	}
	name := strings.TrimSpace(s.input.Value())
	if name == "" {
		s.errMsg = "Enter a name first"
		return s, nil
	}
	s.errMsg = ""
	s.saving = true

	sum := s.summary
	hs := store.HighScore{
		PlayerName:      name,
		Score:           sum.Score,
		Grade:           sum.Grade,
		Level:           sum.Level,
		CorrectAnswers:  sum.CorrectCount,
		WrongAnswers:    sum.WrongCount,
		Accuracy:        sum.Accuracy,
		SessionDuration: int(sum.Duration.Seconds()),
		DeviceID:        s.opts.DeviceID,
	}
	repo := s.opts.Scores
	return s, func() tea.Msg {
		return scoreSavedMsg{Err: repo.Save(context.Background(), &hs)}
	}
}

func (s *GameOverScreen) View(width, height int) string {
	sum := s.summary
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "GAME OVER"))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		fmt.Sprintf("Score %d", sum.Score)))
	b.WriteString("\n")
	if s.IsNewBest() {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "New personal best!"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	stats := fmt.Sprintf("Grade %d    Level %d    Correct %d    Wrong %d    Accuracy %.0f%%    Time %d:%02d",
		sum.Grade, sum.Level, sum.CorrectCount, sum.WrongCount, sum.Accuracy, mins, secs)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n\n")

	if s.canSave() {
		switch {
		case s.saving:
			b.WriteString(center(theme.Hint, "Saving..."))
		case s.saved:
			b.WriteString(center(theme.Hint, "Press R to play again or L for the leaderboard"))
		default:
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Name: "+s.input.View()))
		}
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error), s.errMsg))
	}

	return b.String()
}
