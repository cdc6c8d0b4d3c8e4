package game

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/mathdrop/internal/logger"
	"github.com/abhisek/mathdrop/internal/router"
	"github.com/abhisek/mathdrop/internal/screen"
	"github.com/abhisek/mathdrop/internal/screens/gameover"
	sess "github.com/abhisek/mathdrop/internal/session"
	"github.com/abhisek/mathdrop/internal/telemetry"
	"github.com/abhisek/mathdrop/internal/ui/components"
	"github.com/abhisek/mathdrop/internal/ui/layout"
)

// GameScreen is the falling-equation play field.
type GameScreen struct {
	deps     Deps
	state    *sess.State
	recorder *telemetry.Recorder
	input    components.TextInput

	lastFrame   time.Time
	confirmQuit bool
	// quitPaused records that opening the quit prompt paused the game.
	quitPaused bool

	flash        string
	flashCorrect bool
	flashUntil   time.Duration
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.StatusProvider = (*GameScreen)(nil)
var _ screen.EscapeHandler = (*GameScreen)(nil)

// New creates a GameScreen for a fresh session.
func New(deps Deps) *GameScreen {
	if deps.Logger == nil {
		deps.Logger = logger.Discard()
	}
	sessionID := uuid.NewString()
	state := sess.NewState(sessionID, deps.Grade, deps.generator(), deps.positions(), deps.Rules)
	events := deps.Events
	if deps.DisableTelemetry {
		events = nil
	}
	return &GameScreen{
		deps:     deps,
		state:    state,
		recorder: telemetry.NewRecorder(events, deps.DeviceID, sessionID, deps.Logger),
		input:    components.NewTextInput("type an answer", components.ModeAnswer, 12),
	}
}

// State exposes the session for inspection.
func (g *GameScreen) State() *sess.State {
	return g.state
}

func (g *GameScreen) Init() tea.Cmd {
	now := time.Now()
	g.lastFrame = now
	g.record(sess.Start(g.state, now)...)
	g.deps.Logger.Info("game started", "session_id", g.state.SessionID, "grade", g.state.Grade)
	return tea.Batch(g.input.Init(), frameCmd())
}

func (g *GameScreen) Title() string {
	return fmt.Sprintf("Grade %d", g.state.Grade)
}

func (g *GameScreen) HandlesEscape() bool {
	return true
}

func (g *GameScreen) Status() (layout.Status, bool) {
	return layout.Status{Score: g.state.Score, Level: g.state.Level, Lives: g.state.Lives}, true
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	if g.state.Phase == sess.PhasePaused {
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "P", Description: "Pause"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return g.handleFrame(time.Time(msg))
	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GameScreen) handleFrame(now time.Time) (screen.Screen, tea.Cmd) {
	if g.state.Phase == sess.PhaseOver {
		return g, nil
	}

	dt := now.Sub(g.lastFrame)
	g.lastFrame = now
	if dt > maxFrameStep {
		dt = maxFrameStep
	}

	g.record(sess.Tick(g.state, dt)...)
	if g.state.Phase == sess.PhaseOver {
		return g, g.finish()
	}
	return g, frameCmd()
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if g.confirmQuit {
		switch key {
		case "y", "Y":
			g.confirmQuit = false
			g.quitPaused = false
			g.record(sess.End(g.state)...)
			return g, g.finish()
		case "n", "N", "esc":
			g.confirmQuit = false
			if g.quitPaused {
				g.record(sess.Resume(g.state)...)
			}
			g.quitPaused = false
		}
		return g, nil
	}

	switch key {
	case "esc":
		g.confirmQuit = true
		g.quitPaused = g.state.Phase == sess.PhaseActive
		g.record(sess.Pause(g.state)...)
		return g, nil
	case "p", "P":
		if g.state.Phase == sess.PhasePaused {
			g.record(sess.Resume(g.state)...)
		} else {
			g.record(sess.Pause(g.state)...)
		}
		return g, nil
	case "enter":
		return g.submit()
	}

	if g.state.Phase != sess.PhaseActive {
		return g, nil
	}
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GameScreen) submit() (screen.Screen, tea.Cmd) {
	if g.state.Phase != sess.PhaseActive {
		return g, nil
	}
	typed := g.input.Value()
	outcome, events := sess.HandleAnswer(g.state, typed)
	if len(events) == 0 {
		return g, nil
	}
	g.record(events...)

	g.flashCorrect = outcome.Correct
	switch {
	case outcome.LeveledUp:
		g.flash = fmt.Sprintf("Level %d!", g.state.Level)
	case outcome.Correct:
		g.flash = fmt.Sprintf("+%d", g.state.Config.PointsPerLevel*g.state.Level)
	default:
		g.flash = fmt.Sprintf("No match for %s", typed)
	}
	g.flashUntil = g.state.Elapsed + flashDuration

	g.input.Submit(outcome.Correct)
	g.input.Reset()
	return g, nil
}

// finish prunes old analytics and swaps in the game over screen.
func (g *GameScreen) finish() tea.Cmd {
	summary := sess.BuildSummary(g.state)
	g.deps.Logger.Info("game over",
		"session_id", summary.SessionID,
		"score", summary.Score,
		"level", summary.Level,
		"accuracy", summary.Accuracy)

	if g.deps.Events != nil && g.deps.EventRetention > 0 {
		if err := g.deps.Events.Prune(context.Background(), g.deps.EventRetention); err != nil {
			g.deps.Logger.Warn("failed to prune game events", "error", err)
		}
	}

	deps := g.deps
	over := gameover.New(summary, gameover.Options{
		Scores:     deps.Scores,
		DeviceID:   deps.DeviceID,
		PlayerName: deps.PlayerName,
		Logger:     deps.Logger,
		PlayAgain:  func() screen.Screen { return New(deps) },
	})
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: over}
	}
}

func (g *GameScreen) record(events ...sess.Event) {
	if len(events) == 0 {
		return
	}
	g.recorder.Record(context.Background(), events...)
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
