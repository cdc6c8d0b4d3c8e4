package game

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrop/internal/mathgen"
	"github.com/abhisek/mathdrop/internal/router"
	"github.com/abhisek/mathdrop/internal/screens/gameover"
	sess "github.com/abhisek/mathdrop/internal/session"
	"github.com/abhisek/mathdrop/internal/store"
)

// fixedGenerator always produces the same equation.
type fixedGenerator struct {
	level int
}

func (f *fixedGenerator) Generate() mathgen.Equation {
	return mathgen.Equation{Text: "2 + 3", Answer: "5", NumericAnswer: 5, Operation: mathgen.OpAdd}
}

func (f *fixedGenerator) SetLevel(level int) { f.level = level }

type fixedPosition float64

func (p fixedPosition) Float64() float64 { return float64(p) }

// mockEventRepo records appended events.
type mockEventRepo struct {
	events []store.GameEvent
	pruned int
}

func (m *mockEventRepo) Append(_ context.Context, ev *store.GameEvent) error {
	m.events = append(m.events, *ev)
	return nil
}
func (m *mockEventRepo) Query(context.Context, store.QueryOpts) ([]store.GameEvent, error) {
	return m.events, nil
}
func (m *mockEventRepo) Prune(_ context.Context, keep int) error {
	m.pruned = keep
	return nil
}

func (m *mockEventRepo) types() []string {
	var out []string
	for _, ev := range m.events {
		out = append(out, ev.Type)
	}
	return out
}

func testRules() sess.Config {
	rules := sess.DefaultConfig()
	rules.Lives = 2
	rules.FallTime = time.Second
	rules.BaseSpawnInterval = time.Hour // only the first equation spawns
	return rules
}

func testGame(t *testing.T) (*GameScreen, *mockEventRepo) {
	t.Helper()
	repo := &mockEventRepo{}
	g := New(Deps{
		Grade:          3,
		Rules:          testRules(),
		Events:         repo,
		DeviceID:       "dev",
		EventRetention: 100,
		NewGenerator:   func(int) sess.EquationSource { return &fixedGenerator{} },
		NewPositions:   func() sess.PositionSource { return fixedPosition(0.5) },
	})
	g.Init()
	return g, repo
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeAnswer(g *GameScreen, s string) tea.Cmd {
	for _, r := range s {
		g.Update(keyPress(r))
	}
	_, cmd := g.Update(specialKey(tea.KeyEnter))
	return cmd
}

// advance sends frames totalling d, stopping early when the game ends.
// It returns the last command.
func advance(g *GameScreen, d time.Duration) tea.Cmd {
	var cmd tea.Cmd
	now := g.lastFrame
	for d > 0 && g.State().Phase != sess.PhaseOver {
		step := min(d, maxFrameStep)
		now = now.Add(step)
		d -= step
		_, cmd = g.Update(frameMsg(now))
	}
	return cmd
}

func TestGame_StartSpawnsFirstEquation(t *testing.T) {
	g, repo := testGame(t)

	if g.State().Phase != sess.PhaseActive {
		t.Fatalf("Phase = %v, want active", g.State().Phase)
	}
	if len(g.State().Falling) != 1 {
		t.Fatalf("Falling = %d, want 1", len(g.State().Falling))
	}
	want := []string{"game_start", "equation_spawned"}
	if got := repo.types(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", got, want)
	}
	for _, ev := range repo.events {
		if ev.SessionID != g.State().SessionID || ev.DeviceID != "dev" {
			t.Errorf("event ids = %q/%q", ev.SessionID, ev.DeviceID)
		}
	}
}

func TestGame_CorrectAnswerScores(t *testing.T) {
	g, repo := testGame(t)

	typeAnswer(g, "5")

	st := g.State()
	if st.Score != 10 || st.CorrectCount != 1 {
		t.Errorf("score/correct = %d/%d, want 10/1", st.Score, st.CorrectCount)
	}
	if len(st.Falling) != 0 {
		t.Errorf("Falling = %d, want 0", len(st.Falling))
	}
	if g.input.Value() != "" {
		t.Errorf("input not cleared: %q", g.input.Value())
	}
	if !strings.Contains(g.View(80, 20), "+10") {
		t.Error("expected +10 feedback in view")
	}
	if repo.events[len(repo.events)-1].Type != "correct_answer" {
		t.Errorf("last event = %q", repo.events[len(repo.events)-1].Type)
	}
}

func TestGame_EquivalentAnswerForms(t *testing.T) {
	g, _ := testGame(t)
	typeAnswer(g, "5.0")
	if g.State().CorrectCount != 1 {
		t.Error("expected 5.0 to match 5")
	}
}

func TestGame_WrongAnswer(t *testing.T) {
	g, _ := testGame(t)

	typeAnswer(g, "9")

	st := g.State()
	if st.WrongCount != 1 || st.Score != 0 {
		t.Errorf("wrong/score = %d/%d, want 1/0", st.WrongCount, st.Score)
	}
	if len(st.Falling) != 1 {
		t.Error("wrong answer should not remove the equation")
	}
}

func TestGame_BlankSubmitIgnored(t *testing.T) {
	g, repo := testGame(t)
	before := len(repo.events)

	g.Update(specialKey(tea.KeyEnter))

	if len(repo.events) != before {
		t.Error("blank submit should not emit events")
	}
	if g.State().WrongCount != 0 {
		t.Error("blank submit should not count as wrong")
	}
}

func TestGame_LettersAreFiltered(t *testing.T) {
	g, _ := testGame(t)
	g.Update(keyPress('x'))
	g.Update(keyPress('5'))
	if got := g.input.Value(); got != "5" {
		t.Errorf("input = %q, want %q", got, "5")
	}
}

func TestGame_FramesMoveEquations(t *testing.T) {
	g, _ := testGame(t)

	cmd := advance(g, 200*time.Millisecond)
	if cmd == nil {
		t.Fatal("expected the frame loop to continue")
	}
	h := g.State().Falling[0].Height
	if h < 0.19 || h > 0.21 {
		t.Errorf("Height = %v, want ~0.2", h)
	}
}

func TestGame_LargeFrameGapIsCapped(t *testing.T) {
	g, _ := testGame(t)

	g.Update(frameMsg(g.lastFrame.Add(5 * time.Second)))
	if got := g.State().Elapsed; got != maxFrameStep {
		t.Errorf("Elapsed = %v, want %v", got, maxFrameStep)
	}
}

func TestGame_PauseFreezesTime(t *testing.T) {
	g, repo := testGame(t)

	g.Update(keyPress('p'))
	if g.State().Phase != sess.PhasePaused {
		t.Fatalf("Phase = %v, want paused", g.State().Phase)
	}
	advance(g, time.Second)
	if g.State().Elapsed != 0 {
		t.Errorf("Elapsed = %v while paused, want 0", g.State().Elapsed)
	}
	if !strings.Contains(g.View(80, 20), "Paused") {
		t.Error("expected paused overlay")
	}

	g.Update(keyPress('p'))
	if g.State().Phase != sess.PhaseActive {
		t.Errorf("Phase = %v, want active", g.State().Phase)
	}
	types := strings.Join(repo.types(), ",")
	if !strings.Contains(types, "pause,resume") {
		t.Errorf("events = %s, want pause then resume", types)
	}
}

func TestGame_MissesEndTheGame(t *testing.T) {
	g, repo := testGame(t)

	// First equation lands: one life lost.
	advance(g, 1100*time.Millisecond)
	if g.State().Lives != 1 {
		t.Fatalf("Lives = %d, want 1", g.State().Lives)
	}

	// Speed up spawning so more equations land.
	g.State().Config.BaseSpawnInterval = 100 * time.Millisecond
	g.State().Config.MinSpawnInterval = 100 * time.Millisecond
	cmd := advance(g, 2*time.Second)

	if g.State().Phase != sess.PhaseOver {
		t.Fatalf("Phase = %v, want over", g.State().Phase)
	}
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*gameover.GameOverScreen); !ok {
		t.Errorf("expected game over screen, got %T", msg.Screen)
	}
	types := repo.types()
	if types[len(types)-1] != "game_end" {
		t.Errorf("last event = %q, want game_end", types[len(types)-1])
	}
	if repo.pruned != 100 {
		t.Errorf("pruned keep = %d, want 100", repo.pruned)
	}
}

func TestGame_QuitConfirm(t *testing.T) {
	g, _ := testGame(t)

	g.Update(specialKey(tea.KeyEscape))
	if !g.confirmQuit || g.State().Phase != sess.PhasePaused {
		t.Fatal("Esc should pause and ask for confirmation")
	}
	if len(g.KeyHints()) != 2 {
		t.Errorf("expected Y/N hints, got %v", g.KeyHints())
	}

	g.Update(keyPress('n'))
	if g.confirmQuit || g.State().Phase != sess.PhaseActive {
		t.Fatal("N should resume play")
	}

	g.Update(specialKey(tea.KeyEscape))
	_, cmd := g.Update(keyPress('y'))
	if g.State().Phase != sess.PhaseOver {
		t.Fatalf("Phase = %v, want over", g.State().Phase)
	}
	if cmd == nil {
		t.Fatal("expected transition to game over")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
}

func TestGame_DecliningQuitKeepsManualPause(t *testing.T) {
	g, repo := testGame(t)

	g.Update(keyPress('p'))
	g.Update(specialKey(tea.KeyEscape))
	if !g.confirmQuit {
		t.Fatal("Esc should ask for confirmation while paused")
	}
	g.Update(keyPress('n'))

	if g.confirmQuit {
		t.Error("N should close the quit prompt")
	}
	if g.State().Phase != sess.PhasePaused {
		t.Errorf("Phase = %v, want paused", g.State().Phase)
	}
	for _, typ := range repo.types() {
		if typ == "resume" {
			t.Error("declining quit should not resume a manual pause")
		}
	}

	// The game still resumes normally afterwards.
	g.Update(keyPress('p'))
	if g.State().Phase != sess.PhaseActive {
		t.Errorf("Phase = %v, want active", g.State().Phase)
	}
}

func TestGame_TelemetryDisabled(t *testing.T) {
	repo := &mockEventRepo{}
	g := New(Deps{
		Grade:            2,
		Rules:            testRules(),
		Events:           repo,
		EventRetention:   50,
		DisableTelemetry: true,
		NewGenerator:     func(int) sess.EquationSource { return &fixedGenerator{} },
		NewPositions:     func() sess.PositionSource { return fixedPosition(0.5) },
	})
	g.Init()
	typeAnswer(g, "5")
	typeAnswer(g, "7")
	g.Update(keyPress('p'))
	g.Update(keyPress('p'))
	g.Update(specialKey(tea.KeyEscape))
	g.Update(keyPress('y'))

	if g.State().CorrectCount != 1 || g.State().WrongCount != 1 {
		t.Errorf("correct/wrong = %d/%d, want 1/1", g.State().CorrectCount, g.State().WrongCount)
	}
	if len(repo.events) != 0 {
		t.Errorf("recorded %d events with telemetry disabled: %v", len(repo.events), repo.types())
	}
	if repo.pruned != 50 {
		t.Errorf("pruned keep = %d, want 50", repo.pruned)
	}
}

func TestGame_Status(t *testing.T) {
	g, _ := testGame(t)
	typeAnswer(g, "5")

	st, ok := g.Status()
	if !ok {
		t.Fatal("expected status to be shown")
	}
	if st.Score != 10 || st.Level != 1 || st.Lives != 2 {
		t.Errorf("status = %+v", st)
	}
	if !g.HandlesEscape() {
		t.Error("game screen should handle Esc itself")
	}
}

func TestGame_ViewShowsEquation(t *testing.T) {
	g, _ := testGame(t)
	view := g.View(80, 20)
	if !strings.Contains(view, "2 + 3") {
		t.Error("expected falling equation in view")
	}
	if !strings.Contains(view, "Level 1") {
		t.Error("expected level progress in view")
	}
}

func TestRenderRow_NoOverlap(t *testing.T) {
	eq := mathgen.Equation{Text: "10 + 10"}
	items := []*sess.Falling{
		{Equation: eq, Column: 0.5},
		{Equation: eq, Column: 0.5},
	}
	row := renderRow(items, 60)
	if strings.Count(row, "10 + 10") != 2 {
		t.Errorf("expected both bubbles in row: %q", row)
	}
}

func TestGame_NilRepoPlaysWithoutPersistence(t *testing.T) {
	g := New(Deps{
		Grade:        2,
		Rules:        testRules(),
		NewGenerator: func(int) sess.EquationSource { return &fixedGenerator{} },
	})
	g.Init()
	typeAnswer(g, "5")
	if g.State().Score != 10 {
		t.Errorf("Score = %d, want 10", g.State().Score)
	}
}
