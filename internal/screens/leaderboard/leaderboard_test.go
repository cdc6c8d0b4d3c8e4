package leaderboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrop/internal/router"
	"github.com/abhisek/mathdrop/internal/store"
)

type mockScores struct {
	scores []store.HighScore
	err    error
	grades []int
}

func (m *mockScores) Save(context.Context, *store.HighScore) error { return nil }

func (m *mockScores) Leaderboard(_ context.Context, grade, limit int) ([]store.HighScore, error) {
	m.grades = append(m.grades, grade)
	if m.err != nil {
		return nil, m.err
	}
	var out []store.HighScore
	for _, hs := range m.scores {
		if grade == 0 || hs.Grade == grade {
			out = append(out, hs)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockScores) PersonalBests(context.Context, string) ([]store.HighScore, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// run executes cmd and feeds its message back into s.
func run(s *LeaderboardScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	s.Update(cmd())
}

func sampleScores() []store.HighScore {
	return []store.HighScore{
		{PlayerName: "Ada", Score: 300, Grade: 3, Level: 4, Accuracy: 90, DeviceID: "d1"},
		{PlayerName: "Bo", Score: 200, Grade: 2, Level: 3, Accuracy: 75, DeviceID: "d2"},
		{PlayerName: "Cy", Score: 100, Grade: 3, Level: 2, Accuracy: 60, DeviceID: "d1"},
	}
}

func TestLeaderboard_Load(t *testing.T) {
	repo := &mockScores{scores: sampleScores()}
	s := New(repo, 0, "d1")

	if !strings.Contains(s.View(80, 20), "Loading") {
		t.Error("expected loading message before scores arrive")
	}
	run(s, s.Init())

	view := s.View(80, 20)
	for _, name := range []string{"Ada", "Bo", "Cy"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing %q", name)
		}
	}
	if len(repo.grades) != 1 || repo.grades[0] != 0 {
		t.Errorf("queried grades = %v, want [0]", repo.grades)
	}
}

func TestLeaderboard_Empty(t *testing.T) {
	s := New(&mockScores{}, 0, "")
	run(s, s.Init())
	if !strings.Contains(s.View(80, 20), "No scores yet") {
		t.Error("expected empty message")
	}
}

func TestLeaderboard_NilRepo(t *testing.T) {
	s := New(nil, 2, "")
	run(s, s.Init())
	if !strings.Contains(s.View(80, 20), "No scores yet") {
		t.Error("expected empty message without a store")
	}
}

func TestLeaderboard_Error(t *testing.T) {
	s := New(&mockScores{err: errors.New("db locked")}, 0, "")
	run(s, s.Init())
	if !strings.Contains(s.View(80, 20), "db locked") {
		t.Error("expected error in view")
	}
}

func TestLeaderboard_GradeCycling(t *testing.T) {
	repo := &mockScores{scores: sampleScores()}
	s := New(repo, 0, "")
	run(s, s.Init())

	want := []int{2, 3, 4, 5, 0, 2}
	for _, g := range want {
		_, cmd := s.Update(specialKey(tea.KeyRight))
		run(s, cmd)
		if s.Grade() != g {
			t.Fatalf("Grade() = %d, want %d", s.Grade(), g)
		}
	}

	_, cmd := s.Update(specialKey(tea.KeyLeft))
	run(s, cmd)
	if s.Grade() != 0 {
		t.Errorf("Grade() = %d after left, want 0", s.Grade())
	}
	_, cmd = s.Update(specialKey(tea.KeyLeft))
	run(s, cmd)
	if s.Grade() != 5 {
		t.Errorf("Grade() = %d after left, want 5", s.Grade())
	}
}

func TestLeaderboard_GradeFilter(t *testing.T) {
	repo := &mockScores{scores: sampleScores()}
	s := New(repo, 3, "")
	run(s, s.Init())

	view := s.View(80, 20)
	if strings.Contains(view, "Bo") {
		t.Error("grade 2 entry should be filtered out")
	}
	if !strings.Contains(view, "Ada") || !strings.Contains(view, "Cy") {
		t.Error("expected grade 3 entries")
	}
	if s.Title() != "Leaderboard · Grade 3" {
		t.Errorf("Title() = %q", s.Title())
	}
}

func TestLeaderboard_StaleResultIgnored(t *testing.T) {
	repo := &mockScores{scores: sampleScores()}
	s := New(repo, 0, "")
	stale := s.Init()

	_, cmd := s.Update(specialKey(tea.KeyRight)) // now grade 2
	run(s, stale)
	if s.loaded {
		t.Fatal("stale all-grades result should be ignored")
	}

	run(s, cmd)
	if !s.loaded || len(s.scores) != 1 {
		t.Errorf("loaded=%v scores=%d, want grade 2 only", s.loaded, len(s.scores))
	}
}

func TestLeaderboard_Back(t *testing.T) {
	s := New(nil, 0, "")
	for _, msg := range []tea.KeyPressMsg{specialKey(tea.KeyEscape), keyPress('q')} {
		_, cmd := s.Update(msg)
		if cmd == nil {
			t.Fatal("expected pop command")
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected PopScreenMsg, got %T", cmd())
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate = %q, want %q", got, "abcd…")
	}
}
