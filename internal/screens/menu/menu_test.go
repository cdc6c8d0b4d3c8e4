package menu

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrop/internal/router"
	"github.com/abhisek/mathdrop/internal/screens/game"
	"github.com/abhisek/mathdrop/internal/screens/leaderboard"
	sess "github.com/abhisek/mathdrop/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps(grade int) game.Deps {
	return game.Deps{Grade: grade, Rules: sess.DefaultConfig()}
}

func TestMenu_GradeClampedOnCreate(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 2},
		{1, 2},
		{3, 3},
		{9, 5},
	}
	for _, tt := range tests {
		if got := New(testDeps(tt.in)).Grade(); got != tt.want {
			t.Errorf("New(grade %d).Grade() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMenu_GradeArrows(t *testing.T) {
	m := New(testDeps(2))

	m.Update(specialKey(tea.KeyLeft))
	if m.Grade() != 2 {
		t.Errorf("Grade() = %d, want 2 (clamped)", m.Grade())
	}
	for range 5 {
		m.Update(specialKey(tea.KeyRight))
	}
	if m.Grade() != 5 {
		t.Errorf("Grade() = %d, want 5 (clamped)", m.Grade())
	}
	m.Update(specialKey(tea.KeyLeft))
	if m.Grade() != 4 {
		t.Errorf("Grade() = %d, want 4", m.Grade())
	}
}

func TestMenu_GradeDigits(t *testing.T) {
	m := New(testDeps(2))
	m.Update(keyPress('4'))
	if m.Grade() != 4 {
		t.Errorf("Grade() = %d, want 4", m.Grade())
	}
	m.Update(keyPress('7'))
	if m.Grade() != 4 {
		t.Errorf("Grade() = %d, want 4 (7 is not a grade)", m.Grade())
	}
}

func TestMenu_PlayPushesGame(t *testing.T) {
	m := New(testDeps(3))
	m.Update(keyPress('5'))

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected play command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	g, ok := msg.Screen.(*game.GameScreen)
	if !ok {
		t.Fatalf("expected game screen, got %T", msg.Screen)
	}
	if g.State().Grade != 5 {
		t.Errorf("game grade = %d, want 5", g.State().Grade)
	}
}

func TestMenu_LeaderboardPushesBoard(t *testing.T) {
	m := New(testDeps(3))

	m.Update(specialKey(tea.KeyDown))
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected leaderboard command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	board, ok := msg.Screen.(*leaderboard.LeaderboardScreen)
	if !ok {
		t.Fatalf("expected leaderboard screen, got %T", msg.Screen)
	}
	if board.Grade() != 3 {
		t.Errorf("leaderboard grade = %d, want 3", board.Grade())
	}
}

func TestMenu_Quit(t *testing.T) {
	m := New(testDeps(2))
	m.Update(specialKey(tea.KeyDown))
	m.Update(specialKey(tea.KeyDown))

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestMenu_GradeBadgeFollowsSelection(t *testing.T) {
	m := New(testDeps(2))
	if !strings.Contains(m.View(100, 40), "Grade 2") {
		t.Error("expected initial grade badge")
	}
	m.Update(keyPress('4'))
	view := m.View(100, 40)
	if !strings.Contains(view, "Grade 4") || strings.Contains(view, "Grade 2") {
		t.Error("expected badge to follow the selected grade")
	}
}

func TestMenu_View(t *testing.T) {
	m := New(testDeps(5))
	view := m.View(100, 40)
	for _, want := range []string{"PLAY", "LEADERBOARD", "QUIT", "[5]", "fractions"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
