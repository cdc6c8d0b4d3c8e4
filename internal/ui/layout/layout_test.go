package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderLives(t *testing.T) {
	if got := strings.Count(RenderLives(3), "♥"); got != 3 {
		t.Errorf("hearts = %d, want 3", got)
	}
	if got := strings.Count(RenderLives(-1), "♥"); got != 0 {
		t.Errorf("hearts for negative lives = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	plain := RenderHeader("Menu", nil, 80)
	if !strings.Contains(plain, "Math Drop") || !strings.Contains(plain, "Menu") {
		t.Errorf("header missing brand or title: %q", plain)
	}
	if strings.Contains(plain, "♥") {
		t.Error("header without status should not show lives")
	}

	withStatus := RenderHeader("Play", &Status{Score: 120, Level: 3, Lives: 2}, 80)
	for _, want := range []string{"120", "Lv 3", "♥♥"} {
		if !strings.Contains(withStatus, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if got := lipgloss.Height(withStatus); got != HeaderHeight {
		t.Errorf("header height = %d, want %d", got, HeaderHeight)
	}
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("x", nil, 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}
