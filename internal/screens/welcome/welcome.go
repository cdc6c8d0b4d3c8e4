package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrop/internal/router"
	"github.com/abhisek/mathdrop/internal/screen"
	"github.com/abhisek/mathdrop/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

// rainRows is the height of the falling-equation animation.
const rainRows = 6

// rainDrops are the equations that fall during the splash, with their
// column offsets.
var rainDrops = []struct {
	text   string
	column int
	delay  int // ticks before the drop starts falling
}{
	{"3 + 4", 2, 0},
	{"6 × 7", 14, 3},
	{"1/2 + 1/4", 24, 1},
	{"9 - 5", 38, 4},
}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the menu.
type WelcomeScreen struct {
	menuFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by menuFactory.
func New(menuFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		menuFactory: menuFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tickCmd()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tickCmd()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	menuScreen := w.menuFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: menuScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	// Phase 1+: equations rain down
	sections = append(sections, w.renderRain())

	// Phase 2+: banner
	if w.elapsed >= phase1End {
		sections = append(sections, "", RenderBanner(width))
	}

	// Phase 3+: tagline and hint
	if w.elapsed >= phase2End {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Catch the equations before they land!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", tagline, "", hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderRain draws each drop at a row that advances one step per tick and
// wraps back to the top.
func (w *WelcomeScreen) renderRain() string {
	rows := make([]string, rainRows)
	for _, d := range rainDrops {
		step := w.tickCount - d.delay
		if step < 0 {
			continue
		}
		row := step % rainRows
		line := rows[row]
		if pad := d.column - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		} else if line != "" {
			line += " "
		}
		rows[row] = line + theme.BubbleCalm.Render(d.text)
	}
	return strings.Join(rows, "\n")
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
