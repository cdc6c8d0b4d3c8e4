package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrop/internal/ui/theme"
)

const bannerArt = `
 █▀▄▀█ ▄▀█ ▀█▀ █ █   █▀▄ █▀█ █▀█ █▀█
 █ ▀ █ █▀█  █  █▀█   █▄▀ █▀▄ █▄█ █▀▀`

const bannerCompact = "M A T H   D R O P"

// RenderBanner returns the Math Drop banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
