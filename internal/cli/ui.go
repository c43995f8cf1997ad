package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/circuitweave/pkg/weave"
)

// =============================================================================
// Color Palette (chrome only; the weave itself uses the configured pair)
// =============================================================================

var (
	colorCyan = lipgloss.Color("36")  // Teal - highlights
	colorGray = lipgloss.Color("245") // Gray - secondary text
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleStatusKey   = lipgloss.NewStyle().Foreground(colorGray)
	styleStatusValue = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleHelp        = lipgloss.NewStyle().Foreground(colorDim)
)

// weaveStyle builds the cell style carrying the composition's two-tone pair.
func weaveStyle(cfg Config, mode weave.Mode) lipgloss.Style {
	pair := cfg.pair(mode)
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(pair.Foreground)).
		Background(lipgloss.Color(pair.Background))
}
