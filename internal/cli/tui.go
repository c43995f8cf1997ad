package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/circuitweave/pkg/weave"
)

// chromeRows is the number of terminal rows reserved for the status bar and
// help line below the weave.
const chromeRows = 2

// weaveModel is the bubbletea model for the interactive weave view. All
// regeneration triggers are synchronous key handlers, so the scene never sees
// concurrent mutation.
type weaveModel struct {
	scene  *weave.Scene
	cfg    Config
	width  int
	height int
}

// newWeaveModel creates the interactive model around an existing scene.
func newWeaveModel(scene *weave.Scene, cfg Config) weaveModel {
	return weaveModel{scene: scene, cfg: cfg}
}

func (m weaveModel) Init() tea.Cmd {
	return nil
}

func (m weaveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n":
			// New composition: fresh seed, roulette style and mode.
			m.scene.Regenerate(true)
		case "r":
			// Reseed only; style and mode stay put.
			m.scene.Regenerate(false)
		case "s":
			m.scene.ToggleStyle()
		case "m":
			m.scene.ToggleMode()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scene.Resize(float64(msg.Width), float64(max(msg.Height-chromeRows, 1)))
	}
	return m, nil
}

func (m weaveModel) View() string {
	var b strings.Builder

	cell := weaveStyle(m.cfg, m.scene.Mode)
	lines := m.scene.Lines()

	// The scene enforces a minimum grid size, so it may be larger than the
	// terminal; clip to what fits.
	visible := len(lines)
	if m.height > chromeRows && m.height-chromeRows < visible {
		visible = m.height - chromeRows
	}
	for _, line := range lines[:visible] {
		if m.width > 0 && len([]rune(line)) > m.width {
			line = string([]rune(line)[:m.width])
		}
		b.WriteString(cell.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(styleHelp.Render("n new  r reseed  s style  m mode  q quit"))

	return b.String()
}

// statusLine renders the composition identity and parameters.
func (m weaveModel) statusLine() string {
	id := m.scene.ID.String()[:8]
	parts := []string{
		styleStatusKey.Render("id ") + styleStatusValue.Render(id),
		styleStatusKey.Render("seed ") + styleStatusValue.Render(fmt.Sprintf("%d", m.scene.Seed)),
		styleStatusKey.Render("style ") + styleStatusValue.Render(string(m.scene.Style)),
		styleStatusKey.Render("mode ") + styleStatusValue.Render(string(m.scene.Mode)),
		styleStatusKey.Render("grid ") + styleStatusValue.Render(fmt.Sprintf("%d×%d", m.scene.Cols, m.scene.Rows)),
	}
	return strings.Join(parts, styleHelp.Render(" · "))
}
