package results

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ghpulse/internal/render"
)

// Model is a scrollable view over the rendered panels
type Model struct {
	viewport viewport.Model
	state    render.State
	spinner  string
	width    int
	height   int
}

// ScrollKeys only binds paging. Letters, arrows and ctrl+u/ctrl+d belong to
// the username input.
func ScrollKeys() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
	}
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	vp.KeyMap = ScrollKeys()
	return Model{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.height <= 0 {
		return render.View(m.state, m.spinner)
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetState replaces the displayed state. A new result scrolls back to the top.
func (m *Model) SetState(s render.State, spinner string) {
	resetScroll := s.RequestID != m.state.RequestID || s.Phase != m.state.Phase
	m.state = s
	m.spinner = spinner
	m.Render()
	if resetScroll {
		m.viewport.GotoTop()
	}
}

func (m *Model) Render() {
	m.viewport.SetContent(render.View(m.state, m.spinner))
}
