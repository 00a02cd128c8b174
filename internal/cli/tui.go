package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ghpulse/internal/tui"
)

type TuiCmd struct {
	User   string `arg:"" optional:"" help:"Username to look up on start (defaults to the demo user)."`
	NoDemo bool   `help:"Start with an empty form instead of the demo lookup."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	initial := ctx.Config.DemoUser
	if c.User != "" {
		initial = c.User
	}
	if c.NoDemo && c.User == "" {
		initial = ""
	}

	p := tea.NewProgram(tui.NewModel(ctx.Service, initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
