package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/julianstephens/ghpulse/internal/render"
	"github.com/julianstephens/ghpulse/internal/tui/components/results"
	"github.com/julianstephens/ghpulse/internal/widget"
)

// Lookuper runs one username lookup
type Lookuper interface {
	Lookup(ctx context.Context, raw string) (widget.Result, error)
}

type UsernameFormModel struct {
	Username string
}

// SubmitMsg asks for a lookup of Username
type SubmitMsg struct {
	Username string
}

// LookupDoneMsg carries the outcome of the lookup tagged with RequestID
type LookupDoneMsg struct {
	RequestID string
	Result    widget.Result
	Err       error
}

type Model struct {
	lookup       Lookuper
	demoUser     string
	keys         KeyMap
	help         help.Model
	spinner      spinner.Model
	form         *huh.Form
	usernameForm *UsernameFormModel
	results      results.Model
	state        render.State
	cancel       context.CancelFunc
	newID        func() string
	quitting     bool
	width        int
	height       int
}

// NewModel builds the widget. A non-empty demoUser is looked up on start.
func NewModel(lookup Lookuper, demoUser string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#39d353"))

	m := Model{
		lookup:   lookup,
		demoUser: demoUser,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  sp,
		results:  results.New(0, 0),
		newID:    uuid.NewString,
	}
	m.resetForm()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// State returns the render state currently on screen
func (m Model) State() render.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.form.Init()}
	if m.demoUser != "" {
		demo := m.demoUser
		cmds = append(cmds, func() tea.Msg { return SubmitMsg{Username: demo} })
	}
	return tea.Batch(cmds...)
}

func (m *Model) resetForm() {
	m.usernameForm = &UsernameFormModel{}
	m.form = NewUsernameForm(m.usernameForm)
}

// NewUsernameForm creates the single-field username form
func NewUsernameForm(fm *UsernameFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("GitHub username").
				Placeholder("octocat").
				CharLimit(39).
				Value(&fm.Username),
		),
	).WithShowHelp(false)
}
