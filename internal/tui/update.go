package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ghpulse/internal/logger"
	"github.com/julianstephens/ghpulse/internal/widget"
)

// formHeight is the space reserved above the results for title and input
const formHeight = 8

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.results.SetSize(max(msg.Width-4, 0), max(msg.Height-formHeight, 0))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.stopLookup()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}

	case SubmitMsg:
		return m.startLookup(msg.Username)

	case LookupDoneMsg:
		return m.finishLookup(msg), nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.results.SetState(m.state, m.spinner.View())
		return m, cmd
	}

	return m.updateForm(msg)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	// The form's own quit key (ctrl+c) is handled as Quit above, so it can
	// only end by completing.
	if m.form.State == huh.StateCompleted {
		username := m.usernameForm.Username
		m.resetForm()
		cmds = append(cmds, m.form.Init(), func() tea.Msg { return SubmitMsg{Username: username} })
	}

	return m, tea.Batch(cmds...)
}

// startLookup cancels any in-flight lookup and replaces it with a new one.
// Blank usernames are ignored.
func (m Model) startLookup(raw string) (tea.Model, tea.Cmd) {
	username, ok := widget.NormalizeUsername(raw)
	if !ok {
		return m, nil
	}

	m.stopLookup()
	wasLoading := m.state.Loading()

	id := m.newID()
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.state = m.state.Begin(username, id)
	m.results.SetState(m.state, m.spinner.View())

	logger.Debug("Lookup submitted", "username", username, "request_id", id)

	lookup := m.lookup
	run := func() tea.Msg {
		res, err := lookup.Lookup(ctx, username)
		return LookupDoneMsg{RequestID: id, Result: res, Err: err}
	}
	if wasLoading {
		// the spinner is already ticking
		return m, run
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

func (m Model) finishLookup(msg LookupDoneMsg) Model {
	var applied bool
	if msg.Err != nil {
		m.state, applied = m.state.Fail(msg.RequestID, msg.Err)
	} else {
		m.state, applied = m.state.Succeed(msg.RequestID, msg.Result)
	}
	if !applied {
		logger.Debug("Discarding superseded lookup", "request_id", msg.RequestID)
		return m
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if msg.Err != nil {
		logger.Warn("Lookup failed", "username", m.state.Username, "error", msg.Err)
	}
	m.results.SetState(m.state, m.spinner.View())
	return m
}

func (m *Model) stopLookup() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}
