// Package render turns lookup results into terminal panels and SVG.
// State is a plain value; the TUI only applies it to the screen.
package render

import (
	"github.com/julianstephens/ghpulse/internal/widget"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is what the widget currently displays
type State struct {
	Phase     Phase
	Username  string
	RequestID string
	Result    *widget.Result
	Message   string
}

// Begin starts a lookup. Any previous result or error is hidden while it runs.
func (s State) Begin(username, requestID string) State {
	return State{
		Phase:     PhaseLoading,
		Username:  username,
		RequestID: requestID,
	}
}

// Succeed applies a finished lookup. Results for a superseded request are
// ignored and ok is false.
func (s State) Succeed(requestID string, res widget.Result) (State, bool) {
	if requestID != s.RequestID {
		return s, false
	}
	s.Phase = PhaseReady
	s.Result = &res
	s.Message = ""
	return s, true
}

// Fail applies a failed lookup. The prior result is dropped rather than left stale.
func (s State) Fail(requestID string, err error) (State, bool) {
	if requestID != s.RequestID {
		return s, false
	}
	s.Phase = PhaseFailed
	s.Result = nil
	s.Message = widget.FailureMessage(err)
	return s, true
}

func (s State) Loading() bool { return s.Phase == PhaseLoading }

func (s State) ShowResults() bool { return s.Phase == PhaseReady && s.Result != nil }

func (s State) ShowError() bool { return s.Phase == PhaseFailed && s.Message != "" }
