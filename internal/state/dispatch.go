package state

import "github.com/minatsilvester/hedwig/internal/types"

// Event is an input event understood by the dispatcher
type Event interface {
	isEvent()
}

type (
	// Quit ends the event loop
	Quit struct{}
	// BeginNewRequest opens an empty form
	BeginNewRequest struct{}
	// NavigateNext selects the next request
	NavigateNext struct{}
	// NavigatePrevious selects the previous request
	NavigatePrevious struct{}
	// ExecuteSelected sends the selected request
	ExecuteSelected struct{}
	// Cancel abandons the form
	Cancel struct{}
	// Confirm confirms the active form field
	Confirm struct{}
	// Char types a character into the active form field
	Char struct{ R rune }
	// Erase removes the last character of the active form field
	Erase struct{}
)

func (Quit) isEvent()             {}
func (BeginNewRequest) isEvent()  {}
func (NavigateNext) isEvent()     {}
func (NavigatePrevious) isEvent() {}
func (ExecuteSelected) isEvent()  {}
func (Cancel) isEvent()           {}
func (Confirm) isEvent()          {}
func (Char) isEvent()             {}
func (Erase) isEvent()            {}

// Effect is the side effect the caller must carry out after a dispatch
type Effect int

const (
	EffectNone Effect = iota
	EffectQuit
	EffectSend // perform Outcome.Send, then call CompleteSend
	EffectBusy // a send is already in flight; nothing was started
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectQuit:
		return "quit"
	case EffectSend:
		return "send"
	case EffectBusy:
		return "busy"
	}
	return "unknown"
}

// SendRequest is a snapshot of the request to execute
type SendRequest struct {
	Index  int
	Method string
	URL    string
}

// Outcome is the result of dispatching one event
type Outcome struct {
	Effect Effect
	Send   SendRequest // set when Effect is EffectSend
}

// Dispatch applies an event to the state for the active screen.
// Events that do not apply to the active screen are ignored.
func (s *State) Dispatch(ev Event) Outcome {
	switch s.screen {
	case types.ScreenMain:
		return s.dispatchMain(ev)
	case types.ScreenNewRequest:
		s.dispatchForm(ev)
	}
	return Outcome{}
}

func (s *State) dispatchMain(ev Event) Outcome {
	switch ev.(type) {
	case Quit:
		return Outcome{Effect: EffectQuit}
	case BeginNewRequest:
		s.BeginNewRequest()
	case NavigateNext:
		s.SelectNext()
	case NavigatePrevious:
		s.SelectPrevious()
	case ExecuteSelected:
		return s.startSend()
	}
	return Outcome{}
}

func (s *State) dispatchForm(ev Event) {
	switch ev := ev.(type) {
	case Cancel:
		s.closeForm()
	case Confirm:
		if s.form.Advance() {
			s.AddRequest(s.form.Request())
			s.closeForm()
		}
	case Char:
		s.form.Append(ev.R)
	case Erase:
		s.form.Erase()
	}
}

func (s *State) closeForm() {
	s.screen = types.ScreenMain
	s.form = types.NewRequestForm()
}

func (s *State) startSend() Outcome {
	req, ok := s.SelectedRequest()
	if !ok {
		return Outcome{}
	}
	if s.pending != noPending {
		return Outcome{Effect: EffectBusy}
	}
	s.pending = s.selected
	return Outcome{
		Effect: EffectSend,
		Send: SendRequest{
			Index:  s.selected,
			Method: req.Method,
			URL:    req.URL,
		},
	}
}
