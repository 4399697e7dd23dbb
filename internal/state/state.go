package state

import (
	"context"

	"github.com/minatsilvester/hedwig/internal/executor"
	"github.com/minatsilvester/hedwig/internal/types"
)

// noPending marks that no send is in flight
const noPending = -1

// State is the application state owned by the event loop
type State struct {
	requests []types.Request
	selected int
	screen   types.Screen
	form     types.RequestForm
	pending  int
}

// New creates a state on the main screen holding copies of the given requests
func New(requests ...types.Request) *State {
	s := &State{
		screen:  types.ScreenMain,
		form:    types.NewRequestForm(),
		pending: noPending,
	}
	s.requests = append(s.requests, requests...)
	return s
}

// Requests returns a copy of the request list in display order
func (s *State) Requests() []types.Request {
	out := make([]types.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Len returns the number of stored requests
func (s *State) Len() int {
	return len(s.requests)
}

// Selected returns the selected index. It is 0 when the list is empty.
func (s *State) Selected() int {
	return s.selected
}

// SelectedRequest returns the selected request, or false when the list is empty
func (s *State) SelectedRequest() (types.Request, bool) {
	if len(s.requests) == 0 {
		return types.Request{}, false
	}
	return s.requests[s.selected], true
}

// Screen returns the active screen
func (s *State) Screen() types.Screen {
	return s.screen
}

// Form returns a copy of the form being composed
func (s *State) Form() types.RequestForm {
	return s.form
}

// Pending returns the index of the request whose send is in flight
func (s *State) Pending() (int, bool) {
	if s.pending == noPending {
		return 0, false
	}
	return s.pending, true
}

// SelectNext moves the selection down, wrapping to the first request
func (s *State) SelectNext() {
	n := len(s.requests)
	if n == 0 {
		return
	}
	s.selected = (s.selected + 1) % n
}

// SelectPrevious moves the selection up, wrapping to the last request
func (s *State) SelectPrevious() {
	n := len(s.requests)
	if n == 0 {
		return
	}
	s.selected = (s.selected - 1 + n) % n
}

// BeginNewRequest switches to the form screen with a fresh form.
// Any partially entered form is discarded.
func (s *State) BeginNewRequest() {
	s.screen = types.ScreenNewRequest
	s.form = types.NewRequestForm()
}

// AddRequest appends a request to the end of the list
func (s *State) AddRequest(req types.Request) {
	s.requests = append(s.requests, req)
}

// CompleteSend stores the outcome of a send into the request at index.
// A failed send stores a descriptive error text. Out-of-range indexes are ignored.
func (s *State) CompleteSend(index int, body string, err error) {
	if s.pending == index {
		s.pending = noPending
	}
	if index < 0 || index >= len(s.requests) {
		return
	}
	text := ResponseText(body, err)
	s.requests[index].Response = &text
}

// Send executes the selected request synchronously and stores the result.
// It returns false when nothing was sent.
func (s *State) Send(ctx context.Context, exec executor.Executor) bool {
	out := s.Dispatch(ExecuteSelected{})
	if out.Effect != EffectSend {
		return false
	}
	body, err := exec.Execute(ctx, out.Send.Method, out.Send.URL)
	s.CompleteSend(out.Send.Index, body, err)
	return true
}

// ResponseText converts an executor result into the text kept on a request
func ResponseText(body string, err error) string {
	if err != nil {
		return "Error: " + err.Error()
	}
	return body
}
