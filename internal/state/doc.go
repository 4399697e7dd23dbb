/*
Package state holds the application state and the event dispatcher that
drives it.

# Screens

Two screens exist. Main shows the request list and accepts Quit,
BeginNewRequest, NavigateNext, NavigatePrevious and ExecuteSelected.
NewRequest shows the form and accepts Cancel, Confirm, Char and Erase.
Any other event is ignored on either screen.

# Sending

Dispatch never performs I/O. ExecuteSelected returns EffectSend with a
snapshot of the selected request's method and url; the caller runs the
executor and reports back through CompleteSend:

	out := st.Dispatch(state.ExecuteSelected{})
	if out.Effect == state.EffectSend {
		body, err := exec.Execute(ctx, out.Send.Method, out.Send.URL)
		st.CompleteSend(out.Send.Index, body, err)
	}

Only one send may be in flight. While one is pending, ExecuteSelected
returns EffectBusy. Send wraps the sequence above for synchronous callers.
*/
package state
