package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minatsilvester/hedwig/internal/executor"
	"github.com/minatsilvester/hedwig/internal/state"
)

// executeSelected starts sending the selected request
func (m *Model) executeSelected() tea.Cmd {
	out := m.state.Dispatch(state.ExecuteSelected{})

	switch out.Effect {
	case state.EffectBusy:
		m.setErrorMessage("Request already in progress")
		return nil
	case state.EffectSend:
		if m.exec == nil {
			m.state.CompleteSend(out.Send.Index, "", fmt.Errorf("no executor configured"))
			m.updateResponseView()
			return nil
		}
		m.setStatusMessage(fmt.Sprintf("Sending %s %s...", executor.NormalizeMethod(out.Send.Method), out.Send.URL))
		m.updateResponseView()
		return sendRequest(m.exec, out.Send)
	}

	return nil
}

// sendRequest runs the executor off the event loop and reports back with a responseMsg
func sendRequest(exec executor.Executor, req state.SendRequest) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		body, err := exec.Execute(context.Background(), req.Method, req.URL)
		return responseMsg{
			index:    req.Index,
			body:     body,
			err:      err,
			duration: time.Since(start),
		}
	}
}

// handleResponse stores a finished send into the state
func (m *Model) handleResponse(msg responseMsg) {
	m.state.CompleteSend(msg.index, msg.body, msg.err)

	duration := executor.FormatDuration(msg.duration.Milliseconds())
	if msg.err != nil {
		m.logger.Warn("send failed", "index", msg.index, "duration", duration, "error", msg.err)
		status := fmt.Sprintf("Request failed after %s", duration)
		if hint := failureHint(msg.err); hint != "" {
			status += ": " + hint
		}
		m.setErrorMessage(status)
	} else {
		m.logger.Debug("send completed", "index", msg.index, "duration", duration)
		m.setStatusMessage(fmt.Sprintf("Request completed in %s (%s)", duration, executor.FormatSize(len(msg.body))))
	}

	// refresh even when the selection moved away while the send was in flight
	m.shownIndex = -1
	m.updateResponseView()
}

// copyResponse copies the selected request's full response to the clipboard
func (m *Model) copyResponse() tea.Cmd {
	req, ok := m.state.SelectedRequest()
	if !ok || !req.HasResponse() {
		m.setErrorMessage("No response to copy")
		return nil
	}

	text := req.ResponseText()
	write := m.clipboardWrite
	return func() tea.Msg {
		if err := write(text); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return statusMsg("Response copied to clipboard")
	}
}

// quit ends the program
func (m *Model) quit() tea.Cmd {
	m.logger.Info("quit", "requests", m.state.Len())
	return tea.Quit
}
