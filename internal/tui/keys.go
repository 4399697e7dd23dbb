package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minatsilvester/hedwig/internal/keybinds"
	"github.com/minatsilvester/hedwig/internal/state"
	"github.com/minatsilvester/hedwig/internal/types"
)

// handleKeyPress routes key presses based on the active screen
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.state.Screen() {
	case types.ScreenMain:
		return m.handleMainKeys(msg)
	case types.ScreenNewRequest:
		return m.handleNewRequestKeys(msg)
	}
	return nil
}

// handleMainKeys handles keys on the request list
func (m *Model) handleMainKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextMain, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return m.quit()

	case keybinds.ActionQuit:
		if m.state.Dispatch(state.Quit{}).Effect == state.EffectQuit {
			return m.quit()
		}

	case keybinds.ActionNewRequest:
		m.state.Dispatch(state.BeginNewRequest{})

	case keybinds.ActionNavigateDown:
		m.state.Dispatch(state.NavigateNext{})
		m.updateResponseView()

	case keybinds.ActionNavigateUp:
		m.state.Dispatch(state.NavigatePrevious{})
		m.updateResponseView()

	case keybinds.ActionExecute:
		return m.executeSelected()

	case keybinds.ActionCopyResponse:
		return m.copyResponse()

	case keybinds.ActionScrollUp:
		m.responseView.ViewUp()

	case keybinds.ActionScrollDown:
		m.responseView.ViewDown()

	case keybinds.ActionToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.updateViewport()
	}

	return nil
}

// handleNewRequestKeys handles keys on the new request form.
// Printable keys that are not bound are typed into the active field.
func (m *Model) handleNewRequestKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextNewRequest, msg.String()); ok {
		switch action {
		case keybinds.ActionQuitForce:
			return m.quit()
		case keybinds.ActionTextSubmit:
			m.confirmField()
		case keybinds.ActionTextCancel:
			m.state.Dispatch(state.Cancel{})
			m.setStatusMessage("New request cancelled")
		case keybinds.ActionTextBackspace:
			m.state.Dispatch(state.Erase{})
		}
		return nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		for _, r := range msg.Runes {
			m.state.Dispatch(state.Char{R: r})
		}
	case tea.KeySpace:
		m.state.Dispatch(state.Char{R: ' '})
	}

	return nil
}

// confirmField confirms the active form field and reports a completed request
func (m *Model) confirmField() {
	before := m.state.Len()
	m.state.Dispatch(state.Confirm{})
	if m.state.Len() > before {
		added := m.state.Requests()[m.state.Len()-1]
		m.logger.Info("request added",
			"name", added.Name,
			"method", added.Method,
			"url", added.URL,
		)
		m.setStatusMessage("Added request " + added.Name)
		m.updateResponseView()
	}
}
