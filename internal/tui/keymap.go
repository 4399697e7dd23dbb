package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/minatsilvester/hedwig/internal/keybinds"
)

// keyMap adapts registry bindings to the help.KeyMap interface
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return k.short
}

func (k keyMap) FullHelp() [][]key.Binding {
	return k.full
}

// helpBinding builds a help entry for an action from the keys bound to it
func helpBinding(registry *keybinds.Registry, context keybinds.Context, action keybinds.Action) key.Binding {
	keys := registry.GetBinding(context, action)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), keybinds.GetActionInfo(action).Description),
	)
}

func newKeyMap(registry *keybinds.Registry, context keybinds.Context, short []keybinds.Action, full [][]keybinds.Action) keyMap {
	var k keyMap
	for _, action := range short {
		k.short = append(k.short, helpBinding(registry, context, action))
	}
	for _, group := range full {
		var column []key.Binding
		for _, action := range group {
			column = append(column, helpBinding(registry, context, action))
		}
		k.full = append(k.full, column)
	}
	return k
}

func newMainKeyMap(registry *keybinds.Registry) keyMap {
	return newKeyMap(registry, keybinds.ContextMain,
		[]keybinds.Action{
			keybinds.ActionNewRequest,
			keybinds.ActionExecute,
			keybinds.ActionNavigateDown,
			keybinds.ActionNavigateUp,
			keybinds.ActionToggleHelp,
			keybinds.ActionQuit,
		},
		[][]keybinds.Action{
			{keybinds.ActionNavigateDown, keybinds.ActionNavigateUp, keybinds.ActionScrollDown, keybinds.ActionScrollUp},
			{keybinds.ActionNewRequest, keybinds.ActionExecute, keybinds.ActionCopyResponse},
			{keybinds.ActionToggleHelp, keybinds.ActionQuit, keybinds.ActionQuitForce},
		},
	)
}

func newFormKeyMap(registry *keybinds.Registry) keyMap {
	actions := []keybinds.Action{
		keybinds.ActionTextSubmit,
		keybinds.ActionTextBackspace,
		keybinds.ActionTextCancel,
	}
	return newKeyMap(registry, keybinds.ContextNewRequest, actions, [][]keybinds.Action{actions})
}
