package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal     Context = "global"      // Available everywhere
	ContextMain       Context = "main"        // Request list screen
	ContextNewRequest Context = "new_request" // New request form
)

// Contexts lists every context in lookup order
var Contexts = []Context{ContextGlobal, ContextMain, ContextNewRequest}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Request list actions
	ActionNewRequest   Action = "new_request"   // Open the new request form
	ActionNavigateUp   Action = "navigate_up"   // Select previous request
	ActionNavigateDown Action = "navigate_down" // Select next request
	ActionExecute      Action = "execute"       // Send selected request
	ActionCopyResponse Action = "copy_response" // Copy response to clipboard
	ActionScrollUp     Action = "scroll_up"     // Scroll response up one page
	ActionScrollDown   Action = "scroll_down"   // Scroll response down one page
	ActionToggleHelp   Action = "toggle_help"   // Show or hide full help

	// Text input actions
	ActionTextSubmit    Action = "text_submit"    // Confirm the active field
	ActionTextCancel    Action = "text_cancel"    // Abandon the form
	ActionTextBackspace Action = "text_backspace" // Delete last character

	// Other actions
	ActionNoOp Action = "noop" // Unbinds the key when used in a config
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:          {ActionQuit, "quit", "Global"},
	ActionQuitForce:     {ActionQuitForce, "force quit", "Global"},
	ActionNewRequest:    {ActionNewRequest, "new request", "Requests"},
	ActionNavigateUp:    {ActionNavigateUp, "up", "Navigation"},
	ActionNavigateDown:  {ActionNavigateDown, "down", "Navigation"},
	ActionExecute:       {ActionExecute, "send", "Requests"},
	ActionCopyResponse:  {ActionCopyResponse, "copy response", "Response"},
	ActionScrollUp:      {ActionScrollUp, "scroll up", "Response"},
	ActionScrollDown:    {ActionScrollDown, "scroll down", "Response"},
	ActionToggleHelp:    {ActionToggleHelp, "help", "Information"},
	ActionTextSubmit:    {ActionTextSubmit, "confirm field", "Form"},
	ActionTextCancel:    {ActionTextCancel, "cancel", "Form"},
	ActionTextBackspace: {ActionTextBackspace, "erase", "Form"},
	ActionNoOp:          {ActionNoOp, "unbind", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether the action is handled by the application
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// IsKnownContext reports whether the context is used by the application
func IsKnownContext(context Context) bool {
	for _, c := range Contexts {
		if c == context {
			return true
		}
	}
	return false
}
