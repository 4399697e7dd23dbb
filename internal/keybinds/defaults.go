package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerMainBindings(r)
	registerNewRequestBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available on every screen
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerMainBindings sets up the request list bindings
func registerMainBindings(r *Registry) {
	r.RegisterMultiple(ContextMain, []string{"q", "esc"}, ActionQuit)
	r.Register(ContextMain, "a", ActionNewRequest)
	r.Register(ContextMain, "down", ActionNavigateDown)
	r.Register(ContextMain, "up", ActionNavigateUp)
	r.RegisterMultiple(ContextMain, []string{"enter", "s"}, ActionExecute)
	r.Register(ContextMain, "c", ActionCopyResponse)
	r.Register(ContextMain, "pgup", ActionScrollUp)
	r.Register(ContextMain, "pgdown", ActionScrollDown)
	r.Register(ContextMain, "?", ActionToggleHelp)
}

// registerNewRequestBindings sets up the form bindings.
// Unbound printable keys are typed into the active field.
func registerNewRequestBindings(r *Registry) {
	r.Register(ContextNewRequest, "esc", ActionTextCancel)
	r.Register(ContextNewRequest, "enter", ActionTextSubmit)
	r.Register(ContextNewRequest, "backspace", ActionTextBackspace)
}
