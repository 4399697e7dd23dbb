/*
Package tui implements the terminal user interface for hedwig.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: wraps a state.State plus rendering state (viewport, help, status bar)
  - Update: translates key presses into state events and applies results
  - View: renders the current screen

# Key Components

  - model.go: Model struct, Update and message types
  - keys.go: keyboard input handling and keybind routing
  - actions.go: sends, clipboard and quit side effects
  - render.go: panel layout for the main and new request screens
  - highlight.go: response pretty-printing and syntax highlighting

# Screens

The main screen shows the request list (40% of the width) next to the
response (70% of the right column) and details panels. The new request
screen is a single form with Name, URL and Method fields confirmed in turn.

# Threading Model

The TUI runs in Bubble Tea's event loop. A send runs as a tea.Cmd on its own
goroutine with only the method and URL it needs; its result comes back as a
responseMsg and is written into the state by Update. One send may be in
flight at a time.
*/
package tui
