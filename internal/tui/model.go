package tui

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minatsilvester/hedwig/internal/executor"
	"github.com/minatsilvester/hedwig/internal/keybinds"
	"github.com/minatsilvester/hedwig/internal/logging"
	"github.com/minatsilvester/hedwig/internal/state"
	"github.com/minatsilvester/hedwig/internal/types"
)

// Options configures a Model
type Options struct {
	Executor  executor.Executor
	Keybinds  *keybinds.Registry // nil uses the defaults
	Logger    *slog.Logger       // nil discards logs
	Highlight bool
	Theme     string
	Requests  []types.Request // initial request list
}

// Model represents the TUI state
type Model struct {
	// Core state
	state    *state.State
	exec     executor.Executor
	keybinds *keybinds.Registry
	logger   *slog.Logger

	// Rendering
	highlighter  *highlighter
	responseView viewport.Model
	help         help.Model
	mainKeys     keyMap
	formKeys     keyMap
	width        int
	height       int

	// shownIndex is the request whose response is in responseView, -1 for none
	shownIndex int
	shownText  string

	// Status bar
	statusMsg string
	errorMsg  string

	// clipboardWrite is replaced in tests
	clipboardWrite func(string) error
}

// New creates a new TUI model
func New(opts Options) *Model {
	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	return &Model{
		state:          state.New(opts.Requests...),
		exec:           opts.Executor,
		keybinds:       registry,
		logger:         logger,
		highlighter:    newHighlighter(opts.Highlight, opts.Theme),
		responseView:   viewport.New(80, 20),
		help:           help.New(),
		mainKeys:       newMainKeyMap(registry),
		formKeys:       newFormKeyMap(registry),
		shownIndex:     -1,
		clipboardWrite: clipboard.WriteAll,
	}
}

// State returns the application state, for the CLI and tests
func (m *Model) State() *state.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update processes a message and returns the next command
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewport()
		m.shownIndex = -1
		m.updateResponseView()

	case responseMsg:
		m.handleResponse(msg)

	case statusMsg:
		m.setStatusMessage(string(msg))

	case errorMsg:
		m.setErrorMessage(string(msg))
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state.Screen() {
	case types.ScreenNewRequest:
		return m.renderNewRequest()
	default:
		return m.renderMain()
	}
}

// responseMsg carries the result of a send back into Update
type responseMsg struct {
	index    int
	body     string
	err      error
	duration time.Duration
}

type statusMsg string

type errorMsg string

const maxStatusLen = 100

// setStatusMessage shows an informational message and clears any error
func (m *Model) setStatusMessage(msg string) {
	m.errorMsg = ""
	m.statusMsg = truncate(msg, maxStatusLen)
}

// setErrorMessage shows an error in the status bar
func (m *Model) setErrorMessage(msg string) {
	m.errorMsg = truncate(msg, maxStatusLen)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
