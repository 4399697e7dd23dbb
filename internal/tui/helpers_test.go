package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minatsilvester/hedwig/internal/executor"
	"github.com/minatsilvester/hedwig/internal/types"
)

// fakeExecutor records calls and returns a canned body
type fakeExecutor struct {
	mu    sync.Mutex
	calls []string
	body  string
	err   error
}

func (f *fakeExecutor) Execute(_ context.Context, method, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method+" "+url)
	return f.body, f.err
}

var _ executor.Executor = (*fakeExecutor)(nil)

// CreateTestModel creates a sized Model with highlighting off and a stub clipboard
func CreateTestModel(t *testing.T, exec executor.Executor, requests ...types.Request) *Model {
	t.Helper()

	m := New(Options{
		Executor: exec,
		Requests: requests,
	})
	m.clipboardWrite = func(string) error { return nil }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return m
}

// pressRunes types each rune as its own key press
func pressRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// press sends a single key of the given type
func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

// pressKey sends a single rune key and returns the command
func pressKey(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

// runCmd runs cmd and feeds its message back into the model
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg := cmd()
	m.Update(msg)
	return msg
}

func strPtr(s string) *string {
	return &s
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}
