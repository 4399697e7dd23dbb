package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestSelector_PreselectsCurrent(t *testing.T) {
	m := newSelector("PUT")

	selected, ok := m.list.SelectedItem().(item)
	assert.True(t, ok)
	assert.Equal(t, "PUT", selected.value)
	assert.Equal(t, "PUT [default]", selected.Title())
}

func TestSelector_EnterChooses(t *testing.T) {
	m := newSelector("GET")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result := next.(selectorModel)
	assert.Equal(t, "POST", result.choice)
	assert.True(t, result.quitting)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, result.View())
}

func TestSelector_Cancel(t *testing.T) {
	m := newSelector("DELETE")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	result := next.(selectorModel)
	assert.Empty(t, result.choice)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
