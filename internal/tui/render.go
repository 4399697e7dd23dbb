package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/minatsilvester/hedwig/internal/keybinds"
	"github.com/minatsilvester/hedwig/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Reverse(true).
			Bold(true)

	styleActiveField = lipgloss.NewStyle().
				Bold(true)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// methodStyle returns the color used for a method in the request list
func methodStyle(method string) lipgloss.Style {
	switch method {
	case "GET":
		return styleSuccess
	case "POST":
		return lipgloss.NewStyle().Foreground(colorBlue)
	case "PUT":
		return styleWarning
	case "DELETE":
		return styleError
	}
	return lipgloss.NewStyle()
}

// layout holds the outer sizes of the main screen panels
type layout struct {
	listWidth      int
	rightWidth     int
	bodyHeight     int
	responseHeight int
	detailsHeight  int
}

// layout computes panel sizes. Footer height depends on whether full help is shown.
func (m Model) layout() layout {
	body := max(m.height-lipgloss.Height(m.renderFooter(m.mainKeys)), MinPanelHeight*2)
	list := m.width * ListWidthPercent / 100
	response := body * ResponseHeightPercent / 100

	return layout{
		listWidth:      list,
		rightWidth:     m.width - list,
		bodyHeight:     body,
		responseHeight: response,
		detailsHeight:  body - response,
	}
}

// renderMain renders the request list, response and details panels
func (m Model) renderMain() string {
	l := m.layout()

	list := panel("Requests", m.renderList(l.listWidth-BorderSize, l.bodyHeight-BorderSize-PanelTitleLines), l.listWidth, l.bodyHeight)
	response := panel("Response", m.renderResponse(), l.rightWidth, l.responseHeight)
	details := panel("Details", m.renderDetails(), l.rightWidth, l.detailsHeight)

	mainView := lipgloss.JoinHorizontal(
		lipgloss.Top,
		list,
		lipgloss.JoinVertical(lipgloss.Left, response, details),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderFooter(m.mainKeys),
	)
}

// panel draws a bordered box with a title, sized to the given outer dimensions
func panel(title, content string, width, height int) string {
	innerWidth := max(width-BorderSize, 1)
	innerHeight := max(height-BorderSize, 1)

	body := clampLines(content, innerHeight-PanelTitleLines)
	inner := lipgloss.JoinVertical(lipgloss.Left, styleTitle.Render(title), body)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(innerWidth).
		Height(innerHeight).
		MaxWidth(width).
		Render(inner)
}

// clampLines keeps at most n lines of s
func clampLines(s string, n int) string {
	if n < 1 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}

// renderList renders the request list, scrolled so the selection stays visible
func (m Model) renderList(width, height int) string {
	requests := m.state.Requests()
	if len(requests) == 0 {
		hint := fmt.Sprintf("No requests yet. Press %s to add one.",
			m.keybinds.GetBindingString(keybinds.ContextMain, keybinds.ActionNewRequest))
		return styleSubtle.Render(hint)
	}

	height = max(height, 1)
	selected := m.state.Selected()
	offset := 0
	if selected >= height {
		offset = selected - height + 1
	}
	end := min(offset+height, len(requests))

	rowStyle := lipgloss.NewStyle().MaxWidth(max(width, 1))
	var lines []string
	for i := offset; i < end; i++ {
		req := requests[i]
		var row string
		if i == selected {
			row = styleSelected.Render(req.Method + " " + req.Name)
		} else {
			row = methodStyle(req.Method).Render(req.Method) + " " + req.Name
		}
		lines = append(lines, rowStyle.Render(row))
	}

	return strings.Join(lines, "\n")
}

// renderResponse renders the selected request's response
func (m Model) renderResponse() string {
	if idx, pending := m.state.Pending(); pending && idx == m.state.Selected() {
		return styleWarning.Render(placeholderSending)
	}

	req, ok := m.state.SelectedRequest()
	if !ok || !req.HasResponse() {
		return styleSubtle.Render(placeholderNoResponse)
	}

	return m.responseView.View()
}

// renderDetails renders the selected request's fields
func (m Model) renderDetails() string {
	req, ok := m.state.SelectedRequest()
	if !ok {
		return styleSubtle.Render(placeholderNoRequest)
	}
	return fmt.Sprintf("Name: %s\nURL: %s\nMethod: %s", req.Name, req.URL, req.Method)
}

// renderNewRequest renders the new request form
func (m Model) renderNewRequest() string {
	form := m.state.Form()

	var lines []string
	for _, field := range types.Fields {
		marker := ""
		if field == form.Field {
			marker = " <"
		}
		line := fmt.Sprintf("%-7s %s%s", field.Label()+":", form.Value(field), marker)
		if field == form.Field {
			line = styleActiveField.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", styleSubtle.Render(formInstructions))

	footer := m.renderFooter(m.formKeys)
	height := max(m.height-lipgloss.Height(footer), MinPanelHeight)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panel("New Request", strings.Join(lines, "\n"), m.width, height),
		footer,
	)
}

// renderFooter renders the status bar above the help line
func (m Model) renderFooter(keys keyMap) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderStatusBar(),
		m.help.View(keys),
	)
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	left := "hedwig"
	if n := m.state.Len(); n > 0 && m.state.Screen() == types.ScreenMain {
		left += styleSubtle.Render(fmt.Sprintf(" [%d/%d]", m.state.Selected()+1, n))
	}

	right := ""
	if _, pending := m.state.Pending(); pending {
		right = styleWarning.Render(placeholderSending) + " "
	}
	switch {
	case m.errorMsg != "":
		right += styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right += styleSuccess.Render(m.statusMsg)
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// updateViewport sizes the response viewport. MUST match the sizes used in renderMain.
func (m *Model) updateViewport() {
	l := m.layout()
	m.responseView.Width = max(l.rightWidth-BorderSize, 1)
	m.responseView.Height = max(l.responseHeight-BorderSize-PanelTitleLines, 1)
}

// updateResponseView loads the selected request's response into the viewport
func (m *Model) updateResponseView() {
	req, ok := m.state.SelectedRequest()
	if !ok || !req.HasResponse() {
		m.shownIndex = -1
		m.shownText = ""
		m.responseView.SetContent("")
		return
	}

	idx, text := m.state.Selected(), req.ResponseText()
	if idx == m.shownIndex && text == m.shownText {
		return
	}
	m.shownIndex, m.shownText = idx, text

	m.responseView.SetContent(m.formatResponse(text))
	m.responseView.GotoTop()
}

// formatResponse pretty-prints, highlights and wraps a response for the viewport
func (m *Model) formatResponse(text string) string {
	body := m.highlighter.Highlight(prettyJSON(text))
	if m.responseView.Width < 1 {
		return body
	}
	return lipgloss.NewStyle().Width(m.responseView.Width).Render(body)
}
