package tui

// UI Layout Constants
// These constants define the split of the main screen between panels

const (
	// ListWidthPercent is the share of the width given to the request list
	ListWidthPercent = 40
	// ResponseHeightPercent is the share of the right column given to the response panel
	ResponseHeightPercent = 70

	// BorderSize is the width or height consumed by a panel's two borders
	BorderSize = 2
	// PanelTitleLines is the number of lines used by a panel title
	PanelTitleLines = 1
	// MinPanelHeight keeps panels drawable on very small terminals
	MinPanelHeight = BorderSize + PanelTitleLines + 1
)

const (
	placeholderNoResponse = "No response yet"
	placeholderNoRequest  = "No request selected"
	placeholderSending    = "Sending..."
	formInstructions      = "Press Enter to confirm each field, Esc to cancel"
)
