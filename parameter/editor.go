package parameter

import "time"

// Version is reported by -version and on the welcome banner
const Version = "0.1.0"

// Document & Rendering
const (
	// TabStop is the column interval a tab byte expands to in the rendered row
	TabStop = 4

	// HeaderRows is the number of screen rows above the text area (top status bar)
	HeaderRows = 1

	// FooterRows is the number of screen rows below the text area (message bar)
	FooterRows = 1
)

// Status Bar & Messages
const (
	// StatusMessageMax is the capacity of the transient message in bytes, truncated beyond
	StatusMessageMax = 128

	// StatusMessageDuration is how long a transient message stays on the message bar
	StatusMessageDuration = 2 * time.Second

	// StatusFilenameCells caps the filename shown in the top status bar, in terminal cells
	StatusFilenameCells = 20

	// UntitledName is shown in the status bar when no path is associated
	UntitledName = "[New]"
)

// Quit Confirmation
const (
	// QuitTimes is how many extra quit presses a dirty buffer requires
	QuitTimes = 3
)

// Persistence
const (
	// DefaultFileMode applies to files that did not exist before the first save
	DefaultFileMode = 0o644
)
