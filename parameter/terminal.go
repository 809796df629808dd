package parameter

// Raw Terminal
const (
	// ReadTimeoutDeciseconds is VTIME for the raw terminal: reads return empty after this wait
	ReadTimeoutDeciseconds = 1

	// EscapeLookahead bounds an escape sequence: ESC plus up to this many bytes minus one
	EscapeLookahead = 3

	// CursorReportMax bounds the cursor position report read during window measurement
	CursorReportMax = 32
)
