package terminal

// Pre-allocated ANSI sequences used outside of frame rendering
var (
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	// Cursor control
	csiCursorShow   = []byte("\x1b[?25h")
	csiCursorFar    = []byte("\x1b[999C\x1b[999B") // Clamped by the terminal to the bottom-right cell
	csiCursorReport = []byte("\x1b[6n")            // Device Status Report: reply is ESC [ row ; col R

	// Screen modes
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
)
