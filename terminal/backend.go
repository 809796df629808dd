package terminal

// Backend abstracts platform-specific terminal operations.
// The session and decoder only talk to the terminal through this interface,
// which keeps them testable without a tty.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size reports the OS window size; a zero dimension means the query was degenerate
	Size() (rows, cols int, err error)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// ReadByte waits at most one read timeout for a single input byte.
	// ok is false when the wait expired without input; err is only set for real failures.
	ReadByte() (b byte, ok bool, err error)

	// Callbacks
	// SetResizeHandler registers a callback for terminal resize notifications.
	// The callback must not perform I/O; it runs outside the main loop.
	SetResizeHandler(handler func())
}
