package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/tin/parameter"
)

// ErrCursorReport is returned when the cursor position reply cannot be parsed
var ErrCursorReport = errors.New("malformed cursor position report")

// Session owns the raw-mode terminal for the lifetime of one editing session
type Session struct {
	backend Backend
	decoder *Decoder

	// Set from the resize notification, consumed by the main loop
	resized atomic.Bool

	mu      sync.Mutex
	entered bool
	exited  bool
}

// NewSession creates a session on stdin/stdout
func NewSession() *Session {
	return newSession(newBackend())
}

func newSession(b Backend) *Session {
	s := &Session{backend: b}
	s.decoder = NewDecoder(b, s.ResizePending)
	return s
}

// Enter switches to raw mode and the alternate screen
func (s *Session) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entered {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return err
	}

	s.backend.SetResizeHandler(func() {
		s.resized.Store(true)
	})

	s.backend.Write(csiAltScreenEnter)

	s.entered = true
	return nil
}

// Exit restores the original terminal state. Safe to call multiple times
func (s *Session) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.entered || s.exited {
		return
	}

	s.backend.Write(csiClear)
	s.backend.Write(csiCursorShow)
	s.backend.Write(csiAltScreenExit)
	s.backend.Write(csiSGR0)

	s.backend.Fini()

	s.exited = true
}

// Measure returns the current (rows, columns).
// A degenerate OS answer falls back to parking the cursor at the far corner and asking where it is.
func (s *Session) Measure() (int, int, error) {
	rows, cols, err := s.backend.Size()
	if err == nil && rows > 0 && cols > 0 {
		return rows, cols, nil
	}

	if err := s.backend.Write(csiCursorFar); err != nil {
		return 0, 0, err
	}
	return s.cursorPosition()
}

// cursorPosition queries the terminal for the cursor position (1-based)
func (s *Session) cursorPosition() (int, int, error) {
	if err := s.backend.Write(csiCursorReport); err != nil {
		return 0, 0, err
	}

	var buf [parameter.CursorReportMax]byte
	n := 0
	for n < len(buf) {
		b, ok, err := s.backend.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok || b == 'R' {
			break
		}
		buf[n] = b
		n++
	}

	return parseCursorReport(buf[:n])
}

// parseCursorReport parses "ESC [ rows ; cols" with the terminating 'R' already stripped
func parseCursorReport(reply []byte) (int, int, error) {
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, ErrCursorReport
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, ErrCursorReport
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, ErrCursorReport
	}
	return rows, cols, nil
}

// NextKey blocks until one key is decoded
func (s *Session) NextKey() (Event, error) {
	return s.decoder.Next()
}

// Write sends a complete frame in one write
func (s *Session) Write(p []byte) (int, error) {
	if err := s.backend.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ResizePending reports whether a resize notification has not been consumed yet
func (s *Session) ResizePending() bool {
	return s.resized.Load()
}

// ConsumeResize clears and returns the resize flag
func (s *Session) ConsumeResize() bool {
	return s.resized.Swap(false)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Exit() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
