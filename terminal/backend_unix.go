//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/tin/parameter"
)

// ErrNotTerminal is returned by Init when stdin is not attached to a tty
var ErrNotTerminal = errors.New("stdin is not a terminal")

type unixBackend struct {
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	resize *resizeHandler
}

func newBackend() Backend {
	return &unixBackend{
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

// Init captures the original attributes and switches stdin to raw mode.
// Unlike term.MakeRaw, reads return after ReadTimeoutDeciseconds with zero bytes instead of blocking.
func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	old, err := term.GetState(b.inFd)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	tio, err := unix.IoctlGetTermios(b.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("tcgetattr: %w", err)
	}

	// Input: no flow control (^S/^Q), no CR->NL (^M), no break SIGINT, no parity, keep 8th bit
	tio.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	// Output: no post-processing, "\n" is not translated to "\r\n"
	tio.Oflag &^= unix.OPOST
	// Control: 8-bit characters
	tio.Cflag |= unix.CS8
	// Local: no echo, no line buffering, no ^V/^O, no ^C/^Z signals
	tio.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = parameter.ReadTimeoutDeciseconds

	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, tio); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}

	b.oldTerm = old
	return nil
}

// Fini stops the resize watcher and restores the captured attributes
func (b *unixBackend) Fini() {
	if b.resize != nil {
		b.resize.stop()
		b.resize = nil
	}
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *unixBackend) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}

func (b *unixBackend) Write(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Write(b.outFd, p)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return err
		}
		p = p[n:]
	}
	return nil
}

// ReadByte performs one raw read; VTIME bounds the wait
func (b *unixBackend) ReadByte() (byte, bool, error) {
	var buf [1]byte

	for {
		n, err := unix.Read(b.inFd, buf[:])
		if err != nil {
			if err == unix.EINTR {
				continue // Interrupted (SIGWINCH), retry
			}
			if err == unix.EAGAIN {
				return 0, false, nil // Some platforms report the timeout as EAGAIN
			}
			return 0, false, err
		}

		if n == 0 {
			return 0, false, nil // Timeout
		}

		return buf[0], true, nil
	}
}

func (b *unixBackend) SetResizeHandler(handler func()) {
	if b.resize != nil {
		b.resize.stop()
	}
	b.resize = newResizeHandler(handler)
	b.resize.start()
}
