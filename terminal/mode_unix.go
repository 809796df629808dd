//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err == nil {
			tio.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			tio.Iflag |= unix.ICRNL | unix.IXON
			tio.Oflag |= unix.OPOST
			tio.Cc[unix.VMIN] = 1
			tio.Cc[unix.VTIME] = 0
			unix.IoctlSetTermios(fd, ioctlWriteTermios, tio)
		}
	}
}
