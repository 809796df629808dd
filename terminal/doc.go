// Package terminal provides the raw-mode terminal session used by the editor.
//
// Features:
//   - Raw mode with a short read timeout (VMIN=0, VTIME>0) so reads never block indefinitely
//   - Original attributes restored on every exit path, including panics
//   - Window measurement with a cursor-position-report fallback
//   - SIGWINCH resize detection through a flag observed by the main loop
//   - Byte-at-a-time key decoding with ESC/CSI/SS3 sequence resolution
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
