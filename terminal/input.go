package terminal

import (
	"fmt"

	"github.com/lixenwraith/tin/parameter"
)

// ByteSource delivers raw input one byte at a time.
// ok is false when the source's read timeout expired without input.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder turns the raw input byte stream into logical keys
type Decoder struct {
	src  ByteSource
	wake func() bool

	// Lookahead after ESC, bounded
	seq [parameter.EscapeLookahead]byte
}

// NewDecoder creates a decoder reading from src.
// wake, when non-nil, is polled on every idle timeout; returning true yields KeyResize.
func NewDecoder(src ByteSource, wake func() bool) *Decoder {
	return &Decoder{src: src, wake: wake}
}

// Next blocks until one key is available and returns it.
// Only real read failures are returned as errors; malformed sequences decode as KeyEscape.
func (d *Decoder) Next() (Event, error) {
	var c byte
	for {
		b, ok, err := d.src.ReadByte()
		if err != nil {
			return Event{}, fmt.Errorf("read: %w", err)
		}
		if ok {
			c = b
			break
		}
		if d.wake != nil && d.wake() {
			return Event{Key: KeyResize}, nil
		}
	}

	switch c {
	case 0x1b:
		return d.parseEscape()
	case '\r':
		return Event{Key: KeyEnter}, nil
	case 0x7f, 0x08: // DEL, Ctrl+H
		return Event{Key: KeyBackspace}, nil
	}
	return Event{Key: KeyByte, Byte: c}, nil
}

// lookahead reads the i-th byte after ESC; false on timeout
func (d *Decoder) lookahead(i int) (bool, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return false, fmt.Errorf("read escape sequence: %w", err)
	}
	if !ok {
		return false, nil
	}
	d.seq[i] = b
	return true, nil
}

// parseEscape resolves ESC [ <letter>, ESC [ <digit> ~ and ESC O <letter>
func (d *Decoder) parseEscape() (Event, error) {
	escape := Event{Key: KeyEscape}
	d.seq = [parameter.EscapeLookahead]byte{}

	for i := 0; i < 2; i++ {
		ok, err := d.lookahead(i)
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return escape, nil
		}
	}

	switch d.seq[0] {
	case '[':
		if d.seq[1] >= '0' && d.seq[1] <= '9' {
			ok, err := d.lookahead(2)
			if err != nil {
				return Event{}, err
			}
			if !ok || d.seq[2] != '~' {
				return escape, nil
			}
			if key, ok := lookupTilde(d.seq[1]); ok {
				return Event{Key: key}, nil
			}
			return escape, nil
		}
		if key, ok := lookupCSI(d.seq[1]); ok {
			return Event{Key: key}, nil
		}
	case 'O':
		if key, ok := lookupSS3(d.seq[1]); ok {
			return Event{Key: key}, nil
		}
	}

	return escape, nil
}

// lookupTilde maps ESC [ <digit> ~
func lookupTilde(b byte) (Key, bool) {
	switch b {
	case '1', '7':
		return KeyHome, true
	case '3':
		return KeyDelete, true
	case '4', '8':
		return KeyEnd, true
	case '5':
		return KeyPageUp, true
	case '6':
		return KeyPageDown, true
	}
	return KeyNone, false
}

// lookupCSI maps ESC [ <letter>
func lookupCSI(b byte) (Key, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return KeyNone, false
}

// lookupSS3 maps ESC O <letter>
func lookupSS3(b byte) (Key, bool) {
	switch b {
	case 'H':
		return KeyHome, true
	case 'F':
		return KeyEnd, true
	}
	return KeyNone, false
}
