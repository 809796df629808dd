package terminal

// Key represents a decoded logical key
type Key uint8

const (
	KeyNone Key = iota
	KeyByte     // Plain input byte (check Event.Byte)

	// Control keys
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// KeyResize is synthesized when a resize is pending while waiting for input
	KeyResize
)

// Event is one decoded key
type Event struct {
	Key  Key
	Byte byte // For KeyByte
}

// Ctrl returns the control byte produced by Ctrl+c
func Ctrl(c byte) byte {
	return c & 0x1f
}

// IsCtrl reports whether the event is the plain byte for Ctrl+c
func (e Event) IsCtrl(c byte) bool {
	return e.Key == KeyByte && e.Byte == Ctrl(c)
}

// IsControl reports whether b is an ASCII control byte
func IsControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyByte:      "byte",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyResize:    "resize",
}

// String returns the canonical name of the key
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}
