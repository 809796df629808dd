package editor

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/tin/parameter"
)

// statusMessage is the bounded transient message shown on the message bar
type statusMessage struct {
	text [parameter.StatusMessageMax]byte
	n    int
	at   time.Time
}

// set formats the message, truncating at StatusMessageMax without splitting a character
func (s *statusMessage) set(now time.Time, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > len(s.text) {
		cut := len(s.text)
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	s.n = copy(s.text[:], msg)
	s.at = now
}

// clear drops the message immediately
func (s *statusMessage) clear() {
	s.n = 0
}

// current returns the message, expiring it once StatusMessageDuration has passed
func (s *statusMessage) current(now time.Time) string {
	if s.n > 0 && now.Sub(s.at) >= parameter.StatusMessageDuration {
		s.n = 0
	}
	return string(s.text[:s.n])
}
