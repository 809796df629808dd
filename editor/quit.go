package editor

import (
	"github.com/lixenwraith/tin/parameter"
)

// quitGuard counts the extra quit presses a dirty buffer needs.
// remaining == QuitTimes is the clean state; lower values are warnings.
type quitGuard struct {
	remaining int
}

func newQuitGuard() quitGuard {
	return quitGuard{remaining: parameter.QuitTimes}
}

// press registers a quit command; it returns true when the editor should terminate,
// otherwise the number of presses still required
func (q *quitGuard) press(dirty bool) (bool, int) {
	if !dirty || q.remaining <= 0 {
		return true, 0
	}
	left := q.remaining
	q.remaining--
	return false, left
}

// reset restores the threshold after a mutation or a successful save
func (q *quitGuard) reset() {
	q.remaining = parameter.QuitTimes
}

// warning reports whether a quit warning is pending
func (q *quitGuard) warning() bool {
	return q.remaining < parameter.QuitTimes
}
