// Package editor owns one editing session: cursor and viewport state, frame
// composition, key dispatch, the find and save-as prompts, and quit confirmation.
//
// All state lives in an Editor created once at startup and driven by Run on a
// single goroutine; the only outside signal is the display's resize flag.
package editor

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lixenwraith/tin/document"
	"github.com/lixenwraith/tin/parameter"
	"github.com/lixenwraith/tin/render"
	"github.com/lixenwraith/tin/terminal"
)

// Display is the terminal surface the editor reads keys from and draws frames to
type Display interface {
	io.Writer

	// NextKey blocks until one key is decoded; errors are fatal
	NextKey() (terminal.Event, error)

	// Measure returns the screen size in rows and columns
	Measure() (rows, cols int, err error)

	// ConsumeResize reports and clears a pending resize notification
	ConsumeResize() bool
}

// Editor is the single owned context of an editing session
type Editor struct {
	display Display
	doc     *document.Document

	// Cursor: cx is a raw byte column into row cy, rx its rendered column
	cx, cy int
	rx     int

	// Viewport
	rowoff, coloff int
	winrows        int // Text rows, excluding status and message bars
	wincols        int // Full screen width
	gutter         int // Line number digits plus one separator column

	status statusMessage
	quit   quitGuard

	frame *render.ByteBuffer
	now   func() time.Time
}

// New creates an editor for doc drawing to display
func New(display Display, doc *document.Document) *Editor {
	if doc == nil {
		doc = document.New()
	}
	return &Editor{
		display: display,
		doc:     doc,
		quit:    newQuitGuard(),
		frame:   render.NewByteBuffer(4096),
		now:     time.Now,
	}
}

// Document returns the edited document
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Cursor returns the raw cursor position
func (e *Editor) Cursor() document.Position {
	return document.Position{Row: e.cy, Col: e.cx}
}

// SetStatus shows a transient message on the message bar
func (e *Editor) SetStatus(format string, args ...any) {
	e.status.set(e.now(), format, args...)
}

// Resize re-measures the display and recomputes the text area
func (e *Editor) Resize() error {
	rows, cols, err := e.display.Measure()
	if err != nil {
		return fmt.Errorf("measure window: %w", err)
	}

	e.winrows = rows - parameter.HeaderRows - parameter.FooterRows
	if e.winrows < 1 {
		e.winrows = 1
	}
	e.wincols = cols
	log.Printf("viewport %dx%d, text rows %d", cols, rows, e.winrows)
	return nil
}

// Run alternates render, decode one key and dispatch until quit.
// The returned error is fatal: measurement, read or write failure.
func (e *Editor) Run() error {
	if err := e.Resize(); err != nil {
		return err
	}

	for {
		if err := e.Refresh(); err != nil {
			return err
		}

		ev, err := e.display.NextKey()
		if err != nil {
			return err
		}

		done, err := e.ProcessKey(ev)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
