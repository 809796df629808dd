// Package document holds the editable text: rows of raw UTF-8 bytes with their
// tab-expanded render form, the unsaved-change counter, and file persistence.
package document

// Position addresses a raw byte column in a row.
// Row == NumRows is the phantom line past the end of the document.
type Position struct {
	Row int
	Col int
}

// Document is the ordered row storage of one editing session
type Document struct {
	rows  []*Row
	dirty int
	path  string
}

// New creates an empty, untitled document
func New() *Document {
	return &Document{}
}

// NumRows returns the number of rows
func (d *Document) NumRows() int {
	return len(d.rows)
}

// Row returns row i, or nil when i is out of range
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// RowLen returns the raw length of row i, 0 for the phantom row
func (d *Document) RowLen(i int) int {
	if r := d.Row(i); r != nil {
		return r.Len()
	}
	return 0
}

// Dirty returns the number of mutations since the last load or save
func (d *Document) Dirty() int {
	return d.dirty
}

// Path returns the associated file path, empty when untitled
func (d *Document) Path() string {
	return d.path
}

// SetPath associates the document with a file
func (d *Document) SetPath(path string) {
	d.path = path
}

// InsertRow inserts a row holding a copy of b at index at in [0, NumRows]
func (d *Document) InsertRow(at int, b []byte) bool {
	if at < 0 || at > len(d.rows) {
		return false
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = newRow(b)
	d.dirty++
	return true
}

// DeleteRow removes the row at index at in [0, NumRows)
func (d *Document) DeleteRow(at int) bool {
	if at < 0 || at >= len(d.rows) {
		return false
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty++
	return true
}

// InsertChar inserts one raw byte into row at column at, clamped to [0, Len]
func (d *Document) InsertChar(row, at int, c byte) bool {
	r := d.Row(row)
	if r == nil {
		return false
	}
	r.insertByte(at, c)
	d.dirty++
	return true
}

// DeleteChar removes one raw byte; out of range is a no-op
func (d *Document) DeleteChar(row, at int) bool {
	r := d.Row(row)
	if r == nil || !r.deleteByte(at) {
		return false
	}
	d.dirty++
	return true
}

// AppendToRow appends b to the end of row
func (d *Document) AppendToRow(row int, b []byte) bool {
	r := d.Row(row)
	if r == nil {
		return false
	}
	r.appendBytes(b)
	d.dirty++
	return true
}

// TruncateRow cuts row down to n raw bytes
func (d *Document) TruncateRow(row, n int) bool {
	r := d.Row(row)
	if r == nil || n < 0 || n >= r.Len() {
		return false
	}
	r.truncate(n)
	d.dirty++
	return true
}

// Lines returns a copy of every row's raw content
func (d *Document) Lines() []string {
	lines := make([]string, len(d.rows))
	for i, r := range d.rows {
		lines[i] = r.String()
	}
	return lines
}
