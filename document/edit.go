package document

// InsertAt inserts byte c at the cursor and returns the cursor after it.
// Typing on the phantom row first materializes it as an empty row.
func (d *Document) InsertAt(pos Position, c byte) Position {
	if pos.Row == d.NumRows() {
		d.InsertRow(d.NumRows(), nil)
	}
	if !d.InsertChar(pos.Row, pos.Col, c) {
		return pos
	}
	pos.Col++
	return pos
}

// Backspace deletes the code point before the cursor, or joins the row onto the
// previous one when the cursor is at column 0. No-op at the document start.
func (d *Document) Backspace(pos Position) Position {
	if pos.Row == 0 && pos.Col == 0 {
		return pos
	}
	row := d.Row(pos.Row)
	if row == nil {
		return pos
	}

	if pos.Col > 0 {
		if pos.Col > row.Len() {
			pos.Col = row.Len()
		}
		// Trailing continuation bytes first, then the lead byte
		for pos.Col > 1 && IsContinuation(row.chars[pos.Col-1]) {
			d.DeleteChar(pos.Row, pos.Col-1)
			pos.Col--
		}
		d.DeleteChar(pos.Row, pos.Col-1)
		pos.Col--
		return pos
	}

	prev := pos.Row - 1
	pos.Col = d.RowLen(prev)
	d.AppendToRow(prev, row.chars)
	d.DeleteRow(pos.Row)
	pos.Row = prev
	return pos
}

// Newline breaks the row at the cursor and returns column 0 of the following row.
// At column 0 an empty row is inserted above instead.
func (d *Document) Newline(pos Position) Position {
	if pos.Col == 0 {
		d.InsertRow(pos.Row, nil)
	} else {
		row := d.Row(pos.Row)
		if row == nil {
			return pos
		}
		if pos.Col > row.Len() {
			pos.Col = row.Len()
		}
		d.InsertRow(pos.Row+1, row.chars[pos.Col:])
		d.TruncateRow(pos.Row, pos.Col)
	}
	pos.Row++
	pos.Col = 0
	return pos
}
