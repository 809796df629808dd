package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
)

// ErrNoPath is returned by Save on an untitled document
var ErrNoPath = errors.New("no file name")

// Open creates a document from path.
// A path that does not exist yields an empty document already associated with it.
// Other failures still return the associated empty document alongside the error.
func Open(path string) (*Document, error) {
	d := New()
	d.path = path

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("open %s: new file", path)
			return d, nil
		}
		return d, fmt.Errorf("open error: %w", err)
	}
	defer f.Close()

	if err := d.read(f); err != nil {
		d.rows = nil
		d.dirty = 0
		return d, fmt.Errorf("read error: %w", err)
	}
	log.Printf("open %s: %d rows", path, len(d.rows))
	return d, nil
}

// read appends one row per line, stripping trailing CR/LF bytes
func (d *Document) read(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			n := len(line)
			for n > 0 && (line[n-1] == '\n' || line[n-1] == '\r') {
				n--
			}
			d.InsertRow(len(d.rows), line[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	d.dirty = 0
	return nil
}

// writeTo writes rows joined by '\n' without a trailing newline
func (d *Document) writeTo(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	total := 0
	for i, r := range d.rows {
		n, err := bw.Write(r.chars)
		total += n
		if err != nil {
			return total, err
		}
		if i < len(d.rows)-1 {
			if err := bw.WriteByte('\n'); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, bw.Flush()
}

// Save atomically replaces the associated file with the document content and
// returns the number of bytes written. On failure neither the document nor the
// file on disk is modified.
func (d *Document) Save() (int, error) {
	if d.path == "" {
		return 0, ErrNoPath
	}

	n, err := saveAtomic(d.path, d.writeTo)
	if err != nil {
		log.Printf("save %s failed: %v", d.path, err)
		return 0, err
	}

	d.dirty = 0
	log.Printf("save %s: %d bytes", d.path, n)
	return n, nil
}
