package editor

// save writes the document, prompting for a path when none is associated.
// Persistence failures go to the message bar; only prompt I/O errors are returned.
func (e *Editor) save() (saved bool, err error) {
	if e.doc.Path() == "" {
		name, ok, err := e.prompt("save as: %s", promptPlain)
		if err != nil {
			return false, err
		}
		if !ok || name == "" {
			e.SetStatus("write aborted")
			return false, nil
		}
		e.doc.SetPath(name)
	}

	n, err := e.doc.Save()
	if err != nil {
		e.SetStatus("%v", err)
		return false, nil
	}
	e.SetStatus("wrote %d bytes", n)
	return true, nil
}
