package store

import "os"

// Surface is an in-memory editable view of a collection, typically a host
// editor buffer. When a collection is open in a surface, mutations go
// through it and persistence is the surface's own save; otherwise reads and
// writes go straight to disk.
type Surface interface {
	Lines() []string
	SetLines([]string) error
}

// Collection addresses one todo or done file, optionally backed by an open
// surface.
type Collection struct {
	Path    string
	Surface Surface
}

func (c Collection) Read() ([]string, error) {
	if c.Surface != nil {
		return c.Surface.Lines(), nil
	}
	return ReadLines(c.Path)
}

// ReadOrEmpty is Read, except a collection whose file does not exist yet is
// an empty sequence rather than an error. Done files are created lazily.
func (c Collection) ReadOrEmpty() ([]string, error) {
	lines, err := c.Read()
	if err != nil && os.IsNotExist(err) {
		return nil, nil
	}
	return lines, err
}

func (c Collection) Write(lines []string) error {
	if c.Surface != nil {
		return c.Surface.SetLines(lines)
	}
	return WriteLines(c.Path, lines)
}
