// Package writer renders decoded records into output formats: an ASCII
// table, tagged lines, CSV, an HTML document, or a SQLite database.
package writer

import (
	"io"

	"github.com/pkg/errors"

	"github.com/rbfkit/rbf"
)

// A Writer renders records to an output. Writers are not safe for
// concurrent use. Close flushes buffered output; it does not close the
// underlying destination.
type Writer interface {
	Write(rec *rbf.Record) error
	Close() error
}

// Style selects an output format.
type Style string

const (
	Text Style = "text"
	Tag  Style = "tag"
	CSV  Style = "csv"
	HTML Style = "html"
	SQL  Style = "sqlite3"
)

// ParseStyle maps a style name to its Style.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case Text, Tag, CSV, HTML, SQL:
		return Style(s), nil
	default:
		return "", errors.Errorf("writer: unrecognized output style %q", s)
	}
}

// New returns a writer of the given style backed by w. The SQL style needs a
// database handle instead of a stream; use NewSQL directly.
func New(style Style, w io.Writer) (Writer, error) {
	switch style {
	case Text:
		return NewText(w), nil
	case Tag:
		return NewTag(w), nil
	case CSV:
		return NewCSV(w), nil
	case HTML:
		return NewHTML(w), nil
	case SQL:
		return nil, errors.New("writer: sqlite3 style requires a database handle, use NewSQL")
	default:
		return nil, errors.Errorf("writer: unrecognized output style %q", style)
	}
}
