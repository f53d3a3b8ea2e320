package writer

import (
	"html"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/rbfkit/rbf"
)

// HTMLWriter renders records as a standalone HTML document with one table
// per run of records of the same type. The document header is written on the
// first record, the footer on Close.
type HTMLWriter struct {
	w       io.Writer
	started bool
	current string // record type of the open table, "" when none
}

// NewHTML returns an HTML writer backed by w.
func NewHTML(w io.Writer) *HTMLWriter {
	return &HTMLWriter{w: w}
}

func (hw *HTMLWriter) Write(rec *rbf.Record) error {
	var b strings.Builder

	if !hw.started {
		hw.started = true
		b.WriteString("<!DOCTYPE html>\n<html>\n<body>\n")
	}
	if hw.current != rec.Name() {
		if hw.current != "" {
			b.WriteString("</table>\n")
		}
		hw.current = rec.Name()
		b.WriteString("<h2>" + html.EscapeString(rec.Name()) + "</h2>\n<table border=\"1\">\n<tr>")
		for _, f := range rec.Fields() {
			b.WriteString("<th>" + html.EscapeString(f.Name()) + "</th>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("<tr>")
	for _, f := range rec.Fields() {
		b.WriteString("<td>" + html.EscapeString(f.Value()) + "</td>")
	}
	b.WriteString("</tr>\n")

	_, err := io.WriteString(hw.w, b.String())
	return errors.Wrap(err, "writer: write html row")
}

func (hw *HTMLWriter) Close() error {
	if !hw.started {
		return nil
	}
	var b strings.Builder
	if hw.current != "" {
		b.WriteString("</table>\n")
		hw.current = ""
	}
	b.WriteString("</body>\n</html>\n")
	hw.started = false

	_, err := io.WriteString(hw.w, b.String())
	return errors.Wrap(err, "writer: write html footer")
}
