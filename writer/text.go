package writer

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rivo/uniseg"

	"github.com/rbfkit/rbf"
)

// TextWriter renders each record as a small ASCII table: a header row of
// field names, a rule, and the row's values. Cell widths account for the
// terminal display width of the values, not their byte length.
type TextWriter struct {
	w   io.Writer
	raw bool
}

// NewText returns a text table writer backed by w.
func NewText(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// SetRaw switches the writer to raw field values instead of stripped ones.
func (tw *TextWriter) SetRaw(raw bool) { tw.raw = raw }

func (tw *TextWriter) value(f *rbf.Field) string {
	if tw.raw {
		return f.RawValue()
	}
	return f.Value()
}

func (tw *TextWriter) Write(rec *rbf.Record) error {
	fields := rec.Fields()
	names := make([]string, len(fields))
	values := make([]string, len(fields))
	for i, f := range fields {
		width := f.Len()
		if w := uniseg.StringWidth(f.Name()); w > width {
			width = w
		}
		names[i] = pad(f.Name(), width)
		values[i] = pad(tw.value(f), width)
	}

	header := strings.Join(names, "|")
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", uniseg.StringWidth(header)))
	b.WriteByte('\n')
	b.WriteString(strings.Join(values, "|"))
	b.WriteString("\n\n")

	_, err := io.WriteString(tw.w, b.String())
	return errors.Wrap(err, "writer: write text table")
}

func (tw *TextWriter) Close() error { return nil }

// pad left-justifies s within width display cells.
func pad(s string, width int) string {
	if n := width - uniseg.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// TagWriter renders each record as a single line of NAME="value" pairs
// prefixed with the record name.
type TagWriter struct {
	w io.Writer
}

// NewTag returns a tag writer backed by w.
func NewTag(w io.Writer) *TagWriter {
	return &TagWriter{w: w}
}

func (tw *TagWriter) Write(rec *rbf.Record) error {
	var b strings.Builder
	b.WriteString(rec.Name())
	b.WriteByte(':')
	for _, f := range rec.Fields() {
		b.WriteByte(' ')
		b.WriteString(f.Name())
		b.WriteString(`="`)
		b.WriteString(f.Value())
		b.WriteByte('"')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(tw.w, b.String())
	return errors.Wrap(err, "writer: write tag line")
}

func (tw *TagWriter) Close() error { return nil }
