package writer

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/rbfkit/rbf"
)

// CSVWriter renders records as semicolon-separated rows. The first time a
// record type is written, a header row of its field names is emitted.
type CSVWriter struct {
	cw     *csv.Writer
	seen   map[string]bool
	raw    bool
	header bool
}

// NewCSV returns a CSV writer backed by w. Headers are on by default.
func NewCSV(w io.Writer) *CSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	return &CSVWriter{
		cw:     cw,
		seen:   make(map[string]bool),
		header: true,
	}
}

// SetRaw switches the writer to raw field values instead of stripped ones.
func (cw *CSVWriter) SetRaw(raw bool) { cw.raw = raw }

// SetHeader controls whether a header row is written per record type.
func (cw *CSVWriter) SetHeader(header bool) { cw.header = header }

func (cw *CSVWriter) Write(rec *rbf.Record) error {
	fields := rec.Fields()

	if cw.header && !cw.seen[rec.Name()] {
		cw.seen[rec.Name()] = true
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.Name()
		}
		if err := cw.cw.Write(names); err != nil {
			return errors.Wrap(err, "writer: write csv header")
		}
	}

	values := make([]string, len(fields))
	for i, f := range fields {
		if cw.raw {
			values[i] = f.RawValue()
		} else {
			values[i] = f.Value()
		}
	}
	return errors.Wrap(cw.cw.Write(values), "writer: write csv row")
}

func (cw *CSVWriter) Close() error {
	cw.cw.Flush()
	return errors.Wrap(cw.cw.Error(), "writer: flush csv")
}
