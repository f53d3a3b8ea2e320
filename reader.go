package rbf

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// A Classifier maps a raw input line to the name of the record shape that
// should parse it. It is supplied by the caller and must be pure.
type Classifier func(line string) string

// A Reader decodes a record-based file one line at a time. Each advance
// classifies the next line, looks the resulting record type up in the
// layout and rewrites that record's field values in place from the line's
// byte ranges. The sequence is single-pass and yields records strictly in
// input-line order.
type Reader struct {
	data     *bufio.Reader
	layout   *Layout
	classify Classifier
	only     map[string]bool
	done     bool
	line     int
}

// NewReader returns a reader that decodes lines from r against layout. The
// layout is borrowed, not owned: its records are the shared storage every
// yielded record aliases.
func NewReader(r io.Reader, layout *Layout, classify Classifier) *Reader {
	return &Reader{
		data:     bufio.NewReader(r),
		layout:   layout,
		classify: classify,
	}
}

// SetRecordFilter restricts the reader to lines classified to one of the
// given record names. Other lines are skipped silently, whether or not their
// type is in the layout.
func (r *Reader) SetRecordFilter(names ...string) {
	r.only = make(map[string]bool, len(names))
	for _, name := range names {
		r.only[name] = true
	}
}

// Next decodes the next line and returns the matching record. It returns
// io.EOF once the input is exhausted.
//
// The returned record aliases the layout's shared storage for its type: the
// next line classified to the same type overwrites it. Callers that need to
// keep a row beyond the next advance must Clone it first.
//
// A line whose classified type is not in the layout yields an
// *UnknownRecordTypeError; the error is local to that line and the reader
// remains usable.
func (r *Reader) Next() (*Record, error) {
	for {
		if r.done {
			return nil, io.EOF
		}

		line, err := r.data.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "rbf: read line")
		}
		if err == io.EOF {
			r.done = true
			if line == "" {
				return nil, io.EOF
			}
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		r.line++

		// blank lines carry no record
		if line == "" {
			if r.done {
				return nil, io.EOF
			}
			continue
		}

		name := r.classify(line)
		if r.only != nil && !r.only[name] {
			continue
		}
		rec, ok := r.layout.Record(name)
		if !ok {
			return nil, &UnknownRecordTypeError{Name: name, Line: r.line}
		}
		rec.SetValue(line)
		return rec, nil
	}
}

// Line returns the number of input lines consumed so far.
func (r *Reader) Line() int { return r.line }

// A FileReader is a Reader over a file on disk. The file is not touched at
// construction time; it opens on the first call to Next, which is where an
// unopenable path surfaces. Files ending in .gz are decompressed
// transparently.
type FileReader struct {
	path     string
	layout   *Layout
	classify Classifier
	filter   []string

	src io.ReadCloser
	r   *Reader
}

// NewFileReader returns a reader over the record-based file at path. It
// never fails: opening is deferred to the first Next.
func NewFileReader(path string, layout *Layout, classify Classifier) *FileReader {
	return &FileReader{path: path, layout: layout, classify: classify}
}

// SetRecordFilter restricts the reader to the given record names.
func (f *FileReader) SetRecordFilter(names ...string) {
	f.filter = names
	if f.r != nil {
		f.r.SetRecordFilter(names...)
	}
}

// Next decodes the next line of the file, opening it first if needed. See
// Reader.Next for the aliasing and error contract.
func (f *FileReader) Next() (*Record, error) {
	if f.r == nil {
		src, err := Open(f.path)
		if err != nil {
			return nil, err
		}
		f.src = src
		f.r = NewReader(src, f.layout, f.classify)
		if f.filter != nil {
			f.r.SetRecordFilter(f.filter...)
		}
	}
	return f.r.Next()
}

// Close releases the underlying file. It is safe to call before the first
// Next and more than once.
func (f *FileReader) Close() error {
	if f.src == nil {
		return nil
	}
	src := f.src
	f.src = nil
	return src.Close()
}
