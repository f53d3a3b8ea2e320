package rbf

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Open opens a record-based data feed for reading. Files ending in .gz are
// decompressed transparently, which is how compressed batch exports ship.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "rbf: open input")
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "rbf: open gzip input")
	}
	return &gzipSource{Reader: zr, file: f}, nil
}

// gzipSource closes both the gzip stream and the file behind it.
type gzipSource struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipSource) Close() error {
	zerr := g.Reader.Close()
	ferr := g.file.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}
