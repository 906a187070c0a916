package core

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newSourceReader wraps r so the CSV parser sees clean UTF-8: a leading
// byte-order mark is consumed (UTF-16 input marked by a BOM is transcoded)
// and invalid byte sequences become U+FFFD.
//
// BOMOverride hands the rest of a UTF-8 stream to its fallback untouched
// once it sees a BOM, so validation runs as a separate stage after it.
func newSourceReader(r io.Reader) io.Reader {
	return transform.NewReader(r, transform.Chain(
		unicode.BOMOverride(transform.Nop),
		unicode.UTF8.NewDecoder(),
	))
}

// countingReader tracks bytes consumed from the underlying file.
type countingReader struct {
	reader    io.Reader
	BytesRead int64
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}
