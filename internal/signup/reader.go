package signup

import (
	"bufio"
	"io"
	"strings"
)

const (
	fieldDelimiter = "\t"
	maxLineSize    = 16 << 20 // 16MB
)

// Reader yields raw tab-separated rows from a headerless signup export.
// The export carries no quoting, so '"' is always plain data.
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a Reader over r. Rows may have any number of fields.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner}
}

// Read returns the next non-blank row, or io.EOF when the input is exhausted
func (r *Reader) Read() ([]string, error) {
	for r.scanner.Scan() {
		line := strings.TrimSuffix(r.scanner.Text(), "\r")
		if line == "" {
			continue
		}
		return strings.Split(line, fieldDelimiter), nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}
