// Package chunked frames request bodies of unknown length with the HTTP/1.1
// chunked transfer coding (RFC 9112, section 7.1).
package chunked

import (
	"io"
	"strconv"
)

const lastChunk = "0\r\n\r\n"

// Writer turns every non-empty Write into exactly one chunk on the wire.
// Close terminates the body; trailers are never written.
type Writer struct {
	wire io.Writer
	size []byte // "<hex>\r\n" scratch
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{wire: w, size: make([]byte, 0, 18)}
}

func (cw *Writer) Write(p []byte) (int, error) {
	// a zero sized chunk would end the body early
	if len(p) == 0 {
		return 0, nil
	}
	cw.size = strconv.AppendUint(cw.size[:0], uint64(len(p)), 16)
	cw.size = append(cw.size, '\r', '\n')
	if _, err := cw.wire.Write(cw.size); err != nil {
		return 0, err
	}
	n, err := cw.wire.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	if _, err := io.WriteString(cw.wire, "\r\n"); err != nil {
		return n, err
	}
	return n, nil
}

func (cw *Writer) Close() error {
	n, err := io.WriteString(cw.wire, lastChunk)
	if err == nil && n != len(lastChunk) {
		return io.ErrShortWrite
	}
	return err
}
