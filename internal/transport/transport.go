package transport

import (
	"io"

	"github.com/frankli0324/go-rawhttp/internal/model"
)

// Transport serializes a prepared request onto a byte stream. Responses are
// left on the stream for the caller to read.
type Transport interface {
	Write(w io.Writer, req *model.PreparedRequest) error
}

var _ Transport = HTTP1{}
