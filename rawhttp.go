// Package rawhttp is a minimal, synchronous HTTP/1.1 client for driving
// tests against HTTP servers. It writes hand-built requests on a fresh TCP
// connection and leaves the raw response bytes for the caller:
//
//	c := &rawhttp.Client{}
//	c.SetAddress("http://localhost:8888")
//	conn, err := c.Send("GET", "/")
//	if err != nil { ... }
//	defer conn.Close()
//	raw, err := conn.ReadAll()
//
// There is no pooling, keep-alive handling, TLS, redirect following or
// response parsing.
package rawhttp

import (
	"github.com/frankli0324/go-rawhttp/internal"
	"github.com/frankli0324/go-rawhttp/internal/model"
	"github.com/frankli0324/go-rawhttp/internal/transport"
)

type Client = internal.Client
type Conn = internal.Conn
type Header = model.Header
type Request = model.Request
type PreparedRequest = model.PreparedRequest
type Target = model.Target

type Handler = internal.Handler
type Middleware = internal.Middleware

type ConnectionError = internal.ConnectionError

var (
	ErrInvalidURL      = model.ErrInvalidURL
	ErrMissingHost     = model.ErrMissingHost
	ErrMissingPort     = model.ErrMissingPort
	ErrInvalidMethod   = model.ErrInvalidMethod
	ErrInvalidHeader   = model.ErrInvalidHeader
	ErrContentLength   = model.ErrContentLength
	ErrUnsupportedBody = model.ErrUnsupportedBody
	ErrInvalidUTF8     = model.ErrInvalidUTF8
)

var (
	NewHeader   = model.NewHeader
	ParseTarget = model.ParseTarget
)

// FormatRequest renders the request line and the minimal header block of a
// bodiless request to an absolute url with explicit host and port.
func FormatRequest(method, url string) (string, error) {
	return transport.FormatRequest(method, url)
}
