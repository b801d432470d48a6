package model

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/net/http/httpguts"
)

type PreparedRequest struct {
	*Request
	Target

	Method     string // normalized
	HeaderHost string
	Header     Header // without Host and Content-Length
	GetBody    func() (io.ReadCloser, error)

	// NoBody is set when neither a body nor a Content-Length header was
	// given; no framing header is written then.
	NoBody        bool
	ContentLength int64 // -1 when unknown
}

func (r *Request) Prepare() (*PreparedRequest, error) {
	target, err := ParseTarget(r.URL)
	if err != nil {
		return nil, err
	}
	method, err := NormalizeMethod(r.Method)
	if err != nil {
		return nil, err
	}

	headers := r.Header.Clone()
	host := target.HostPort()
	cl := int64(-1)
	// user defined headers has higher priority
	if v := headers.Values("Host"); len(v) != 0 {
		if !httpguts.ValidHostHeader(v[0]) {
			return nil, fmt.Errorf("%w: host %q", ErrInvalidHeader, v[0])
		}
		host = v[0]
	}
	headers.Del("Host")
	if v := headers.Values("Content-Length"); len(v) != 0 {
		n, err := strconv.ParseInt(strings.TrimSpace(v[0]), 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: content-length %q", ErrInvalidHeader, v[0])
		}
		cl = n
	}
	headers.Del("Content-Length")
	if err := headers.Each(validField); err != nil {
		return nil, err
	}

	pr := &PreparedRequest{
		Request: r, Target: target,
		Method: method, HeaderHost: host, Header: headers,
		ContentLength: -1,
	}
	body := r.Body
	if isNilPointer(body) {
		body = nil
	}
	if err := pr.updateBody(body); err != nil {
		return nil, err
	}
	switch {
	case headers.Has("Transfer-Encoding"):
		// the caller frames the body, Content-Length must not be sent with it
		if cl != -1 {
			return nil, fmt.Errorf("%w: both Content-Length and Transfer-Encoding given", ErrContentLength)
		}
		pr.ContentLength = -1
	case cl == -1:
		pr.NoBody = body == nil
	case pr.ContentLength == -1:
		pr.ContentLength = cl // trust the caller for streamed bodies
	case pr.ContentLength != cl:
		return nil, fmt.Errorf("%w: header says %d, body has %d", ErrContentLength, cl, pr.ContentLength)
	}
	return pr, nil
}

func validField(name, value string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return fmt.Errorf("%w: name %q", ErrInvalidHeader, name)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: value of %s", ErrInvalidHeader, name)
	}
	return nil
}

// updateBody fills GetBody and, when it is known up front, ContentLength.
// In-memory bodies are replayable, any other reader can be taken only once.
func (r *PreparedRequest) updateBody(body interface{}) error {
	switch b := body.(type) {
	case nil:
		r.ContentLength = 0
		r.GetBody = func() (io.ReadCloser, error) { return http.NoBody, nil }
	case string:
		r.ContentLength = int64(len(b))
		r.GetBody = replay(func() io.Reader { return strings.NewReader(b) })
	case []byte:
		r.ContentLength = int64(len(b))
		r.GetBody = replay(func() io.Reader { return bytes.NewReader(b) })
	case *bytes.Buffer:
		buf := b.Bytes()
		r.ContentLength = int64(len(buf))
		r.GetBody = replay(func() io.Reader { return bytes.NewReader(buf) })
	case *bytes.Reader:
		snapshot := *b
		r.ContentLength = int64(b.Len())
		r.GetBody = replay(func() io.Reader { c := snapshot; return &c })
	case *strings.Reader:
		snapshot := *b
		r.ContentLength = int64(b.Len())
		r.GetBody = replay(func() io.Reader { c := snapshot; return &c })
	case io.Reader:
		if sizer, ok := b.(interface{ Size() int64 }); ok {
			r.ContentLength = sizer.Size()
		}
		r.GetBody = consumeOnce(b)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedBody, body)
	}
	return nil
}

func replay(open func() io.Reader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return io.NopCloser(open()), nil
	}
}

func consumeOnce(b io.Reader) func() (io.ReadCloser, error) {
	rc, ok := b.(io.ReadCloser)
	if !ok {
		rc = io.NopCloser(b)
	}
	var taken atomic.Bool
	return func() (io.ReadCloser, error) {
		if taken.Swap(true) {
			return nil, http.ErrBodyReadAfterClose
		}
		return rc, nil
	}
}

// isNilPointer reports typed nils such as (*bytes.Buffer)(nil), which are
// sent as no body at all.
func isNilPointer(body interface{}) bool {
	if body == nil {
		return false
	}
	v := reflect.ValueOf(body)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
