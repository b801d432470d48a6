package transport

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/frankli0324/go-rawhttp/internal/model"
	"github.com/frankli0324/go-rawhttp/internal/transport/chunked"
)

const defaultAccept = "*/*"

// FormatRequest renders the request line and minimal header block for a
// bodiless request to an absolute url, e.g.
//
//	GET / HTTP/1.1\r\nHost: localhost:8888\r\nAccept: */*\r\n\r\n
func FormatRequest(method, url string) (string, error) {
	pr, err := (&model.Request{Method: method, URL: url}).Prepare()
	if err != nil {
		return "", err
	}
	b, err := HTTP1{}.Encode(pr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type HTTP1 struct{}

// Encode returns exactly the bytes Write would send.
func (t HTTP1) Encode(r *model.PreparedRequest) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t HTTP1) Write(w io.Writer, r *model.PreparedRequest) error {
	body, err := r.GetBody()
	if err != nil {
		return err
	}
	if body != nil {
		defer body.Close() // request body is ALWAYS closed
	}

	bw := bufio.NewWriter(w) // default bufsize is 4096
	if err := t.writeHeader(bw, r); err != nil {
		return err
	}
	if err := t.writeBody(bw, r, body); err != nil {
		return err
	}
	return bw.Flush()
}

// writeHeader writes the request line and header part of an http 1.1 request
// e.g.:
//
//	POST /upload?x=1 HTTP/1.1\r\n
//	Host: www.example.com:80\r\n
//	Accept: */*\r\n
//	x-not-canonical: kept as is\r\n
//	Content-Length: 5\r\n
//	\r\n
func (t HTTP1) writeHeader(w *bufio.Writer, r *model.PreparedRequest) error {
	w.WriteString(r.Method)
	w.WriteByte(' ')
	w.WriteString(r.RequestURI())
	w.WriteString(" HTTP/1.1\r\n")

	w.WriteString("Host: ")
	w.WriteString(r.HeaderHost)
	w.WriteString("\r\n")

	accept := r.Header.Values("Accept")
	if len(accept) == 0 {
		accept = []string{defaultAccept}
	}
	for _, v := range accept {
		w.WriteString("Accept: ")
		w.WriteString(v)
		w.WriteString("\r\n")
	}

	err := r.Header.Each(func(k, v string) error {
		if strings.EqualFold(k, "Accept") {
			return nil
		}
		w.WriteString(k)
		w.WriteString(": ")
		w.WriteString(v)
		_, err := w.WriteString("\r\n")
		return err
	})
	if err != nil {
		return err
	}

	switch {
	case r.NoBody:
	case r.ContentLength >= 0:
		w.WriteString("Content-Length: ")
		w.WriteString(strconv.FormatInt(r.ContentLength, 10))
		w.WriteString("\r\n")
	case !r.Header.Has("Transfer-Encoding"):
		w.WriteString("Transfer-Encoding: chunked\r\n")
	}
	_, err = w.WriteString("\r\n")
	return err
}

func (t HTTP1) writeBody(w *bufio.Writer, r *model.PreparedRequest, body io.Reader) error {
	if r.NoBody || body == nil {
		return nil
	}
	if r.ContentLength == -1 {
		cw := chunked.NewWriter(w)
		if _, err := io.Copy(cw, body); err != nil {
			return err
		}
		return cw.Close()
	}
	n, err := io.Copy(w, io.LimitReader(body, r.ContentLength))
	if err != nil {
		return err
	}
	if n != r.ContentLength {
		return fmt.Errorf("%w: body ended after %d of %d bytes", model.ErrContentLength, n, r.ContentLength)
	}
	return nil
}
