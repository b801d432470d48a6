package internal

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"
	"unicode/utf8"

	"github.com/frankli0324/go-rawhttp/internal/model"
	"github.com/frankli0324/go-rawhttp/utils/nettools"
)

// Conn is a single, never reused, blocking connection. The response is left
// untouched on it: reading and parsing is up to the caller.
type Conn struct {
	conn        net.Conn
	readTimeout time.Duration
}

func newConn(c net.Conn) *Conn {
	return &Conn{conn: c}
}

// SetReadTimeout bounds how long each subsequent Read may block. Zero (or
// negative) clears it, reads then block until data or EOF.
func (c *Conn) SetReadTimeout(d time.Duration) error {
	if d < 0 {
		d = 0
	}
	c.readTimeout = d
	if d == 0 {
		return c.conn.SetReadDeadline(time.Time{})
	}
	return nil
}

func (c *Conn) ReadTimeout() time.Duration {
	return c.readTimeout
}

func (c *Conn) Read(p []byte) (int, error) {
	if c.readTimeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return 0, err
		}
	}
	return c.conn.Read(p)
}

func (c *Conn) Write(p []byte) (int, error) {
	return c.conn.Write(p)
}

func (c *Conn) WriteString(s string) (int, error) {
	return io.WriteString(c.conn, s)
}

func (c *Conn) Close() error {
	return c.conn.Close()
}

// CloseWrite shuts down the sending side, telling the server the request is
// complete while the response can still be read.
func (c *Conn) CloseWrite() error {
	if cw, ok := c.conn.(interface{ CloseWrite() error }); ok {
		return cw.CloseWrite()
	}
	return fmt.Errorf("rawhttp: close write: %w", errors.ErrUnsupported)
}

func (c *Conn) CloseRead() error {
	if cr, ok := c.conn.(interface{ CloseRead() error }); ok {
		return cr.CloseRead()
	}
	return fmt.Errorf("rawhttp: close read: %w", errors.ErrUnsupported)
}

// ReadAll reads the raw response until the server closes the connection.
// On error (e.g. the read timeout hit a kept-alive connection) the bytes
// received so far are returned with it.
func (c *Conn) ReadAll() ([]byte, error) {
	return io.ReadAll(c)
}

// ReadString is ReadAll decoded as text.
func (c *Conn) ReadString() (string, error) {
	b, err := c.ReadAll()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", model.ErrInvalidUTF8
	}
	return string(b), nil
}

// WaitReadable reports whether response bytes arrived within timeout,
// without consuming them.
func (c *Conn) WaitReadable(timeout time.Duration) (bool, error) {
	return nettools.WaitReadable(c.conn, timeout)
}

func (c *Conn) Raw() net.Conn {
	return c.conn
}
