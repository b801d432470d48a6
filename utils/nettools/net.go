// Package nettools inspects sockets below the net.Conn abstraction.
package nettools

import (
	"errors"
	"net"
	"syscall"
	"time"
)

var ErrUnsupported = errors.New("nettools: readiness polling is not supported for this connection")

// WaitReadable blocks until c has bytes (or EOF) pending, or timeout elapses.
// Nothing is consumed from c. A zero timeout polls once, a negative one
// waits forever.
func WaitReadable(c net.Conn, timeout time.Duration) (bool, error) {
	rc := connToFD(c)
	if rc == nil {
		return false, ErrUnsupported
	}
	return pollReadable(rc, timeout)
}

func connToFD(raw net.Conn) syscall.RawConn {
	if t, ok := raw.(interface{ NetConn() net.Conn }); ok {
		raw = t.NetConn()
	}
	if c, ok := raw.(syscall.Conn); ok {
		if c, err := c.SyscallConn(); err == nil {
			return c
		}
	}
	return nil
}
