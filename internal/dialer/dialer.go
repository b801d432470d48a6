package dialer

import (
	"context"
	"net"
)

// Dialers open the byte streams requests are written to and responses are
// read from, e.g. a raw TCP connection for HTTP/1.1 requests.
type Dialer interface {
	// Dial opens a new stream to addr ("host:port"). Nothing is reused
	// between calls.
	Dial(ctx context.Context, addr string) (net.Conn, error)
	Unwrap() Dialer
}

type CoreDialer struct {
	ResolveConfig *ResolveConfig
}

func (d *CoreDialer) Clone() *CoreDialer {
	return &CoreDialer{
		ResolveConfig: d.ResolveConfig.Clone(),
	}
}

func (d *CoreDialer) Unwrap() Dialer {
	return nil
}

// Core walks the chain of wrapping dialers starting at d and returns the
// first *CoreDialer, if any.
func Core(d Dialer) *CoreDialer {
	for d != nil {
		if cd, ok := d.(*CoreDialer); ok {
			return cd
		}
		d = d.Unwrap()
	}
	return nil
}
