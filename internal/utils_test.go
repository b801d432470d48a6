package internal_test

import (
	"context"
	"net"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/frankli0324/go-rawhttp/internal"
	"github.com/frankli0324/go-rawhttp/internal/dialer"
	"github.com/frankli0324/go-rawhttp/internal/model"
	"github.com/frankli0324/go-rawhttp/internal/testserver"
)

// TestDialer hands out conn (or fails with err) and records every address
// it was asked to dial.
type TestDialer struct {
	mu    sync.Mutex
	conn  net.Conn
	err   error
	addrs []string
}

// Dial implements dialer.Dialer.
func (t *TestDialer) Dial(ctx context.Context, addr string) (net.Conn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.addrs = append(t.addrs, addr)
	if t.err != nil {
		return nil, t.err
	}
	return t.conn, nil
}

// Unwrap implements dialer.Dialer.
func (t *TestDialer) Unwrap() dialer.Dialer {
	return nil
}

func (t *TestDialer) Addrs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.addrs...)
}

func clientWith(d dialer.Dialer) *internal.Client {
	c := &internal.Client{}
	c.UseDialer(func(dialer.Dialer) dialer.Dialer { return d })
	return c
}

// SendSingleRequest writes req through a pipe and returns the server side of
// it. The client side is closed once the request is written.
func SendSingleRequest(t *testing.T, req *model.Request) net.Conn {
	clientSide, serverSide := net.Pipe()
	c := clientWith(&TestDialer{conn: clientSide})
	go func() {
		conn, err := c.CtxDo(context.Background(), req)
		if err != nil {
			t.Error(err)
			clientSide.Close()
			return
		}
		conn.Close()
	}()
	return serverSide
}

func newTestServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(testserver.Handler(zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}
