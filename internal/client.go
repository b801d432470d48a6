package internal

import (
	"context"
	"strings"
	"time"

	"github.com/frankli0324/go-rawhttp/internal/dialer"
	"github.com/frankli0324/go-rawhttp/internal/model"
	"github.com/frankli0324/go-rawhttp/internal/transport"
)

type PreparedRequest = model.PreparedRequest

type Handler = func(ctx context.Context, req *PreparedRequest) (*Conn, error)
type Middleware func(next Handler) Handler

// only this exact, lower case prefix is stripped before connecting
const schemePrefix = "http://"

var (
	defaultDialer = &dialer.CoreDialer{}
	h1Transport   = transport.HTTP1{}
)

// Client holds the address requests are sent to and how connections to it
// are configured. It is not safe for concurrent use.
type Client struct {
	addr        string
	readTimeout time.Duration

	middlewares []Middleware
	dialer      dialer.Dialer
}

// SetAddress stores addr ("http://host:port" or "host:port") verbatim.
func (c *Client) SetAddress(addr string) {
	c.addr = addr
}

func (c *Client) Address() string {
	return c.addr
}

// SetReadTimeout configures the read timeout applied by ConnectWithTimeout
// and CtxDo. Zero means reads block indefinitely.
func (c *Client) SetReadTimeout(d time.Duration) {
	c.readTimeout = d
}

func (c *Client) ReadTimeout() time.Duration {
	return c.readTimeout
}

// Use appends mws to the chain. The first "Use"d mw is the outermost one.
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

func (c *Client) UseDialer(wrap func(dialer.Dialer) dialer.Dialer) {
	c.dialer = wrap(c.getDialer())
}

// UseCoreDialer hands a copy of the innermost *CoreDialer to configure.
func (c *Client) UseCoreDialer(configure func(*dialer.CoreDialer) dialer.Dialer) {
	cd := dialer.Core(c.getDialer())
	if cd == nil {
		cd = &dialer.CoreDialer{}
	} else {
		cd = cd.Clone()
	}
	c.dialer = configure(cd)
}

func (c *Client) getDialer() dialer.Dialer {
	if c.dialer != nil {
		return c.dialer
	}
	return defaultDialer
}

// Connect opens a new connection to the stored address, without any read
// timeout. Every call dials again.
func (c *Client) Connect() (*Conn, error) {
	return c.connect(context.Background(), strings.TrimPrefix(c.addr, schemePrefix))
}

// ConnectWithTimeout is Connect followed by applying the read timeout.
func (c *Client) ConnectWithTimeout() (*Conn, error) {
	conn, err := c.Connect()
	if err != nil {
		return nil, err
	}
	if err := conn.SetReadTimeout(c.readTimeout); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func (c *Client) connect(ctx context.Context, addr string) (*Conn, error) {
	raw, err := c.getDialer().Dial(ctx, addr)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}
	return newConn(raw), nil
}

func (c *Client) FormatRequest(method, url string) (string, error) {
	return transport.FormatRequest(method, url)
}

// FormatRequestFromBase formats a request to path relative to the stored
// address. Exactly one '/' separates the two.
func (c *Client) FormatRequestFromBase(method, path string) (string, error) {
	return transport.FormatRequest(method, model.JoinBase(c.addr, path))
}

// Encode renders the full request, header block and body, without sending it.
func (c *Client) Encode(req *model.Request) ([]byte, error) {
	pr, err := req.Prepare()
	if err != nil {
		return nil, err
	}
	return h1Transport.Encode(pr)
}

// Send writes a bodiless request for path relative to the stored address and
// returns the connection to read the response from.
func (c *Client) Send(method, path string) (*Conn, error) {
	return c.CtxDo(context.Background(), &model.Request{
		Method: method,
		URL:    model.JoinBase(c.addr, path),
	})
}

// CtxDo dials the host:port of req.URL, applies the read timeout and writes
// req. ctx only bounds the dial.
func (c *Client) CtxDo(ctx context.Context, req *model.Request) (*Conn, error) {
	pr, err := req.Prepare()
	if err != nil {
		return nil, err
	}
	next := func(ctx context.Context, pr *PreparedRequest) (*Conn, error) {
		conn, err := c.connect(ctx, pr.HostPort())
		if err != nil {
			return nil, err
		}
		if err := conn.SetReadTimeout(c.readTimeout); err != nil {
			conn.Close()
			return nil, err
		}
		if err := h1Transport.Write(conn, pr); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	}
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		next = c.middlewares[i](next)
	}
	return next(ctx, pr)
}
