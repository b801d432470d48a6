package model

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Request describes a single HTTP/1.1 request. It is never sent as is:
// [Request.Prepare] validates it first.
type Request struct {
	Method string
	URL    string // absolute, with explicit host and port
	Header Header
	Body   interface{}
}

// Target holds the parts of an absolute URL that reach the wire.
type Target struct {
	Host  string
	Port  string
	Path  string // escaped
	Query string // raw, without '?'
}

// ParseTarget splits rawURL into host, port, path and query. The scheme is
// ignored and no default port is ever assumed.
func ParseTarget(rawURL string) (Target, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Hostname() == "" {
		return Target{}, fmt.Errorf("%w: %q", ErrMissingHost, rawURL)
	}
	if u.Port() == "" {
		return Target{}, fmt.Errorf("%w: %q", ErrMissingPort, rawURL)
	}
	return Target{
		Host:  u.Hostname(),
		Port:  u.Port(),
		Path:  u.EscapedPath(),
		Query: u.RawQuery,
	}, nil
}

// RequestURI returns the request-target of the request line. An empty path
// becomes "/", so a query is never emitted without a path.
func (t Target) RequestURI() string {
	p := t.Path
	if p == "" {
		p = "/"
	}
	if t.Query != "" {
		p += "?" + t.Query
	}
	return p
}

// HostPort returns host:port, bracketing IPv6 literals.
func (t Target) HostPort() string {
	return net.JoinHostPort(t.Host, t.Port)
}

// NormalizeMethod upper-cases m. An empty method means GET.
func NormalizeMethod(m string) (string, error) {
	if m == "" {
		return "GET", nil
	}
	m = strings.ToUpper(m)
	if !httpguts.ValidHeaderFieldName(m) { // same token grammar as methods
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, m)
	}
	return m, nil
}

// JoinBase appends path to base with exactly one '/' between them.
//
//	JoinBase("http://h:1", "x")   == "http://h:1/x"
//	JoinBase("http://h:1/", "/x") == "http://h:1/x"
//	JoinBase("http://h:1//", "/x") == "http://h:1/x"
func JoinBase(base, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + path
}
