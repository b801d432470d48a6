package dialer

import (
	"context"
	"net"
)

var (
	zeroDialer      net.Dialer
	customDNSDialer = net.Dialer{Resolver: &customServerResolver}
)

// Dial opens a blocking TCP connection to addr. An addr without a port is
// handed to net.Dialer as is and fails there.
func (d *CoreDialer) Dial(ctx context.Context, addr string) (net.Conn, error) {
	cfg := d.ResolveConfig
	if cfg == nil {
		return zeroDialer.DialContext(ctx, "tcp", addr)
	}

	dialer := &zeroDialer
	if host, port, err := net.SplitHostPort(addr); err == nil {
		if pinned, ok := cfg.lookup(host); ok {
			addr = net.JoinHostPort(pinned, port)
		}
	}
	if cfg.CustomDNSServer != "" {
		ctx = withDNSServer(ctx, cfg.CustomDNSServer)
		dialer = &customDNSDialer
	}
	return dialer.DialContext(ctx, cfg.network(), addr)
}
