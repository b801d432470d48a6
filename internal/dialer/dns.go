package dialer

import (
	"context"
	"net"
)

// ResolveConfig controls how the host part of an address becomes an IP.
// The system resolver only honours /etc/resolv.conf, so a custom DNS server
// goes through the Dial hook of a pure Go [net.Resolver].
type ResolveConfig struct {
	CustomDNSServer string            // "ip:port"
	Network         string            // "ip4", "ip6" or "" for either
	StaticHosts     map[string]string // host -> address, consulted before DNS
}

func (c *ResolveConfig) Clone() *ResolveConfig {
	if c == nil {
		return nil
	}
	clone := *c
	if c.StaticHosts != nil {
		clone.StaticHosts = make(map[string]string, len(c.StaticHosts))
		for host, addr := range c.StaticHosts {
			clone.StaticHosts[host] = addr
		}
	}
	return &clone
}

// lookup returns the address pinned for host, if any.
func (c *ResolveConfig) lookup(host string) (string, bool) {
	addr, ok := c.StaticHosts[host]
	return addr, ok
}

func (c *ResolveConfig) network() string {
	switch c.Network {
	case "ip4":
		return "tcp4"
	case "ip6":
		return "tcp6"
	}
	return "tcp"
}

type dnsServerKey struct{}

func withDNSServer(ctx context.Context, server string) context.Context {
	return context.WithValue(ctx, dnsServerKey{}, server)
}

var customServerResolver = net.Resolver{
	PreferGo: true,
	Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
		if server, _ := ctx.Value(dnsServerKey{}).(string); server != "" {
			address = server
		}
		return zeroDialer.DialContext(ctx, network, address)
	},
}
