package dialer

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listen(t *testing.T, network, addr string) net.Listener {
	t.Helper()
	ln, err := net.Listen(network, addr)
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			c.Close()
		}
	}()
	return ln
}

func TestCoreDialerDial(t *testing.T) {
	ln := listen(t, "tcp", "127.0.0.1:0")
	conn, err := (&CoreDialer{}).Dial(context.Background(), ln.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, ln.Addr().String(), conn.RemoteAddr().String())
}

func TestCoreDialerStaticHosts(t *testing.T) {
	ln := listen(t, "tcp4", "127.0.0.1:0")
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	d := &CoreDialer{ResolveConfig: &ResolveConfig{
		Network:     "ip4",
		StaticHosts: map[string]string{"pinned.test": "127.0.0.1"},
	}}
	conn, err := d.Dial(context.Background(), net.JoinHostPort("pinned.test", port))
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, ln.Addr().String(), conn.RemoteAddr().String())
}

func TestCoreDialerErrors(t *testing.T) {
	_, err := (&CoreDialer{}).Dial(context.Background(), "no-port-here")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&CoreDialer{}).Dial(ctx, "127.0.0.1:1")
	assert.Error(t, err)
}

func TestResolveConfigClone(t *testing.T) {
	var nilCfg *ResolveConfig
	assert.Nil(t, nilCfg.Clone())

	orig := &ResolveConfig{CustomDNSServer: "10.0.0.1:53", Network: "ip6", StaticHosts: map[string]string{"a": "1"}}
	c := orig.Clone()
	assert.Equal(t, orig, c)
	c.StaticHosts["b"] = "2"
	assert.NotContains(t, orig.StaticHosts, "b")

	d := (&CoreDialer{ResolveConfig: orig}).Clone()
	assert.Equal(t, orig, d.ResolveConfig)
	assert.NotSame(t, orig, d.ResolveConfig)
}

type ctxKey struct{}

type wrapper struct{ inner Dialer }

func (w wrapper) Dial(ctx context.Context, addr string) (net.Conn, error) {
	return w.inner.Dial(ctx, addr)
}
func (w wrapper) Unwrap() Dialer { return w.inner }

func TestCore(t *testing.T) {
	cd := &CoreDialer{}
	assert.Same(t, cd, Core(cd))
	assert.Same(t, cd, Core(wrapper{wrapper{cd}}))
	assert.Nil(t, Core(nil))
	assert.Nil(t, Core(wrapper{}))
}

func TestDNSServerContext(t *testing.T) {
	ctx := withDNSServer(context.WithValue(context.Background(), ctxKey{}, "v"), "10.0.0.1:53")
	assert.Equal(t, "10.0.0.1:53", ctx.Value(dnsServerKey{}))
	assert.Equal(t, "v", ctx.Value(ctxKey{}))
}

func TestResolveConfigNetwork(t *testing.T) {
	assert.Equal(t, "tcp", (&ResolveConfig{}).network())
	assert.Equal(t, "tcp4", (&ResolveConfig{Network: "ip4"}).network())
	assert.Equal(t, "tcp6", (&ResolveConfig{Network: "ip6"}).network())
}

func TestCoreDialerCustomDNSServer(t *testing.T) {
	ln := listen(t, "tcp", "127.0.0.1:0")
	// IP literals never reach the resolver
	d := &CoreDialer{ResolveConfig: &ResolveConfig{CustomDNSServer: "127.0.0.1:1"}}
	conn, err := d.Dial(context.Background(), ln.Addr().String())
	require.NoError(t, err)
	conn.Close()
}
