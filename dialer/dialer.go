// Package dialer exposes the stream side of rawhttp: whatever a Client writes
// requests to and the caller reads raw responses from.
package dialer

import (
	"github.com/frankli0324/go-rawhttp/internal/dialer"
)

// Dialer opens one new stream per Dial. It must not cache connections, so
// swapping dialers on a Client never leaks state between requests. Wrapping
// dialers return the dialer they wrap from Unwrap.
type Dialer = dialer.Dialer

// CoreDialer connects over plain TCP. A zero value Client uses one with no
// ResolveConfig.
type CoreDialer = dialer.CoreDialer

// ResolveConfig pins hostnames to addresses ([ResolveConfig.StaticHosts]),
// restricts the IP family, or points lookups at a specific DNS server.
type ResolveConfig = dialer.ResolveConfig
