package rawhttp

import (
	"github.com/frankli0324/go-rawhttp/dialer"
)

type (
	Dialer        = dialer.Dialer
	CoreDialer    = dialer.CoreDialer
	ResolveConfig = dialer.ResolveConfig
)
