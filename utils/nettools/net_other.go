//go:build !darwin && !linux

package nettools

import (
	"syscall"
	"time"
)

func pollReadable(syscall.RawConn, time.Duration) (bool, error) {
	return false, ErrUnsupported
}
