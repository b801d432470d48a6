//go:build darwin || linux

package nettools

import (
	"errors"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

func pollReadable(rc syscall.RawConn, timeout time.Duration) (ready bool, err error) {
	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}
	// It's annoying that golang docs didn't specify whether the control
	// action will be executed if error occurrs, however errors only happen
	// before the action (fd.incref), so err below is never overwritten.
	cerr := rc.Control(func(fd uintptr) {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		for {
			n, perr := unix.Poll(fds, ms)
			if errors.Is(perr, unix.EINTR) {
				continue
			}
			if perr != nil {
				err = perr
				return
			}
			ready = n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0
			return
		}
	})
	if cerr != nil {
		return false, cerr
	}
	return ready, err
}
