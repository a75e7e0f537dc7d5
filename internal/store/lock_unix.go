//go:build unix

package store

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive flock on path, creating it if needed.
func lockFile(path string) (func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	fd := int(file.Fd())
	for {
		err = unix.Flock(fd, unix.LOCK_EX)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}
	if err != nil {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close after failed lock.
			_ = cerr
		}
		return nil, err
	}
	return func() error {
		uerr := unix.Flock(fd, unix.LOCK_UN)
		cerr := file.Close()
		if uerr != nil {
			return uerr
		}
		return cerr
	}, nil
}
