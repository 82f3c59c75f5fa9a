//go:build !windows

package lock

import "golang.org/x/sys/unix"

func (l *fileLock) tryLock() error {
	return unix.Flock(int(l.file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

func (l *fileLock) unlock() error {
	return unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
}
