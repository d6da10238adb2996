//go:build linux || darwin

// Package terminal switches a tty into byte-at-a-time, unechoed input
// mode and restores the previous settings on teardown.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session holds the terminal attributes captured before raw input
// mode was engaged. Restore must run exactly once on every exit path
// of the editor loop so raw mode never leaks to the calling shell.
type Session struct {
	fd   int
	orig unix.Termios
}

// Open captures the current attributes of f and applies a copy with
// canonical mode, echo and signal generation disabled, and reads set
// to block until at least one byte is available (VMIN=1, VTIME=0).
// ISIG is cleared so Ctrl-C arrives as byte 0x03 instead of SIGINT.
func Open(f *os.File) (*Session, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("fd %d is not a terminal", fd)
	}
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}
	raw := *orig
	raw.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}
	return &Session{fd: fd, orig: *orig}, nil
}

// Restore unconditionally reapplies the attributes captured by Open.
func (s *Session) Restore() error {
	if err := unix.IoctlSetTermios(s.fd, ioctlWriteTermios, &s.orig); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}
