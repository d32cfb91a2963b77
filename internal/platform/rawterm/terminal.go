// Package rawterm runs the game on a plain terminal the way the first
// version of the program did: raw keyboard input, a full text frame after
// every accepted move, and a sleep between ticks.
package rawterm

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on a file that is
// not a terminal.
var ErrNotTerminal = errors.New("rawterm: not a terminal")

// Terminal is a terminal switched into raw mode. Restore must be called on
// every exit path; it is safe to call more than once.
type Terminal struct {
	fd    int
	state *term.State
	once  sync.Once
}

// MakeRaw puts f into raw mode.
func MakeRaw(f *os.File) (*Terminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("rawterm: enter raw mode: %w", err)
	}
	return &Terminal{fd: fd, state: state}, nil
}

// Restore returns the terminal to the mode it had before MakeRaw.
func (t *Terminal) Restore() error {
	var err error
	t.once.Do(func() {
		err = term.Restore(t.fd, t.state)
	})
	if err != nil {
		return fmt.Errorf("rawterm: restore terminal: %w", err)
	}
	return nil
}
