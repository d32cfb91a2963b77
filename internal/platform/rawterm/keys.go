package rawterm

import (
	"context"
	"io"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Byte sequences a raw terminal sends for named keys.
var namedKeys = map[string]string{
	"up":     "\x1b[A",
	"down":   "\x1b[B",
	"right":  "\x1b[C",
	"left":   "\x1b[D",
	"space":  " ",
	"enter":  "\r",
	"ctrl+c": "\x03",
}

// KeyDecoder turns raw terminal bytes into game actions.
type KeyDecoder struct {
	bindings map[string]core.Action
}

// NewKeyDecoder builds a decoder for the configured piece keys.
// "q" and ctrl+c quit unless a piece key claims them.
func NewKeyDecoder(keys config.KeyConfig) *KeyDecoder {
	d := &KeyDecoder{bindings: map[string]core.Action{
		"q":    core.ActionQuit,
		"\x03": core.ActionQuit,
	}}

	d.bind(keys.Rotate, core.ActionRotate)
	d.bind(keys.Left, core.ActionLeft)
	d.bind(keys.Right, core.ActionRight)
	d.bind(keys.Drop, core.ActionDrop)
	return d
}

func (d *KeyDecoder) bind(names []string, a core.Action) {
	for _, name := range names {
		if seq, ok := namedKeys[name]; ok {
			d.bindings[seq] = a
			continue
		}
		if len(name) == 1 {
			d.bindings[name] = a
		}
	}
}

// Decode returns the actions for the key presses in buf, in order.
// Unbound bytes and escape sequences are skipped.
func (d *KeyDecoder) Decode(buf []byte) []core.Action {
	var out []core.Action
	for i := 0; i < len(buf); {
		n := 1
		if buf[i] == 0x1b && i+2 < len(buf) && buf[i+1] == '[' {
			n = 3
		}
		if a, ok := d.bindings[string(buf[i:i+n])]; ok {
			out = append(out, a)
		}
		i += n
	}
	return out
}

// ReadKeys decodes key presses from r and sends them to out until r fails
// or ctx is done. It closes out before returning.
func ReadKeys(ctx context.Context, r io.Reader, d *KeyDecoder, out chan<- core.Action) {
	defer close(out)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, a := range d.Decode(buf[:n]) {
			select {
			case out <- a:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			return
		}
	}
}
