package engine

import (
	"bytes"
	"io"
	"sync"
)

// reader continuously drains src on a background goroutine into an
// in-memory buffer, so the engine can poll for a marker pattern without
// blocking on a synchronous Read call that might never return before an
// idle timeout should fire.
type reader struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	err    error
	notify chan struct{}
}

func newReader(src io.Reader) *reader {
	r := &reader{notify: make(chan struct{}, 1)}
	go r.loop(src)
	return r
}

func (r *reader) loop(src io.Reader) {
	chunk := make([]byte, 4096)
	for {
		n, err := src.Read(chunk)
		if n > 0 {
			r.mu.Lock()
			r.buf.Write(chunk[:n])
			r.mu.Unlock()
			select {
			case r.notify <- struct{}{}:
			default:
			}
		}
		if err != nil {
			r.mu.Lock()
			r.err = err
			r.mu.Unlock()
			select {
			case r.notify <- struct{}{}:
			default:
			}
			return
		}
	}
}

// snapshot returns a copy of the bytes accumulated so far, plus any
// terminal read error (typically io.EOF).
func (r *reader) snapshot() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, r.buf.Len())
	copy(out, r.buf.Bytes())
	return out, r.err
}

// consume discards the first n bytes of the buffer, e.g. once they've been
// attributed to a completed interaction.
func (r *reader) consume(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Next(n)
}
