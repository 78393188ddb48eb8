package b64

import (
	"io"

	"github.com/lestrrat-go/textkit/internal/pool"
	"github.com/pkg/errors"
)

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("b64: write to closed encoder")

// Encoder is a streaming counterpart of Encode. The bytes written to the
// underlying writer are identical to Encode applied to the concatenation
// of everything passed to Write, once Close has been called.
type Encoder struct {
	w        io.Writer
	enc      lineEncoder
	pending  [3]byte
	npending int
	buf      []byte
	closed   bool
	err      error
}

// NewEncoder returns an Encoder writing Base64 text to w.
func NewEncoder(w io.Writer, options ...EncodeOption) *Encoder {
	return &Encoder{
		w:   w,
		enc: newLineEncoder(options),
		buf: pool.ByteSlice().Get(),
	}
}

// Write encodes p, holding back up to 2 bytes until the next group is
// complete.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.closed {
		return 0, ErrClosed
	}
	if e.err != nil {
		return 0, e.err
	}

	total := len(p)
	out := e.buf[:0]

	// complete a group left over from the previous call
	if e.npending > 0 {
		for e.npending < 3 && len(p) > 0 {
			e.pending[e.npending] = p[0]
			e.npending++
			p = p[1:]
		}
		if e.npending < 3 {
			return total, nil
		}
		out = e.enc.appendGroup(out, e.pending, 3)
		e.npending = 0
	}

	for len(p) >= 3 {
		out = e.enc.appendGroup(out, [3]byte{p[0], p[1], p[2]}, 3)
		p = p[3:]
	}
	e.npending = copy(e.pending[:], p)
	e.buf = out

	if err := e.flush(); err != nil {
		return 0, err
	}
	return total, nil
}

// Close encodes any buffered bytes, writes the final line break and
// releases internal buffers. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	defer func() {
		pool.ByteSlice().Put(e.buf)
		e.buf = nil
	}()

	if e.err != nil {
		return e.err
	}

	out := e.buf[:0]
	if e.npending > 0 {
		var b [3]byte
		copy(b[:], e.pending[:e.npending])
		out = e.enc.appendGroup(out, b, e.npending)
		e.npending = 0
	}
	e.buf = e.enc.finish(out)
	return e.flush()
}

func (e *Encoder) flush() error {
	if len(e.buf) == 0 {
		return nil
	}
	if _, err := e.w.Write(e.buf); err != nil {
		e.err = errors.Wrap(err, `failed to write encoded data`)
		return e.err
	}
	e.buf = e.buf[:0]
	return nil
}
