package bom

import (
	"bytes"
	"io"

	"github.com/lestrrat-go/textkit/internal/debug"
	"github.com/pkg/errors"
)

// Detect reports which marker b starts with and how many bytes it
// occupies. Several markers share leading bytes (UTF-32LE starts with
// the UTF-16LE marker), so the longest match wins. Equal lengths are
// resolved by table order. When nothing matches the result is (ASCII, 0).
func Detect(b []byte) (Kind, int) {
	found, n := ASCII, 0
	for k, m := range registry.Range() {
		if len(m.seq) <= n {
			continue
		}
		if bytes.HasPrefix(b, m.seq) {
			found, n = k, len(m.seq)
		}
	}

	if debug.Enabled {
		debug.Printf("bom.Detect: %s (%d bytes)", found, n)
	}
	return found, n
}

// Strip detects the marker in b and returns a new slice holding
// everything after it. b itself is never modified.
func Strip(b []byte) (Kind, []byte) {
	k, n := Detect(b)
	rest := make([]byte, len(b)-n)
	copy(rest, b[n:])
	return k, rest
}

// Prepend returns a new slice containing k's marker followed by payload.
// For ASCII the result has the same content as payload.
//
// Strip undoes Prepend unless the payload happens to extend k's marker
// into a longer one: UTF-16LE followed by two NUL bytes reads back as
// UTF-32LE, UTF-7 followed by '-' as the five byte UTF-7 form, and an
// ASCII payload that itself starts with a marker reads back as that
// marker.
func Prepend(k Kind, payload []byte) []byte {
	m, _ := registry.Get(k)
	b := make([]byte, 0, len(m.seq)+len(payload))
	b = append(b, m.seq...)
	return append(b, payload...)
}

// Sniff reads just enough of r to identify its marker. The returned
// reader yields the rest of the stream with the marker removed. Streams
// shorter than MaxLen are fine; only real read errors are reported.
func Sniff(r io.Reader) (Kind, io.Reader, error) {
	buf := make([]byte, MaxLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return ASCII, nil, errors.Wrap(err, `failed to read byte order mark`)
	}
	buf = buf[:n]

	k, skip := Detect(buf)
	return k, io.MultiReader(bytes.NewReader(buf[skip:]), r), nil
}
