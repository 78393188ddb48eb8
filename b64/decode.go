package b64

import (
	"bytes"
	"fmt"

	"github.com/lestrrat-go/strcursor"
	"github.com/lestrrat-go/textkit/internal/debug"
)

// CorruptInputError is returned by strict decoding. Offset is the byte
// position of the problem; Line and Column locate it for humans.
type CorruptInputError struct {
	Offset int
	Line   int
	Column int
	Reason string
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("base64: %s at offset %d (line %d, column %d)", e.Reason, e.Offset, e.Line, e.Column)
}

// newCorruptInputError locates offset within src. Lines and columns are
// 1-based; the column restarts after each '\n', and a '\r' before it
// counts toward the line it ends.
func newCorruptInputError(src []byte, offset int, reason string) *CorruptInputError {
	head := src[:offset]
	cur := strcursor.NewByteCursor(bytes.NewReader(head))
	for i := 0; i < offset && !cur.Done(); i++ {
		cur.Advance(1)
	}
	return &CorruptInputError{
		Offset: offset,
		Line:   cur.LineNumber(),
		Column: offset - (bytes.LastIndexByte(head, '\n') + 1) + 1,
		Reason: reason,
	}
}

// Decode decodes Base64 text in src.
//
// Symbols are collected in groups of 4. Anything that is neither an
// alphabet character nor '=' does not count toward a group, which lets
// wrapped output decode cleanly. The first '=' ends decoding: at group
// position 2 it yields 1 byte, at position 3 it yields 2. A final group
// cut short without padding is completed the same way.
//
// In the default lenient mode Decode never fails. With WithStrict(true)
// it returns a *CorruptInputError for characters that are not alphabet,
// padding or whitespace, for padding at group position 0 or 1, and for
// truncated input.
func Decode(src []byte, options ...DecodeOption) ([]byte, error) {
	var strict bool
	for _, option := range options {
		switch option.Ident() {
		case identStrict{}:
			strict = option.Value().(bool)
		}
	}

	dst := make([]byte, 0, (len(src)+3)/4*3)
	var group [4]byte
	var n int
	for i, c := range src {
		switch v := decodeMap[c]; v {
		case invalid:
			if strict && !isSpace(c) {
				return nil, newCorruptInputError(src, i, fmt.Sprintf("illegal character %#02x", c))
			}
			continue
		case padding:
			if strict && n < 2 {
				return nil, newCorruptInputError(src, i, "misplaced padding")
			}
			if debug.Enabled {
				debug.Printf("b64.Decode: padding at offset %d, group position %d", i, n)
			}
			return appendPartial(dst, group, n), nil
		default:
			group[n] = v
			n++
		}

		if n == 4 {
			dst = append(dst,
				group[0]<<2|group[1]>>4,
				group[1]<<4|group[2]>>2,
				group[2]<<6|group[3],
			)
			n = 0
		}
	}

	if n > 0 && strict {
		return nil, newCorruptInputError(src, len(src), "truncated input")
	}
	return appendPartial(dst, group, n), nil
}

// DecodeString is Decode for string input.
func DecodeString(s string, options ...DecodeOption) ([]byte, error) {
	return Decode([]byte(s), options...)
}

// appendPartial emits the whole bytes carried by the first n symbols of
// an incomplete group.
func appendPartial(dst []byte, group [4]byte, n int) []byte {
	switch n {
	case 2:
		dst = append(dst, group[0]<<2|group[1]>>4)
	case 3:
		dst = append(dst, group[0]<<2|group[1]>>4, group[1]<<4|group[2]>>2)
	}
	return dst
}
