package b64

// lineEncoder turns groups of up to 3 bytes into 4 symbols and keeps
// track of where CRLFs go.
type lineEncoder struct {
	lineLength int
	col        int
}

func newLineEncoder(options []EncodeOption) lineEncoder {
	lineLength := DefaultLineLength
	for _, option := range options {
		switch option.Ident() {
		case identLineLength{}:
			lineLength = option.Value().(int)
		}
	}
	return lineEncoder{lineLength: normalizeLineLength(lineLength)}
}

func normalizeLineLength(n int) int {
	switch {
	case n <= 0:
		return 0
	case n < 4:
		return 4
	}
	return n - n%4
}

// appendGroup encodes the first n (1-3) bytes of b. Missing bytes are
// treated as zero and their symbols replaced by padding.
func (e *lineEncoder) appendGroup(dst []byte, b [3]byte, n int) []byte {
	v := uint(b[0])<<16 | uint(b[1])<<8 | uint(b[2])
	dst = append(dst, alphabet[v>>18&0x3F], alphabet[v>>12&0x3F])
	if n > 1 {
		dst = append(dst, alphabet[v>>6&0x3F])
	} else {
		dst = append(dst, pad)
	}
	if n > 2 {
		dst = append(dst, alphabet[v&0x3F])
	} else {
		dst = append(dst, pad)
	}

	if e.lineLength > 0 {
		e.col += 4
		if e.col == e.lineLength {
			dst = append(dst, '\r', '\n')
			e.col = 0
		}
	}
	return dst
}

// finish terminates a partially filled line.
func (e *lineEncoder) finish(dst []byte) []byte {
	if e.col > 0 {
		dst = append(dst, '\r', '\n')
		e.col = 0
	}
	return dst
}

// EncodedLen returns the length of Encode's output for n input bytes.
// Negative n is treated as 0.
func EncodedLen(n int, options ...EncodeOption) int {
	e := newLineEncoder(options)
	return encodedLen(n, e.lineLength)
}

func encodedLen(n, lineLength int) int {
	if n <= 0 {
		return 0
	}
	chars := (n + 2) / 3 * 4
	if lineLength > 0 && chars > 0 {
		chars += (chars + lineLength - 1) / lineLength * 2
	}
	return chars
}

// Encode returns the Base64 encoding of src. Every line, including the
// last one, is terminated by CRLF unless line wrapping is disabled with
// WithLineLength(0). Empty input produces empty output.
func Encode(src []byte, options ...EncodeOption) []byte {
	e := newLineEncoder(options)
	dst := make([]byte, 0, encodedLen(len(src), e.lineLength))

	for len(src) >= 3 {
		dst = e.appendGroup(dst, [3]byte{src[0], src[1], src[2]}, 3)
		src = src[3:]
	}

	if len(src) > 0 {
		var b [3]byte
		copy(b[:], src)
		dst = e.appendGroup(dst, b, len(src))
	}
	return e.finish(dst)
}

// EncodeToString is Encode returning a string.
func EncodeToString(src []byte, options ...EncodeOption) string {
	return string(Encode(src, options...))
}
