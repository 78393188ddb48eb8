// Package b64 implements the standard Base64 alphabet with MIME style
// CRLF line wrapping.
//
// Unlike encoding/base64, decoding is lenient by default: bytes outside
// the alphabet are skipped, decoding stops at the first pad character,
// and a truncated final group yields whatever whole bytes it carries.
// Use WithStrict to turn stray input into an error instead.
package b64

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const (
	pad = '='

	// DefaultLineLength is the number of characters per line produced
	// by Encode unless WithLineLength says otherwise.
	DefaultLineLength = 76
)

// sentinels in decodeMap
const (
	invalid = 0xFF
	padding = 0xFE
)

var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	m[pad] = padding
	return m
}()

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
