// Package bom knows the byte order marks that may open a text buffer.
//
// The registry is a fixed, ordered table of marker kinds and their byte
// sequences. It is built once during package initialization and never
// modified, so every function in this package is safe for concurrent use.
package bom

import (
	"fmt"
	"iter"
	"strings"

	"github.com/lestrrat-go/textkit/internal/orderedmap"
)

// Kind identifies a byte order mark.
type Kind int

const (
	// ASCII means "no marker". It has an empty byte sequence and is
	// never matched by Detect.
	ASCII Kind = iota
	UTF8
	UTF16BE
	UTF16LE
	UTF32BE
	UTF32LE
	UTF7
	UTF7Alt1
	UTF7Alt2
	UTF7Alt3
	UTF7Alt4
	UTF1
	UTFEBCDIC
	SCSU
	SCSUUnicode
	SCSUWindow
)

// MaxLen is the length of the longest registered marker.
const MaxLen = 5

type marker struct {
	name     string
	aliases  []string
	encoding string
	seq      []byte
}

var registry = newRegistry()

// names maps normalized names and aliases to kinds
var names = func() map[string]Kind {
	m := make(map[string]Kind)
	for k, v := range registry.Range() {
		m[normalizeName(v.name)] = k
		for _, alias := range v.aliases {
			m[normalizeName(alias)] = k
		}
	}
	return m
}()

// newRegistry builds the marker table. Table order is also the
// tie-break order for markers of equal length.
func newRegistry() *orderedmap.Map[Kind, marker] {
	m := orderedmap.New[Kind, marker]()
	for _, entry := range []struct {
		kind Kind
		marker
	}{
		{ASCII, marker{name: "ASCII", aliases: []string{"us-ascii", "none"}}},
		{UTF8, marker{name: "UTF-8", encoding: "utf-8", seq: []byte{0xEF, 0xBB, 0xBF}}},
		{UTF16BE, marker{name: "UTF-16BE", encoding: "utf-16be", seq: []byte{0xFE, 0xFF}}},
		{UTF16LE, marker{name: "UTF-16LE", aliases: []string{"utf-16"}, encoding: "utf-16le", seq: []byte{0xFF, 0xFE}}},
		{UTF32BE, marker{name: "UTF-32BE", encoding: "utf-32be", seq: []byte{0x00, 0x00, 0xFE, 0xFF}}},
		{UTF32LE, marker{name: "UTF-32LE", aliases: []string{"utf-32"}, encoding: "utf-32le", seq: []byte{0xFF, 0xFE, 0x00, 0x00}}},
		// "+/v" encodes U+FEFF; the fourth character depends on what follows
		{UTF7, marker{name: "UTF-7", encoding: "utf-7", seq: []byte{0x2B, 0x2F, 0x76, 0x38}}},
		{UTF7Alt1, marker{name: "UTF-7-v9", encoding: "utf-7", seq: []byte{0x2B, 0x2F, 0x76, 0x39}}},
		{UTF7Alt2, marker{name: "UTF-7-v+", encoding: "utf-7", seq: []byte{0x2B, 0x2F, 0x76, 0x2B}}},
		{UTF7Alt3, marker{name: "UTF-7-v/", encoding: "utf-7", seq: []byte{0x2B, 0x2F, 0x76, 0x2F}}},
		{UTF7Alt4, marker{name: "UTF-7-v8-", encoding: "utf-7", seq: []byte{0x2B, 0x2F, 0x76, 0x38, 0x2D}}},
		{UTF1, marker{name: "UTF-1", encoding: "utf-1", seq: []byte{0xF7, 0x64, 0x4C}}},
		{UTFEBCDIC, marker{name: "UTF-EBCDIC", encoding: "utf-ebcdic", seq: []byte{0xDD, 0x73, 0x66, 0x73}}},
		// SQU U+FEFF
		{SCSU, marker{name: "SCSU", encoding: "scsu", seq: []byte{0x0E, 0xFE, 0xFF}}},
		// SCU, then U+FEFF in Unicode mode
		{SCSUUnicode, marker{name: "SCSU-U", encoding: "scsu", seq: []byte{0x0F, 0xFE, 0xFF}}},
		// SD0 with window offset 0xFE80, then 0xFF
		{SCSUWindow, marker{name: "SCSU-W", encoding: "scsu", seq: []byte{0x18, 0xA5, 0xFF}}},
	} {
		if err := m.Set(entry.kind, entry.marker); err != nil {
			panic(fmt.Sprintf("bom: failed to register %s: %s", entry.name, err))
		}
	}
	return m
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// Lookup finds a kind by its name or one of its aliases. Matching
// ignores case, dashes and underscores, so "utf8", "UTF-8" and "Utf_8"
// are all the same.
func Lookup(name string) (Kind, bool) {
	k, ok := names[normalizeName(name)]
	return k, ok
}

// FromBytes returns the kind whose marker is exactly b.
func FromBytes(b []byte) (Kind, bool) {
	if len(b) == 0 {
		return ASCII, true
	}
	k, n := Detect(b)
	if n != len(b) {
		return ASCII, false
	}
	return k, true
}

// Kinds yields every registered kind, ASCII first, in table order.
func Kinds() iter.Seq[Kind] {
	return registry.Keys()
}

func (k Kind) String() string {
	if m, ok := registry.Get(k); ok {
		return m.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Bytes returns a copy of the marker. ASCII has no marker and returns nil.
func (k Kind) Bytes() []byte {
	m, ok := registry.Get(k)
	if !ok || len(m.seq) == 0 {
		return nil
	}
	b := make([]byte, len(m.seq))
	copy(b, m.seq)
	return b
}

// Len is the number of bytes in the marker.
func (k Kind) Len() int {
	m, _ := registry.Get(k)
	return len(m.seq)
}

// Hex renders the marker as space separated upper case hex pairs,
// e.g. "EF BB BF". ASCII renders as an empty string.
func (k Kind) Hex() string {
	m, _ := registry.Get(k)
	var sb strings.Builder
	for i, c := range m.seq {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}

// EncodingName is the charset name associated with the marker, suitable
// for encoding.Load. ASCII returns an empty string because the absence
// of a marker says nothing about the encoding.
func (k Kind) EncodingName() string {
	m, _ := registry.Get(k)
	return m.encoding
}
