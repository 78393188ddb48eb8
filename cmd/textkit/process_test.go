package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lestrrat-go/textkit/b64"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.Error(t, validate(&cmdopts{}), "no action")
	require.Error(t, validate(&cmdopts{Detect: true, Strip: true}), "two actions")
	require.Error(t, validate(&cmdopts{AddBOM: "utf-9"}), "unknown marker")
	require.Error(t, validate(&cmdopts{Base64Encode: true, LineLength: -1}), "negative line length")
	require.NoError(t, validate(&cmdopts{AddBOM: "utf-8"}))
	require.NoError(t, validate(&cmdopts{Base64Decode: true, Strict: true}))
}

func TestProcess(t *testing.T) {
	data := map[string]struct {
		opts     cmdopts
		input    []byte
		expected string
	}{
		"detect utf-32le": {
			opts:     cmdopts{Detect: true},
			input:    []byte{0xFF, 0xFE, 0x00, 0x00, 'x'},
			expected: "in.txt\tUTF-32LE\tFF FE 00 00\t4\n",
		},
		"detect nothing": {
			opts:     cmdopts{Detect: true},
			input:    []byte("plain"),
			expected: "in.txt\tASCII\t-\t0\n",
		},
		"strip": {
			opts:     cmdopts{Strip: true},
			input:    []byte{0xEF, 0xBB, 0xBF, 'o', 'k'},
			expected: "ok",
		},
		"add bom": {
			opts:     cmdopts{AddBOM: "utf-16be"},
			input:    []byte{0x00, 'o'},
			expected: "\xFE\xFF\x00o",
		},
		"base64 encode": {
			opts:     cmdopts{Base64Encode: true, LineLength: 76},
			input:    []byte("Man"),
			expected: "TWFu\r\n",
		},
		"base64 encode unwrapped": {
			opts:     cmdopts{Base64Encode: true, LineLength: 0},
			input:    []byte("M"),
			expected: "TQ==",
		},
		"base64 decode": {
			opts:     cmdopts{Base64Decode: true},
			input:    []byte("TW\r\nFu\r\n"),
			expected: "Man",
		},
		"decode text": {
			opts:     cmdopts{DecodeText: true, DefaultEncoding: "utf-8"},
			input:    []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00},
			expected: "hi",
		},
	}

	for name, tc := range data {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, process(context.Background(), &tc.opts, "in.txt", tc.input, &buf))
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestProcessBase64RoundTrip(t *testing.T) {
	input := bytes.Repeat([]byte("round trip through the command "), 10)

	var encoded bytes.Buffer
	require.NoError(t, process(context.Background(), &cmdopts{Base64Encode: true, LineLength: 76}, "-", input, &encoded))
	require.Equal(t, string(b64.Encode(input)), encoded.String())

	var decoded bytes.Buffer
	require.NoError(t, process(context.Background(), &cmdopts{Base64Decode: true, Strict: true}, "-", encoded.Bytes(), &decoded))
	require.Equal(t, input, decoded.Bytes())
}

func TestProcessErrors(t *testing.T) {
	var buf bytes.Buffer
	err := process(context.Background(), &cmdopts{Base64Decode: true, Strict: true}, "-", []byte("QQ!="), &buf)
	require.Error(t, err)
	require.Contains(t, err.Error(), "illegal character")

	err = process(context.Background(), &cmdopts{DecodeText: true, DefaultEncoding: "utf-8"}, "-", []byte{0xDD, 0x73, 0x66, 0x73}, &buf)
	require.Error(t, err)
	require.Contains(t, err.Error(), "UTF-EBCDIC")

	require.Error(t, process(context.Background(), &cmdopts{}, "-", nil, &buf))
}

func TestListKinds(t *testing.T) {
	var buf bytes.Buffer
	listKinds(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 16)
	require.True(t, strings.HasPrefix(lines[0], "ASCII"))
	require.Contains(t, buf.String(), "EF BB BF")
}
