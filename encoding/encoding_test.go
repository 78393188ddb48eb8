package encoding

import (
	"testing"

	"github.com/lestrrat-go/textkit/bom"
	"github.com/stretchr/testify/require"
)

func TestISO88591(t *testing.T) {
	e := Load("iso-8859-1")
	require.NotNil(t, e)
	dec := e.NewDecoder()
	enc := e.NewEncoder()
	for i := 0; i <= 255; i++ {
		if i >= 0x80 && i <= 0x9f {
			continue
		}
		v := string([]byte{byte(i)})
		s, err := dec.String(v)
		require.NoError(t, err, "decode %#x", i)

		v1, err := enc.String(s)
		require.NoError(t, err, "encode %q", s)
		require.Equal(t, v, v1, "%#x should survive a round trip", i)
	}
}

func TestLoad(t *testing.T) {
	data := map[string][]byte{
		"utf-8":    []byte("hi"),
		"UTF-16LE": {'h', 0x00, 'i', 0x00},
		"utf-16be": {0x00, 'h', 0x00, 'i'},
		"utf-32le": {'h', 0x00, 0x00, 0x00, 'i', 0x00, 0x00, 0x00},
		"utf-32be": {0x00, 0x00, 0x00, 'h', 0x00, 0x00, 0x00, 'i'},
		"cp037":    {0x88, 0x89},
		"ibm1047":  {0x88, 0x89},
	}
	for name, input := range data {
		e := Load(name)
		require.NotNil(t, e, "Load(%q)", name)

		s, err := e.NewDecoder().Bytes(input)
		require.NoError(t, err)
		require.Equal(t, "hi", string(s), "decode %s", name)

		b, err := e.NewEncoder().Bytes([]byte("hi"))
		require.NoError(t, err)
		require.Equal(t, input, b, "encode %s", name)
	}
}

func TestLoadMarkerEncodings(t *testing.T) {
	supported := map[bom.Kind]bool{
		bom.UTF8:    true,
		bom.UTF16BE: true,
		bom.UTF16LE: true,
		bom.UTF32BE: true,
		bom.UTF32LE: true,
	}
	for k := range bom.Kinds() {
		if k == bom.ASCII {
			continue
		}
		e := Load(k.EncodingName())
		if supported[k] {
			require.NotNil(t, e, "%s should be loadable", k)
		} else {
			require.Nil(t, e, "%s should not be loadable", k)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	require.Contains(t, names, "utf-8")
	require.Contains(t, names, "cp1047")
	require.IsIncreasing(t, names)
	for _, name := range names {
		require.NotNil(t, Load(name), "Load(%q)", name)
	}
	require.Nil(t, Load("no-such-encoding"))
}
