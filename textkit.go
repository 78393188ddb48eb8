// Package textkit turns byte buffers into text and back.
//
// The heavy lifting lives in the sub packages: bom recognizes byte order
// marks, encoding loads character sets, and b64 implements a MIME style
// Base64 codec. This package glues bom and encoding together.
package textkit

import (
	"context"
	"log/slog"

	"github.com/lestrrat-go/textkit/bom"
	"github.com/lestrrat-go/textkit/encoding"
	"github.com/pkg/errors"
)

const Version = "v0.1.0"

const defaultEncoding = "utf-8"

// DecodeText strips the byte order mark from b and decodes the rest
// using the encoding the marker implies. Input without a marker is
// decoded with the default encoding (see WithDefaultEncoding).
//
// Markers whose encoding is not available (UTF-7, UTF-1, UTF-EBCDIC,
// SCSU) produce an error wrapping encoding.ErrUnsupported. The detected
// kind is returned in every case.
func DecodeText(ctx context.Context, b []byte, options ...DecodeTextOption) (string, bom.Kind, error) {
	fallback := defaultEncoding
	for _, option := range options {
		switch option.Ident() {
		case identDefaultEncoding{}:
			fallback = option.Value().(string)
		}
	}

	kind, payload := bom.Strip(b)
	name := kind.EncodingName()
	if kind == bom.ASCII {
		name = fallback
	}
	TraceEvent(ctx, "detected byte order mark",
		slog.String("kind", kind.String()),
		slog.Int("length", kind.Len()),
		slog.String("encoding", name),
	)

	e := encoding.Load(name)
	if e == nil {
		err := errors.Wrapf(encoding.ErrUnsupported, `cannot decode %s text`, name)
		TraceError(ctx, err, "failed to load encoding", slog.String("encoding", name))
		return "", kind, err
	}

	s, err := e.NewDecoder().Bytes(payload)
	if err != nil {
		return "", kind, errors.Wrapf(err, `failed to decode %s text`, name)
	}
	return string(s), kind, nil
}

// EncodeText encodes s in the encoding associated with kind and puts
// kind's marker in front. ASCII means no marker and UTF-8 text.
func EncodeText(ctx context.Context, kind bom.Kind, s string) ([]byte, error) {
	name := kind.EncodingName()
	if kind == bom.ASCII {
		name = defaultEncoding
	}

	e := encoding.Load(name)
	if e == nil {
		err := errors.Wrapf(encoding.ErrUnsupported, `cannot encode %s text`, name)
		TraceError(ctx, err, "failed to load encoding", slog.String("encoding", name))
		return nil, err
	}

	payload, err := e.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, `failed to encode text as %s`, name)
	}
	TraceEvent(ctx, "encoded text",
		slog.String("kind", kind.String()),
		slog.Int("size", len(payload)),
	)
	return bom.Prepend(kind, payload), nil
}
