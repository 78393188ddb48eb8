package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lestrrat-go/textkit"
	"github.com/lestrrat-go/textkit/b64"
	"github.com/lestrrat-go/textkit/bom"
	"github.com/pkg/errors"
)

// validate checks that exactly one action was requested and that its
// arguments make sense.
func validate(opts *cmdopts) error {
	var n int
	for _, set := range []bool{
		opts.Detect,
		opts.Strip,
		opts.AddBOM != "",
		opts.Base64Encode,
		opts.Base64Decode,
		opts.DecodeText,
	} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return errors.New("no action specified")
	case n > 1:
		return errors.New("only one action may be specified")
	}

	if opts.AddBOM != "" {
		if _, ok := bom.Lookup(opts.AddBOM); !ok {
			return errors.Errorf("unknown byte order mark %q", opts.AddBOM)
		}
	}
	if opts.LineLength < 0 {
		return errors.Errorf("invalid line length %d", opts.LineLength)
	}
	return nil
}

// process applies the action selected in opts to one input
func process(ctx context.Context, opts *cmdopts, name string, buf []byte, w io.Writer) error {
	textkit.TraceEvent(ctx, "processing input", slog.String("input", name), slog.Int("size", len(buf)))

	switch {
	case opts.Detect:
		k, n := bom.Detect(buf)
		hex := k.Hex()
		if hex == "" {
			hex = "-"
		}
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", name, k, hex, n)
		return err
	case opts.Strip:
		k, rest := bom.Strip(buf)
		textkit.TraceEvent(ctx, "stripped byte order mark", slog.String("kind", k.String()))
		_, err := w.Write(rest)
		return err
	case opts.AddBOM != "":
		k, ok := bom.Lookup(opts.AddBOM)
		if !ok {
			return errors.Errorf("unknown byte order mark %q", opts.AddBOM)
		}
		_, err := w.Write(bom.Prepend(k, buf))
		return err
	case opts.Base64Encode:
		enc := b64.NewEncoder(w, b64.WithLineLength(opts.LineLength))
		if _, err := enc.Write(buf); err != nil {
			return err
		}
		return enc.Close()
	case opts.Base64Decode:
		decoded, err := b64.Decode(buf, b64.WithStrict(opts.Strict))
		if err != nil {
			return errors.Wrap(err, `failed to decode base64 input`)
		}
		_, err = w.Write(decoded)
		return err
	case opts.DecodeText:
		s, k, err := textkit.DecodeText(ctx, buf, textkit.WithDefaultEncoding(opts.DefaultEncoding))
		if err != nil {
			return errors.Wrapf(err, `failed to decode %s text`, k)
		}
		_, err = io.WriteString(w, s)
		return err
	}
	return errors.New("no action specified")
}

func listKinds(w io.Writer) {
	for k := range bom.Kinds() {
		hex := k.Hex()
		if hex == "" {
			hex = "-"
		}
		fmt.Fprintf(w, "%-12s %s\n", k, hex)
	}
}
