package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/textkit"
	"github.com/lestrrat-go/textkit/internal/cliutil"
)

type cmdopts struct {
	Detect          bool   `long:"detect" description:"report the byte order mark of each input"`
	Strip           bool   `long:"strip" description:"write the input without its byte order mark"`
	AddBOM          string `long:"add-bom" value-name:"KIND" description:"write the input with KIND's byte order mark in front"`
	Base64Encode    bool   `long:"base64-encode" description:"Base64 encode the input"`
	Base64Decode    bool   `long:"base64-decode" description:"Base64 decode the input"`
	Strict          bool   `long:"strict" description:"reject stray characters while decoding Base64"`
	LineLength      int    `long:"line-length" default:"76" description:"characters per line of Base64 output, 0 to disable"`
	DecodeText      bool   `long:"decode-text" description:"decode the input to UTF-8 according to its byte order mark"`
	DefaultEncoding string `long:"default-encoding" default:"utf-8" description:"encoding assumed by --decode-text when there is no byte order mark"`
	List            bool   `long:"list" description:"list the known byte order marks"`
	Verbose         bool   `short:"v" long:"verbose" description:"log what is going on to stderr"`
	Version         bool   `long:"version"`
}

type input struct {
	name string
	r    io.ReadCloser
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("textkit: version %s\n", textkit.Version)
}

func showUsage() {
	fmt.Printf(`Usage : textkit [options] FILES ...
	Inspect and convert byte order marks and Base64 data
	--detect            : report the byte order mark of each input
	--strip             : remove the byte order mark
	--add-bom=KIND      : prepend KIND's byte order mark
	--base64-encode     : Base64 encode (see --line-length)
	--base64-decode     : Base64 decode (see --strict)
	--decode-text       : decode to UTF-8 (see --default-encoding)
	--list              : list the known byte order marks
	--version           : display the version of textkit
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	if opts.List {
		listKinds(os.Stdout)
		return 0
	}

	if err := validate(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		showUsage()
		return 1
	}

	ctx := context.Background()
	if opts.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = textkit.WithTraceLogger(ctx, logger)
	}

	inputCh := make(chan input)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- input{name: f, r: fh}
			}
		}()
	case !cliutil.IsTty(os.Stdin.Fd()):
		go func() {
			defer close(inputCh)
			inputCh <- input{name: "-", r: os.Stdin}
		}()
	default:
		showUsage()
		return 1
	}

	for in := range inputCh {
		buf, err := io.ReadAll(in.r)
		in.r.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		if err := process(ctx, &opts, in.name, buf, os.Stdout); err != nil {
			textkit.TraceError(ctx, err, "failed to process input", slog.String("input", in.name))
			fmt.Fprintf(os.Stderr, "%s: %s\n", in.name, err)
			return 1
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	default:
	}

	return 0
}
