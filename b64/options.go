package b64

import "github.com/lestrrat-go/option"

// Option is the common interface of every option in this package.
type Option = option.Interface

type identLineLength struct{}
type identStrict struct{}

// EncodeOption configures Encode, EncodedLen and NewEncoder.
type EncodeOption interface {
	Option
	encodeOption()
}

type encodeOption struct{ Option }

func (*encodeOption) encodeOption() {}

// DecodeOption configures Decode and DecodeString.
type DecodeOption interface {
	Option
	decodeOption()
}

type decodeOption struct{ Option }

func (*decodeOption) decodeOption() {}

// WithLineLength sets the number of characters between CRLF line
// breaks. The value is rounded down to a multiple of 4 so that groups
// are never split. 0 disables line breaks entirely.
func WithLineLength(n int) EncodeOption {
	return &encodeOption{option.New(identLineLength{}, n)}
}

// WithStrict makes Decode reject input containing anything other than
// alphabet characters, padding and whitespace, as well as misplaced
// padding and truncated groups.
func WithStrict(v bool) DecodeOption {
	return &decodeOption{option.New(identStrict{}, v)}
}
