package textkit

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identDefaultEncoding struct{}

type DecodeTextOption interface {
	Option
	decodeTextOption()
}

type decodeTextOption struct{ Option }

func (*decodeTextOption) decodeTextOption() {}

// WithDefaultEncoding names the encoding DecodeText assumes when the
// input carries no byte order mark. The default is "utf-8".
func WithDefaultEncoding(name string) DecodeTextOption {
	return &decodeTextOption{option.New(identDefaultEncoding{}, name)}
}
