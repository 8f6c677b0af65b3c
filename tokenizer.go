package sipline

import (
	"braces.dev/errtrace"
)

// Options is the tokenizer configuration set.
//
// No keys are currently recognized; the set is accepted and threaded
// through every entry point for interface stability. A nil *Options is
// equivalent to the zero value.
type Options struct{}

// Tokenizer tokenizes start lines and header lines from caller-managed
// byte buffers.
//
// The zero value is ready to use and employs the built-in header-line
// decoder. A Tokenizer holds no per-call state and is safe for concurrent
// use from call sites that own their buffers.
type Tokenizer struct {
	// Decoder decodes raw header lines. Nil means [DefaultHeaderDecoder].
	Decoder HeaderDecoder
}

// ParsePacket tokenizes one start line from buf.
//
// When buf holds no complete line yet, it returns the untouched buffer and
// a *[NeedMoreError]; re-invoking with the same buffer returns the same
// result. Otherwise it returns the start-line token, possibly an
// [ErrorLine] for a malformed line, and the unconsumed remainder. Only
// one line is consumed per call.
func (t *Tokenizer) ParsePacket(buf []byte, opts *Options) (Token, []byte, error) {
	line, rest, ok := SplitLine(buf, opts)
	if !ok {
		return nil, buf, errtrace.Wrap(&NeedMoreError{})
	}
	return ParseStartLine(line), rest, nil
}

func (t *Tokenizer) decoder() HeaderDecoder {
	if t.Decoder != nil {
		return t.Decoder
	}
	return DefaultHeaderDecoder()
}
