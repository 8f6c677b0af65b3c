// Package sipline implements an incremental line tokenizer for SIP-like
// textual protocols.
//
// The package is fed arbitrary byte chunks from a transport layer and
// produces structured tokens without buffering the full message in advance:
// start lines tokenize into request, response or soft-failure variants,
// header lines tokenize into canonicalized field/value pairs, and a
// *[NeedMoreError] result instructs the caller to append more bytes and
// retry with the concatenated buffer.
//
// All entry points are pure functions of their input buffer: there is no
// shared state, so independent call sites may tokenize concurrently as long
// as each owns its buffer. Malformed lines never abort a session; they come
// back as [ErrorLine] tokens and the loop continues.
package sipline

//go:generate errtrace -w .

// ParsePacket tokenizes one start line from buf using the default
// tokenizer. See [Tokenizer.ParsePacket].
func ParsePacket(buf []byte, opts *Options) (Token, []byte, error) {
	return defTokenizer.ParsePacket(buf, opts)
}

// ParseHeader tokenizes one logical header line from buf using the default
// tokenizer. See [Tokenizer.ParseHeader].
func ParseHeader(buf []byte, opts *Options) (Token, []byte, error) {
	return defTokenizer.ParseHeader(buf, opts)
}

var defTokenizer = &Tokenizer{}
