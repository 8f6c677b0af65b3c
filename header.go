package sipline

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/sipline/internal/errorutil"
	"github.com/ghettovoice/sipline/internal/grammar"
)

// HeaderEventKind discriminates the raw products of a [HeaderDecoder].
type HeaderEventKind int

const (
	HeaderEventField   HeaderEventKind = iota // a decoded header line
	HeaderEventEnd                            // blank line terminating the header block
	HeaderEventInvalid                        // malformed line, recoverable
)

// HeaderEvent is the raw product of a [HeaderDecoder], before any
// field-name canonicalization.
type HeaderEvent struct {
	Kind HeaderEventKind
	// Code is a decoder-assigned numeric or symbolic code for well-known
	// field names; it is passed through to the [HeaderField] token opaque.
	Code int
	// Name is the field name exactly as it appeared on the wire.
	Name []byte
	// Unused is a decoder-specific passthrough marker.
	Unused []byte
	// Value is the raw field value.
	Value []byte
	// Raw preserves a malformed line, including its terminator, for
	// [HeaderEventInvalid] events.
	Raw []byte
}

// HeaderDecoder decodes generic textual header lines: field-name, colon,
// optional leading whitespace, value, with folded-continuation awareness.
//
// Implementations must satisfy the following contract:
//   - consume at most one logical header line per call and return the
//     unconsumed remainder;
//   - return a [HeaderEventEnd] event when a blank line terminates the
//     header block;
//   - return a [HeaderEventInvalid] event carrying the raw malformed line
//     when the line violates the header grammar but a safe remainder is
//     known;
//   - return a *[NeedMoreError] when the buffered bytes do not complete a
//     logical line;
//   - treat field names case-sensitively and never canonicalize them;
//   - return any other error only for fatal conditions with no safe
//     remainder.
type HeaderDecoder interface {
	DecodeHeaderLine(buf []byte) (HeaderEvent, []byte, error)
}

// ParseHeader tokenizes one logical header line from buf.
//
// Line splitting and continuation handling are delegated to the header-line
// decoder; the value added here is exclusively the field-name
// canonicalization of [HeaderField] tokens. Decoder-reported malformed
// lines come back as [ErrorLine] tokens with the raw bytes preserved, not
// the canonicalized form.
//
// Folding whitespace embedded in folded values (CR, LF, TAB sequences) is
// not stripped at this layer; consumers that need the unfolded form must
// strip it themselves.
func (t *Tokenizer) ParseHeader(buf []byte, opts *Options) (Token, []byte, error) {
	_ = opts
	ev, rest, err := t.decoder().DecodeHeaderLine(buf)
	if err != nil {
		if IsNeedMore(err) {
			return nil, buf, errtrace.Wrap(err)
		}
		return nil, buf, errtrace.Wrap(&ParseError{Err: err, State: ParseStateHeaders, Buf: buf})
	}
	switch ev.Kind {
	case HeaderEventField:
		return HeaderField{
			Code:   ev.Code,
			Name:   CanonicFieldName(ev.Name),
			Unused: ev.Unused,
			Value:  ev.Value,
		}, rest, nil
	case HeaderEventEnd:
		return EndOfHeaders{}, rest, nil
	case HeaderEventInvalid:
		return ErrorLine{Raw: ev.Raw}, rest, nil
	default:
		return nil, buf, errtrace.Wrap(&ParseError{
			Err:   grammar.NewMalformedInputErr(errorutil.Errorf("unexpected header decoder event %d", ev.Kind)),
			State: ParseStateHeaders,
			Buf:   buf,
		})
	}
}
