package sipline

import (
	"bytes"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipline/internal/grammar"
)

// lineDecoder is the built-in [HeaderDecoder]. It performs its own line
// and continuation handling over the raw buffer: a field is emitted as
// soon as its line terminator is buffered, folding in continuation lines
// only when their bytes are already present. A continuation whose first
// byte arrives only after the field was emitted therefore decodes as an
// orphan continuation line; callers that must never split folded fields
// across chunk boundaries have to deliver each logical line in one buffer.
type lineDecoder struct{}

// DefaultHeaderDecoder returns the built-in header-line decoder.
func DefaultHeaderDecoder() HeaderDecoder { return lineDecoder{} }

func (d lineDecoder) DecodeHeaderLine(buf []byte) (HeaderEvent, []byte, error) {
	i := bytes.IndexByte(buf, '\n')
	if i < 0 {
		return HeaderEvent{}, buf, errtrace.Wrap(&NeedMoreError{})
	}

	stripped := buf[:i]
	if n := len(stripped); n > 0 && stripped[n-1] == '\r' {
		stripped = stripped[:n-1]
	}
	if len(stripped) == 0 {
		return HeaderEvent{Kind: HeaderEventEnd}, buf[i+1:], nil
	}
	if c := stripped[0]; c == ' ' || c == '\t' {
		// A continuation line with no field to continue.
		return HeaderEvent{Kind: HeaderEventInvalid, Raw: bytes.Clone(buf[:i+1])}, buf[i+1:], nil
	}

	// Extend the logical line over folded continuations already buffered.
	// A continuation that has started must be completed before the field
	// is emitted; a buffer ending right at a terminator emits eagerly.
	end := i
	for end+1 < len(buf) {
		if c := buf[end+1]; c != ' ' && c != '\t' {
			break
		}
		j := bytes.IndexByte(buf[end+1:], '\n')
		if j < 0 {
			return HeaderEvent{}, buf, errtrace.Wrap(&NeedMoreError{})
		}
		end += 1 + j
	}

	logical := buf[:end+1]
	rest := buf[end+1:]

	ev, ok := d.splitField(logical, stripped)
	if !ok {
		return HeaderEvent{Kind: HeaderEventInvalid, Raw: bytes.Clone(logical)}, rest, nil
	}
	return ev, rest, nil
}

// splitField splits a complete logical line into name and value.
// stripped is the first physical line without its terminator; the field
// name and the colon must sit entirely on it.
func (lineDecoder) splitField(logical, stripped []byte) (HeaderEvent, bool) {
	colon := bytes.IndexByte(stripped, ':')
	if colon <= 0 {
		return HeaderEvent{}, false
	}
	name := stripped[:colon]
	// The name must be a grammar token: no embedded whitespace, no
	// whitespace between the name and the colon.
	if !grammar.IsToken(name) {
		return HeaderEvent{}, false
	}

	// The value spans from the colon to the end of the logical line,
	// terminator excluded. Leading whitespace on the first physical line
	// is skipped; whitespace and terminators embedded by folding are
	// preserved as-is for downstream consumers.
	value := logical[colon+1:]
	for len(value) > 0 && (value[0] == ' ' || value[0] == '\t') {
		value = value[1:]
	}
	if n := len(value); n > 0 && value[n-1] == '\n' {
		value = value[:n-1]
		if n := len(value); n > 0 && value[n-1] == '\r' {
			value = value[:n-1]
		}
	}

	return HeaderEvent{
		Kind:  HeaderEventField,
		Code:  FieldName(name).Code(),
		Name:  bytes.Clone(name),
		Value: bytes.Clone(value),
	}, true
}
