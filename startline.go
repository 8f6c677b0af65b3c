package sipline

import (
	"bytes"
	"strconv"

	"github.com/ghettovoice/sipline/internal/grammar"
	"github.com/ghettovoice/sipline/internal/util"
)

var sipPrefix = []byte("sip")

// ParseStartLine classifies one already isolated line (terminator stripped)
// as a request line or a response line.
//
// The line is folded to lower case before matching, so "INVITE" and "invite"
// tokenize identically; known methods come back from the fixed canonical set
// and original casing of known methods is not preserved. Opaque fields (the
// request target and the response reason) keep their original bytes.
//
// The grammar splits the line literally on single spaces, preserving empty
// fields, and requires exactly three of them. A consequence inherited from
// the field-count rule is that response reason phrases containing spaces do
// not tokenize and come back as error lines.
//
// Any line failing the grammar, including an empty one, yields a soft
// [ErrorLine] token carrying the original line plus a trailing LF; a start
// line never produces a hard error.
func ParseStartLine(line []byte) Token {
	folded := util.LCaseBytes(line)
	fields := bytes.Split(folded, []byte{' '})
	if len(fields) != 3 {
		return errorLineOf(line)
	}

	// The fold is length-preserving, so field offsets computed on the
	// folded line address the same bytes in the original.
	origField2 := line[len(fields[0])+1 : len(fields[0])+1+len(fields[1])]
	origField3 := line[len(line)-len(fields[2]):]

	if bytes.HasPrefix(fields[0], sipPrefix) {
		ver, ok := parseVersion(fields[0])
		if !ok {
			return errorLineOf(line)
		}
		code, ok := parseStatusCode(fields[1])
		if !ok {
			return errorLineOf(line)
		}
		return ResponseLine{
			Version:    ver,
			StatusCode: code,
			Reason:     bytes.Clone(origField3),
		}
	}

	ver, ok := parseVersion(fields[2])
	if !ok {
		return errorLineOf(line)
	}
	return RequestLine{
		Method:  CanonicMethod(fields[0]),
		Target:  bytes.Clone(origField2),
		Version: ver,
	}
}

// parseVersion parses an already folded "sip/<digits>.<digits>" field.
func parseVersion(f []byte) (Version, bool) {
	if !bytes.HasPrefix(f, sipPrefix) || len(f) < len(sipPrefix)+1 || f[len(sipPrefix)] != '/' {
		return Version{}, false
	}
	majb, minb, ok := bytes.Cut(f[len(sipPrefix)+1:], []byte{'.'})
	if !ok || !grammar.IsDigits(majb) || !grammar.IsDigits(minb) {
		return Version{}, false
	}
	major, err := strconv.Atoi(string(majb))
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.Atoi(string(minb))
	if err != nil {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor}, true
}

func parseStatusCode(f []byte) (int, bool) {
	if !grammar.IsDigits(f) {
		return 0, false
	}
	code, err := strconv.Atoi(string(f))
	if err != nil {
		return 0, false
	}
	return code, true
}

// errorLineOf builds the soft-failure token for line, restoring a trailing
// LF so the raw bytes round back to one full line.
func errorLineOf(line []byte) ErrorLine {
	raw := make([]byte, len(line)+1)
	copy(raw, line)
	raw[len(line)] = '\n'
	return ErrorLine{Raw: raw}
}
