package sipline

import (
	"errors"
	"fmt"

	"github.com/ghettovoice/sipline/internal/errorutil"
	"github.com/ghettovoice/sipline/internal/util"
)

// NeedMoreError reports that the buffer does not yet hold a complete line.
//
// It is a normal incremental-parsing state, not a failure: the caller must
// obtain more bytes, append them to the same buffer and re-invoke. Hint is
// an optional byte-count estimate of how much input is still missing; zero
// means no estimate is known.
type NeedMoreError struct {
	Hint int
}

func (err *NeedMoreError) Error() string {
	if err.Hint > 0 {
		return fmt.Sprintf("need at least %d more bytes", err.Hint)
	}
	return "need more data"
}

func (*NeedMoreError) Temporary() bool { return true }

// IsNeedMore reports whether err signals incomplete input.
func IsNeedMore(err error) bool {
	var e *NeedMoreError
	return errors.As(err, &e)
}

// ParseState identifies the message region a tokenizer was working on.
type ParseState int

const (
	ParseStateStart   ParseState = iota // tokenizing the start line
	ParseStateHeaders                   // tokenizing header lines
)

func (s ParseState) String() string {
	switch s {
	case ParseStateStart:
		return "start-line"
	case ParseStateHeaders:
		return "headers"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ParseError is a fatal decode failure: the buffer holds bytes outside any
// recognized line structure and no safe remainder can be computed.
//
// Line-level grammar violations never produce a ParseError; they are
// recovered into [ErrorLine] tokens instead.
type ParseError struct {
	Err   error
	State ParseState
	Buf   []byte
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", err.State, err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

func (err *ParseError) Grammar() bool { return errorutil.IsGrammarErr(err.Err) }

func (err *ParseError) Temporary() bool { return errorutil.IsTemporaryErr(err.Err) }

func (err *ParseError) Timeout() bool { return errorutil.IsTimeoutErr(err.Err) }

func (err *ParseError) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			fmt.Fprintf(f, "parse %s: %+v (buf %q)", err.State, err.Err,
				util.Ellipsis(string(err.Buf), 40))
			return
		}
		fallthrough
	default:
		fmt.Fprint(f, err.Error())
	}
}
