package sipline

import (
	"context"
	"errors"
	"io"
	"iter"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/sipline/internal/errorutil"
)

const (
	triggerStartLineDone = "start-line-tokenized"
	triggerHeadersDone   = "end-of-headers"
)

// StreamTokenizer tokenizes a continuous byte stream.
//
// It owns the append-and-retry buffer required by the incremental
// tokenizing contract and tracks the start-line/headers phase of every
// message. It can be initialized using [Tokenizer.TokenizeStream].
//
// Message bodies are not handled at this layer: after [EndOfHeaders] the
// tokenizer returns to the start-line phase, so body-carrying streams must
// have their bodies stripped by the caller.
type StreamTokenizer struct {
	tkz    *Tokenizer
	rdr    io.Reader
	sm     *stateless.StateMachine
	logger *slog.Logger
}

// StreamOption configures a [StreamTokenizer].
type StreamOption interface {
	applyStream(sp *StreamTokenizer)
}

type withStreamLogger struct {
	logger *slog.Logger
}

func (o withStreamLogger) applyStream(sp *StreamTokenizer) { sp.logger = o.logger }

// WithStreamLogger sets the logger used for phase-transition debug logging.
// The default logger discards everything.
func WithStreamLogger(logger *slog.Logger) StreamOption { return withStreamLogger{logger} }

// TokenizeStream creates a new [StreamTokenizer] reading from rdr with this
// tokenizer's header-line decoder.
func (t *Tokenizer) TokenizeStream(rdr io.Reader, opts ...StreamOption) *StreamTokenizer {
	sp := &StreamTokenizer{
		tkz:    t,
		rdr:    rdr,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt.applyStream(sp)
	}

	sp.sm = stateless.NewStateMachine(ParseStateStart)
	sp.sm.Configure(ParseStateStart).
		Permit(triggerStartLineDone, ParseStateHeaders)
	sp.sm.Configure(ParseStateHeaders).
		Permit(triggerHeadersDone, ParseStateStart)
	sp.sm.OnTransitioned(func(_ context.Context, tr stateless.Transition) {
		sp.logger.Debug("tokenizer phase transition",
			"from", tr.Source, "to", tr.Destination, "trigger", tr.Trigger)
	})
	return sp
}

// TokenizeStream creates a new [StreamTokenizer] reading from rdr using the
// default tokenizer. See [Tokenizer.TokenizeStream].
func TokenizeStream(rdr io.Reader, opts ...StreamOption) *StreamTokenizer {
	return defTokenizer.TokenizeStream(rdr, opts...)
}

// Tokens returns an iterator that yields each token and an error, if any.
//
// Malformed lines yield [ErrorLine] tokens and the loop continues; the
// iterator stops on a fatal decode failure, on a read error, or at end of
// input. End of input in the middle of a message, or with a partial line
// still buffered, yields a *[ParseError] wrapping [io.ErrUnexpectedEOF].
// The iterator is closed when the consumer breaks the loop.
func (sp *StreamTokenizer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		if sp.rdr == nil {
			yield(nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil reader")))
			return
		}

		var buf []byte
		chunk := make([]byte, 2048)
		for {
			for {
				state := sp.state()

				var (
					tok  Token
					rest []byte
					err  error
				)
				if state == ParseStateStart {
					tok, rest, err = sp.tkz.ParsePacket(buf, nil)
				} else {
					tok, rest, err = sp.tkz.ParseHeader(buf, nil)
				}
				if err != nil {
					if IsNeedMore(err) {
						break
					}
					yield(nil, errtrace.Wrap(err))
					return
				}

				switch tok.(type) {
				case RequestLine, ResponseLine:
					err = sp.sm.Fire(triggerStartLineDone)
				case EndOfHeaders:
					err = sp.sm.Fire(triggerHeadersDone)
				}
				if err != nil {
					yield(nil, errtrace.Wrap(err))
					return
				}

				buf = rest
				if !yield(tok, nil) {
					return
				}
			}

			n, err := sp.rdr.Read(chunk)
			if n > 0 {
				buf = append(buf, chunk[:n]...)
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					// Drain bytes delivered together with EOF first; the
					// next Read reports EOF again with no data.
					if n > 0 {
						continue
					}
					if len(buf) == 0 && sp.state() == ParseStateStart {
						return
					}
					yield(nil, errtrace.Wrap(&ParseError{
						Err:   io.ErrUnexpectedEOF,
						State: sp.state(),
						Buf:   buf,
					}))
					return
				}
				yield(nil, errtrace.Wrap(err))
				return
			}
		}
	}
}

func (sp *StreamTokenizer) state() ParseState {
	state, ok := sp.sm.MustState().(ParseState)
	if !ok {
		return ParseStateStart
	}
	return state
}
