// Package grammar implements character-level validation rules of the SIP
// grammar (RFC 3261 S.25) used by the tokenizers.
package grammar

//go:generate errtrace -w .

import (
	"github.com/ghettovoice/sipline/internal/errorutil"
)

// Error is a grammar violation error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const ErrMalformedInput Error = "malformed input"

// NewMalformedInputErr creates a new error with [ErrMalformedInput] or wraps
// the provided error with it.
func NewMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

// tokenChars holds the "token" rule alphabet: alphanumeric plus
// "-.!%*_+`'~" (RFC 3261 S.25.1).
var tokenChars = func() (t [256]bool) {
	for c := '0'; c <= '9'; c++ {
		t[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		t[c] = true
	}
	for _, c := range []byte("-.!%*_+`'~") {
		t[c] = true
	}
	return t
}()

// IsToken reports whether s is a non-empty sequence of token characters.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !tokenChars[s[i]] {
			return false
		}
	}
	return true
}

// IsDigits reports whether s is a non-empty sequence of decimal digits.
func IsDigits[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
