package sipline

import (
	"fmt"
	"strconv"

	"github.com/ghettovoice/sipline/internal/util"
)

// Token is a single product of the tokenizers: a classified start line,
// a header field, the end-of-headers marker or a soft-failure line.
//
// Tokens are transient values constructed per parse call; the tokenizers
// keep no state between calls besides the buffer the caller owns.
type Token interface {
	fmt.Stringer

	sealedToken()
}

// Version is a SIP protocol version, e.g. 2.0.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

// Version20 returns the SIP/2.0 protocol version.
func Version20() Version { return Version{Major: 2, Minor: 0} }

// String renders the version in its canonical folded spelling.
func (v Version) String() string {
	return "sip/" + strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

func (v Version) Equal(val any) bool {
	var other Version
	switch o := val.(type) {
	case Version:
		other = o
	case *Version:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return v == other
}

// RequestLine is a tokenized SIP request start line.
//
// Target is the request URI captured as opaque bytes; no URI validation
// is performed at this layer.
type RequestLine struct {
	Method  Method  `json:"method"`
	Target  []byte  `json:"target"`
	Version Version `json:"version"`
}

func (ln RequestLine) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(string(ln.Method))
	sb.WriteByte(' ')
	sb.Write(ln.Target)
	sb.WriteByte(' ')
	sb.WriteString(ln.Version.String())
	return sb.String()
}

func (RequestLine) sealedToken() {}

// ResponseLine is a tokenized SIP response start line.
//
// StatusCode is any integer that parsed from the status field; no upper
// bound is enforced beyond parseability. Reason is opaque and may be empty.
type ResponseLine struct {
	Version    Version `json:"version"`
	StatusCode int     `json:"status_code"`
	Reason     []byte  `json:"reason"`
}

func (ln ResponseLine) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(ln.Version.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(ln.StatusCode))
	sb.WriteByte(' ')
	sb.Write(ln.Reason)
	return sb.String()
}

func (ResponseLine) sealedToken() {}

// HeaderField is a tokenized header line.
//
// Code and Unused are opaque passthrough values assigned by the header-line
// decoder (see [HeaderDecoder]); the tokenizer never interprets them.
// Name went through the canonical table, Value is the raw field value.
type HeaderField struct {
	Code   int       `json:"code"`
	Name   FieldName `json:"name"`
	Unused []byte    `json:"unused,omitempty"`
	Value  []byte    `json:"value"`
}

func (f HeaderField) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(string(f.Name))
	sb.WriteString(": ")
	sb.Write(f.Value)
	return sb.String()
}

func (HeaderField) sealedToken() {}

// ErrorLine is a soft parse failure: the line violated the start-line or
// header grammar but the session may continue. Raw preserves the original
// line including its terminator.
type ErrorLine struct {
	Raw []byte `json:"raw"`
}

func (ln ErrorLine) String() string {
	return "error line " + strconv.Quote(util.Ellipsis(string(ln.Raw), 40))
}

func (ErrorLine) sealedToken() {}

// EndOfHeaders marks a blank line terminating the header block.
type EndOfHeaders struct{}

func (EndOfHeaders) String() string { return "end of headers" }

func (EndOfHeaders) sealedToken() {}
