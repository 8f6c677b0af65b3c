package sipline

import (
	"slices"

	"github.com/ghettovoice/sipline/internal/grammar"
)

// FieldName is a header field name token: either one of the fixed canonical
// spellings below, or the original bytes unchanged when no canonical mapping
// exists.
//
// The canonical table is consulted with an exact case-sensitive match in the
// decode direction; no folding or trimming is applied, so "CALL-ID" does not
// match "Call-Id" and passes through opaque. The encode direction is the
// lossless inverse: [FieldName.Bytes] of a canonical name returns exactly the
// table spelling.
type FieldName string

// Canonical field names shared with the generic textual-header grammar.
// The spellings follow the header-line decoder conventions, including
// historical oddities such as "Www-Authenticate", "Content-Md5" and "Etag".
const (
	FieldNameCacheControl       FieldName = "Cache-Control"
	FieldNameConnection         FieldName = "Connection"
	FieldNameDate               FieldName = "Date"
	FieldNamePragma             FieldName = "Pragma"
	FieldNameTransferEncoding   FieldName = "Transfer-Encoding"
	FieldNameUpgrade            FieldName = "Upgrade"
	FieldNameVia                FieldName = "Via"
	FieldNameAccept             FieldName = "Accept"
	FieldNameAcceptCharset      FieldName = "Accept-Charset"
	FieldNameAcceptEncoding     FieldName = "Accept-Encoding"
	FieldNameAcceptLanguage     FieldName = "Accept-Language"
	FieldNameAuthorization      FieldName = "Authorization"
	FieldNameFrom               FieldName = "From"
	FieldNameHost               FieldName = "Host"
	FieldNameIfModifiedSince    FieldName = "If-Modified-Since"
	FieldNameIfMatch            FieldName = "If-Match"
	FieldNameIfNoneMatch        FieldName = "If-None-Match"
	FieldNameIfRange            FieldName = "If-Range"
	FieldNameIfUnmodifiedSince  FieldName = "If-Unmodified-Since"
	FieldNameMaxForwards        FieldName = "Max-Forwards"
	FieldNameProxyAuthorization FieldName = "Proxy-Authorization"
	FieldNameRange              FieldName = "Range"
	FieldNameReferer            FieldName = "Referer"
	FieldNameUserAgent          FieldName = "User-Agent"
	FieldNameAge                FieldName = "Age"
	FieldNameLocation           FieldName = "Location"
	FieldNameProxyAuthenticate  FieldName = "Proxy-Authenticate"
	FieldNamePublic             FieldName = "Public"
	FieldNameRetryAfter         FieldName = "Retry-After"
	FieldNameServer             FieldName = "Server"
	FieldNameVary               FieldName = "Vary"
	FieldNameWarning            FieldName = "Warning"
	FieldNameWWWAuthenticate    FieldName = "Www-Authenticate"
	FieldNameAllow              FieldName = "Allow"
	FieldNameContentBase        FieldName = "Content-Base"
	FieldNameContentEncoding    FieldName = "Content-Encoding"
	FieldNameContentLanguage    FieldName = "Content-Language"
	FieldNameContentLength      FieldName = "Content-Length"
	FieldNameContentLocation    FieldName = "Content-Location"
	FieldNameContentMD5         FieldName = "Content-Md5"
	FieldNameContentRange       FieldName = "Content-Range"
	FieldNameContentType        FieldName = "Content-Type"
	FieldNameETag               FieldName = "Etag"
	FieldNameExpires            FieldName = "Expires"
	FieldNameLastModified       FieldName = "Last-Modified"
	FieldNameAcceptRanges       FieldName = "Accept-Ranges"
	FieldNameSetCookie          FieldName = "Set-Cookie"
	FieldNameSetCookie2         FieldName = "Set-Cookie2"
	FieldNameXForwardedFor      FieldName = "X-Forwarded-For"
	FieldNameCookie             FieldName = "Cookie"
	FieldNameKeepAlive          FieldName = "Keep-Alive"
	FieldNameProxyConnection    FieldName = "Proxy-Connection"
	FieldNameCallID             FieldName = "Call-Id"
	FieldNameContact            FieldName = "Contact"
	FieldNameCSeq               FieldName = "Cseq"
	FieldNameRecordRoute        FieldName = "Record-Route"
	FieldNameRoute              FieldName = "Route"
	FieldNameSubject            FieldName = "Subject"
	FieldNameTo                 FieldName = "To"
)

// fieldNames is the closed canonical table. The slice order fixes the
// numeric codes assigned by the default header-line decoder, so entries
// must only ever be appended.
var fieldNames = [...]FieldName{
	FieldNameCacheControl,
	FieldNameConnection,
	FieldNameDate,
	FieldNamePragma,
	FieldNameTransferEncoding,
	FieldNameUpgrade,
	FieldNameVia,
	FieldNameAccept,
	FieldNameAcceptCharset,
	FieldNameAcceptEncoding,
	FieldNameAcceptLanguage,
	FieldNameAuthorization,
	FieldNameFrom,
	FieldNameHost,
	FieldNameIfModifiedSince,
	FieldNameIfMatch,
	FieldNameIfNoneMatch,
	FieldNameIfRange,
	FieldNameIfUnmodifiedSince,
	FieldNameMaxForwards,
	FieldNameProxyAuthorization,
	FieldNameRange,
	FieldNameReferer,
	FieldNameUserAgent,
	FieldNameAge,
	FieldNameLocation,
	FieldNameProxyAuthenticate,
	FieldNamePublic,
	FieldNameRetryAfter,
	FieldNameServer,
	FieldNameVary,
	FieldNameWarning,
	FieldNameWWWAuthenticate,
	FieldNameAllow,
	FieldNameContentBase,
	FieldNameContentEncoding,
	FieldNameContentLanguage,
	FieldNameContentLength,
	FieldNameContentLocation,
	FieldNameContentMD5,
	FieldNameContentRange,
	FieldNameContentType,
	FieldNameETag,
	FieldNameExpires,
	FieldNameLastModified,
	FieldNameAcceptRanges,
	FieldNameSetCookie,
	FieldNameSetCookie2,
	FieldNameXForwardedFor,
	FieldNameCookie,
	FieldNameKeepAlive,
	FieldNameProxyConnection,
	FieldNameCallID,
	FieldNameContact,
	FieldNameCSeq,
	FieldNameRecordRoute,
	FieldNameRoute,
	FieldNameSubject,
	FieldNameTo,
}

var fieldNameCodes = func() map[FieldName]int {
	m := make(map[FieldName]int, len(fieldNames))
	for i, n := range fieldNames {
		m[n] = i + 1
	}
	return m
}()

// CanonicFieldName maps a raw spelling to its canonical field name.
// The match is exact and case-sensitive; unrecognized spellings are
// returned unchanged.
func CanonicFieldName[T ~string | ~[]byte](s T) FieldName {
	if code, ok := fieldNameCodes[FieldName(s)]; ok {
		return fieldNames[code-1]
	}
	return FieldName(s)
}

// FieldNames returns a copy of the canonical table in code order.
func FieldNames() []FieldName {
	return slices.Clone(fieldNames[:])
}

// Bytes returns the exact-case byte representation of the name.
// For canonical names this is the inverse of [CanonicFieldName].
func (n FieldName) Bytes() []byte { return []byte(n) }

// Code returns the 1-based position of a canonical name in the table,
// or 0 for an opaque passthrough name.
func (n FieldName) Code() int { return fieldNameCodes[n] }

// IsKnown reports whether the name belongs to the canonical table.
func (n FieldName) IsKnown() bool { return fieldNameCodes[n] != 0 }

// IsValid reports whether the name spelling is a valid grammar token.
func (n FieldName) IsValid() bool { return grammar.IsToken(n) }

func (n FieldName) String() string { return string(n) }
