package sipline

import (
	"bytes"
)

// SplitLine locates the first line terminator in buf and splits it into a
// candidate line and the remaining tail.
//
// A line is terminated by LF or CRLF; the returned line has the terminator
// stripped. Exactly one line is consumed per call no matter how many are
// buffered, so callers must loop over rest. ok is false when buf holds no
// terminator yet: the caller must append more bytes and retry with the
// concatenated buffer.
//
// opts is accepted for interface stability and currently unused.
func SplitLine(buf []byte, opts *Options) (line, rest []byte, ok bool) {
	_ = opts
	i := bytes.IndexByte(buf, '\n')
	if i < 0 {
		return nil, buf, false
	}
	line = buf[:i]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, buf[i+1:], true
}
