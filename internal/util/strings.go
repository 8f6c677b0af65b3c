package util

import (
	"strings"
	"sync"
)

func Ellipsis(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

var sbPool = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

func GetStringBuilder() *strings.Builder {
	return sbPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	sbPool.Put(sb)
}
