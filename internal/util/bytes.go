package util

// LCaseBytes returns a copy of b with ASCII upper-case letters folded to
// lower case. Unlike [bytes.ToLower] it never touches bytes outside the
// ASCII letter range, so the result always has the same length and byte
// boundaries as the input.
func LCaseBytes(b []byte) []byte {
	folded := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		folded[i] = c
	}
	return folded
}
