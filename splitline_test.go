package sipline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/sipline"
)

var _ = Describe("SplitLine", Label("splitline"), func() {
	DescribeTable("splitting", Label("splitting"),
		func(in string, expectLine, expectRest string, expectOK bool) {
			line, rest, ok := sipline.SplitLine([]byte(in), nil)
			Expect(ok).To(Equal(expectOK))
			if !expectOK {
				Expect(line).To(BeNil())
				Expect(rest).To(Equal([]byte(in)), "assert the buffer is returned untouched")
				return
			}
			Expect(string(line)).To(Equal(expectLine))
			Expect(string(rest)).To(Equal(expectRest))
		},
		EntryDescription("%[1]q"),
		Entry(nil, "", "", "", false),
		Entry(nil, "no terminator yet", "", "", false),
		Entry(nil, "partial\r", "", "", false),
		Entry(nil, "\n", "", "", true),
		Entry(nil, "\r\n", "", "", true),
		Entry(nil, "one\r\n", "one", "", true),
		Entry(nil, "one\n", "one", "", true),
		// only the first line is consumed, everything after is re-joined
		Entry(nil, "one\r\ntwo\nthree\r\n", "one", "two\nthree\r\n", true),
		// a lone CR does not terminate and stays inside the line
		Entry(nil, "a\rb\nrest", "a\rb", "rest", true),
	)
})
