package sipline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/sipline"
)

var _ = Describe("StartLine", Label("startline"), func() {
	DescribeTable("tokenizing", Label("tokenizing"),
		func(in string, expect sipline.Token) {
			Expect(sipline.ParseStartLine([]byte(in))).To(Equal(expect))
		},
		EntryDescription("%[1]q"),
		// region requests
		Entry(nil, "INVITE sip:bob@example.com SIP/2.0",
			sipline.RequestLine{
				Method:  sipline.MethodInvite,
				Target:  []byte("sip:bob@example.com"),
				Version: sipline.Version20(),
			},
		),
		Entry(nil, "invite sip:bob@example.com sip/2.0",
			sipline.RequestLine{
				Method:  sipline.MethodInvite,
				Target:  []byte("sip:bob@example.com"),
				Version: sipline.Version20(),
			},
		),
		Entry(nil, "InViTe sip:Bob@Example.COM SIP/2.0",
			sipline.RequestLine{
				Method: sipline.MethodInvite,
				// opaque fields keep their original bytes
				Target:  []byte("sip:Bob@Example.COM"),
				Version: sipline.Version20(),
			},
		),
		Entry(nil, "REGISTER sip:example.com SIP/2.0",
			sipline.RequestLine{
				Method:  sipline.MethodRegister,
				Target:  []byte("sip:example.com"),
				Version: sipline.Version20(),
			},
		),
		Entry(nil, "OPTION sip:example.com SIP/2.0",
			sipline.RequestLine{
				Method:  sipline.MethodOption,
				Target:  []byte("sip:example.com"),
				Version: sipline.Version20(),
			},
		),
		Entry(nil, "PUBLISH sip:example.com SIP/2.0",
			sipline.RequestLine{
				Method:  sipline.Method("publish"),
				Target:  []byte("sip:example.com"),
				Version: sipline.Version20(),
			},
		),
		Entry(nil, "ACK sip:bob@example.com SIP/10.21",
			sipline.RequestLine{
				Method:  sipline.MethodAck,
				Target:  []byte("sip:bob@example.com"),
				Version: sipline.Version{Major: 10, Minor: 21},
			},
		),
		// endregion
		// region responses
		Entry(nil, "SIP/2.0 200 OK",
			sipline.ResponseLine{
				Version:    sipline.Version20(),
				StatusCode: 200,
				Reason:     []byte("OK"),
			},
		),
		Entry(nil, "sip/2.0 180 Ringing",
			sipline.ResponseLine{
				Version:    sipline.Version20(),
				StatusCode: 180,
				Reason:     []byte("Ringing"),
			},
		),
		Entry(nil, "SIP/2.0 100 ",
			sipline.ResponseLine{
				Version:    sipline.Version20(),
				StatusCode: 100,
				Reason:     []byte{},
			},
		),
		Entry(nil, "SIP/2.0 999 Overflow",
			sipline.ResponseLine{
				Version:    sipline.Version20(),
				StatusCode: 999,
				Reason:     []byte("Overflow"),
			},
		),
		// endregion
		// region soft failures
		Entry(nil, "", sipline.ErrorLine{Raw: []byte("\n")}),
		Entry(nil, "garbage line with too many tokens here",
			sipline.ErrorLine{Raw: []byte("garbage line with too many tokens here\n")},
		),
		Entry(nil, "INVITE sip:bob@example.com",
			sipline.ErrorLine{Raw: []byte("INVITE sip:bob@example.com\n")},
		),
		Entry(nil, "INVITE sip:bob@example.com SIP/2.x",
			sipline.ErrorLine{Raw: []byte("INVITE sip:bob@example.com SIP/2.x\n")},
		),
		Entry(nil, "INVITE sip:bob@example.com SIP/2",
			sipline.ErrorLine{Raw: []byte("INVITE sip:bob@example.com SIP/2\n")},
		),
		Entry(nil, "SIP/2.0 OK 200",
			sipline.ErrorLine{Raw: []byte("SIP/2.0 OK 200\n")},
		),
		// reason phrases with spaces exceed the three-field grammar
		Entry(nil, "SIP/2.0 404 Not Found",
			sipline.ErrorLine{Raw: []byte("SIP/2.0 404 Not Found\n")},
		),
		// a "sip"-prefixed first field always takes the response branch
		Entry(nil, "SIPX sip:bob@example.com SIP/2.0",
			sipline.ErrorLine{Raw: []byte("SIPX sip:bob@example.com SIP/2.0\n")},
		),
		// literal split preserves empty fields instead of collapsing
		Entry(nil, "INVITE  sip:bob@example.com SIP/2.0",
			sipline.ErrorLine{Raw: []byte("INVITE  sip:bob@example.com SIP/2.0\n")},
		),
		Entry(nil, "SIP/2.0 -1 Bad",
			sipline.ErrorLine{Raw: []byte("SIP/2.0 -1 Bad\n")},
		),
		// endregion
	)
})
