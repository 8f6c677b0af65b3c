package sipline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ghettovoice/sipline"
)

var _ = Describe("Tokenizer", Label("tokenizer"), func() {
	Describe("ParsePacket", Label("packet"), func() {
		It("asks for more data while no terminator is buffered", func() {
			buf := []byte("INVITE sip:bob@example.com SIP")

			tok, rest, err := sipline.ParsePacket(buf, nil)
			Expect(tok).To(BeNil())
			Expect(rest).To(Equal(buf), "assert the buffer is returned untouched")
			Expect(sipline.IsNeedMore(err)).To(BeTrue(), "assert the error is a NeedMoreError")

			// re-invoking with the same buffer is idempotent
			tok, rest, err = sipline.ParsePacket(buf, nil)
			Expect(tok).To(BeNil())
			Expect(rest).To(Equal(buf))
			Expect(sipline.IsNeedMore(err)).To(BeTrue())
		})

		It("consumes exactly one line per call", func() {
			buf := []byte("INVITE sip:bob@example.com SIP/2.0\r\nVia: z9\r\n\r\n")

			tok, rest, err := sipline.ParsePacket(buf, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(Equal(sipline.RequestLine{
				Method:  sipline.MethodInvite,
				Target:  []byte("sip:bob@example.com"),
				Version: sipline.Version20(),
			}))
			Expect(rest).To(Equal([]byte("Via: z9\r\n\r\n")))
		})

		It("accepts a bare LF terminator", func() {
			tok, rest, err := sipline.ParsePacket([]byte("SIP/2.0 200 OK\nrest"), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(Equal(sipline.ResponseLine{
				Version:    sipline.Version20(),
				StatusCode: 200,
				Reason:     []byte("OK"),
			}))
			Expect(rest).To(Equal([]byte("rest")))
		})

		It("recovers a malformed start line as an error token", func() {
			buf := []byte("garbage line with too many tokens here\nNEXT")

			tok, rest, err := sipline.ParsePacket(buf, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(Equal(sipline.ErrorLine{
				Raw: []byte("garbage line with too many tokens here\n"),
			}))
			Expect(rest).To(Equal([]byte("NEXT")))
		})
	})

	Describe("ParseHeader", Label("header"), func() {
		It("tokenizes a known header field with its decoder code", func() {
			tok, rest, err := sipline.ParseHeader([]byte("Via: SIP/2.0/UDP host\r\nX"), nil)
			Expect(err).ToNot(HaveOccurred())
			hdr, ok := tok.(sipline.HeaderField)
			Expect(ok).To(BeTrue(), "assert the token is a HeaderField")
			Expect(hdr.Name).To(Equal(sipline.FieldNameVia))
			Expect(hdr.Code).To(Equal(sipline.FieldNameVia.Code()))
			Expect(hdr.Value).To(Equal([]byte("SIP/2.0/UDP host")))
			Expect(rest).To(Equal([]byte("X")))
		})

		It("passes an unknown field name through byte-identical", func() {
			// exactly one terminated line, nothing buffered past it
			tok, rest, err := sipline.ParseHeader([]byte("X-Custom-Trace: abc123\r\n"), nil)
			Expect(err).ToNot(HaveOccurred())
			hdr, ok := tok.(sipline.HeaderField)
			Expect(ok).To(BeTrue())
			Expect(hdr.Name).To(Equal(sipline.FieldName("X-Custom-Trace")))
			Expect(hdr.Code).To(BeZero())
			Expect(hdr.Value).To(Equal([]byte("abc123")))
			Expect(rest).To(BeEmpty())
		})

		It("does not case-fold field names against the canonical table", func() {
			tok, _, err := sipline.ParseHeader([]byte("CALL-ID: a84b4c\r\n\r\n"), nil)
			Expect(err).ToNot(HaveOccurred())
			hdr, ok := tok.(sipline.HeaderField)
			Expect(ok).To(BeTrue())
			Expect(hdr.Name).To(Equal(sipline.FieldName("CALL-ID")), "assert no canonical substitute")
			Expect(hdr.Code).To(BeZero())
		})

		It("yields the end-of-headers sentinel on a CRLF-only line", func() {
			tok, rest, err := sipline.ParseHeader([]byte("\r\nbody"), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(Equal(sipline.EndOfHeaders{}))
			Expect(rest).To(Equal([]byte("body")))
		})

		It("keeps folding whitespace inside folded values", func() {
			buf := []byte("Subject: first\r\n\tsecond\r\n\r\n")

			tok, rest, err := sipline.ParseHeader(buf, nil)
			Expect(err).ToNot(HaveOccurred())
			hdr, ok := tok.(sipline.HeaderField)
			Expect(ok).To(BeTrue())
			Expect(hdr.Name).To(Equal(sipline.FieldNameSubject))
			// embedded CR/LF/TAB sequences are preserved for downstream consumers
			Expect(hdr.Value).To(Equal([]byte("first\r\n\tsecond")))
			Expect(rest).To(Equal([]byte("\r\n")))
		})

		It("emits a field as soon as its terminator is buffered", func() {
			tok, rest, err := sipline.ParseHeader([]byte("Via: SIP/2.0/UDP host\r\n"), nil)
			Expect(err).ToNot(HaveOccurred())
			hdr, ok := tok.(sipline.HeaderField)
			Expect(ok).To(BeTrue())
			Expect(hdr.Value).To(Equal([]byte("SIP/2.0/UDP host")))
			Expect(rest).To(BeEmpty())
		})

		It("asks for more data while a started continuation is unterminated", func() {
			buf := []byte("Subject: first\r\n\tsec")

			tok, rest, err := sipline.ParseHeader(buf, nil)
			Expect(tok).To(BeNil())
			Expect(rest).To(Equal(buf))
			Expect(sipline.IsNeedMore(err)).To(BeTrue())
		})

		It("treats a continuation arriving after its field was emitted as an orphan", func() {
			tok, _, err := sipline.ParseHeader([]byte("Via: x\r\n"), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(BeAssignableToTypeOf(sipline.HeaderField{}))

			tok, rest, err := sipline.ParseHeader([]byte("\tmore\r\n\r\n"), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(Equal(sipline.ErrorLine{Raw: []byte("\tmore\r\n")}))
			Expect(rest).To(Equal([]byte("\r\n")))
		})

		It("asks for more data while the line is unterminated", func() {
			buf := []byte("Via: SIP/2.0")

			_, rest, err := sipline.ParseHeader(buf, nil)
			Expect(rest).To(Equal(buf))
			Expect(sipline.IsNeedMore(err)).To(BeTrue())
		})

		It("recovers a malformed header line with its raw bytes preserved", func() {
			buf := []byte("No Colon Here\r\nVia: x\r\n\r\n")

			tok, rest, err := sipline.ParseHeader(buf, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(Equal(sipline.ErrorLine{Raw: []byte("No Colon Here\r\n")}))
			Expect(rest).To(Equal([]byte("Via: x\r\n\r\n")))
		})

		It("rejects whitespace between the field name and the colon", func() {
			tok, _, err := sipline.ParseHeader([]byte("Via : x\r\n\r\n"), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(Equal(sipline.ErrorLine{Raw: []byte("Via : x\r\n")}))
		})

		It("recovers an orphan continuation line", func() {
			tok, rest, err := sipline.ParseHeader([]byte(" folded\r\nVia: x\r\n\r\n"), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(tok).To(Equal(sipline.ErrorLine{Raw: []byte(" folded\r\n")}))
			Expect(rest).To(Equal([]byte("Via: x\r\n\r\n")))
		})
	})
})
