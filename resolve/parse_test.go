// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// A transcript as the nslookup tool actually emits it: the first two lines
// identify the queried resolver itself and must never count as answers.
const transcript = `Server:		8.8.8.8
Address:	8.8.8.8#53

Non-authoritative answer:
Name:	example.com
Address: 142.250.80.46
Name:	example.com
Address: 142.250.80.47
Name:	example.com
Address: 142.250.80.48
`

var _ = Describe("nslookup transcript parsing", func() {

	It("extracts exactly the answer addresses, in order", func() {
		Expect(parseTranscript(transcript)).To(Equal([]string{
			"142.250.80.46",
			"142.250.80.47",
			"142.250.80.48",
		}))
	})

	It("never mistakes the resolver's identity for an answer", func() {
		Expect(parseTranscript("Server:\t\t1.1.1.1\nAddress: 1.1.1.1\n\n")).To(BeEmpty())
	})

	It("ignores malformed address lines", func() {
		Expect(parseTranscript("Server: x\nAddress: x#53\nAddress: not-an-ip\nAddress: 10.0.0.1\n")).
			To(Equal([]string{"10.0.0.1"}))
	})

	DescribeTable("degenerate transcripts",
		func(transcript string) {
			Expect(parseTranscript(transcript)).To(BeEmpty())
		},
		Entry("empty", ""),
		Entry("single line", "Server: 8.8.8.8"),
		Entry("headers only", "Server:\t8.8.8.8\nAddress:\t8.8.8.8#53\n"),
	)

	It("accepts IPv6 answer literals", func() {
		Expect(parseTranscript("Server: x\nAddress: x\nAddress: 2001:db8::1\n")).
			To(Equal([]string{"2001:db8::1"}))
	})

})
