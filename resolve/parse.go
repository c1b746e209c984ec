// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"net"
	"strings"
)

// answerPrefix introduces an answer address line in an nslookup transcript.
const answerPrefix = "Address: "

// parseTranscript extracts the answer addresses from an nslookup stdout
// transcript. The first two lines carry the queried resolver's own identity
// (its "Server:" and "Address: …#53" lines), not answer data, and are
// discarded unseen. Every later line of the form "Address: <ip>" whose
// value parses as an IP literal contributes one address, in transcript
// order. Anything else, including malformed address lines, is a non-match.
func parseTranscript(transcript string) []string {
	lines := strings.Split(transcript, "\n")
	if len(lines) <= 2 {
		return nil
	}
	var addrs []string
	for _, line := range lines[2:] {
		value, ok := strings.CutPrefix(line, answerPrefix)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if net.ParseIP(value) == nil {
			continue
		}
		addrs = append(addrs, value)
	}
	return addrs
}
