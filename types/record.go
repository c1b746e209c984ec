// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

// LatencyRecord is the summary of a single echo probe run against one
// resolved address. Addresses whose probe failed outright produce no record
// at all, so a LatencyRecord never stands in for "could not be measured".
type LatencyRecord struct {
	Address   string  `json:"address"` // a single IP (v4/v6) address literal
	Loss      float64 `json:"loss"`    // fraction of lost echo requests, 0..1
	RTTMillis float64 `json:"rtt"`     // average round-trip time in milliseconds
}

// Candidate is one entry of the ranked candidate list: an address that
// survived latency probing without loss, its average round-trip time, and
// its reachability quality as determined (later) by the TLS handshake check.
type Candidate struct {
	Address   string  `json:"address"`
	RTTMillis float64 `json:"rtt"`
	Quality   Quality `json:"quality"`
}
