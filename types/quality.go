// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Quality indicates the reachability "quality" of a candidate address, such
// as unchecked, checking, et cetera.
type Quality int

// The reachability qualities of a candidate address.
const (
	Unchecked   Quality = iota // address neither in checking nor checked.
	Checking                   // address in reachability checking.
	Unreachable                // TLS handshake to the address failed or timed out.
	Reachable                  // TLS handshake to the address succeeded.
)

// String returns the clear-text representation of a Quality value.
func (q Quality) String() string {
	switch q {
	case Unchecked:
		return "unchecked"
	case Checking:
		return "checking"
	case Unreachable:
		return "unreachable"
	case Reachable:
		return "reachable"
	}
	return fmt.Sprintf("Quality(%d)", q)
}

// IsPending returns true as long as an address hasn't received its final
// reachable-or-not verdict.
func (q Quality) IsPending() bool {
	switch q {
	case Unchecked, Checking:
		return true
	default:
		return false
	}
}
