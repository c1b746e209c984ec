// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package regions

import (
	_ "embed"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// The built-in region catalog, one region code per non-blank line.
//
//go:embed regions.txt
var embedded string

// All returns the region codes of the built-in catalog.
func All() []string {
	return parse(embedded)
}

// FromFile returns the region codes read from the newline-delimited catalog
// file at the specified path.
func FromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read region catalog: %w", err)
	}
	return parse(string(data)), nil
}

// PickRandom returns one region code randomly chosen from the specified
// catalog, using the explicitly passed randomness source. It returns the
// zero string for an empty catalog.
func PickRandom(rnd *rand.Rand, codes []string) string {
	if len(codes) == 0 {
		return ""
	}
	return codes[rnd.Intn(len(codes))]
}

func parse(text string) []string {
	var codes []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		codes = append(codes, line)
	}
	return codes
}
