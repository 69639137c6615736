// Package util provides shared utility functions.
package util

import (
	"hash/fnv"
	"strings"
)

// Fingerprint computes a 4-byte FNV-1a hash over the trimmed, non-empty
// lines of a fixture file. Two files with the same fingerprint almost
// certainly hold the same packets in the same order; the hash is for display
// only and does not replace a line-by-line comparison.
func Fingerprint(lines []string) uint32 {
	h := fnv.New32a()
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return h.Sum32()
}
