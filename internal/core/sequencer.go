// ABOUTME: Picks the next free sequential output id for a book's result collection
// ABOUTME: Repeated runs never overwrite earlier results
package core

import (
	"path/filepath"
	"strconv"
	"strings"
)

// NextID returns one more than the largest numeric filename stem, or 0 when
// there is none. Non-numeric and negative stems are ignored.
//
// The id is derived from a directory scan, so two concurrent runs for the same
// book can pick the same id. Replacing the scan with a claim-on-write loop is
// the extension point if that ever matters.
func NextID(names []string) int {
	next := 0
	for _, name := range names {
		stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		n, err := strconv.Atoi(stem)
		if err != nil || n < 0 {
			continue
		}
		if n+1 > next {
			next = n + 1
		}
	}
	return next
}
