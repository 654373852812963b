package trace

import (
	"fmt"
	"runtime"
	"strings"
)

// maxVisited bounds the visited set. The runtime rejects larger byte
// slices on 64-bit platforms (heap addresses span 48 bits); on 32-bit
// platforms raster dimension checks already keep Len within range.
const maxVisited = 1 << 47

// checkAlloc rejects visited sets the runtime could never allocate, so the
// common failure does not depend on recovering a panic.
func checkAlloc(cells int) error {
	if uint64(cells) > maxVisited {
		return fmt.Errorf("%w: %d cells", ErrAllocation, cells)
	}

	return nil
}

// guard runs fn and turns a runtime slice-allocation panic into an error
// wrapping ErrAllocation. Any other panic is re-raised unchanged.
func guard(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if re, ok := r.(runtime.Error); ok && isAllocFailure(re) {
			err = fmt.Errorf("%w: %v", ErrAllocation, re)
			return
		}
		panic(r)
	}()
	fn()

	return nil
}

// isAllocFailure matches the runtime.Error values raised when a slice cannot
// be sized: "makeslice: len out of range", "makeslice: cap out of range" and
// "growslice: len out of range". The wording is not covered by the Go 1
// compatibility promise; checkAlloc catches the oversized visited set before
// make, so only path growth still relies on this match.
func isAllocFailure(err runtime.Error) bool {
	msg := err.Error()
	return strings.Contains(msg, "makeslice") || strings.Contains(msg, "growslice")
}
