// Package chunk computes balanced partitions of an element count.
//
// Split divides n elements across a fixed number of blocks so that block
// sizes differ by at most one, with the larger blocks first. Ranges returns
// the same partition as [start, end) offsets for callers that slice.
package chunk

import (
	"fmt"

	"github.com/arloliu/arraykit/errs"
)

// Split returns the size of each block when n elements are divided across
// the given number of blocks. Every size is either n/blocks or n/blocks+1,
// the sizes sum to n, and all larger blocks precede the smaller ones.
//
// Split fails with errs.ErrValueContract when blocks exceeds n, or when
// either argument is not positive.
func Split(n, blocks int) ([]int, error) {
	if blocks > n {
		return nil, fmt.Errorf("%w: number of blocks (%d) cannot be greater than number of elements (%d)",
			errs.ErrValueContract, blocks, n)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: number of elements (%d) must be positive", errs.ErrValueContract, n)
	}
	if blocks <= 0 {
		return nil, fmt.Errorf("%w: number of blocks (%d) must be positive", errs.ErrValueContract, blocks)
	}

	q, r := n/blocks, n%blocks
	sizes := make([]int, blocks)
	for i := range sizes {
		sizes[i] = q
		if i < r {
			sizes[i]++
		}
	}

	return sizes, nil
}

// Range is one block of a partition as a half-open [Start, End) interval.
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Ranges returns the partition produced by Split as [start, end) offsets
// into the original n elements. It fails under the same conditions as
// Split, with the same errors.
func Ranges(n, blocks int) ([]Range, error) {
	sizes, err := Split(n, blocks)
	if err != nil {
		return nil, err
	}

	ranges := make([]Range, len(sizes))
	start := 0
	for i, size := range sizes {
		ranges[i] = Range{Start: start, End: start + size}
		start += size
	}

	return ranges, nil
}
