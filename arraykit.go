// Package arraykit provides low-level utilities for array-processing
// pipelines: runtime validation of array-like contracts, order-preserving
// dictionary encoding, and balanced chunk partitioning.
//
// # Core Features
//
//   - Contract validation: verify a value exposes ndim/dtype/shape and that
//     its dtype, kind, and dimensionality match expected values or sets
//   - Stable encoding: map a sequence of values to dense integer codes in
//     order of first appearance, plus the distinct values in that order
//   - Chunk partitioning: split an element count into blocks whose sizes
//     differ by at most one, larger blocks first
//
// All operations are pure and synchronous: each call reads only its inputs
// and returns freshly allocated outputs, so concurrent use needs no
// coordination.
//
// # Basic Usage
//
// Validating an array-like value:
//
//	import (
//	    "github.com/arloliu/arraykit/check"
//	    "github.com/arloliu/arraykit/format"
//	)
//
//	// v must be a 1-dimensional array of int8 or int16
//	err := check.Array(v,
//	    check.DTypeIn(format.Int8, format.Int16),
//	    check.NDim(1),
//	)
//
// Encoding values as dense codes:
//
//	codes, uniques := arraykit.EncodeArray([]string{"c", "a", "a", "b"})
//	// codes:   [0, 1, 1, 2]
//	// uniques: ["c", "a", "b"]
//
// Partitioning 7 elements into 3 blocks:
//
//	sizes, err := arraykit.SplitArrayChunks(7, 3)
//	// sizes: [3, 2, 2]
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the check,
// encoding, and chunk packages. Use those packages directly for the full
// API (set-valued kind constraints, byte-slice encoding, offset ranges).
package arraykit

import (
	"github.com/arloliu/arraykit/check"
	"github.com/arloliu/arraykit/chunk"
	"github.com/arloliu/arraykit/encoding"
)

// CheckArrayLike validates that v is array-like and satisfies the given
// constraints. See check.Array.
func CheckArrayLike(v any, opts ...check.Option) error {
	return check.Array(v, opts...)
}

// EncodeArray encodes values as dense integer codes indexing the distinct
// values in order of first appearance. See encoding.Encode.
func EncodeArray[T comparable](values []T) (codes []int, uniques []T) {
	return encoding.Encode(values)
}

// SplitArrayChunks returns balanced block sizes for splitting n elements
// across the given number of blocks. See chunk.Split.
func SplitArrayChunks(n, blocks int) ([]int, error) {
	return chunk.Split(n, blocks)
}
