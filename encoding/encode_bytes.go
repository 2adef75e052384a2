package encoding

import (
	"bytes"

	"github.com/arloliu/arraykit/internal/hash"
)

// EncodeBytes maps byte-slice values to dense integer codes, with the same
// first-appearance contract as Encode. Byte slices are not comparable in
// Go, so elements are keyed by their xxHash64; elements that share a hash
// are compared byte-for-byte before reusing a code, so distinct values are
// never merged by a collision.
//
// The returned uniques are copies and do not alias the input.
func EncodeBytes(values [][]byte) (codes []int, uniques [][]byte) {
	codes = make([]int, len(values))
	uniques = make([][]byte, 0)
	// Hash → codes of the distinct values with that hash. More than one
	// entry per hash only occurs on a collision.
	buckets := make(map[uint64][]int, len(values))

	for i, v := range values {
		id := hash.ID(v)

		code := -1
		for _, candidate := range buckets[id] {
			if bytes.Equal(uniques[candidate], v) {
				code = candidate
				break
			}
		}
		if code < 0 {
			code = len(uniques)
			uniques = append(uniques, bytes.Clone(v))
			buckets[id] = append(buckets[id], code)
		}
		codes[i] = code
	}

	return codes, uniques
}
