// Package encoding provides stable dictionary encoding for arraykit.
//
// The encoder maps a sequence of values to dense integer codes plus the
// distinct values (the dictionary). Codes are assigned in order of first
// appearance, never in natural sort order, so for any input
//
//	codes, uniques := encoding.Encode(values)
//
// the invariant uniques[codes[i]] == values[i] holds for every index, and
// uniques lists each distinct value exactly once, in the order it first
// occurred. Downstream code relies on this ordering; re-sorting uniques
// would silently remap every code.
//
// Encode covers any comparable element type. EncodeBytes covers byte-slice
// elements, which Go's type system cannot route through Encode; it keys
// elements by their xxHash64 and verifies candidates byte-for-byte, so a
// hash collision can never merge two distinct values.
package encoding
