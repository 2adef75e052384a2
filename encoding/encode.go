package encoding

// Encode maps values to dense integer codes indexing the distinct values.
//
// Codes number the distinct values 0..K-1 in order of first appearance, so
// uniques[codes[i]] == values[i] for every index. A single linear pass with
// a value-to-code map produces the codes; no sorting is involved, and the
// result depends only on the sequence of values.
//
// An empty input yields empty (non-nil) codes and uniques.
func Encode[T comparable](values []T) (codes []int, uniques []T) {
	codes = make([]int, len(values))
	uniques = make([]T, 0)
	seen := make(map[T]int, len(values))

	for i, v := range values {
		code, ok := seen[v]
		if !ok {
			code = len(uniques)
			seen[v] = code
			uniques = append(uniques, v)
		}
		codes[i] = code
	}

	return codes, uniques
}
