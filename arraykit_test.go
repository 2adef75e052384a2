package arraykit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/arraykit/check"
	"github.com/arloliu/arraykit/errs"
	"github.com/arloliu/arraykit/format"
)

type vector struct {
	dtype format.DType
	n     int
}

func (v vector) NDim() int { return 1 }
func (v vector) DType() format.DType { return v.dtype }
func (v vector) Shape() []int { return []int{v.n} }

// TestCheckArrayLike verifies the wrapper forwards constraints to check.Array
func TestCheckArrayLike(t *testing.T) {
	v := vector{dtype: format.Float64, n: 8}

	err := CheckArrayLike(v, check.DType(format.Float64), check.NDim(1))
	require.NoError(t, err)

	err = CheckArrayLike(v, check.NDim(2))
	require.ErrorIs(t, err, errs.ErrValueContract)

	err = CheckArrayLike("not an array")
	require.ErrorIs(t, err, errs.ErrTypeContract)
}

// TestEncodeArray verifies codes index uniques in first-appearance order
func TestEncodeArray(t *testing.T) {
	codes, uniques := EncodeArray([]string{"c", "a", "a", "b"})

	require.Equal(t, []int{0, 1, 1, 2}, codes)
	require.Equal(t, []string{"c", "a", "b"}, uniques)
}

// TestSplitArrayChunks verifies balanced sizes with larger blocks first
func TestSplitArrayChunks(t *testing.T) {
	sizes, err := SplitArrayChunks(7, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 2}, sizes)

	_, err = SplitArrayChunks(3, 5)
	require.ErrorIs(t, err, errs.ErrValueContract)
}
