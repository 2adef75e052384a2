package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/arraykit/errs"
)

func TestParse_CanonicalNames(t *testing.T) {
	tests := []struct {
		name string
		want DType
	}{
		{"bool", Bool},
		{"int8", Int8},
		{"int16", Int16},
		{"int32", Int32},
		{"int64", Int64},
		{"uint8", Uint8},
		{"uint32", Uint32},
		{"float32", Float32},
		{"float64", Float64},
		{"string", String},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := Parse(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, dt)
		})
	}
}

func TestParse_WidthCodes(t *testing.T) {
	tests := []struct {
		code string
		want DType
	}{
		{"b1", Bool},
		{"i4", Int32},
		{"i8", Int64},
		{"u2", Uint16},
		{"f4", Float32},
		{"f8", Float64},
		{"str", String},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			dt, err := Parse(tt.code)
			require.NoError(t, err)
			require.Equal(t, tt.want, dt)
		})
	}
}

// Two spellings of the same type must normalize to equal DTypes, since
// contract checks compare dtypes with ==.
func TestParse_Normalizes(t *testing.T) {
	a, err := Parse("float64")
	require.NoError(t, err)
	b, err := Parse("f8")
	require.NoError(t, err)

	require.True(t, a == b)
	require.True(t, a == Float64)
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("complex128")

	require.ErrorIs(t, err, errs.ErrTypeContract)
	require.ErrorContains(t, err, `unknown dtype "complex128"`)
}

func TestDType_String(t *testing.T) {
	require.Equal(t, "int32", Int32.String())
	require.Equal(t, "uint16", Uint16.String())
	require.Equal(t, "float64", Float64.String())
	require.Equal(t, "bool", Bool.String())
	require.Equal(t, "string", String.String())
	require.Equal(t, "unknown", DType{}.String())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "int", KindInt.String())
	require.Equal(t, "uint", KindUint.String())
	require.Equal(t, "float", KindFloat.String())
	require.Equal(t, "bool", KindBool.String())
	require.Equal(t, "string", KindString.String())
	require.Equal(t, "unknown", Kind(0xff).String())
}
