// Package check validates that a value honors the array-like contract:
// that it exposes the ndim/dtype/shape capabilities, and that its dtype,
// dtype kind, and dimensionality match caller-supplied constraints.
//
// Each constraint accepts either a single expected value or a set of
// acceptable values:
//
//	// v must be a 1- or 2-dimensional float64 array
//	err := check.Array(v, check.DType(format.Float64), check.NDimIn(1, 2))
//
// Checks short-circuit in a fixed order: capabilities, then dtype, then
// kind, then ndim. Structural failures (missing capability, dtype or kind
// mismatch) wrap errs.ErrTypeContract; a dimensionality mismatch wraps
// errs.ErrValueContract, so callers can tell "not an array" apart from
// "wrong shape" with errors.Is.
package check

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/arraykit/errs"
	"github.com/arloliu/arraykit/format"
	"github.com/arloliu/arraykit/internal/options"
)

// ArrayLike is the full capability set an array-like value must expose.
// Array probes each capability individually so that the error can name the
// first missing one, but callers that construct array values themselves can
// require this interface and make the contract a compile-time fact.
type ArrayLike interface {
	// NDim returns the number of axes.
	NDim() int
	// DType returns the normalized element type.
	DType() format.DType
	// Shape returns the per-axis extents, len(Shape()) == NDim().
	Shape() []int
}

// Single-capability probes, checked in the order ndim, dtype, shape.
type (
	ndimer interface{ NDim() int }
	dtyper interface{ DType() format.DType }
	shaper interface{ Shape() []int }
)

// constraint is a single-or-set expectation: either exactly one acceptable
// value, or membership in a set of acceptable values.
type constraint[T comparable] struct {
	set    bool
	values []T
}

func one[T comparable](v T) *constraint[T] {
	return &constraint[T]{values: []T{v}}
}

func anyOf[T comparable](vs []T) *constraint[T] {
	return &constraint[T]{set: true, values: vs}
}

func (c *constraint[T]) match(v T) bool {
	if !c.set {
		return v == c.values[0]
	}

	return slices.Contains(c.values, v)
}

// expected renders the acceptable value or set for error messages.
// Sets are echoed in the order the caller supplied them.
func (c *constraint[T]) expected() string {
	if !c.set {
		return fmt.Sprintf("%v", c.values[0])
	}

	parts := make([]string, len(c.values))
	for i, v := range c.values {
		parts[i] = fmt.Sprintf("%v", v)
	}

	return "one of {" + strings.Join(parts, ", ") + "}"
}

type checker struct {
	dtype *constraint[format.DType]
	kind  *constraint[format.Kind]
	ndim  *constraint[int]
}

// Option represents a functional option carrying one constraint for Array.
type Option = options.Option[*checker]

// DType requires the value's dtype to equal dt exactly.
func DType(dt format.DType) Option {
	return options.NoError(func(c *checker) {
		c.dtype = one(dt)
	})
}

// DTypeIn requires the value's dtype to be a member of dts.
func DTypeIn(dts ...format.DType) Option {
	return options.NoError(func(c *checker) {
		c.dtype = anyOf(dts)
	})
}

// Kind requires the value's dtype kind to equal k.
func Kind(k format.Kind) Option {
	return options.NoError(func(c *checker) {
		c.kind = one(k)
	})
}

// KindIn requires the value's dtype kind to be a member of ks.
func KindIn(ks ...format.Kind) Option {
	return options.NoError(func(c *checker) {
		c.kind = anyOf(ks)
	})
}

// NDim requires the value to have exactly n dimensions.
func NDim(n int) Option {
	return options.NoError(func(c *checker) {
		c.ndim = one(n)
	})
}

// NDimIn requires the value's dimensionality to be a member of ns.
func NDimIn(ns ...int) Option {
	return options.NoError(func(c *checker) {
		c.ndim = anyOf(ns)
	})
}

// Array validates that v is array-like and satisfies the given constraints.
// It returns nil on success; the first failing check aborts the call and no
// later check runs.
func Array(v any, opts ...Option) error {
	if _, ok := v.(ndimer); !ok {
		return fmt.Errorf("%w: not an array-like value, missing 'ndim'", errs.ErrTypeContract)
	}
	if _, ok := v.(dtyper); !ok {
		return fmt.Errorf("%w: not an array-like value, missing 'dtype'", errs.ErrTypeContract)
	}
	if _, ok := v.(shaper); !ok {
		return fmt.Errorf("%w: not an array-like value, missing 'shape'", errs.ErrTypeContract)
	}

	var c checker
	if err := options.Apply(&c, opts...); err != nil {
		return err
	}

	dt := v.(dtyper).DType()
	if c.dtype != nil && !c.dtype.match(dt) {
		return fmt.Errorf("%w: array dtype (%v) does not match %s",
			errs.ErrTypeContract, dt, c.dtype.expected())
	}
	if c.kind != nil && !c.kind.match(dt.Kind) {
		return fmt.Errorf("%w: array dtype kind (%v) does not match %s",
			errs.ErrTypeContract, dt.Kind, c.kind.expected())
	}
	if c.ndim != nil {
		if nd := v.(ndimer).NDim(); !c.ndim.match(nd) {
			return fmt.Errorf("%w: number of dimensions (%d) does not match %s",
				errs.ErrValueContract, nd, c.ndim.expected())
		}
	}

	return nil
}
