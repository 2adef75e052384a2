// Package errs defines the error taxonomy shared by all arraykit packages.
//
// Every failure in this module wraps exactly one of two sentinel errors:
//
//   - ErrTypeContract: the value is structurally wrong — a required
//     array-like attribute is missing, or its dtype/kind does not match
//     the expected value or set.
//   - ErrValueContract: the value is structurally fine but violates a
//     numeric constraint — wrong dimensionality, or an invalid
//     element/block count passed to the partitioner.
//
// Callers dispatch on the kind with errors.Is:
//
//	if err := check.Array(v, check.NDim(2)); errors.Is(err, errs.ErrValueContract) {
//	    // right structure, wrong shape
//	}
package errs

import "errors"

var (
	// ErrTypeContract indicates a structural mismatch: a missing
	// array-like attribute, or a dtype/kind that does not match the
	// expected value or set.
	ErrTypeContract = errors.New("type contract violation")

	// ErrValueContract indicates a numeric constraint violation: a
	// dimensionality mismatch or an invalid partitioning request.
	ErrValueContract = errors.New("value contract violation")
)
