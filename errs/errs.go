// Package errs defines the error taxonomy shared across the module:
// four sentinel errors wrapped with context via github.com/pkg/errors,
// and aggregated across multiple failures via go-multierror.
package errs

import "errors"

var (
	// ErrInputMalformed means the input file is unreadable, has the
	// wrong line count, carries a non-integer token, or an
	// unrecognised direction letter.
	ErrInputMalformed = errors.New("isotopeboat: input malformed")

	// ErrInputInconsistent means a parsed entity's footprint lies
	// outside the board, or overlaps another entity's footprint.
	ErrInputInconsistent = errors.New("isotopeboat: input inconsistent")

	// ErrUnsolvable means a search exhausted its frontier, or every
	// depth up to its cap, without finding a goal.
	ErrUnsolvable = errors.New("isotopeboat: no solution found")

	// ErrInternalInvariant means an unreachable branch was reached —
	// fatal, the caller is expected to terminate the process.
	ErrInternalInvariant = errors.New("isotopeboat: internal invariant violated")
)
