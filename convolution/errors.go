package convolution

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every invalid filter configuration.
// Match it with errors.Is to reject a run before any frame is processed.
var ErrConfiguration = errors.New("convolution: invalid filter configuration")

var (
	// ErrEvenWindow is returned for an even running-mean window.
	ErrEvenWindow = fmt.Errorf("%w: window size even, only odd window lengths are supported", ErrConfiguration)

	// ErrNonPositiveWindow is returned for a running-mean window below 1.
	ErrNonPositiveWindow = fmt.Errorf("%w: window size must be positive", ErrConfiguration)

	// ErrUnknownKind is returned for a filter name or Kind outside the supported set.
	ErrUnknownKind = fmt.Errorf("%w: unsupported convolution type", ErrConfiguration)
)

var (
	// ErrUnreachable marks an internal dispatch inconsistency, e.g. asking the
	// composed filter for a single-frame kernel. It is always a defect.
	ErrUnreachable = errors.New("convolution: unreachable filter dispatch")

	// ErrDimensionMismatch is returned when the frames of a matrix differ in width.
	ErrDimensionMismatch = errors.New("convolution: frames differ in dimensionality")
)
