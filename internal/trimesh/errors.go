package trimesh

import (
	"errors"
	"fmt"
)

// ErrExactUnsupported is returned when an exact (non NaN-tolerant)
// stencil application is requested. Only the smoothing-style weighted
// mean of valid samples is available; the exact convolution, which
// would yield NaN wherever any input under the stencil is NaN, is
// reserved and not implemented.
var ErrExactUnsupported = errors.New("trimesh: exact (non NaN-tolerant) stencil application is not supported")

// ValidationError reports a malformed caller-supplied input: a radial
// pattern or mesh definition that fails fail-fast construction checks.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "trimesh: " + e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
