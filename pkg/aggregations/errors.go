package aggregations

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports a configuration mistake made by the caller
// assembling the aggregation tree: an out-of-range parameter, an illegal
// tree placement, or an unsupported sub-aggregation. It is permanent, never
// retryable.
type InvalidArgumentError struct {
	Message string
}

// InvalidArgumentf creates an [InvalidArgumentError] with a formatted message.
func InvalidArgumentf(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidArgumentError) Error() string { return e.Message }

// IsInvalidArgument reports whether err or any error it wraps is an
// [InvalidArgumentError].
func IsInvalidArgument(err error) bool {
	var invalidArgument *InvalidArgumentError
	return errors.As(err, &invalidArgument)
}
