package common

import "errors"

var (
	// ErrInsufficientData is returned when a fit is asked of an empty point set.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateInput is returned when the points admit no finite slope,
	// i.e. every x coordinate is identical.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInvalidParameter is returned for hyperparameters outside their domain,
	// such as a negative iteration count.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrResourceUnavailable is returned when an external collaborator, such
	// as a plotting program, cannot be reached.
	ErrResourceUnavailable = errors.New("resource unavailable")
)
