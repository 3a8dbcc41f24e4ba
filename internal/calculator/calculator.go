// Package calculator implements the technical indicator math. Every
// function returns an explicit error when the series is shorter than
// the indicator's minimum window; callers must not substitute defaults.
package calculator

import "errors"

// ErrInsufficientData is returned when a series is shorter than the
// indicator's minimum window.
var ErrInsufficientData = errors.New("insufficient data")
