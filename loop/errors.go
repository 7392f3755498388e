package loop

import "errors"

var (
	// ErrTooFewPoints indicates a loop has fewer than 3 distinct points.
	ErrTooFewPoints = errors.New("loop: fewer than 3 distinct points")

	// ErrNotClosed indicates a loop's first and last points do not coincide.
	ErrNotClosed = errors.New("loop: first and last points do not coincide")

	// ErrSelfIntersecting indicates two non-adjacent edges of the loop cross.
	ErrSelfIntersecting = errors.New("loop: self-intersecting boundary")
)
