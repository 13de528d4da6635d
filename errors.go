package mandel

import "errors"

var (
	// ErrDegenerateViewport marks viewport mutations that would leave the
	// viewport empty, inverted or non-finite. The offending mutation is
	// rejected and the previous viewport stays in force.
	ErrDegenerateViewport = errors.New("mandel: degenerate viewport")

	// ErrWorkerFailure marks a render pass in which a worker goroutine
	// died. The pass yields no points; there is no partial result.
	ErrWorkerFailure = errors.New("mandel: worker failure")
)
