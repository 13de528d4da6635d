package mandel

import "math"

const (
	// MaxIterations bounds the escape loop per sample.
	MaxIterations = 255

	// EscapeRadius is the modulus a sample must strictly exceed to count
	// as escaped.
	EscapeRadius = 2.0
)

// Evaluate runs the escape-time recurrence for a single sample and reports
// whether it belongs to the drawable field. Escaping samples come back with
// their color filled in; for all others ok is false and the returned point
// is zero.
//
// The recurrence is seeded with the sample itself (z0 = c), not the
// textbook z0 = 0. That shifts every escape index by one and moves the
// drawable boundary slightly; the palette is tuned to this seeding, so
// keep them in sync.
//
// Two classes of samples are excluded: those still bounded after
// MaxIterations (the set interior) and those already past the radius on
// the first step (index 0).
func Evaluate(p VirtualPoint) (VirtualPoint, bool) {
	prevX, prevY := p.X, p.Y
	escape := 0
	for count := 0; count < MaxIterations; count++ {
		escape = count
		x := prevX*prevX - prevY*prevY + p.X
		y := 2*prevX*prevY + p.Y
		dist := math.Sqrt(x*x + y*y)
		prevX, prevY = x, y
		if dist > EscapeRadius {
			break
		}
	}
	if escape == 0 || escape >= MaxIterations-1 {
		return VirtualPoint{}, false
	}
	return VirtualPoint{X: p.X, Y: p.Y, Color: escapeColor(escape)}, true
}

// escapeColor maps an escape index to its RGB triple. Red ramps ten times
// faster than green and blue and saturates from index 26 on.
func escapeColor(index int) Color {
	r := index * 10
	if r > math.MaxUint8 {
		r = math.MaxUint8
	}
	return Color{R: uint8(r), G: uint8(index), B: uint8(index)}
}
