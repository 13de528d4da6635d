package mandel

// Color is an 8-bit RGB triple. Survivor colors are derived from the escape
// index and never change afterwards; alpha is left to the sink.
type Color struct {
	R, G, B uint8
}

// VirtualPoint is a sample in the complex plane: X carries the real part and
// Y the imaginary part. Color stays zero until the evaluator fills it in.
// Point collections live for a single render pass only.
type VirtualPoint struct {
	X, Y  float64
	Color Color
}

// PhysicalPoint is a pixel-space point ready for drawing.
type PhysicalPoint struct {
	X, Y  int32
	Color Color
}
