package mandel

// Evaluator classifies a single sample and colors it if it survives. The
// engine's workers call it from multiple goroutines at once, so it must be
// safe for concurrent use. The package default is Evaluate.
type Evaluator func(VirtualPoint) (VirtualPoint, bool)

// RenderSink is the drawing surface a computed field is handed to. The two
// calls mirror immediate-mode plotting: pick a color, put a pixel.
// Implementations must ignore points outside their raster; the transform
// legitimately emits coordinates one past the closing bound.
type RenderSink interface {
	SetColor(r, g, b, a uint8)
	DrawPoint(x, y int32)
}

// DrawPoints plots a computed field onto sink, one SetColor/DrawPoint pair
// per point with full alpha, in field order. No batching, no reordering.
func DrawPoints(sink RenderSink, points []PhysicalPoint) {
	for _, p := range points {
		sink.SetColor(p.Color.R, p.Color.G, p.Color.B, 0xff)
		sink.DrawPoint(p.X, p.Y)
	}
}
