package mandel

// GenerateGrid enumerates the sample points of a render pass: a uniform
// grid over the viewport with one step per pixel, walked column-major (the
// inner loop sweeps y for a fixed x). Colors are zero; classification is
// the evaluator's job.
//
// Both closing bounds are inclusive and the steps accumulate in floating
// point, so the count may drift by a row or column from Width*Height.
// Callers must not assume an exact product.
func GenerateGrid(vp Viewport) []VirtualPoint {
	dx := (vp.Xmax - vp.Xmin) / float64(vp.Width)
	dy := (vp.Ymax - vp.Ymin) / float64(vp.Height)
	points := make([]VirtualPoint, 0, (int(vp.Width)+1)*(int(vp.Height)+1))
	for x := vp.Xmin; x <= vp.Xmax; x += dx {
		for y := vp.Ymin; y <= vp.Ymax; y += dy {
			points = append(points, VirtualPoint{X: x, Y: y})
		}
	}
	return points
}
