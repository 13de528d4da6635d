package mandel

import (
	"fmt"
	"math"
)

// Viewport is the axis-aligned window of the complex plane currently mapped
// onto a raster of Width x Height pixels. Xmin/Ymin land on pixel (0, 0).
type Viewport struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
	Width      int32
	Height     int32
}

// validate checks the viewport invariant: finite bounds, Xmin < Xmax,
// Ymin < Ymax and a positive raster.
func (v Viewport) validate() error {
	for _, b := range [...]float64{v.Xmin, v.Xmax, v.Ymin, v.Ymax} {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: non-finite bounds", ErrDegenerateViewport)
		}
	}
	if v.Xmin >= v.Xmax || v.Ymin >= v.Ymax {
		return fmt.Errorf("%w: empty extent [%g, %g]x[%g, %g]",
			ErrDegenerateViewport, v.Xmin, v.Xmax, v.Ymin, v.Ymax)
	}
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: raster %dx%d", ErrDegenerateViewport, v.Width, v.Height)
	}
	return nil
}

// Center returns the virtual coordinate in the middle of the viewport.
func (v Viewport) Center() (x, y float64) {
	return v.Xmin + (v.Xmax-v.Xmin)/2, v.Ymin + (v.Ymax-v.Ymin)/2
}

// virtualAt maps a physical pixel back to its virtual coordinate.
func (v Viewport) virtualAt(px, py int32) (x, y float64) {
	x = float64(px)/float64(v.Width)*(v.Xmax-v.Xmin) + v.Xmin
	y = float64(py)/float64(v.Height)*(v.Ymax-v.Ymin) + v.Ymin
	return x, y
}

// ViewTransform owns the viewport and converts between virtual and physical
// space. Zoom and Reset are the only mutations and must be sequenced
// strictly between render passes; the transform itself does no locking.
type ViewTransform struct {
	vp   Viewport
	home Viewport
}

// NewViewTransform creates a transform over vp. The same viewport is what
// Reset later restores.
func NewViewTransform(vp Viewport) (*ViewTransform, error) {
	if err := vp.validate(); err != nil {
		return nil, fmt.Errorf("new view transform: %w", err)
	}
	return &ViewTransform{vp: vp, home: vp}, nil
}

// Viewport returns a copy of the current viewport.
func (t *ViewTransform) Viewport() Viewport { return t.vp }

// ToPhysical projects computed virtual points onto the raster, truncating
// toward zero. A point exactly on the Xmax or Ymax bound lands one pixel
// past the raster; sinks drop such draws, so survivors on the closing
// bounds simply do not show.
func (t *ViewTransform) ToPhysical(points []VirtualPoint) ([]PhysicalPoint, error) {
	if err := t.vp.validate(); err != nil {
		return nil, fmt.Errorf("to physical: %w", err)
	}
	spanX := t.vp.Xmax - t.vp.Xmin
	spanY := t.vp.Ymax - t.vp.Ymin
	out := make([]PhysicalPoint, len(points))
	for i, p := range points {
		out[i] = PhysicalPoint{
			X:     int32((p.X - t.vp.Xmin) / spanX * float64(t.vp.Width)),
			Y:     int32((p.Y - t.vp.Ymin) / spanY * float64(t.vp.Height)),
			Color: p.Color,
		}
	}
	return out, nil
}

// Zoom recenters the viewport on the virtual coordinate under pixel
// (px, py) and scales both half-extents by ratio. Ratio below 1 zooms in,
// above 1 zooms out. The change is picked up by the next render pass.
//
// A non-finite or non-positive ratio, and any zoom that would collapse a
// bound pair to bit-equal values at the limits of float64, is rejected
// with ErrDegenerateViewport and leaves the viewport untouched.
func (t *ViewTransform) Zoom(px, py int32, ratio float64) error {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		err := fmt.Errorf("%w: ratio %g", ErrDegenerateViewport, ratio)
		logger().Warn("zoom rejected",
			"px", px, "py", py, "ratio", ratio, "err", err)
		return fmt.Errorf("zoom: %w", err)
	}
	cx, cy := t.vp.virtualAt(px, py)
	halfX := (t.vp.Xmax - t.vp.Xmin) / 2 * ratio
	halfY := (t.vp.Ymax - t.vp.Ymin) / 2 * ratio

	next := t.vp
	next.Xmin, next.Xmax = cx-halfX, cx+halfX
	next.Ymin, next.Ymax = cy-halfY, cy+halfY
	if err := next.validate(); err != nil {
		logger().Warn("zoom rejected",
			"px", px, "py", py, "ratio", ratio, "err", err)
		return fmt.Errorf("zoom: %w", err)
	}
	t.vp = next
	logger().Debug("viewport changed",
		"xmin", next.Xmin, "xmax", next.Xmax,
		"ymin", next.Ymin, "ymax", next.Ymax)
	return nil
}

// Reset restores the viewport the transform was created with.
func (t *ViewTransform) Reset() {
	t.vp = t.home
}
