package mandel

import (
	"image"
	"image/color"
)

// ImageSink plots into an in-memory RGBA image. It backs the headless
// frontends and is handy in tests. Draws outside the raster are ignored.
type ImageSink struct {
	img    *image.RGBA
	active color.RGBA
}

var _ RenderSink = (*ImageSink)(nil)

// NewImageSink creates a sink with an opaque black backdrop, the color of
// everything the evaluator filtered out.
func NewImageSink(width, height int32) *ImageSink {
	s := &ImageSink{img: image.NewRGBA(image.Rect(0, 0, int(width), int(height)))}
	s.Clear()
	return s
}

// Clear repaints the backdrop, readying the sink for the next frame.
func (s *ImageSink) Clear() {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = 0, 0, 0, 0xff
	}
}

// SetColor implements RenderSink.
func (s *ImageSink) SetColor(r, g, b, a uint8) {
	s.active = color.RGBA{R: r, G: g, B: b, A: a}
}

// DrawPoint implements RenderSink.
func (s *ImageSink) DrawPoint(x, y int32) {
	if x < 0 || y < 0 || int(x) >= s.img.Rect.Dx() || int(y) >= s.img.Rect.Dy() {
		return
	}
	s.img.SetRGBA(int(x), int(y), s.active)
}

// Image exposes the backing image. It shares memory with the sink; encode
// or copy it before the next Clear.
func (s *ImageSink) Image() *image.RGBA { return s.img }
