package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandel "github.com/fractalview/mandelzoom"
)

// pixelSink plots points straight into an RGBA byte buffer sized to the
// window. Draws outside the raster are dropped.
type pixelSink struct {
	pix    []byte
	width  int32
	height int32
	active [4]byte
}

var _ mandel.RenderSink = (*pixelSink)(nil)

func newPixelSink(width, height int32) *pixelSink {
	s := &pixelSink{
		pix:   make([]byte, int(width)*int(height)*4),
		width: width, height: height,
	}
	s.clear()
	return s
}

// clear repaints the opaque black backdrop.
func (s *pixelSink) clear() {
	for i := 0; i < len(s.pix); i += 4 {
		s.pix[i], s.pix[i+1], s.pix[i+2], s.pix[i+3] = 0, 0, 0, 0xff
	}
}

func (s *pixelSink) SetColor(r, g, b, a uint8) {
	s.active = [4]byte{r, g, b, a}
}

func (s *pixelSink) DrawPoint(x, y int32) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	off := (int(y)*int(s.width) + int(x)) * 4
	copy(s.pix[off:off+4], s.active[:])
}

// game drives one engine from the ebiten loop. A pass only runs when an
// interaction changed the viewport; otherwise Draw re-blits the last frame.
type game struct {
	engine *mandel.Engine
	sink   *pixelSink
	frame  *ebiten.Image

	width, height int
	needsRender   bool
	lastErr       error
}

func newGame(engine *mandel.Engine) *game {
	vp := engine.Viewport()
	return &game{
		engine:      engine,
		sink:        newPixelSink(vp.Width, vp.Height),
		frame:       ebiten.NewImage(int(vp.Width), int(vp.Height)),
		width:       int(vp.Width),
		height:      int(vp.Height),
		needsRender: true,
	}
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.zoomAtCursor(mandel.DefaultZoomIn)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.zoomAtCursor(mandel.DefaultZoomOut)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.needsRender = true
	}
	if g.needsRender {
		g.needsRender = false
		g.renderFrame()
	}
	return nil
}

func (g *game) zoomAtCursor(ratio float64) {
	x, y := ebiten.CursorPosition()
	if err := g.engine.Zoom(int32(x), int32(y), ratio); err != nil {
		log.Printf("err: zoom at (%d,%d): %v", x, y, err)
		return
	}
	g.needsRender = true
}

// renderFrame runs one full pass and blits it. On worker failure the old
// frame stays up and the error lands in the HUD.
func (g *game) renderFrame() {
	points, err := g.engine.Render()
	if err != nil {
		g.lastErr = err
		log.Printf("err: render: %v", err)
		return
	}
	g.lastErr = nil
	g.sink.clear()
	mandel.DrawPoints(g.sink, points)
	g.frame.WritePixels(g.sink.pix)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)

	vp := g.engine.Viewport()
	hud := fmt.Sprintf("x [%.6g, %.6g]  y [%.6g, %.6g]\nworkers: %d | left: zoom in | right: zoom out | r: reset",
		vp.Xmin, vp.Xmax, vp.Ymin, vp.Ymax, g.engine.Workers())
	if g.lastErr != nil {
		hud += fmt.Sprintf("\nrender failed, showing previous frame: %v", g.lastErr)
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
