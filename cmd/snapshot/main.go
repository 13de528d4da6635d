// snapshot.go is the headless frontend for the zoomable Mandelbrot
// renderer. It renders one frame of the chosen landmark, optionally after a
// scripted zoom sequence toward a pixel, and saves it as a PNG file.

package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	mandel "github.com/fractalview/mandelzoom"
)

var (
	width   = flag.Int("width", mandel.DefaultWidth, "frame width in pixels")
	height  = flag.Int("height", mandel.DefaultHeight, "frame height in pixels")
	workers = flag.Int("workers", mandel.DefaultWorkers, "render workers per pass")
	region  = flag.String("region", "full", "landmark to render: "+strings.Join(mandel.RegionNames(), ", "))
	output  = flag.String("output", "mandel.png", "output PNG file")
	zoomX   = flag.Int("x", -1, "zoom target pixel x (default: center)")
	zoomY   = flag.Int("y", -1, "zoom target pixel y (default: center)")
	steps   = flag.Int("steps", 0, "zoom steps to apply before rendering")
	ratio   = flag.Float64("ratio", mandel.DefaultZoomIn, "viewport scale per zoom step")
	verbose = flag.Bool("v", false, "log render pass statistics")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	r, ok := mandel.Regions[*region]
	if !ok {
		return fmt.Errorf("unknown region %q, have: %s", *region, strings.Join(mandel.RegionNames(), ", "))
	}

	// Step 1: Engine over the chosen landmark
	engine, err := mandel.New(
		mandel.WithViewport(r.Viewport(int32(*width), int32(*height))),
		mandel.WithWorkers(*workers),
	)
	if err != nil {
		return fmt.Errorf("new engine: %w", err)
	}

	// Step 2: Scripted zoom toward the target pixel
	px, py := int32(*width/2), int32(*height/2)
	if *zoomX >= 0 {
		px = int32(*zoomX)
	}
	if *zoomY >= 0 {
		py = int32(*zoomY)
	}
	for i := 0; i < *steps; i++ {
		if err := engine.Zoom(px, py, *ratio); err != nil {
			return fmt.Errorf("zoom step %d at (%d,%d): %w", i+1, px, py, err)
		}
	}
	vp := engine.Viewport()
	log.Printf("rendering x [%g, %g] y [%g, %g] at %dx%d...",
		vp.Xmin, vp.Xmax, vp.Ymin, vp.Ymax, vp.Width, vp.Height)

	// Step 3: One full render pass
	start := time.Now()
	points, err := engine.Render()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("rendered %d points in %s", len(points), time.Since(start).Round(time.Millisecond))

	// Step 4: Plot the field and save it
	sink := mandel.NewImageSink(vp.Width, vp.Height)
	mandel.DrawPoints(sink, points)

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, sink.Image()); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	log.Printf("frame saved to %q", *output)
	return nil
}
