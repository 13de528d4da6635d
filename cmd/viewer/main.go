// viewer.go is the desktop frontend for the zoomable Mandelbrot renderer.
// It opens a window, renders the current viewport and re-renders on every
// click: left zooms in, right zooms out, r resets.

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	mandel "github.com/fractalview/mandelzoom"
)

var (
	width   = flag.Int("width", mandel.DefaultWidth, "window width in pixels")
	height  = flag.Int("height", mandel.DefaultHeight, "window height in pixels")
	workers = flag.Int("workers", mandel.DefaultWorkers, "render workers per pass")
	region  = flag.String("region", "full", "starting landmark: "+strings.Join(mandel.RegionNames(), ", "))
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

	engine, err := mandel.New(
		mandel.WithViewport(r.Viewport(int32(*width), int32(*height))),
		mandel.WithWorkers(*workers),
	)
	if err != nil {
		return fmt.Errorf("new engine: %w", err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("mandelzoom")
	if err := ebiten.RunGame(newGame(engine)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
