// web.go is the browser frontend for the zoomable Mandelbrot renderer.
// It serves an embedded page and streams freshly rendered PNG frames to
// each browser over a websocket, applying the clicks sent back.

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	mandel "github.com/fractalview/mandelzoom"
)

var (
	addr    = flag.String("addr", ":8080", "http listen address")
	width   = flag.Int("width", mandel.DefaultWidth, "frame width in pixels")
	height  = flag.Int("height", mandel.DefaultHeight, "frame height in pixels")
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

	srv := webServer(*addr, frameConfig{
		viewport: r.Viewport(int32(*width), int32(*height)),
		workers:  *workers,
	})
	log.Printf("listening on http://localhost%s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}
