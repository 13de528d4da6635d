package mandel

import (
	"fmt"
	"time"
)

// Raster and interaction defaults shared by the frontends.
const (
	DefaultWidth  = 800
	DefaultHeight = 800

	// DefaultZoomIn is the per-click viewport shrink factor.
	DefaultZoomIn = 0.8
	// DefaultZoomOut is the inverse step used to back out again.
	DefaultZoomOut = 1.25
)

// DefaultViewport frames the whole set on an 800x800 raster.
func DefaultViewport() Viewport {
	return FullSet.Viewport(DefaultWidth, DefaultHeight)
}

type config struct {
	viewport Viewport
	workers  int
	eval     Evaluator
}

// Option configures an Engine.
type Option func(*config)

// WithViewport sets the starting viewport, which is also what Reset
// restores.
func WithViewport(vp Viewport) Option {
	return func(c *config) { c.viewport = vp }
}

// WithSize keeps the viewport bounds but changes the raster resolution.
func WithSize(width, height int32) Option {
	return func(c *config) {
		c.viewport.Width = width
		c.viewport.Height = height
	}
}

// WithWorkers sets the per-pass fan-out. Non-positive values mean
// DefaultWorkers.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithEvaluator swaps the escape-time evaluator for fn. fn must be safe
// for concurrent use by all workers.
func WithEvaluator(fn Evaluator) Option {
	return func(c *config) { c.eval = fn }
}

// Engine renders complete point fields of the Mandelbrot set and owns the
// only mutable state in the package, the viewport. Every pass recomputes
// the whole field from the current viewport; nothing carries over.
//
// An Engine is not safe for concurrent use. Zoom and Reset must be
// sequenced strictly between Render calls, never interleaved with one.
type Engine struct {
	transform *ViewTransform
	pool      *WorkerPool
}

// New creates an engine. With no options it renders the whole set at
// 800x800 with the default fan-out.
func New(opts ...Option) (*Engine, error) {
	cfg := config{
		viewport: DefaultViewport(),
		workers:  DefaultWorkers,
		eval:     Evaluate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	transform, err := NewViewTransform(cfg.viewport)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return &Engine{
		transform: transform,
		pool:      NewWorkerPoolFunc(cfg.workers, cfg.eval),
	}, nil
}

// Render runs one full pass over the current viewport and returns the
// drawable pixel-space points. On worker failure it returns nil and the
// error; the viewport is untouched, so the previous frame stays valid and
// a later Render can succeed again.
func (e *Engine) Render() ([]PhysicalPoint, error) {
	start := time.Now()
	grid := GenerateGrid(e.transform.Viewport())
	survivors, err := e.pool.Evaluate(grid)
	if err != nil {
		return nil, fmt.Errorf("render pass: %w", err)
	}
	drawable, err := e.transform.ToPhysical(survivors)
	if err != nil {
		return nil, fmt.Errorf("render pass: %w", err)
	}
	logger().Debug("render pass done",
		"grid", len(grid),
		"drawable", len(drawable),
		"workers", e.pool.Workers(),
		"elapsed", time.Since(start))
	return drawable, nil
}

// Zoom recenters the viewport on the clicked pixel and scales it by ratio.
// The next Render picks up the new bounds. A rejected zoom leaves the
// engine exactly as it was.
func (e *Engine) Zoom(px, py int32, ratio float64) error {
	return e.transform.Zoom(px, py, ratio)
}

// Reset restores the engine's starting viewport.
func (e *Engine) Reset() { e.transform.Reset() }

// Viewport returns a copy of the current viewport.
func (e *Engine) Viewport() Viewport { return e.transform.Viewport() }

// Workers returns the render fan-out, for frontend HUDs.
func (e *Engine) Workers() int { return e.pool.Workers() }
