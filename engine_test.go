package mandel

import (
	"errors"
	"math"
	"reflect"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Engine Construction Tests
// =============================================================================

func TestNewDefaults(t *testing.T) {
	eng, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if got := eng.Viewport(); got != DefaultViewport() {
		t.Errorf("Viewport() = %+v, want %+v", got, DefaultViewport())
	}
	if got := eng.Workers(); got != DefaultWorkers {
		t.Errorf("Workers() = %d, want %d", got, DefaultWorkers)
	}
}

func TestNewWithOptions(t *testing.T) {
	vp := SeahorseValley.Viewport(400, 300)
	eng, err := New(WithViewport(vp), WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}
	if got := eng.Viewport(); got != vp {
		t.Errorf("Viewport() = %+v, want %+v", got, vp)
	}
	if got := eng.Workers(); got != 4 {
		t.Errorf("Workers() = %d, want 4", got)
	}
}

func TestNewWithSize(t *testing.T) {
	eng, err := New(WithSize(100, 50))
	if err != nil {
		t.Fatal(err)
	}
	want := FullSet.Viewport(100, 50)
	if got := eng.Viewport(); got != want {
		t.Errorf("Viewport() = %+v, want %+v", got, want)
	}
}

func TestNewRejectsDegenerateViewport(t *testing.T) {
	_, err := New(WithViewport(Viewport{Xmin: 1, Xmax: -1, Ymin: -1, Ymax: 1, Width: 10, Height: 10}))
	if !errors.Is(err, ErrDegenerateViewport) {
		t.Fatalf("err = %v, want ErrDegenerateViewport", err)
	}
}

// =============================================================================
// Render Pass Tests
// =============================================================================

func TestEngineRenderMatchesPipeline(t *testing.T) {
	vp := FullSet.Viewport(64, 64)
	eng, err := New(WithViewport(vp))
	if err != nil {
		t.Fatal(err)
	}
	got, err := eng.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	grid := GenerateGrid(vp)
	consumed := (len(grid) / DefaultWorkers) * DefaultWorkers
	survivors := make([]VirtualPoint, 0, consumed)
	for _, p := range grid[:consumed] {
		if res, ok := Evaluate(p); ok {
			survivors = append(survivors, res)
		}
	}
	tr, err := NewViewTransform(vp)
	if err != nil {
		t.Fatal(err)
	}
	want, err := tr.ToPhysical(survivors)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) == 0 {
		t.Fatal("empty field from a full-set render")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render output diverges from the staged pipeline: %d vs %d points", len(got), len(want))
	}
}

func TestEngineRenderDeterministic(t *testing.T) {
	eng, err := New(WithViewport(TripleSpiral.Viewport(48, 48)))
	if err != nil {
		t.Fatal(err)
	}
	first, err := eng.Render()
	if err != nil {
		t.Fatal(err)
	}
	second, err := eng.Render()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two renders of the same viewport differ")
	}
}

func TestEngineWorkerFailure(t *testing.T) {
	var poisoned atomic.Bool
	poisoned.Store(true)
	eval := func(p VirtualPoint) (VirtualPoint, bool) {
		if poisoned.Load() {
			panic("injected fault")
		}
		return Evaluate(p)
	}
	eng, err := New(WithViewport(FullSet.Viewport(32, 32)), WithEvaluator(eval))
	if err != nil {
		t.Fatal(err)
	}
	vpBefore := eng.Viewport()

	points, err := eng.Render()
	if points != nil {
		t.Errorf("failed pass returned %d points, want none", len(points))
	}
	if !errors.Is(err, ErrWorkerFailure) {
		t.Fatalf("err = %v, want ErrWorkerFailure", err)
	}
	if eng.Viewport() != vpBefore {
		t.Error("failed pass mutated the viewport")
	}

	// The fault is transient; the engine must recover on the next pass.
	poisoned.Store(false)
	points, err = eng.Render()
	if err != nil {
		t.Fatalf("recovery render: %v", err)
	}
	if len(points) == 0 {
		t.Error("recovery render produced no points")
	}
}

// =============================================================================
// Zoom and Reset Tests
// =============================================================================

func TestEngineZoomChangesField(t *testing.T) {
	eng, err := New(WithViewport(FullSet.Viewport(64, 64)))
	if err != nil {
		t.Fatal(err)
	}
	before, err := eng.Render()
	if err != nil {
		t.Fatal(err)
	}
	vpBefore := eng.Viewport()
	if err := eng.Zoom(32, 32, 0.8); err != nil {
		t.Fatalf("Zoom: %v", err)
	}
	if eng.Viewport() == vpBefore {
		t.Fatal("Zoom left the viewport unchanged")
	}
	after, err := eng.Render()
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(before, after) {
		t.Error("zoomed render equals the previous field")
	}
}

func TestEngineZoomScenario(t *testing.T) {
	eng, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := eng.Zoom(400, 400, DefaultZoomIn); err != nil {
		t.Fatalf("Zoom: %v", err)
	}
	vp := eng.Viewport()
	if cx, cy := vp.Center(); cx != 0 || cy != 0 {
		t.Errorf("center = (%g, %g), want (0, 0)", cx, cy)
	}
	if span := vp.Xmax - vp.Xmin; math.Abs(span-3.2) > 1e-12 {
		t.Errorf("x span = %g, want 3.2", span)
	}
}

func TestEngineRejectedZoomKeepsViewport(t *testing.T) {
	eng, err := New()
	if err != nil {
		t.Fatal(err)
	}
	before := eng.Viewport()
	if err := eng.Zoom(400, 400, -1); !errors.Is(err, ErrDegenerateViewport) {
		t.Fatalf("err = %v, want ErrDegenerateViewport", err)
	}
	if eng.Viewport() != before {
		t.Error("rejected zoom mutated the viewport")
	}
}

func TestEngineReset(t *testing.T) {
	vp := ElephantValley.Viewport(320, 240)
	eng, err := New(WithViewport(vp))
	if err != nil {
		t.Fatal(err)
	}
	if err := eng.Zoom(160, 120, 0.8); err != nil {
		t.Fatal(err)
	}
	eng.Reset()
	if got := eng.Viewport(); got != vp {
		t.Errorf("viewport after Reset = %+v, want %+v", got, vp)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkEngineRender(b *testing.B) {
	b.ReportAllocs()
	eng, err := New(WithViewport(FullSet.Viewport(256, 256)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Render(); err != nil {
			b.Fatal(err)
		}
	}
}
