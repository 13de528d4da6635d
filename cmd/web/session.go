package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/fractalview/mandelzoom"
)

// clickEvent is one interaction from the page. Zoom is "in" or "out";
// Reset wins over both.
type clickEvent struct {
	X     int32  `json:"x"`
	Y     int32  `json:"y"`
	Zoom  string `json:"zoom"`
	Reset bool   `json:"reset"`
}

// frameStatus rides along with every frame so the page can fill its HUD.
type frameStatus struct {
	Xmin      float64 `json:"xmin"`
	Xmax      float64 `json:"xmax"`
	Ymin      float64 `json:"ymin"`
	Ymax      float64 `json:"ymax"`
	Workers   int     `json:"workers"`
	Points    int     `json:"points"`
	ElapsedMs int64   `json:"elapsedMs"`
	Error     string  `json:"error,omitempty"`
}

// session pairs one websocket connection with one engine.
type session struct {
	conn   *websocket.Conn
	engine *mandel.Engine
	sink   *mandel.ImageSink
}

func newSession(conn *websocket.Conn, cfg frameConfig) (*session, error) {
	engine, err := mandel.New(
		mandel.WithViewport(cfg.viewport),
		mandel.WithWorkers(cfg.workers),
	)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	return &session{
		conn:   conn,
		engine: engine,
		sink:   mandel.NewImageSink(cfg.viewport.Width, cfg.viewport.Height),
	}, nil
}

// serve pushes the first frame, then alternates reading one click and
// pushing the frame it leads to. The loop ends when the page goes away.
func (s *session) serve(ctx context.Context) error {
	if err := s.renderAndPush(ctx); err != nil {
		return err
	}
	for {
		var ev clickEvent
		if err := wsjson.Read(ctx, s.conn, &ev); err != nil {
			return fmt.Errorf("read click: %w", err)
		}
		s.apply(ev)
		if err := s.renderAndPush(ctx); err != nil {
			return err
		}
	}
}

// apply mutates the viewport per the event. A rejected zoom only logs;
// the follow-up push re-sends the current field so the page stays live.
func (s *session) apply(ev clickEvent) {
	switch {
	case ev.Reset:
		s.engine.Reset()
	case ev.Zoom == "out":
		if err := s.engine.Zoom(ev.X, ev.Y, mandel.DefaultZoomOut); err != nil {
			log.Printf("err: zoom out at (%d,%d): %v", ev.X, ev.Y, err)
		}
	default:
		if err := s.engine.Zoom(ev.X, ev.Y, mandel.DefaultZoomIn); err != nil {
			log.Printf("err: zoom in at (%d,%d): %v", ev.X, ev.Y, err)
		}
	}
}

// renderAndPush runs a pass and sends the PNG frame plus its status. On
// worker failure only a status goes out; the page keeps its last frame.
func (s *session) renderAndPush(ctx context.Context) error {
	start := time.Now()
	points, err := s.engine.Render()
	vp := s.engine.Viewport()
	status := frameStatus{
		Xmin: vp.Xmin, Xmax: vp.Xmax,
		Ymin: vp.Ymin, Ymax: vp.Ymax,
		Workers:   s.engine.Workers(),
		Points:    len(points),
		ElapsedMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		log.Printf("err: render: %v", err)
		status.Error = err.Error()
		return s.pushStatus(ctx, status)
	}

	s.sink.Clear()
	mandel.DrawPoints(s.sink, points)
	drawLabel(s.sink.Image(), fmt.Sprintf("x [%.6g, %.6g]  y [%.6g, %.6g]",
		vp.Xmin, vp.Xmax, vp.Ymin, vp.Ymax))

	var buf bytes.Buffer
	if err := png.Encode(&buf, s.sink.Image()); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := s.conn.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
		return fmt.Errorf("push frame: %w", err)
	}
	return s.pushStatus(ctx, status)
}

func (s *session) pushStatus(ctx context.Context, status frameStatus) error {
	if err := wsjson.Write(ctx, s.conn, status); err != nil {
		return fmt.Errorf("push status: %w", err)
	}
	return nil
}
