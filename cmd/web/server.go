package main

import (
	_ "embed"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	mandel "github.com/fractalview/mandelzoom"
)

//go:embed static/index.html
var indexHTML []byte

// frameConfig is what every new browser session starts from.
type frameConfig struct {
	viewport mandel.Viewport
	workers  int
}

// webServer serves the embedded page and the websocket endpoint the page
// connects back to.
func webServer(addr string, cfg frameConfig) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(indexHTML); err != nil {
			log.Println(err)
		}
	})

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler upgrades the connection and hands it to a session. Each
// session owns its own engine, so zoom state stays private to the tab.
func websocketHandler(cfg frameConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		s, err := newSession(c, cfg)
		if err != nil {
			log.Printf("err: session for %s: %v", r.RemoteAddr, err)
			c.Close(websocket.StatusInternalError, "engine setup failed")
			return
		}

		log.Printf("got connection from: %s", r.RemoteAddr)
		if err := s.serve(r.Context()); err != nil {
			log.Printf("session %s closed: %v", r.RemoteAddr, err)
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}
