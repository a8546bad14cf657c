// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

// Package overlay serves the in-window HTML overlay over a loopback HTTP
// listener, for embedding a webview (or a browser during development) on
// top of the rendered scene.
package overlay

import (
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	snow "github.com/snowplay/snow"
)

//go:embed overlay.html
var overlayHTML []byte

// Default overlay bounds, in logical pixels, anchored to the top-left
// corner of the window.
const (
	DefaultWidth  = 200
	DefaultHeight = 200
)

// Server serves the overlay page on a loopback address.
type Server struct {
	ln  net.Listener
	srv *http.Server
}

// Serve starts the overlay server on an ephemeral loopback port.
func Serve() (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("overlay: listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(overlayHTML)
	})

	s := &Server{
		ln: ln,
		srv: &http.Server{
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
	}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			snow.Logger().Error("overlay server", "err", err)
		}
	}()
	return s, nil
}

// URL returns the address the overlay page is served at.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s/", s.ln.Addr())
}

// Bounds returns the size the overlay view should occupy, anchored to
// the window's top-left corner.
func (s *Server) Bounds() (width, height int) {
	return DefaultWidth, DefaultHeight
}

// Close stops the server.
func (s *Server) Close() error {
	return s.srv.Close()
}
