// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package overlay

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestServe(t *testing.T) {
	srv, err := Serve()
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}
	defer srv.Close()

	url := srv.URL()
	if !strings.HasPrefix(url, "http://127.0.0.1:") {
		t.Fatalf("URL() = %q, want loopback address", url)
	}

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "navigator.userAgent") {
		t.Errorf("overlay page missing script content: %q", body)
	}
}

func TestBounds(t *testing.T) {
	srv, err := Serve()
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}
	defer srv.Close()

	w, h := srv.Bounds()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Bounds() = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
	if w <= 0 || h <= 0 {
		t.Errorf("Bounds() = %dx%d, want positive size", w, h)
	}
}

func TestServeNotFound(t *testing.T) {
	srv, err := Serve()
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}
	defer srv.Close()

	resp, err := http.Get(srv.URL() + "missing")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
