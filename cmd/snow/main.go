// Command snow opens a window and renders the snow scene continuously
// until the window is closed.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	snow "github.com/snowplay/snow"
	"github.com/snowplay/snow/overlay"
	"github.com/snowplay/snow/platform"
	_ "github.com/snowplay/snow/wgpu" // enable hardware rendering
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		width       = flag.Int("width", 800, "window width")
		height      = flag.Int("height", 600, "window height")
		title       = flag.String("title", "Snow Player", "window title")
		transparent = flag.Bool("transparent", true, "request a transparent window framebuffer")
		withOverlay = flag.Bool("overlay", false, "serve the HTML overlay")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	snow.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if *withOverlay {
		srv, err := overlay.Serve()
		if err != nil {
			log.Fatalf("Failed to start overlay: %v", err)
		}
		defer srv.Close()
		ow, oh := srv.Bounds()
		snow.Logger().Info("overlay available", "url", srv.URL(), "width", ow, "height", oh)
	}

	if err := platform.Init(); err != nil {
		log.Fatalf("Failed to initialize platform: %v", err)
	}
	defer platform.Terminate()

	win, err := platform.NewWindow(platform.Config{
		Title:       *title,
		Width:       *width,
		Height:      *height,
		Resizable:   true,
		Transparent: *transparent,
	})
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Destroy()

	ctrl := snow.NewController()
	if err := platform.Run(ctrl, win); err != nil {
		log.Fatalf("Render loop failed: %v", err)
	}
}
