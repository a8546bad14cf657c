// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/draw"

	"github.com/snowplay/snow/gpu"
)

// Config holds window creation parameters.
type Config struct {
	Title  string
	Width  int
	Height int

	// Resizable controls whether the user can resize the window.
	Resizable bool

	// Transparent requests an alpha-capable framebuffer so the window
	// composites over whatever is behind it.
	Transparent bool
}

// Window is a GLFW window that presents rendered pixels through an
// OpenGL texture blit. It implements gpu.WindowHandle and gpu.Presenter.
type Window struct {
	win  *glfw.Window
	pump *Pump

	// Blit resources. The texture is reallocated when the presented
	// image size changes.
	tex       uint32
	fbo       uint32
	texW      int
	texH      int
	scaleBuf  *image.RGBA
	destroyed bool
}

// Init initializes GLFW. Must be called once before NewWindow, from the
// main goroutine.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("platform: glfw init: %w", err)
	}
	return nil
}

// Terminate shuts GLFW down. Call after all windows are destroyed.
func Terminate() {
	glfw.Terminate()
}

type windowHint struct {
	target glfw.Hint
	value  int
}

// windowHints maps cfg onto the GLFW hints applied before window
// creation. The context hints are fixed: 4.1 core is the newest profile
// available on every platform the blit path supports.
func windowHints(cfg Config) []windowHint {
	return []windowHint{
		{glfw.ContextVersionMajor, 4},
		{glfw.ContextVersionMinor, 1},
		{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
		{glfw.OpenGLForwardCompatible, glfw.True},
		{glfw.Resizable, boolHint(cfg.Resizable)},
		{glfw.TransparentFramebuffer, boolHint(cfg.Transparent)},
	}
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// NewWindow creates a visible window and makes its GL context current.
func NewWindow(cfg Config) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("platform: invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	for _, h := range windowHints(cfg) {
		glfw.WindowHint(h.target, h.value)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("platform: create window: %w", err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("platform: gl init: %w", err)
	}
	glfw.SwapInterval(1)

	w := &Window{win: win}
	gl.GenTextures(1, &w.tex)
	gl.GenFramebuffers(1, &w.fbo)

	w.pump = newPump(w)
	return w, nil
}

// Size reports the framebuffer size in pixels.
func (w *Window) Size() gpu.Size {
	fw, fh := w.win.GetFramebufferSize()
	return gpu.Size{Width: uint32(fw), Height: uint32(fh)}
}

// Events returns the window's event pump.
func (w *Window) Events() *Pump { return w.pump }

// PresentPixels uploads a tightly packed RGBA image and blits it to the
// window, flipping vertically since the rows arrive top to bottom.
func (w *Window) PresentPixels(size gpu.Size, rgba []byte) error {
	if w.destroyed {
		return fmt.Errorf("platform: present on destroyed window")
	}
	want := int(size.Width) * int(size.Height) * 4
	if len(rgba) < want {
		return fmt.Errorf("platform: short pixel buffer: got %d, want %d", len(rgba), want)
	}

	fbW, fbH := w.win.GetFramebufferSize()
	if fbW == 0 || fbH == 0 {
		return nil
	}

	px := rgba
	pxW, pxH := int(size.Width), int(size.Height)
	if pxW != fbW || pxH != fbH {
		px = w.scale(size, rgba, fbW, fbH)
		pxW, pxH = fbW, fbH
	}

	w.win.MakeContextCurrent()

	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	if pxW != w.texW || pxH != w.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(pxW), int32(pxH), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(px))
		w.texW, w.texH = pxW, pxH
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(pxW), int32(pxH),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(px))
	}

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.tex, 0)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, int32(pxH), int32(pxW), 0, 0, 0, int32(fbW), int32(fbH),
		gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	w.win.SwapBuffers()
	return nil
}

// scale resamples the presented image to the framebuffer size. Nearest
// neighbor keeps the blit cheap; the mismatch only lasts until the next
// resize reaches the renderer.
func (w *Window) scale(size gpu.Size, rgba []byte, dstW, dstH int) []byte {
	src := &image.RGBA{
		Pix:    rgba,
		Stride: int(size.Width) * 4,
		Rect:   image.Rect(0, 0, int(size.Width), int(size.Height)),
	}
	if w.scaleBuf == nil || w.scaleBuf.Rect.Dx() != dstW || w.scaleBuf.Rect.Dy() != dstH {
		w.scaleBuf = image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	}
	draw.NearestNeighbor.Scale(w.scaleBuf, w.scaleBuf.Rect, src, src.Rect, draw.Src, nil)
	return w.scaleBuf.Pix
}

// ShouldClose reports whether the user requested the window to close.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// Destroy releases the window and its GL resources.
func (w *Window) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.win.MakeContextCurrent()
	if w.fbo != 0 {
		gl.DeleteFramebuffers(1, &w.fbo)
	}
	if w.tex != 0 {
		gl.DeleteTextures(1, &w.tex)
	}
	w.win.Destroy()
}

var (
	_ gpu.WindowHandle = (*Window)(nil)
	_ gpu.Presenter    = (*Window)(nil)
)
