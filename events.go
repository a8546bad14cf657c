// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package snow

import "github.com/snowplay/snow/gpu"

// Event is a platform lifecycle signal delivered to the Controller. The
// windowing collaborator pushes events one at a time in arrival order; no
// buffering or coalescing is performed.
type Event interface{}

// Resume signals that a window is available. The first Resume drives the
// Uninitialized to Active transition; a Resume after Suspend rebuilds the
// GPU session from scratch.
type Resume struct {
	Window gpu.WindowHandle
}

// Suspend signals that the platform is backgrounding the window. No GPU
// resources are released here; platforms that invalidate the surface on
// suspend get fresh resources on the next Resume.
type Suspend struct{}

// Resize carries the window's new framebuffer size in pixels. A size with
// either dimension zero is ignored.
type Resize struct {
	Width  uint32
	Height uint32
}

// RedrawRequested asks for one frame to be rendered.
type RedrawRequested struct{}

// CloseRequested asks the controller to terminate the event loop.
type CloseRequested struct{}

// Idle signals that the event queue drained. While Active it triggers an
// unconditional redraw (continuous rendering).
type Idle struct{}

// DeviceInput is a raw device-level input event. Accepted and ignored.
type DeviceInput struct {
	Device  int
	Payload any
}

// MemoryWarning is a platform memory-pressure notice. Accepted and ignored.
type MemoryWarning struct{}
