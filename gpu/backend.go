// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package gpu

// WindowHandle is what the windowing collaborator hands to the core: enough
// to create a presentable surface and to ask the current pixel size.
// Backends may type-assert the handle for richer platform contracts (the
// wgpu backend asserts Presenter to deliver presented pixels).
type WindowHandle interface {
	// Size returns the window's current framebuffer size in pixels.
	Size() Size
}

// Presenter receives presented pixels. Window handles that implement it in
// addition to WindowHandle get each presented frame delivered as tightly
// packed RGBA; handles that do not are treated as headless and presentation
// becomes a no-op.
type Presenter interface {
	PresentPixels(size Size, rgba []byte) error
}

// Backend is a GPU implementation. It owns the instance, adapter, device,
// and queue, created once by Init and released by Close.
//
// Backends must be registered via Register and are selected by name or by
// priority via Default.
type Backend interface {
	// Name returns the backend identifier (e.g. "wgpu", "recording").
	Name() string

	// Init acquires the adapter, device, and queue. It blocks until the
	// driver responds; this happens once per active session. Init returns
	// ErrAdapterUnavailable or ErrDeviceRequestFailed (wrapped) on failure.
	Init() error

	// Close releases all backend resources. The backend must not be used
	// after Close.
	Close()

	// Device returns the logical device. Valid only after Init.
	Device() Device

	// Queue returns the command submission queue. Valid only after Init.
	Queue() Queue

	// CreateSurface binds a presentable surface to the given window for the
	// surface's whole lifetime.
	CreateSurface(w WindowHandle) (Surface, error)
}

// Device is a logical GPU device.
type Device interface {
	// CreatePipeline compiles and links a render pipeline. It returns an
	// error wrapping ErrShaderCompile or ErrPipelineLink on failure.
	CreatePipeline(desc *PipelineDescriptor) (Pipeline, error)

	// DestroyPipeline releases a pipeline created by CreatePipeline.
	DestroyPipeline(p Pipeline)
}

// Queue submits recorded command buffers. Submission is synchronous: when
// Submit returns, the commands have been handed to the driver and any
// in-flight work is allowed to complete.
type Queue interface {
	Submit(buffers ...CommandBuffer) error
}

// Pipeline is an immutable compiled render pipeline. It has no mutable
// state and is shared read-only across frames.
type Pipeline interface {
	Label() string
}

// Surface is a presentation target bound to exactly one window.
type Surface interface {
	// Capabilities reports the formats, present modes, and alpha modes the
	// surface/adapter pair supports, in backend preference order.
	Capabilities() Capabilities

	// Configure applies a configuration. The config size must be non-zero.
	// Returns an error wrapping ErrConfigurationRejected on refusal.
	Configure(cfg SurfaceConfig) error

	// Acquire returns the next presentable frame. On transient surface loss
	// it returns an error wrapping ErrSurfaceAcquire; callers may
	// reconfigure once and retry.
	Acquire() (Frame, error)

	// Destroy releases the surface. The surface must not be used afterwards.
	Destroy()
}

// Frame is an ephemeral handle to one presentable image. It is acquired,
// drawn into, and presented within a single render call and never held
// across calls.
type Frame interface {
	// BeginPass starts the frame's render pass, clearing the image to the
	// given color.
	BeginPass(clear Color) (RenderPass, error)

	// Present hands the frame to the compositor. The frame is invalid
	// afterwards.
	Present() error

	// Discard abandons the frame without presenting.
	Discard()
}

// RenderPass records draw commands targeting one frame's image view.
type RenderPass interface {
	// SetPipeline binds the pipeline for subsequent draws.
	SetPipeline(p Pipeline)

	// Draw issues a non-indexed draw without vertex buffers.
	Draw(vertexCount, instanceCount uint32)

	// End closes the pass and returns the recorded commands for submission.
	End() (CommandBuffer, error)
}

// CommandBuffer is an opaque recorded command sequence.
type CommandBuffer interface{}
