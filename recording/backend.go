// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/snowplay/snow/gpu"
)

// Backend is a command-recording gpu.Backend.
//
// The zero value is not usable; create backends with New. A Backend is not
// safe for concurrent use.
type Backend struct {
	commands    []Command
	caps        gpu.Capabilities
	initialized bool

	// Failure injection counters/values.
	failInit      error
	failPipeline  error
	failAcquire   int
	failConfigure int
}

// New creates a recording backend with default capabilities: BGRA8 and
// RGBA8 formats, fifo and mailbox present modes, opaque and premultiplied
// alpha modes, each in that preference order.
func New() *Backend {
	return &Backend{
		caps: gpu.Capabilities{
			Formats: []gputypes.TextureFormat{
				gputypes.TextureFormatBGRA8Unorm,
				gputypes.TextureFormatRGBA8Unorm,
			},
			PresentModes: []gpu.PresentMode{gpu.PresentModeFifo, gpu.PresentModeMailbox},
			AlphaModes:   []gpu.AlphaMode{gpu.AlphaModeOpaque, gpu.AlphaModePreMultiplied},
		},
	}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return gpu.BackendRecording }

// Init marks the backend initialized, or returns the injected error.
func (b *Backend) Init() error {
	if b.failInit != nil {
		b.record(Command{Op: OpInit, Failed: true})
		return b.failInit
	}
	b.initialized = true
	b.record(Command{Op: OpInit})
	return nil
}

// Close releases nothing but records the call.
func (b *Backend) Close() {
	b.initialized = false
	b.record(Command{Op: OpClose})
}

// Device returns the recording device.
func (b *Backend) Device() gpu.Device { return &device{backend: b} }

// Queue returns the recording queue.
func (b *Backend) Queue() gpu.Queue { return &queue{backend: b} }

// CreateSurface returns a recording surface bound to the window.
func (b *Backend) CreateSurface(w gpu.WindowHandle) (gpu.Surface, error) {
	if !b.initialized {
		return nil, gpu.ErrNotInitialized
	}
	b.record(Command{Op: OpCreateSurface})
	return &surface{backend: b, window: w}, nil
}

// SetCapabilities replaces the capability lists reported by surfaces.
func (b *Backend) SetCapabilities(caps gpu.Capabilities) { b.caps = caps }

// FailInit makes the next Init return err.
func (b *Backend) FailInit(err error) { b.failInit = err }

// FailCreatePipeline makes pipeline creation return err.
func (b *Backend) FailCreatePipeline(err error) { b.failPipeline = err }

// FailAcquire makes the next n Acquire calls fail with ErrSurfaceAcquire.
func (b *Backend) FailAcquire(n int) { b.failAcquire = n }

// FailConfigure makes the next n Configure calls fail with
// ErrConfigurationRejected.
func (b *Backend) FailConfigure(n int) { b.failConfigure = n }

// Commands returns the recorded command log in execution order.
func (b *Backend) Commands() []Command { return b.commands }

// Ops returns just the operation names, convenient for order assertions.
func (b *Backend) Ops() []Op {
	ops := make([]Op, len(b.commands))
	for i, c := range b.commands {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many commands with the given op were recorded.
func (b *Backend) Count(op Op) int {
	n := 0
	for _, c := range b.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset clears the command log but keeps backend state.
func (b *Backend) Reset() { b.commands = nil }

func (b *Backend) record(c Command) { b.commands = append(b.commands, c) }

// device implements gpu.Device.
type device struct {
	backend *Backend
}

func (d *device) CreatePipeline(desc *gpu.PipelineDescriptor) (gpu.Pipeline, error) {
	if err := d.backend.failPipeline; err != nil {
		d.backend.record(Command{Op: OpCreatePipeline, Pipeline: desc.Label, Failed: true})
		return nil, err
	}
	if desc.WGSL == "" {
		return nil, fmt.Errorf("%w: empty shader source", gpu.ErrShaderCompile)
	}
	d.backend.record(Command{Op: OpCreatePipeline, Pipeline: desc.Label})
	return &pipeline{label: desc.Label}, nil
}

func (d *device) DestroyPipeline(p gpu.Pipeline) {
	label := ""
	if p != nil {
		label = p.Label()
	}
	d.backend.record(Command{Op: OpDestroyPipeline, Pipeline: label})
}

// queue implements gpu.Queue.
type queue struct {
	backend *Backend
}

func (q *queue) Submit(buffers ...gpu.CommandBuffer) error {
	q.backend.record(Command{Op: OpSubmit})
	return nil
}

// pipeline implements gpu.Pipeline.
type pipeline struct {
	label string
}

func (p *pipeline) Label() string { return p.label }

// surface implements gpu.Surface.
type surface struct {
	backend    *Backend
	window     gpu.WindowHandle
	config     gpu.SurfaceConfig
	configured bool
}

func (s *surface) Capabilities() gpu.Capabilities { return s.backend.caps }

func (s *surface) Configure(cfg gpu.SurfaceConfig) error {
	if cfg.Size().IsZero() {
		return fmt.Errorf("%w: zero size %s", gpu.ErrConfigurationRejected, cfg.Size())
	}
	if s.backend.failConfigure > 0 {
		s.backend.failConfigure--
		s.backend.record(Command{Op: OpConfigure, Config: cfg, Failed: true})
		return fmt.Errorf("%w: injected failure", gpu.ErrConfigurationRejected)
	}
	s.config = cfg
	s.configured = true
	s.backend.record(Command{Op: OpConfigure, Config: cfg})
	return nil
}

func (s *surface) Acquire() (gpu.Frame, error) {
	if !s.configured {
		return nil, fmt.Errorf("%w: surface not configured", gpu.ErrSurfaceAcquire)
	}
	if s.backend.failAcquire > 0 {
		s.backend.failAcquire--
		s.backend.record(Command{Op: OpAcquire, Failed: true})
		return nil, fmt.Errorf("%w: injected loss", gpu.ErrSurfaceAcquire)
	}
	s.backend.record(Command{Op: OpAcquire})
	return &frame{backend: s.backend}, nil
}

func (s *surface) Destroy() {
	s.configured = false
	s.backend.record(Command{Op: OpDestroySurface})
}

// Config returns the last applied configuration, for test assertions.
func (s *surface) Config() gpu.SurfaceConfig { return s.config }

// frame implements gpu.Frame.
type frame struct {
	backend *Backend
	done    bool
}

func (f *frame) BeginPass(clear gpu.Color) (gpu.RenderPass, error) {
	f.backend.record(Command{Op: OpBeginPass, Clear: clear})
	return &renderPass{backend: f.backend}, nil
}

func (f *frame) Present() error {
	if f.done {
		return fmt.Errorf("%w: frame already presented", gpu.ErrSurfaceAcquire)
	}
	f.done = true
	f.backend.record(Command{Op: OpPresent})
	return nil
}

func (f *frame) Discard() {
	f.done = true
	f.backend.record(Command{Op: OpDiscard})
}

// renderPass implements gpu.RenderPass.
type renderPass struct {
	backend *Backend
	ended   bool
}

func (rp *renderPass) SetPipeline(p gpu.Pipeline) {
	label := ""
	if p != nil {
		label = p.Label()
	}
	rp.backend.record(Command{Op: OpSetPipeline, Pipeline: label})
}

func (rp *renderPass) Draw(vertexCount, instanceCount uint32) {
	rp.backend.record(Command{Op: OpDraw, VertexCount: vertexCount, InstanceCount: instanceCount})
}

func (rp *renderPass) End() (gpu.CommandBuffer, error) {
	if rp.ended {
		return nil, fmt.Errorf("recording: render pass already ended")
	}
	rp.ended = true
	rp.backend.record(Command{Op: OpEndPass})
	return commandBuffer{}, nil
}

// commandBuffer is the opaque recorded command sequence.
type commandBuffer struct{}

func init() {
	gpu.Register(gpu.BackendRecording, func() gpu.Backend { return New() })
}

// Interface conformance checks.
var (
	_ gpu.Backend    = (*Backend)(nil)
	_ gpu.Device     = (*device)(nil)
	_ gpu.Queue      = (*queue)(nil)
	_ gpu.Surface    = (*surface)(nil)
	_ gpu.Frame      = (*frame)(nil)
	_ gpu.RenderPass = (*renderPass)(nil)
)
