// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package snow

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/snowplay/snow/gpu"
)

//go:embed shaders/triangle.wgsl
var triangleWGSL string

// Draw arguments for the fixed triangle: three hardcoded clip-space
// vertices, one instance, no vertex buffers.
const (
	triangleVertexCount   = 3
	triangleInstanceCount = 1
)

// FrameRenderer owns the render pipeline and issues one render pass per
// frame. The pipeline is compiled once after device acquisition and shared
// read-only by every frame; the renderer itself holds no per-frame state.
type FrameRenderer struct {
	device   gpu.Device
	queue    gpu.Queue
	pipeline gpu.Pipeline
	clear    gpu.Color
}

// NewFrameRenderer compiles the shader and links the render pipeline
// against the given surface format, with replace blending and a full color
// write mask. Compilation and link failures wrap gpu.ErrShaderCompile and
// gpu.ErrPipelineLink respectively; both are fatal.
func NewFrameRenderer(device gpu.Device, queue gpu.Queue, format gputypes.TextureFormat, wgsl string, clear gpu.Color) (*FrameRenderer, error) {
	pipeline, err := device.CreatePipeline(&gpu.PipelineDescriptor{
		Label:         "triangle",
		WGSL:          wgsl,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
		Format:        format,
	})
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	return &FrameRenderer{
		device:   device,
		queue:    queue,
		pipeline: pipeline,
		clear:    clear,
	}, nil
}

// Render records and submits one render pass into the frame: clear to the
// configured background color, bind the pipeline, a single non-indexed draw
// of 3 vertices and 1 instance, end, submit, present. One encoder per
// frame, submitted synchronously before return.
func (r *FrameRenderer) Render(frame gpu.Frame) error {
	pass, err := frame.BeginPass(r.clear)
	if err != nil {
		frame.Discard()
		return fmt.Errorf("begin render pass: %w", err)
	}

	pass.SetPipeline(r.pipeline)
	pass.Draw(triangleVertexCount, triangleInstanceCount)

	buf, err := pass.End()
	if err != nil {
		frame.Discard()
		return fmt.Errorf("end render pass: %w", err)
	}
	if err := r.queue.Submit(buf); err != nil {
		frame.Discard()
		return fmt.Errorf("submit frame: %w", err)
	}
	if err := frame.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// Destroy releases the pipeline.
func (r *FrameRenderer) Destroy() {
	if r.pipeline != nil {
		r.device.DestroyPipeline(r.pipeline)
		r.pipeline = nil
	}
}
