// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/snowplay/snow/gpu"
)

// submitTimeout bounds the fence wait after a synchronous submission.
const submitTimeout = 5 * time.Second

// device implements gpu.Device over hal.Device.
type device struct {
	backend *Backend
}

// CreatePipeline validates the WGSL with naga, compiles the shader module,
// and links a render pipeline with replace blending (nil blend state) and a
// full color write mask against the requested target format.
func (d *device) CreatePipeline(desc *gpu.PipelineDescriptor) (gpu.Pipeline, error) {
	dev := d.backend.device
	if dev == nil {
		return nil, gpu.ErrNotInitialized
	}

	// naga performs full WGSL validation; a HAL backend may accept source
	// it later miscompiles, so the translation error surface lives here.
	if _, err := naga.Compile(desc.WGSL); err != nil {
		return nil, fmt.Errorf("%w: %w", gpu.ErrShaderCompile, err)
	}

	shader, err := dev.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  desc.Label + "_shader",
		Source: hal.ShaderSource{WGSL: desc.WGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gpu.ErrShaderCompile, err)
	}

	layout, err := dev.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: desc.Label + "_layout",
	})
	if err != nil {
		dev.DestroyShaderModule(shader)
		return nil, fmt.Errorf("%w: create layout: %w", gpu.ErrPipelineLink, err)
	}

	rp, err := dev.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: desc.VertexEntry,
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: desc.FragmentEntry,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    desc.Format,
					Blend:     nil, // nil blend state is source-replace
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		dev.DestroyPipelineLayout(layout)
		dev.DestroyShaderModule(shader)
		return nil, fmt.Errorf("%w: %w", gpu.ErrPipelineLink, err)
	}

	return &pipeline{
		label:    desc.Label,
		shader:   shader,
		layout:   layout,
		pipeline: rp,
	}, nil
}

// DestroyPipeline releases the pipeline and its shader resources in reverse
// creation order.
func (d *device) DestroyPipeline(p gpu.Pipeline) {
	wp, ok := p.(*pipeline)
	if !ok || d.backend.device == nil {
		return
	}
	dev := d.backend.device
	if wp.pipeline != nil {
		dev.DestroyRenderPipeline(wp.pipeline)
		wp.pipeline = nil
	}
	if wp.layout != nil {
		dev.DestroyPipelineLayout(wp.layout)
		wp.layout = nil
	}
	if wp.shader != nil {
		dev.DestroyShaderModule(wp.shader)
		wp.shader = nil
	}
}

// pipeline implements gpu.Pipeline.
type pipeline struct {
	label    string
	shader   hal.ShaderModule
	layout   hal.PipelineLayout
	pipeline hal.RenderPipeline
}

func (p *pipeline) Label() string { return p.label }

// queue implements gpu.Queue with synchronous submission: each Submit
// waits on a fence before returning, so in-flight GPU work is complete by
// the time the caller continues.
type queue struct {
	backend *Backend
}

func (q *queue) Submit(buffers ...gpu.CommandBuffer) error {
	dev := q.backend.device
	if dev == nil {
		return gpu.ErrNotInitialized
	}

	halBufs := make([]hal.CommandBuffer, 0, len(buffers))
	for _, b := range buffers {
		cb, ok := b.(*commandBuffer)
		if !ok {
			return fmt.Errorf("wgpu: foreign command buffer %T", b)
		}
		halBufs = append(halBufs, cb.buf)
	}

	fence, err := dev.CreateFence()
	if err != nil {
		return fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer dev.DestroyFence(fence)

	if err := q.backend.queue.Submit(halBufs, fence, 1); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	ok, err := dev.Wait(fence, 1, submitTimeout)
	if err != nil || !ok {
		return fmt.Errorf("wgpu: wait for submission: ok=%v err=%w", ok, err)
	}

	for _, hb := range halBufs {
		dev.FreeCommandBuffer(hb)
	}
	return nil
}

// commandBuffer wraps a finished HAL command buffer.
type commandBuffer struct {
	buf hal.CommandBuffer
}

var (
	_ gpu.Device   = (*device)(nil)
	_ gpu.Queue    = (*queue)(nil)
	_ gpu.Pipeline = (*pipeline)(nil)
)
