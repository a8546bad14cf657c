// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	snow "github.com/snowplay/snow"
	"github.com/snowplay/snow/gpu"
)

// chainLength is the number of textures in the presentation chain. With
// synchronous submission two is enough: one being read back, one being
// drawn.
const chainLength = 2

// copyPitchAlignment is the BytesPerRow alignment WebGPU (and DX12)
// require for texture-to-buffer copies.
const copyPitchAlignment = 256

// chainTexture is one presentable image of the chain.
type chainTexture struct {
	tex  hal.Texture
	view hal.TextureView
}

// surface implements gpu.Surface as an offscreen texture chain. It is
// bound to exactly one window for its lifetime.
type surface struct {
	backend   *Backend
	window    gpu.WindowHandle
	presenter gpu.Presenter

	cfg        gpu.SurfaceConfig
	configured bool
	chain      [chainLength]chainTexture
	next       int
}

// Capabilities reports what the texture chain supports. BGRA8 leads the
// format list to match what compositors typically prefer; fifo is the only
// honest present mode for a readback chain.
func (s *surface) Capabilities() gpu.Capabilities {
	return gpu.Capabilities{
		Formats: []gputypes.TextureFormat{
			gputypes.TextureFormatBGRA8Unorm,
			gputypes.TextureFormatRGBA8Unorm,
		},
		PresentModes: []gpu.PresentMode{gpu.PresentModeFifo},
		AlphaModes:   []gpu.AlphaMode{gpu.AlphaModeOpaque, gpu.AlphaModePostMultiplied},
	}
}

// Configure (re)builds the texture chain for the given configuration.
// Reconfiguring with an unchanged size and format keeps the existing
// textures, which makes same-size reconfiguration observably a no-op.
func (s *surface) Configure(cfg gpu.SurfaceConfig) error {
	dev := s.backend.device
	if dev == nil {
		return gpu.ErrNotInitialized
	}
	if cfg.Size().IsZero() {
		return fmt.Errorf("%w: zero size %s", gpu.ErrConfigurationRejected, cfg.Size())
	}
	if !formatSupported(s.Capabilities().Formats, cfg.Format) {
		return fmt.Errorf("%w: unsupported format %v", gpu.ErrConfigurationRejected, cfg.Format)
	}

	if s.configured && s.cfg.Width == cfg.Width && s.cfg.Height == cfg.Height && s.cfg.Format == cfg.Format {
		s.cfg = cfg
		return nil
	}

	s.destroyChain()

	size := hal.Extent3D{Width: cfg.Width, Height: cfg.Height, DepthOrArrayLayers: 1}
	for i := range s.chain {
		tex, err := dev.CreateTexture(&hal.TextureDescriptor{
			Label:         fmt.Sprintf("surface_chain_%d", i),
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        cfg.Format,
			Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
		})
		if err != nil {
			s.destroyChain()
			return fmt.Errorf("%w: create chain texture: %w", gpu.ErrConfigurationRejected, err)
		}
		view, err := dev.CreateTextureView(tex, &hal.TextureViewDescriptor{
			Label: fmt.Sprintf("surface_chain_%d_view", i),
		})
		if err != nil {
			dev.DestroyTexture(tex)
			s.destroyChain()
			return fmt.Errorf("%w: create chain view: %w", gpu.ErrConfigurationRejected, err)
		}
		s.chain[i] = chainTexture{tex: tex, view: view}
	}

	s.cfg = cfg
	s.configured = true
	s.next = 0
	return nil
}

// Acquire returns the next presentable image of the chain.
func (s *surface) Acquire() (gpu.Frame, error) {
	if !s.configured {
		return nil, fmt.Errorf("%w: surface not configured", gpu.ErrSurfaceAcquire)
	}
	ct := s.chain[s.next]
	s.next = (s.next + 1) % chainLength
	return &frame{surface: s, tex: ct.tex, view: ct.view}, nil
}

// Destroy releases the texture chain.
func (s *surface) Destroy() {
	s.destroyChain()
	s.configured = false
}

func (s *surface) destroyChain() {
	dev := s.backend.device
	if dev == nil {
		return
	}
	for i := range s.chain {
		if s.chain[i].view != nil {
			dev.DestroyTextureView(s.chain[i].view)
		}
		if s.chain[i].tex != nil {
			dev.DestroyTexture(s.chain[i].tex)
		}
		s.chain[i] = chainTexture{}
	}
}

func formatSupported(formats []gputypes.TextureFormat, f gputypes.TextureFormat) bool {
	for _, have := range formats {
		if have == f {
			return true
		}
	}
	return false
}

// frame implements gpu.Frame for one chain texture.
type frame struct {
	surface *surface
	tex     hal.Texture
	view    hal.TextureView
	pass    *renderPass
	done    bool
}

// BeginPass opens the frame's render pass, clearing to the given color.
func (f *frame) BeginPass(clear gpu.Color) (gpu.RenderPass, error) {
	dev := f.surface.backend.device
	encoder, err := dev.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "frame_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("frame"); err != nil {
		return nil, fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "frame_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       f.view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: clear.R, G: clear.G, B: clear.B, A: clear.A},
		}},
	})
	f.pass = &renderPass{encoder: encoder, rp: rp}
	return f.pass, nil
}

// Present reads the frame's texture back and hands the pixels to the
// window's presenter. Without a presenter the frame is complete as soon as
// its submission finished, so Present is a no-op.
func (f *frame) Present() error {
	if f.done {
		return fmt.Errorf("%w: frame already presented", gpu.ErrSurfaceAcquire)
	}
	f.done = true

	if f.surface.presenter == nil {
		return nil
	}

	cfg := f.surface.cfg
	rgba, err := f.surface.readback(f.tex, cfg)
	if err != nil {
		return fmt.Errorf("wgpu: present readback: %w", err)
	}
	if err := f.surface.presenter.PresentPixels(cfg.Size(), rgba); err != nil {
		return fmt.Errorf("wgpu: presenter: %w", err)
	}
	return nil
}

// Discard abandons the frame, dropping any half-recorded encoding.
func (f *frame) Discard() {
	f.done = true
	if f.pass != nil && !f.pass.ended {
		f.pass.ended = true
		f.pass.rp.End()
		f.pass.encoder.DiscardEncoding()
	}
}

// readback copies a chain texture into a staging buffer, waits for the
// copy, and returns tightly packed RGBA pixels.
func (s *surface) readback(tex hal.Texture, cfg gpu.SurfaceConfig) ([]byte, error) {
	dev := s.backend.device
	w, h := cfg.Width, cfg.Height

	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ uint32(copyPitchAlignment-1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	staging, err := dev.CreateBuffer(&hal.BufferDescriptor{
		Label: "surface_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer dev.DestroyBuffer(staging)

	encoder, err := dev.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "surface_readback",
	})
	if err != nil {
		return nil, fmt.Errorf("create readback encoder: %w", err)
	}
	if err := encoder.BeginEncoding("readback"); err != nil {
		return nil, fmt.Errorf("begin readback encoding: %w", err)
	}

	// The render pass left the texture in render-attachment layout; the
	// copy needs transfer-source. Explicit barrier for Vulkan/DX12,
	// no-op elsewhere.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end readback encoding: %w", err)
	}
	defer dev.FreeCommandBuffer(cmdBuf)

	fence, err := dev.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create readback fence: %w", err)
	}
	defer dev.DestroyFence(fence)

	if err := s.backend.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit readback: %w", err)
	}
	ok, err := dev.Wait(fence, 1, submitTimeout)
	if err != nil || !ok {
		return nil, fmt.Errorf("wait for readback: ok=%v err=%w", ok, err)
	}

	raw := make([]byte, stagingSize)
	if err := s.backend.queue.ReadBuffer(staging, 0, raw); err != nil {
		return nil, fmt.Errorf("read staging buffer: %w", err)
	}

	// Strip row padding and swizzle BGRA to RGBA when needed.
	swizzle := cfg.Format == gputypes.TextureFormatBGRA8Unorm
	rgba := make([]byte, int(bytesPerRow)*int(h))
	for y := uint32(0); y < h; y++ {
		src := raw[y*alignedBytesPerRow : y*alignedBytesPerRow+bytesPerRow]
		dst := rgba[y*bytesPerRow : (y+1)*bytesPerRow]
		copy(dst, src)
		if swizzle {
			for x := 0; x < len(dst); x += 4 {
				dst[x], dst[x+2] = dst[x+2], dst[x]
			}
		}
	}
	return rgba, nil
}

// renderPass implements gpu.RenderPass over a HAL render pass encoder.
type renderPass struct {
	encoder hal.CommandEncoder
	rp      hal.RenderPassEncoder
	ended   bool
}

func (p *renderPass) SetPipeline(pl gpu.Pipeline) {
	wp, ok := pl.(*pipeline)
	if !ok {
		snow.Logger().Warn("foreign pipeline bound to wgpu render pass", "pipeline", pl)
		return
	}
	p.rp.SetPipeline(wp.pipeline)
}

func (p *renderPass) Draw(vertexCount, instanceCount uint32) {
	p.rp.Draw(vertexCount, instanceCount, 0, 0)
}

func (p *renderPass) End() (gpu.CommandBuffer, error) {
	if p.ended {
		return nil, fmt.Errorf("wgpu: render pass already ended")
	}
	p.ended = true
	p.rp.End()

	buf, err := p.encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("wgpu: end encoding: %w", err)
	}
	return &commandBuffer{buf: buf}, nil
}

var (
	_ gpu.Surface    = (*surface)(nil)
	_ gpu.Frame      = (*frame)(nil)
	_ gpu.RenderPass = (*renderPass)(nil)
)
