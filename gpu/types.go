// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Size is a surface extent in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero. A zero-sized surface
// must never be configured; callers skip reconfiguration in that case.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Color is a normalized RGBA color used for render pass clears.
type Color struct {
	R, G, B, A float64
}

// PresentMode controls how frames are synchronized with the display.
type PresentMode uint32

// Present modes, in order of typical backend preference.
const (
	// PresentModeFifo queues frames and waits for vblank. Always supported.
	PresentModeFifo PresentMode = iota + 1

	// PresentModeMailbox replaces the queued frame with the newest one.
	PresentModeMailbox

	// PresentModeImmediate presents without waiting for vblank.
	PresentModeImmediate
)

// String returns the present mode name.
func (m PresentMode) String() string {
	switch m {
	case PresentModeFifo:
		return "fifo"
	case PresentModeMailbox:
		return "mailbox"
	case PresentModeImmediate:
		return "immediate"
	default:
		return fmt.Sprintf("present-mode(%d)", uint32(m))
	}
}

// AlphaMode controls how the compositor treats the surface alpha channel.
type AlphaMode uint32

// Alpha compositing modes.
const (
	// AlphaModeOpaque ignores the alpha channel entirely.
	AlphaModeOpaque AlphaMode = iota + 1

	// AlphaModePreMultiplied expects color channels premultiplied by alpha.
	AlphaModePreMultiplied

	// AlphaModePostMultiplied expects straight (non-premultiplied) color.
	AlphaModePostMultiplied
)

// String returns the alpha mode name.
func (m AlphaMode) String() string {
	switch m {
	case AlphaModeOpaque:
		return "opaque"
	case AlphaModePreMultiplied:
		return "premultiplied"
	case AlphaModePostMultiplied:
		return "postmultiplied"
	default:
		return fmt.Sprintf("alpha-mode(%d)", uint32(m))
	}
}

// Capabilities lists what a surface/adapter pair supports. Slices are
// ordered by backend preference; index 0 is the backend's first choice.
type Capabilities struct {
	Formats      []gputypes.TextureFormat
	PresentModes []PresentMode
	AlphaModes   []AlphaMode
}

// SurfaceConfig describes how a surface presents its frames. Width and
// Height must both be non-zero before the configuration is applied.
type SurfaceConfig struct {
	Format      gputypes.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode PresentMode
	AlphaMode   AlphaMode

	// FrameLatency is the desired maximum number of frames in flight.
	FrameLatency uint32
}

// Size returns the configured extent.
func (c SurfaceConfig) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}

// PipelineDescriptor describes a render pipeline: one WGSL module with a
// vertex and a fragment entry point, replace blending, and a full color
// write mask, targeting a single color attachment format.
type PipelineDescriptor struct {
	// Label is an optional debug label.
	Label string

	// WGSL is the shader source containing both entry points.
	WGSL string

	// VertexEntry is the vertex stage entry point name.
	VertexEntry string

	// FragmentEntry is the fragment stage entry point name.
	FragmentEntry string

	// Format is the color target format, normally the surface format.
	Format gputypes.TextureFormat
}
