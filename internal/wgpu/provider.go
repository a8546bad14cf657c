// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// provider exposes the backend's device through the gpucontext ecosystem
// so external renderers can share it instead of creating their own.
//
// The gpucontext.Device/Queue/Adapter views are nil; consumers that need
// the raw device type-assert the HalDevice/HalQueue accessors instead.
type provider struct {
	backend *Backend
}

// Provider returns a device provider for sharing this backend's device
// with gpucontext-aware libraries. Returns nil before Init.
func (b *Backend) Provider() gpucontext.DeviceProvider {
	if !b.initialized {
		return nil
	}
	return &provider{backend: b}
}

func (p *provider) Device() gpucontext.Device { return nil }

func (p *provider) Queue() gpucontext.Queue { return nil }

func (p *provider) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat reports the format surfaces of this backend default to.
func (p *provider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// HalDevice returns the underlying hal.Device for direct HAL access.
func (p *provider) HalDevice() any { return p.backend.device }

// HalQueue returns the underlying hal.Queue for direct HAL access.
func (p *provider) HalQueue() any { return p.backend.queue }

var _ gpucontext.DeviceProvider = (*provider)(nil)
