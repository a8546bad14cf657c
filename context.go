// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package snow

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/snowplay/snow/gpu"
)

// GraphicsContext owns the GPU entry points for one active session: the
// backend's instance, adapter, logical device, and command queue. It is
// created lazily on the first window availability, is exclusively owned by
// the Controller, and outlives all per-frame resources.
type GraphicsContext struct {
	backend gpu.Backend
}

// NewGraphicsContext initializes the backend, acquiring an adapter with a
// high-performance preference and requesting a device and queue with
// default features and limits. The call blocks until the driver responds;
// this happens once per active session.
//
// Failure to find an adapter or create a device is unrecoverable: the error
// wraps gpu.ErrAdapterUnavailable or gpu.ErrDeviceRequestFailed and the
// caller terminates.
func NewGraphicsContext(backend gpu.Backend) (*GraphicsContext, error) {
	if backend == nil {
		return nil, gpu.ErrBackendNotAvailable
	}
	if err := backend.Init(); err != nil {
		return nil, fmt.Errorf("graphics context: %w", err)
	}
	Logger().Info("graphics context initialized", "backend", backend.Name())
	return &GraphicsContext{backend: backend}, nil
}

// Device returns the logical device.
func (g *GraphicsContext) Device() gpu.Device { return g.backend.Device() }

// Queue returns the command submission queue.
func (g *GraphicsContext) Queue() gpu.Queue { return g.backend.Queue() }

// CreateSurface binds a presentable surface to the given window.
func (g *GraphicsContext) CreateSurface(w gpu.WindowHandle) (gpu.Surface, error) {
	s, err := g.backend.CreateSurface(w)
	if err != nil {
		return nil, fmt.Errorf("graphics context: create surface: %w", err)
	}
	return s, nil
}

// deviceProviderSource is implemented by backends that can share their
// device with embedded canvases through the gpucontext ecosystem.
type deviceProviderSource interface {
	Provider() gpucontext.DeviceProvider
}

// Provider returns a gpucontext.DeviceProvider for sharing this context's
// device and queue with host canvases, or nil when the backend does not
// support device sharing (e.g. the recording backend).
func (g *GraphicsContext) Provider() gpucontext.DeviceProvider {
	if src, ok := g.backend.(deviceProviderSource); ok {
		return src.Provider()
	}
	return nil
}

// Close releases the device, adapter, and instance. The context must not be
// used afterwards.
func (g *GraphicsContext) Close() {
	g.backend.Close()
}
