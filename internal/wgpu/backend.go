// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

// Package wgpu implements the gpu interfaces on the pure-Go WebGPU stack
// (github.com/gogpu/wgpu). Presentation is done through an offscreen
// texture chain: frames render into HAL textures and are read back and
// handed to the window's Presenter, so the backend has no platform-specific
// swapchain code.
package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	snow "github.com/snowplay/snow"
	"github.com/snowplay/snow/gpu"
)

// Backend is the wgpu-backed gpu.Backend. It owns the HAL instance,
// adapter, device, and queue for one session.
type Backend struct {
	instance hal.Instance
	adapter  *hal.ExposedAdapter
	device   hal.Device
	queue    hal.Queue

	initialized bool
}

// New creates an uninitialized backend. Call Init before use.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return gpu.BackendWgpu }

// Init creates the HAL instance, selects an adapter with a high-performance
// preference (discrete first, then integrated, then whatever is left), and
// opens a device and queue with default features and limits. Init blocks
// until the driver responds.
func (b *Backend) Init() error {
	if b.initialized {
		return nil
	}

	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("%w: vulkan backend not available", gpu.ErrAdapterUnavailable)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("%w: create instance: %w", gpu.ErrAdapterUnavailable, err)
	}
	b.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		b.Close()
		return fmt.Errorf("%w: no adapters enumerated", gpu.ErrAdapterUnavailable)
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		for i := range adapters {
			if adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
				selected = &adapters[i]
				break
			}
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	b.adapter = selected

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		name := selected.Info.Name
		b.Close()
		return fmt.Errorf("%w: open adapter %q: %w", gpu.ErrDeviceRequestFailed, name, err)
	}
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.initialized = true

	snow.Logger().Info("wgpu adapter selected",
		"name", selected.Info.Name,
		"type", selected.Info.DeviceType)
	return nil
}

// Close destroys the device and releases the HAL instance. It tolerates
// partially initialized state: Init unwinds through it when adapter
// enumeration or device acquisition fails, so a later Init starts clean.
func (b *Backend) Close() {
	if b.device != nil {
		b.device.Destroy()
		b.device = nil
	}
	b.queue = nil
	b.adapter = nil
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}
	if b.initialized {
		b.initialized = false
		snow.Logger().Info("wgpu backend closed")
	}
}

// Device returns the logical device.
func (b *Backend) Device() gpu.Device {
	return &device{backend: b}
}

// Queue returns the submission queue.
func (b *Backend) Queue() gpu.Queue {
	return &queue{backend: b}
}

// CreateSurface binds an offscreen texture-chain surface to the window. If
// the window implements gpu.Presenter, presented frames are read back and
// delivered to it; otherwise the surface is headless.
func (b *Backend) CreateSurface(w gpu.WindowHandle) (gpu.Surface, error) {
	if !b.initialized {
		return nil, gpu.ErrNotInitialized
	}
	s := &surface{backend: b, window: w}
	if p, ok := w.(gpu.Presenter); ok {
		s.presenter = p
	}
	return s, nil
}

var _ gpu.Backend = (*Backend)(nil)
