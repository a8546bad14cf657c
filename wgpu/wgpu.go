// Package wgpu registers the hardware GPU backend.
//
// Import this package to render through wgpu/hal (Vulkan, Metal, DX12).
// Registration only makes the backend available; device and adapter
// initialization is deferred until the backend is actually used, so
// importing on a machine without GPU support is harmless.
//
// Usage:
//
//	import _ "github.com/snowplay/snow/wgpu" // enable hardware rendering
package wgpu

import (
	"github.com/snowplay/snow/gpu"
	wgpuimpl "github.com/snowplay/snow/internal/wgpu"
)

func init() {
	gpu.Register(gpu.BackendWgpu, func() gpu.Backend {
		return wgpuimpl.New()
	})
}
