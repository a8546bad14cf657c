// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package snow

import "github.com/snowplay/snow/gpu"

// ControllerOption configures a Controller during creation.
type ControllerOption func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	backend    gpu.Backend
	clearColor gpu.Color
	shaderWGSL string
	continuous bool
}

// defaultOptions returns the default controller options: registry-selected
// backend, green clear color, the built-in triangle shader, and continuous
// idle rendering.
func defaultOptions() controllerOptions {
	return controllerOptions{
		backend:    nil, // resolved from the registry on first Resume
		clearColor: gpu.Color{R: 0, G: 1, B: 0, A: 1},
		shaderWGSL: triangleWGSL,
		continuous: true,
	}
}

// WithBackend sets the GPU backend explicitly instead of resolving one from
// the registry. Use this for dependency injection, e.g. the recording
// backend in tests.
func WithBackend(b gpu.Backend) ControllerOption {
	return func(o *controllerOptions) {
		o.backend = b
	}
}

// WithClearColor sets the render pass clear color.
func WithClearColor(c gpu.Color) ControllerOption {
	return func(o *controllerOptions) {
		o.clearColor = c
	}
}

// WithShaderSource replaces the built-in triangle shader. The source must
// keep the vs_main/fs_main entry points and the no-vertex-buffer structure.
func WithShaderSource(wgsl string) ControllerOption {
	return func(o *controllerOptions) {
		o.shaderWGSL = wgsl
	}
}

// WithContinuousRedraw controls whether Idle events trigger an
// unconditional redraw. Enabled by default; disabling renders only on
// explicit redraw requests.
func WithContinuousRedraw(enabled bool) ControllerOption {
	return func(o *controllerOptions) {
		o.continuous = enabled
	}
}
