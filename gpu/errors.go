// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package gpu

import "errors"

// Errors shared by all backends. Every one of them is unrecoverable at the
// point of occurrence and propagates to the process boundary; the single
// exception is ErrSurfaceAcquire, which callers see only after the one
// bounded reconfigure-and-retry has also failed.
var (
	// ErrAdapterUnavailable is returned when no compatible GPU adapter exists.
	ErrAdapterUnavailable = errors.New("gpu: no compatible adapter available")

	// ErrDeviceRequestFailed is returned when the driver refuses device creation.
	ErrDeviceRequestFailed = errors.New("gpu: device request failed")

	// ErrShaderCompile is returned when WGSL compilation fails.
	ErrShaderCompile = errors.New("gpu: shader compilation failed")

	// ErrPipelineLink is returned when render pipeline creation fails.
	ErrPipelineLink = errors.New("gpu: pipeline link failed")

	// ErrSurfaceAcquire is returned when the next presentable frame cannot
	// be acquired.
	ErrSurfaceAcquire = errors.New("gpu: surface frame acquisition failed")

	// ErrConfigurationRejected is returned when the backend refuses a
	// surface configuration.
	ErrConfigurationRejected = errors.New("gpu: surface configuration rejected")

	// ErrBackendNotAvailable is returned when no registered backend can be
	// selected.
	ErrBackendNotAvailable = errors.New("gpu: no backend available")

	// ErrNotInitialized is returned when backend operations are called
	// before Init.
	ErrNotInitialized = errors.New("gpu: backend not initialized")
)
