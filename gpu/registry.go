// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package gpu

import "sync"

// Well-known backend names.
const (
	// BackendWgpu is the pure-Go WebGPU backend.
	BackendWgpu = "wgpu"

	// BackendRecording is the command-recording backend used by tests and
	// headless diagnostics.
	BackendRecording = "recording"
)

// Factory creates a new backend instance.
type Factory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins). The
	// recording backend is deliberately absent: it never presents pixels
	// and must be requested by name.
	backendPriority = []string{BackendWgpu}
)

// Register registers a backend factory with the given name. This is
// typically called from init() functions in backend packages. Registering
// the same name twice replaces the earlier factory.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the names of all registered backends.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// Get returns a backend instance by name, or nil if none is registered
// under that name.
func Get(name string) Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available backend based on priority, or nil if
// none is registered.
func Default() Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			if b := factory(); b != nil {
				return b
			}
		}
	}
	return nil
}
