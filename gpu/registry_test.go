// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"slices"
	"testing"
)

// fakeBackend is the minimal Backend for registry tests.
type fakeBackend struct {
	name string
}

func (b *fakeBackend) Name() string                                { return b.name }
func (b *fakeBackend) Init() error                                 { return nil }
func (b *fakeBackend) Close()                                      {}
func (b *fakeBackend) Device() Device                              { return nil }
func (b *fakeBackend) Queue() Queue                                { return nil }
func (b *fakeBackend) CreateSurface(WindowHandle) (Surface, error) { return nil, nil }

func TestRegistry(t *testing.T) {
	const name = "test-backend"
	Register(name, func() Backend { return &fakeBackend{name: name} })
	defer Unregister(name)

	b := Get(name)
	if b == nil {
		t.Fatal("Get returned nil for a registered backend")
	}
	if got := b.Name(); got != name {
		t.Errorf("Name() = %q, want %q", got, name)
	}

	if !slices.Contains(Available(), name) {
		t.Errorf("Available() = %v, missing %q", Available(), name)
	}

	Unregister(name)
	if Get(name) != nil {
		t.Error("Get returned a backend after Unregister")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	if b := Get("no-such-backend"); b != nil {
		t.Errorf("Get(unknown) = %v, want nil", b)
	}
}

func TestRegistryDefault(t *testing.T) {
	// The wgpu name leads the priority list; the recording backend is
	// never selected by Default.
	Register(BackendWgpu, func() Backend { return &fakeBackend{name: BackendWgpu} })
	defer Unregister(BackendWgpu)
	Register(BackendRecording, func() Backend { return &fakeBackend{name: BackendRecording} })
	defer Unregister(BackendRecording)

	b := Default()
	if b == nil {
		t.Fatal("Default() = nil with wgpu registered")
	}
	if got := b.Name(); got != BackendWgpu {
		t.Errorf("Default().Name() = %q, want %q", got, BackendWgpu)
	}

	Unregister(BackendWgpu)
	if b := Default(); b != nil {
		t.Errorf("Default() = %v with only the recording backend registered, want nil", b)
	}
}

func TestRegistryReplace(t *testing.T) {
	const name = "replace-me"
	Register(name, func() Backend { return &fakeBackend{name: "first"} })
	Register(name, func() Backend { return &fakeBackend{name: "second"} })
	defer Unregister(name)

	if got := Get(name).Name(); got != "second" {
		t.Errorf("Name() after re-register = %q, want %q", got, "second")
	}
}
