// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

// Package snow manages the lifecycle of a GPU rendering surface bound to an
// application window: it creates a GPU context when a window becomes
// available, keeps the surface configuration consistent with the window
// geometry, recovers from transient surface loss, and drives a per-frame
// render pass.
//
// The core is an explicit state machine, Controller, fed one platform event
// at a time:
//
//	c := snow.NewController(snow.WithBackend(backend))
//	action, err := c.Handle(snow.Resume{Window: win})
//
// Events arrive from a windowing collaborator (see the platform package for
// a GLFW-based one) and are processed synchronously on a single control
// thread. Rendering is continuous: idle ticks trigger an unconditional
// redraw, trading power efficiency for simplicity.
//
// GPU access goes through the interfaces in the gpu package. The wgpu
// backend (import github.com/snowplay/snow/wgpu for side effects) drives a
// real device; the recording backend captures commands for tests.
package snow
