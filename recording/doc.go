// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

// Package recording provides a gpu.Backend that records every command
// instead of driving a GPU. It mirrors the backend API surface but
// generates an inspectable command log, which makes render behavior
// (clear color, draw counts, command ordering) assertable in tests
// without any GPU or display.
//
// The backend also supports failure injection for the transient paths the
// lifecycle core must tolerate: a bounded number of surface acquisition or
// configuration failures.
//
// Example:
//
//	b := recording.New()
//	_ = b.Init()
//	s, _ := b.CreateSurface(win)
//	_ = s.Configure(cfg)
//	for _, cmd := range b.Commands() {
//	    fmt.Println(cmd.Op)
//	}
//
// A Backend is not safe for concurrent use; the lifecycle core is
// single-threaded by design.
package recording
