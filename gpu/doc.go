// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

// Package gpu defines the GPU boundary of snow: the interfaces a rendering
// backend must provide (device, queue, presentable surface, pipeline) and
// the descriptor types shared between the lifecycle core and the backends.
//
// Two backends ship with the module:
//
//   - github.com/snowplay/snow/internal/wgpu: the real backend built on the
//     pure-Go WebGPU stack (github.com/gogpu/wgpu). Enable it by importing
//     github.com/snowplay/snow/wgpu for side effects.
//   - github.com/snowplay/snow/recording: an in-memory backend that records
//     every command instead of touching a GPU. Used by tests and available
//     for headless diagnostics.
//
// Backends register themselves in a process-wide registry (see Register and
// Default), mirroring how callers select one by name or priority.
package gpu
