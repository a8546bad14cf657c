// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package recording

import "github.com/snowplay/snow/gpu"

// Op identifies a recorded backend command.
type Op string

// Recorded operations, in the vocabulary of the gpu interfaces.
const (
	OpInit            Op = "init"
	OpClose           Op = "close"
	OpCreateSurface   Op = "create-surface"
	OpConfigure       Op = "configure"
	OpAcquire         Op = "acquire"
	OpBeginPass       Op = "begin-pass"
	OpSetPipeline     Op = "set-pipeline"
	OpDraw            Op = "draw"
	OpEndPass         Op = "end-pass"
	OpSubmit          Op = "submit"
	OpPresent         Op = "present"
	OpDiscard         Op = "discard"
	OpCreatePipeline  Op = "create-pipeline"
	OpDestroyPipeline Op = "destroy-pipeline"
	OpDestroySurface  Op = "destroy-surface"
)

// Command is one recorded backend operation. Only the fields relevant to
// the operation are populated.
type Command struct {
	Op Op

	// Config is the applied surface configuration (OpConfigure).
	Config gpu.SurfaceConfig

	// Clear is the render pass clear color (OpBeginPass).
	Clear gpu.Color

	// Pipeline is the pipeline label (OpSetPipeline, OpCreatePipeline,
	// OpDestroyPipeline).
	Pipeline string

	// VertexCount and InstanceCount are the draw arguments (OpDraw).
	VertexCount   uint32
	InstanceCount uint32

	// Failed marks an operation that returned an injected error.
	Failed bool
}
