// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package snow

import (
	"fmt"

	"github.com/snowplay/snow/gpu"
)

// State is a lifecycle state of the Controller.
type State uint8

// Lifecycle states. Transitions:
//
//	Uninitialized --resume--> Active
//	Active --suspend--> Suspended --resume--> Active
//	Active --close-request--> Exited
//
// Exited is terminal; no further transitions are accepted.
const (
	StateUninitialized State = iota
	StateActive
	StateSuspended
	StateExited
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateSuspended:
		return "suspended"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Action tells the event loop what to do after an event was handled.
type Action uint8

const (
	// ActionNone continues the loop.
	ActionNone Action = iota

	// ActionExit terminates the loop. Emitted exactly once, on the
	// transition into Exited.
	ActionExit
)

// String returns the action name.
func (a Action) String() string {
	if a == ActionExit {
		return "exit"
	}
	return "none"
}

// session holds the GPU resources of one Active (or Suspended) lifecycle
// span. Grouping them in one struct kept nil outside those states makes
// invalid combinations (a renderer without a device, a surface without a
// context) unrepresentable instead of guarded by per-field presence checks.
type session struct {
	ctx      *GraphicsContext
	surfaces *SurfaceManager
	renderer *FrameRenderer
}

func (s *session) close() {
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.surfaces != nil {
		s.surfaces.Destroy()
	}
	if s.ctx != nil {
		s.ctx.Close()
	}
}

// Controller is the lifecycle state machine driving GraphicsContext,
// SurfaceManager, and FrameRenderer in response to platform events.
//
// All events and all rendering happen on one control thread: the external
// event loop delivers events synchronously and Handle blocks on GPU calls.
// There is exactly one mutator of the session state, the controller itself,
// so no locking discipline is needed.
type Controller struct {
	opts  controllerOptions
	state State
	sess  *session
}

// NewController creates a controller in the Uninitialized state.
func NewController(options ...ControllerOption) *Controller {
	opts := defaultOptions()
	for _, o := range options {
		o(&opts)
	}
	return &Controller{opts: opts}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Context returns the active session's graphics context, or nil when no
// session exists.
func (c *Controller) Context() *GraphicsContext {
	if c.sess == nil {
		return nil
	}
	return c.sess.ctx
}

// SurfaceConfig returns the active session's surface configuration. The
// second return is false when no session exists.
func (c *Controller) SurfaceConfig() (gpu.SurfaceConfig, bool) {
	if c.sess == nil {
		return gpu.SurfaceConfig{}, false
	}
	return c.sess.surfaces.Config(), true
}

// Handle processes one platform event and returns the resulting loop
// action. Every returned error is unrecoverable: the controller has already
// transitioned to Exited and released its resources, and the caller should
// surface the error to the process boundary.
func (c *Controller) Handle(ev Event) (Action, error) {
	if c.state == StateExited {
		return ActionNone, nil
	}

	switch ev := ev.(type) {
	case Resume:
		return c.handleResume(ev)

	case Suspend:
		// Resources are deliberately kept; platforms that invalidate the
		// surface on suspend get a fresh session on the next Resume.
		if c.state == StateActive {
			c.state = StateSuspended
			Logger().Info("suspended")
		}
		return ActionNone, nil

	case Resize:
		if c.state != StateActive {
			return ActionNone, nil
		}
		size := gpu.Size{Width: ev.Width, Height: ev.Height}
		if size.IsZero() {
			Logger().Debug("ignoring zero-sized resize", "size", size)
			return ActionNone, nil
		}
		if err := c.sess.surfaces.Resize(size); err != nil {
			return c.fatal(err)
		}
		return ActionNone, nil

	case RedrawRequested:
		return c.redraw()

	case Idle:
		if !c.opts.continuous {
			return ActionNone, nil
		}
		return c.redraw()

	case CloseRequested:
		c.shutdown()
		return ActionExit, nil

	default:
		// Device input, memory warnings, and any other signals are
		// accepted but have no effect on this core.
		return ActionNone, nil
	}
}

// handleResume runs the Uninitialized to Active transition. A Resume while
// already Active is ignored; a Resume while Suspended tears the old session
// down and repeats the full transition with fresh resources.
func (c *Controller) handleResume(ev Resume) (Action, error) {
	switch c.state {
	case StateActive:
		return ActionNone, nil
	case StateSuspended:
		c.sess.close()
		c.sess = nil
	}

	if ev.Window == nil {
		return c.fatal(fmt.Errorf("resume without a window handle"))
	}
	if err := c.activate(ev.Window); err != nil {
		return c.fatal(err)
	}
	c.state = StateActive
	Logger().Info("active", "size", c.sess.surfaces.Size())
	return ActionNone, nil
}

// activate builds a full GPU session: context, surface, configuration, and
// pipeline, in that order. Any failure aborts the transition with partial
// resources released.
func (c *Controller) activate(window gpu.WindowHandle) error {
	backend := c.opts.backend
	if backend == nil {
		backend = gpu.Default()
	}

	ctx, err := NewGraphicsContext(backend)
	if err != nil {
		return err
	}

	surface, err := ctx.CreateSurface(window)
	if err != nil {
		ctx.Close()
		return err
	}

	surfaces, err := ConfigureSurface(surface, window.Size())
	if err != nil {
		surface.Destroy()
		ctx.Close()
		return err
	}

	renderer, err := NewFrameRenderer(ctx.Device(), ctx.Queue(), surfaces.Config().Format, c.opts.shaderWGSL, c.opts.clearColor)
	if err != nil {
		surfaces.Destroy()
		ctx.Close()
		return err
	}

	c.sess = &session{ctx: ctx, surfaces: surfaces, renderer: renderer}
	return nil
}

// redraw acquires the next frame and renders it. Redraw requests outside
// the Active state are no-ops rather than errors; a redraw before the first
// resume is a representable, ignorable case.
func (c *Controller) redraw() (Action, error) {
	if c.state != StateActive {
		return ActionNone, nil
	}

	frame, err := c.sess.surfaces.AcquireFrame()
	if err != nil {
		return c.fatal(err)
	}
	if err := c.sess.renderer.Render(frame); err != nil {
		return c.fatal(err)
	}
	return ActionNone, nil
}

// fatal releases all resources, enters Exited, and propagates the error.
func (c *Controller) fatal(err error) (Action, error) {
	Logger().Error("fatal lifecycle error", "state", c.state, "err", err)
	c.shutdown()
	return ActionExit, err
}

// shutdown tears the session down and enters the terminal state.
func (c *Controller) shutdown() {
	if c.sess != nil {
		c.sess.close()
		c.sess = nil
	}
	c.state = StateExited
	Logger().Info("exited")
}
