// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package snow

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/snowplay/snow/gpu"
	"github.com/snowplay/snow/recording"
)

// stubWindow is a headless window handle with a settable size.
type stubWindow struct {
	size gpu.Size
}

func (w *stubWindow) Size() gpu.Size { return w.size }

func newTestController(t *testing.T) (*Controller, *recording.Backend, *stubWindow) {
	t.Helper()
	backend := recording.New()
	ctrl := NewController(WithBackend(backend))
	win := &stubWindow{size: gpu.Size{Width: 800, Height: 600}}
	return ctrl, backend, win
}

func mustHandle(t *testing.T, c *Controller, ev Event) Action {
	t.Helper()
	action, err := c.Handle(ev)
	if err != nil {
		t.Fatalf("Handle(%T) failed: %v", ev, err)
	}
	return action
}

func TestControllerResume(t *testing.T) {
	ctrl, backend, win := newTestController(t)

	if got := ctrl.State(); got != StateUninitialized {
		t.Fatalf("initial state = %v, want %v", got, StateUninitialized)
	}

	action := mustHandle(t, ctrl, Resume{Window: win})
	if action != ActionNone {
		t.Errorf("action = %v, want %v", action, ActionNone)
	}
	if got := ctrl.State(); got != StateActive {
		t.Fatalf("state after resume = %v, want %v", got, StateActive)
	}

	cfg, ok := ctrl.SurfaceConfig()
	if !ok {
		t.Fatal("SurfaceConfig reported no session after resume")
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("configured size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v, want first capability %v", cfg.Format, gputypes.TextureFormatBGRA8Unorm)
	}
	if cfg.PresentMode != gpu.PresentModeFifo {
		t.Errorf("present mode = %v, want first capability %v", cfg.PresentMode, gpu.PresentModeFifo)
	}
	if cfg.AlphaMode != gpu.AlphaModeOpaque {
		t.Errorf("alpha mode = %v, want first capability %v", cfg.AlphaMode, gpu.AlphaModeOpaque)
	}
	if cfg.FrameLatency != 1 {
		t.Errorf("frame latency = %d, want 1", cfg.FrameLatency)
	}

	if n := backend.Count(recording.OpCreatePipeline); n != 1 {
		t.Errorf("pipelines created = %d, want 1", n)
	}
	if n := backend.Count(recording.OpConfigure); n != 1 {
		t.Errorf("configure calls = %d, want 1", n)
	}
}

func TestControllerResumeWhileActive(t *testing.T) {
	ctrl, backend, win := newTestController(t)

	mustHandle(t, ctrl, Resume{Window: win})
	mustHandle(t, ctrl, Resume{Window: win})

	if n := backend.Count(recording.OpInit); n != 1 {
		t.Errorf("init calls after redundant resume = %d, want 1", n)
	}
	if got := ctrl.State(); got != StateActive {
		t.Errorf("state = %v, want %v", got, StateActive)
	}
}

func TestControllerResumeWithoutWindow(t *testing.T) {
	ctrl, _, _ := newTestController(t)

	action, err := ctrl.Handle(Resume{Window: nil})
	if err == nil {
		t.Fatal("resume without window succeeded, want error")
	}
	if action != ActionExit {
		t.Errorf("action = %v, want %v", action, ActionExit)
	}
	if got := ctrl.State(); got != StateExited {
		t.Errorf("state = %v, want %v", got, StateExited)
	}
}

func TestControllerRedrawBeforeResume(t *testing.T) {
	ctrl, backend, _ := newTestController(t)

	action := mustHandle(t, ctrl, RedrawRequested{})
	if action != ActionNone {
		t.Errorf("action = %v, want %v", action, ActionNone)
	}
	if got := ctrl.State(); got != StateUninitialized {
		t.Errorf("state = %v, want %v", got, StateUninitialized)
	}
	if n := len(backend.Commands()); n != 0 {
		t.Errorf("commands recorded before resume = %d, want 0", n)
	}
}

func TestControllerRedraw(t *testing.T) {
	ctrl, backend, win := newTestController(t)
	mustHandle(t, ctrl, Resume{Window: win})
	backend.Reset()

	mustHandle(t, ctrl, RedrawRequested{})

	want := []recording.Op{
		recording.OpAcquire,
		recording.OpBeginPass,
		recording.OpSetPipeline,
		recording.OpDraw,
		recording.OpEndPass,
		recording.OpSubmit,
		recording.OpPresent,
	}
	got := backend.Ops()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops[%d] = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestControllerResize(t *testing.T) {
	tests := []struct {
		name    string
		resizes []Resize
		wantW   uint32
		wantH   uint32
		// wantConfigures counts Configure calls after the initial one.
		wantConfigures int
	}{
		{
			name:           "single",
			resizes:        []Resize{{1024, 768}},
			wantW:          1024,
			wantH:          768,
			wantConfigures: 1,
		},
		{
			name:           "last write wins",
			resizes:        []Resize{{300, 300}, {400, 400}, {500, 500}},
			wantW:          500,
			wantH:          500,
			wantConfigures: 3,
		},
		{
			name:           "zero width ignored",
			resizes:        []Resize{{0, 300}},
			wantW:          800,
			wantH:          600,
			wantConfigures: 0,
		},
		{
			name:           "zero height ignored",
			resizes:        []Resize{{300, 0}},
			wantW:          800,
			wantH:          600,
			wantConfigures: 0,
		},
		{
			name:           "zero then valid",
			resizes:        []Resize{{0, 0}, {640, 480}},
			wantW:          640,
			wantH:          480,
			wantConfigures: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, backend, win := newTestController(t)
			mustHandle(t, ctrl, Resume{Window: win})
			backend.Reset()

			for _, r := range tt.resizes {
				mustHandle(t, ctrl, r)
			}

			cfg, _ := ctrl.SurfaceConfig()
			if cfg.Width != tt.wantW || cfg.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantW, tt.wantH)
			}
			if n := backend.Count(recording.OpConfigure); n != tt.wantConfigures {
				t.Errorf("configure calls = %d, want %d", n, tt.wantConfigures)
			}
		})
	}
}

func TestControllerResizeBeforeResume(t *testing.T) {
	ctrl, backend, _ := newTestController(t)

	mustHandle(t, ctrl, Resize{Width: 1024, Height: 768})

	if n := len(backend.Commands()); n != 0 {
		t.Errorf("commands recorded = %d, want 0", n)
	}
}

func TestControllerIdle(t *testing.T) {
	t.Run("continuous renders on idle", func(t *testing.T) {
		ctrl, backend, win := newTestController(t)
		mustHandle(t, ctrl, Resume{Window: win})
		backend.Reset()

		mustHandle(t, ctrl, Idle{})
		mustHandle(t, ctrl, Idle{})

		if n := backend.Count(recording.OpPresent); n != 2 {
			t.Errorf("presents = %d, want 2", n)
		}
	})

	t.Run("on-demand ignores idle", func(t *testing.T) {
		backend := recording.New()
		ctrl := NewController(WithBackend(backend), WithContinuousRedraw(false))
		win := &stubWindow{size: gpu.Size{Width: 800, Height: 600}}
		mustHandle(t, ctrl, Resume{Window: win})
		backend.Reset()

		mustHandle(t, ctrl, Idle{})
		if n := backend.Count(recording.OpPresent); n != 0 {
			t.Errorf("presents on idle = %d, want 0", n)
		}

		mustHandle(t, ctrl, RedrawRequested{})
		if n := backend.Count(recording.OpPresent); n != 1 {
			t.Errorf("presents after explicit redraw = %d, want 1", n)
		}
	})
}

func TestControllerSuspendResume(t *testing.T) {
	ctrl, backend, win := newTestController(t)
	mustHandle(t, ctrl, Resume{Window: win})

	mustHandle(t, ctrl, Suspend{})
	if got := ctrl.State(); got != StateSuspended {
		t.Fatalf("state after suspend = %v, want %v", got, StateSuspended)
	}

	// Suspended sessions do not render.
	backend.Reset()
	mustHandle(t, ctrl, Idle{})
	mustHandle(t, ctrl, RedrawRequested{})
	if n := backend.Count(recording.OpPresent); n != 0 {
		t.Errorf("presents while suspended = %d, want 0", n)
	}

	// Resume rebuilds the session from scratch.
	mustHandle(t, ctrl, Resume{Window: win})
	if got := ctrl.State(); got != StateActive {
		t.Fatalf("state after re-resume = %v, want %v", got, StateActive)
	}
	if n := backend.Count(recording.OpDestroyPipeline); n != 1 {
		t.Errorf("old pipeline destroys = %d, want 1", n)
	}
	if n := backend.Count(recording.OpInit); n != 1 {
		t.Errorf("re-init calls = %d, want 1", n)
	}
	if n := backend.Count(recording.OpCreatePipeline); n != 1 {
		t.Errorf("new pipelines = %d, want 1", n)
	}
}

func TestControllerSuspendBeforeResume(t *testing.T) {
	ctrl, _, _ := newTestController(t)

	mustHandle(t, ctrl, Suspend{})
	if got := ctrl.State(); got != StateUninitialized {
		t.Errorf("state = %v, want %v", got, StateUninitialized)
	}
}

func TestControllerClose(t *testing.T) {
	ctrl, backend, win := newTestController(t)
	mustHandle(t, ctrl, Resume{Window: win})

	action := mustHandle(t, ctrl, CloseRequested{})
	if action != ActionExit {
		t.Fatalf("action = %v, want %v", action, ActionExit)
	}
	if got := ctrl.State(); got != StateExited {
		t.Fatalf("state = %v, want %v", got, StateExited)
	}
	if n := backend.Count(recording.OpDestroyPipeline); n != 1 {
		t.Errorf("pipeline destroys = %d, want 1", n)
	}
	if n := backend.Count(recording.OpDestroySurface); n != 1 {
		t.Errorf("surface destroys = %d, want 1", n)
	}
	if n := backend.Count(recording.OpClose); n != 1 {
		t.Errorf("backend closes = %d, want 1", n)
	}

	// Exit is emitted exactly once; everything after Exited is inert.
	for _, ev := range []Event{CloseRequested{}, Resume{Window: win}, RedrawRequested{}, Idle{}} {
		action, err := ctrl.Handle(ev)
		if err != nil {
			t.Errorf("Handle(%T) after exit failed: %v", ev, err)
		}
		if action != ActionNone {
			t.Errorf("Handle(%T) after exit = %v, want %v", ev, action, ActionNone)
		}
	}
}

func TestControllerCloseBeforeResume(t *testing.T) {
	ctrl, _, _ := newTestController(t)

	action := mustHandle(t, ctrl, CloseRequested{})
	if action != ActionExit {
		t.Errorf("action = %v, want %v", action, ActionExit)
	}
	if got := ctrl.State(); got != StateExited {
		t.Errorf("state = %v, want %v", got, StateExited)
	}
}

func TestControllerInitFailure(t *testing.T) {
	ctrl, backend, win := newTestController(t)
	backend.FailInit(gpu.ErrAdapterUnavailable)

	action, err := ctrl.Handle(Resume{Window: win})
	if !errors.Is(err, gpu.ErrAdapterUnavailable) {
		t.Fatalf("err = %v, want %v", err, gpu.ErrAdapterUnavailable)
	}
	if action != ActionExit {
		t.Errorf("action = %v, want %v", action, ActionExit)
	}
	if got := ctrl.State(); got != StateExited {
		t.Errorf("state = %v, want %v", got, StateExited)
	}
}

func TestControllerPipelineFailure(t *testing.T) {
	ctrl, backend, win := newTestController(t)
	backend.FailCreatePipeline(gpu.ErrPipelineLink)

	action, err := ctrl.Handle(Resume{Window: win})
	if !errors.Is(err, gpu.ErrPipelineLink) {
		t.Fatalf("err = %v, want %v", err, gpu.ErrPipelineLink)
	}
	if action != ActionExit {
		t.Errorf("action = %v, want %v", action, ActionExit)
	}
	// The partially built session must have been released.
	if n := backend.Count(recording.OpDestroySurface); n != 1 {
		t.Errorf("surface destroys = %d, want 1", n)
	}
	if n := backend.Count(recording.OpClose); n != 1 {
		t.Errorf("backend closes = %d, want 1", n)
	}
}

func TestControllerIgnoredEvents(t *testing.T) {
	ctrl, backend, win := newTestController(t)
	mustHandle(t, ctrl, Resume{Window: win})
	backend.Reset()

	mustHandle(t, ctrl, DeviceInput{Device: 0, Payload: "key"})
	mustHandle(t, ctrl, MemoryWarning{})

	if got := ctrl.State(); got != StateActive {
		t.Errorf("state = %v, want %v", got, StateActive)
	}
	if n := len(backend.Commands()); n != 0 {
		t.Errorf("commands recorded = %d, want 0", n)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateUninitialized, "uninitialized"},
		{StateActive, "active"},
		{StateSuspended, "suspended"},
		{StateExited, "exited"},
		{State(99), "state(99)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionNone.String(); got != "none" {
		t.Errorf("ActionNone.String() = %q, want %q", got, "none")
	}
	if got := ActionExit.String(); got != "exit" {
		t.Errorf("ActionExit.String() = %q, want %q", got, "exit")
	}
}
