// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	snow "github.com/snowplay/snow"
)

// KeyEvent is the payload of a snow.DeviceInput event produced by the
// keyboard.
type KeyEvent struct {
	Key      glfw.Key
	Scancode int
	Action   glfw.Action
	Mods     glfw.ModifierKey
}

// keyboardDevice identifies the keyboard in DeviceInput events.
const keyboardDevice = 0

// Pump translates GLFW callbacks into lifecycle events. Events accumulate
// during glfw.PollEvents and are drained by Poll.
type Pump struct {
	window *Window
	queue  []snow.Event
}

func newPump(w *Window) *Pump {
	p := &Pump{window: w}

	// The window starts visible, so the very first thing the
	// controller sees is a resume carrying the render target.
	p.queue = append(p.queue, snow.Resume{Window: w})

	win := w.win
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		p.queue = append(p.queue, snow.Resize{Width: uint32(width), Height: uint32(height)})
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		p.queue = append(p.queue, snow.CloseRequested{})
	})
	win.SetRefreshCallback(func(_ *glfw.Window) {
		p.queue = append(p.queue, snow.RedrawRequested{})
	})
	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			p.queue = append(p.queue, snow.Suspend{})
		} else {
			p.queue = append(p.queue, snow.Resume{Window: w})
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			p.queue = append(p.queue, snow.CloseRequested{})
			return
		}
		p.queue = append(p.queue, snow.DeviceInput{
			Device:  keyboardDevice,
			Payload: KeyEvent{Key: key, Scancode: scancode, Action: action, Mods: mods},
		})
	})

	return p
}

// Poll processes pending window-system events and returns everything that
// arrived. With nothing pending it returns a single Idle event, which is
// what drives continuous rendering.
func (p *Pump) Poll() []snow.Event {
	glfw.PollEvents()
	if len(p.queue) == 0 {
		return []snow.Event{snow.Idle{}}
	}
	out := p.queue
	p.queue = nil
	return out
}
