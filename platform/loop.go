// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package platform

import (
	snow "github.com/snowplay/snow"
)

// Run drives the controller with the window's events until it requests
// exit. It returns the error that ended the session, if any.
//
// Must run on the main goroutine.
func Run(ctrl *snow.Controller, win *Window) error {
	for {
		for _, ev := range win.Events().Poll() {
			action, err := ctrl.Handle(ev)
			if action == snow.ActionExit {
				return err
			}
		}
	}
}
