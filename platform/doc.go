// Package platform provides the desktop windowing layer: a GLFW window
// that acts as both the render target handle and the pixel presenter, and
// an event pump that translates GLFW callbacks into lifecycle events.
//
// All functions in this package must be called from the main goroutine;
// GLFW requires it. Call runtime.LockOSThread in an init function of the
// main package.
package platform
