// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package snow

import (
	"fmt"

	"github.com/snowplay/snow/gpu"
)

// desiredFrameLatency is the maximum number of frames in flight requested
// from the surface.
const desiredFrameLatency = 1

// SurfaceManager owns the presentable surface and its configuration and
// keeps the configuration consistent with the window's pixel size. The
// stored width and height always reflect the most recent non-zero size
// known to the controller.
type SurfaceManager struct {
	surface gpu.Surface
	config  gpu.SurfaceConfig
}

// ConfigureSurface builds a configuration from the surface's capabilities
// and the given size and applies it. Selection is deterministic: the first
// reported format, present mode, and alpha mode win; there is no
// negotiation beyond "first returned".
//
// The size must be non-zero and each capability list must be non-empty,
// otherwise the configuration is rejected.
func ConfigureSurface(surface gpu.Surface, size gpu.Size) (*SurfaceManager, error) {
	if size.IsZero() {
		return nil, fmt.Errorf("%w: zero size %s", gpu.ErrConfigurationRejected, size)
	}

	caps := surface.Capabilities()
	if len(caps.Formats) == 0 || len(caps.PresentModes) == 0 || len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("%w: surface reports no capabilities", gpu.ErrConfigurationRejected)
	}

	cfg := gpu.SurfaceConfig{
		Format:       caps.Formats[0],
		Width:        size.Width,
		Height:       size.Height,
		PresentMode:  caps.PresentModes[0],
		AlphaMode:    caps.AlphaModes[0],
		FrameLatency: desiredFrameLatency,
	}
	if err := surface.Configure(cfg); err != nil {
		return nil, fmt.Errorf("configure surface: %w", err)
	}

	Logger().Info("surface configured",
		"format", cfg.Format,
		"size", cfg.Size(),
		"present_mode", cfg.PresentMode,
		"alpha_mode", cfg.AlphaMode)

	return &SurfaceManager{surface: surface, config: cfg}, nil
}

// Config returns the current surface configuration.
func (m *SurfaceManager) Config() gpu.SurfaceConfig { return m.config }

// Size returns the currently configured extent.
func (m *SurfaceManager) Size() gpu.Size { return m.config.Size() }

// Resize updates the stored width and height and reapplies the
// configuration immediately. Resize is idempotent: applying the same size
// twice produces no observable change beyond the reconfiguration itself.
// A zero size is rejected; callers skip resize-triggered reconfiguration
// in that case.
func (m *SurfaceManager) Resize(size gpu.Size) error {
	if size.IsZero() {
		return fmt.Errorf("%w: zero size %s", gpu.ErrConfigurationRejected, size)
	}

	m.config.Width = size.Width
	m.config.Height = size.Height
	if err := m.surface.Configure(m.config); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}
	return nil
}

// AcquireFrame requests the next presentable image. On failure (surface
// lost or outdated, e.g. after a resize race) it reconfigures with the last
// known configuration and retries exactly once; a second failure is
// propagated, not retried again, which bounds the retry loop while
// tolerating the common transient case.
func (m *SurfaceManager) AcquireFrame() (gpu.Frame, error) {
	frame, err := m.surface.Acquire()
	if err == nil {
		return frame, nil
	}

	Logger().Warn("frame acquisition failed, reconfiguring once", "err", err, "size", m.Size())
	if cfgErr := m.surface.Configure(m.config); cfgErr != nil {
		return nil, fmt.Errorf("reconfigure after acquire failure: %w", cfgErr)
	}

	frame, err = m.surface.Acquire()
	if err != nil {
		return nil, fmt.Errorf("acquire after reconfigure: %w", err)
	}
	return frame, nil
}

// Destroy releases the surface.
func (m *SurfaceManager) Destroy() {
	m.surface.Destroy()
}
