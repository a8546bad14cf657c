// Copyright 2026 The snowplay Authors
// SPDX-License-Identifier: MIT

package gpu

import "testing"

func TestSizeIsZero(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want bool
	}{
		{"both zero", Size{}, true},
		{"zero width", Size{Width: 0, Height: 600}, true},
		{"zero height", Size{Width: 800, Height: 0}, true},
		{"non-zero", Size{Width: 800, Height: 600}, false},
		{"one pixel", Size{Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.IsZero(); got != tt.want {
				t.Errorf("Size%+v.IsZero() = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func TestSizeString(t *testing.T) {
	if got := (Size{Width: 800, Height: 600}).String(); got != "800x600" {
		t.Errorf("String() = %q, want %q", got, "800x600")
	}
}

func TestSurfaceConfigSize(t *testing.T) {
	cfg := SurfaceConfig{Width: 1024, Height: 768}
	if got := cfg.Size(); got != (Size{Width: 1024, Height: 768}) {
		t.Errorf("Size() = %v, want 1024x768", got)
	}
}

func TestPresentModeString(t *testing.T) {
	tests := []struct {
		mode PresentMode
		want string
	}{
		{PresentModeFifo, "fifo"},
		{PresentModeMailbox, "mailbox"},
		{PresentModeImmediate, "immediate"},
		{PresentMode(42), "present-mode(42)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("PresentMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestAlphaModeString(t *testing.T) {
	tests := []struct {
		mode AlphaMode
		want string
	}{
		{AlphaModeOpaque, "opaque"},
		{AlphaModePreMultiplied, "premultiplied"},
		{AlphaModePostMultiplied, "postmultiplied"},
		{AlphaMode(42), "alpha-mode(42)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("AlphaMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
