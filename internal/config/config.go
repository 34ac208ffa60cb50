// Package config holds viewer settings shared across subsystems.
package config

import "sync"

// ViewSettings holds the adjustable viewer configuration.
type ViewSettings struct {
	mu           sync.RWMutex
	fov          float32
	fpsLimit     int
	cullDistance float32
	mouseSense   float32
	fontPath     string
	showOverlay  bool
}

var settings = &ViewSettings{
	fov:          75,
	fpsLimit:     240,
	cullDistance: 4096,
	mouseSense:   0.1,
	fontPath:     "assets/fonts/DejaVuSans.ttf",
	showOverlay:  true,
}

// GetFOV returns the vertical field of view in degrees.
func GetFOV() float32 {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.fov
}

// SetFOV sets the field of view, clamped to a sane range.
func SetFOV(fov float32) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	if fov < 30 {
		fov = 30
	}
	if fov > 120 {
		fov = 120
	}
	settings.fov = fov
}

// GetFPSLimit returns the frame cap; 0 disables limiting.
func GetFPSLimit() int {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.fpsLimit
}

// SetFPSLimit sets the frame cap.
func SetFPSLimit(limit int) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	settings.fpsLimit = limit
}

// GetCullDistance returns the far-plane distance in map units.
func GetCullDistance() float32 {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.cullDistance
}

// GetMouseSensitivity returns degrees of rotation per pixel of mouse travel.
func GetMouseSensitivity() float32 {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.mouseSense
}

// GetFontPath returns the overlay font location.
func GetFontPath() string {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.fontPath
}

// GetShowOverlay reports whether the stats overlay is drawn.
func GetShowOverlay() bool {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.showOverlay
}

// ToggleOverlay flips overlay visibility and returns the new state.
func ToggleOverlay() bool {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	settings.showOverlay = !settings.showOverlay
	return settings.showOverlay
}
