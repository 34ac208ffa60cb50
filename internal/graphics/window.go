package graphics

import "math"

// Default window dimensions; renderables needing a pixel-space projection
// use these until a resize callback updates them.
const (
	WinWidth  = 1280
	WinHeight = 800
)

// Shader asset locations.
const (
	ShadersDir = "assets/shaders"
)

func cos(x float32) float32 { return float32(math.Cos(float64(x))) }
func sin(x float32) float32 { return float32(math.Sin(float64(x))) }
