package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"

	"wadview/internal/graphics"
	"wadview/internal/graphics/renderables/mapgeom"
	"wadview/internal/graphics/renderables/overlay"
	renderer "wadview/internal/graphics/renderer"
	"wadview/internal/level"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	closer.Bind(glfw.Terminate)
	defer closer.Close()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	lvl := level.Demo()

	mapRenderer := mapgeom.New(lvl)
	overlayRenderer := overlay.New(mapRenderer)

	r, err := renderer.New(graphics.WinWidth, graphics.WinHeight, mapRenderer, overlayRenderer)
	if err != nil {
		log.Fatalf("renderer setup: %v", err)
	}
	closer.Bind(r.Dispose)

	// Start in the middle of the first room, eye height above the floor.
	camera := r.Camera()
	camera.Position = mgl32.Vec3{128, 128, 48}
	camera.Yaw = 0
	camera.Pitch = 0

	in := newInputState(window, r)

	runLoop(window, r, in)
}
