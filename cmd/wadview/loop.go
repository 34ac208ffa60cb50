package main

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	renderer "wadview/internal/graphics/renderer"
	"wadview/internal/profiling"
)

func runLoop(window *glfw.Window, r *renderer.Renderer, in *inputState) {
	limiter := newFPSLimiter()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		func() { defer profiling.Track("input.Update")(); in.update(dt) }()

		func() { defer profiling.Track("renderer.Render")(); r.Render(dt) }()

		func() { defer profiling.Track("glfw.SwapBuffers")(); window.SwapBuffers() }()

		limiter.wait()
	}
}
