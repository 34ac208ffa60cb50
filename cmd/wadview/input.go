package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"wadview/internal/config"
	renderer "wadview/internal/graphics/renderer"
)

// inputState tracks mouse history and cursor capture for the fly camera.
type inputState struct {
	window   *glfw.Window
	renderer *renderer.Renderer

	firstMouse bool
	lastX      float64
	lastY      float64
	captured   bool
}

func newInputState(window *glfw.Window, r *renderer.Renderer) *inputState {
	in := &inputState{
		window:     window,
		renderer:   r,
		firstMouse: true,
		captured:   true,
	}

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		in.handleMouseMovement(xpos, ypos)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			in.toggleCapture()
		case glfw.KeyF3:
			config.ToggleOverlay()
		}
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		winW, winH := w.GetSize()
		r.SetViewport(winW, winH)
	})

	return in
}

func (in *inputState) handleMouseMovement(xpos, ypos float64) {
	if !in.captured {
		return
	}
	if in.firstMouse {
		in.lastX = xpos
		in.lastY = ypos
		in.firstMouse = false
		return
	}

	dx := xpos - in.lastX
	dy := in.lastY - ypos // window y grows downward
	in.lastX = xpos
	in.lastY = ypos

	sens := config.GetMouseSensitivity()
	camera := in.renderer.Camera()
	camera.Yaw -= float32(dx) * sens
	camera.Pitch += float32(dy) * sens

	if camera.Pitch > 89 {
		camera.Pitch = 89
	}
	if camera.Pitch < -89 {
		camera.Pitch = -89
	}
}

func (in *inputState) toggleCapture() {
	in.captured = !in.captured
	if in.captured {
		in.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		in.firstMouse = true
	} else {
		in.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

// update applies WASD + vertical movement to the camera each frame.
func (in *inputState) update(dt float64) {
	if !in.captured {
		return
	}

	speed := float32(dt) * 192
	if in.window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		speed *= 3
	}

	camera := in.renderer.Camera()
	forward := camera.Forward()
	right := camera.Right()

	if in.window.GetKey(glfw.KeyW) == glfw.Press {
		camera.Position = camera.Position.Add(forward.Mul(speed))
	}
	if in.window.GetKey(glfw.KeyS) == glfw.Press {
		camera.Position = camera.Position.Sub(forward.Mul(speed))
	}
	if in.window.GetKey(glfw.KeyD) == glfw.Press {
		camera.Position = camera.Position.Add(right.Mul(speed))
	}
	if in.window.GetKey(glfw.KeyA) == glfw.Press {
		camera.Position = camera.Position.Sub(right.Mul(speed))
	}
	if in.window.GetKey(glfw.KeySpace) == glfw.Press {
		camera.Position[2] += speed
	}
	if in.window.GetKey(glfw.KeyLeftControl) == glfw.Press {
		camera.Position[2] -= speed
	}
}
