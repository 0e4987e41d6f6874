package gizmo

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyW int = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyControl
	KeyShift
	KeyTab
	KeyEscape
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	inputCount
)

// Input is the pointer + buttons model every gizmo and camera system reads.
// Screen coordinates grow right and down.
type Input struct {
	Pressed      [inputCount]bool
	JustPressed  [inputCount]bool
	JustReleased [inputCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	ScrollX, ScrollY         float64

	WindowWidth, WindowHeight int

	mouseInitialized bool
}

// BeginFrame clears the per-frame edges and deltas.
func (input *Input) BeginFrame() {
	input.JustPressed = [inputCount]bool{}
	input.JustReleased = [inputCount]bool{}
	input.MouseDeltaX = 0
	input.MouseDeltaY = 0
	input.ScrollX = 0
	input.ScrollY = 0
}

func (input *Input) SetButton(button int, down bool) {
	if down {
		if !input.Pressed[button] {
			input.JustPressed[button] = true
		}
	} else if input.Pressed[button] {
		input.JustReleased[button] = true
	}
	input.Pressed[button] = down
}

// MoveMouse records the pointer position and accumulates the delta since the
// previous position. The first sample produces no delta.
func (input *Input) MoveMouse(x, y float64) {
	if input.mouseInitialized {
		input.MouseDeltaX += x - input.MouseX
		input.MouseDeltaY += y - input.MouseY
	}
	input.MouseX = x
	input.MouseY = y
	input.mouseInitialized = true
}

func (input *Input) Scroll(dx, dy float64) {
	input.ScrollX += dx
	input.ScrollY += dy
}

// pointerAxisScale turns raw pixel deltas into pointer axis units.
const pointerAxisScale = 0.1

// PointerAxes returns the pointer delta in axis units with Y pointing up, the
// convention the gizmo drags and the fly camera use.
func (input *Input) PointerAxes() (float32, float32) {
	return float32(input.MouseDeltaX) * pointerAxisScale, float32(-input.MouseDeltaY) * pointerAxisScale
}

// Horizontal is -1, 0 or 1 from A/D and the arrow keys.
func (input *Input) Horizontal() float32 {
	return axisValue(input.Pressed[KeyD] || input.Pressed[KeyRight], input.Pressed[KeyA] || input.Pressed[KeyLeft])
}

// Vertical is -1, 0 or 1 from W/S and the arrow keys.
func (input *Input) Vertical() float32 {
	return axisValue(input.Pressed[KeyW] || input.Pressed[KeyUp], input.Pressed[KeyS] || input.Pressed[KeyDown])
}

func axisValue(positive, negative bool) float32 {
	var v float32
	if positive {
		v += 1
	}
	if negative {
		v -= 1
	}
	return v
}

type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(System(inputSystem).InStage(PreUpdate))
}

func inputSystem(s *WindowState, input *Input) {
	input.BeginFrame()

	if !s.callbacksSet {
		s.windowGlfw.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
			s.scrollX += xoff
			s.scrollY += yoff
		})
		s.callbacksSet = true
	}

	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.SetButton(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	for btn, glfwBtn := range mouseToGlfw {
		input.SetButton(btn, s.windowGlfw.GetMouseButton(glfwBtn) == glfw.Press)
	}

	input.MoveMouse(s.windowGlfw.GetCursorPos())
	input.Scroll(s.scrollX, s.scrollY)
	s.scrollX, s.scrollY = 0, 0

	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()
}

var keyToGlfw = map[int]glfw.Key{
	KeyW:       glfw.KeyW,
	KeyA:       glfw.KeyA,
	KeyS:       glfw.KeyS,
	KeyD:       glfw.KeyD,
	KeyUp:      glfw.KeyUp,
	KeyDown:    glfw.KeyDown,
	KeyLeft:    glfw.KeyLeft,
	KeyRight:   glfw.KeyRight,
	KeySpace:   glfw.KeySpace,
	KeyControl: glfw.KeyLeftControl,
	KeyShift:   glfw.KeyLeftShift,
	KeyTab:     glfw.KeyTab,
	KeyEscape:  glfw.KeyEscape,
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:   glfw.MouseButtonLeft,
	MouseButtonRight:  glfw.MouseButtonRight,
	MouseButtonMiddle: glfw.MouseButtonMiddle,
}
