package engine

import (
	"github.com/bloeys/glribbon/input"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"
)

var _ windowImpl = &glfwWindow{}

var glfwKeyMap = map[glfw.Key]sdl.Keycode{
	glfw.KeyEscape:       sdl.K_ESCAPE,
	glfw.KeyTab:          sdl.K_TAB,
	glfw.KeySpace:        sdl.K_SPACE,
	glfw.KeyEnter:        sdl.K_RETURN,
	glfw.KeyBackspace:    sdl.K_BACKSPACE,
	glfw.KeyLeft:         sdl.K_LEFT,
	glfw.KeyRight:        sdl.K_RIGHT,
	glfw.KeyUp:           sdl.K_UP,
	glfw.KeyDown:         sdl.K_DOWN,
	glfw.KeyLeftShift:    sdl.K_LSHIFT,
	glfw.KeyRightShift:   sdl.K_RSHIFT,
	glfw.KeyLeftControl:  sdl.K_LCTRL,
	glfw.KeyRightControl: sdl.K_RCTRL,
	glfw.KeyF5:           sdl.K_F5,
}

// glfwKeyToSdl returns the SDL keycode of a GLFW key, or K_UNKNOWN if the key isn't mapped
func glfwKeyToSdl(k glfw.Key) sdl.Keycode {

	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return sdl.Keycode(sdl.K_a) + sdl.Keycode(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return sdl.Keycode(sdl.K_0) + sdl.Keycode(k-glfw.Key0)
	}

	kc, ok := glfwKeyMap[k]
	if !ok {
		return sdl.K_UNKNOWN
	}

	return kc
}

func handleGlfwKey(key glfw.Key, action glfw.Action) {

	kc := glfwKeyToSdl(key)
	if kc == sdl.K_UNKNOWN {
		return
	}

	input.HandleKey(kc, action != glfw.Release, action == glfw.Repeat)
}

type glfwWindow struct {
	GlfwWin *glfw.Window

	resized bool
}

func (w *glfwWindow) pollEvents(onResize func()) {

	w.resized = false
	glfw.PollEvents()

	if w.resized {
		onResize()
	}

	if w.GlfwWin.ShouldClose() {
		input.HandleQuitEvent()
	}
}

func (w *glfwWindow) swap() {
	w.GlfwWin.SwapBuffers()
}

func (w *glfwWindow) drawableSize() (width, height int32) {
	fbWidth, fbHeight := w.GlfwWin.GetFramebufferSize()
	return int32(fbWidth), int32(fbHeight)
}

func (w *glfwWindow) setTitle(title string) {
	w.GlfwWin.SetTitle(title)
}

func (w *glfwWindow) setVSync(enabled bool) {

	if enabled {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *glfwWindow) destroy() error {
	w.GlfwWin.Destroy()
	return nil
}

func initGLFW() error {

	if err := glfw.Init(); err != nil {
		return err
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfw.WindowHint(glfw.RedBits, 8)
	glfw.WindowHint(glfw.GreenBits, 8)
	glfw.WindowHint(glfw.BlueBits, 8)
	glfw.WindowHint(glfw.AlphaBits, 8)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)

	return nil
}

func deInitGLFW() {
	glfw.Terminate()
}

func createGLFWWindow(title string, width, height int32, flags WindowFlags) (*glfwWindow, error) {

	glfw.WindowHint(glfw.Resizable, glfw.False)
	if flags&WindowFlags_RESIZABLE != 0 {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	}

	glfw.WindowHint(glfw.Visible, glfw.True)
	if flags&WindowFlags_HIDDEN != 0 {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	glfwWin, err := glfw.CreateWindow(int(width), int(height), title, nil, nil)
	if err != nil {
		return nil, err
	}

	if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
		if mode := monitor.GetVideoMode(); mode != nil {
			glfwWin.SetPos((mode.Width-int(width))/2, (mode.Height-int(height))/2)
		}
	}

	glfwWin.MakeContextCurrent()

	w := &glfwWindow{GlfwWin: glfwWin}

	glfwWin.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		handleGlfwKey(key, action)
	})

	glfwWin.SetFramebufferSizeCallback(func(_ *glfw.Window, _, _ int) {
		w.resized = true
	})

	return w, nil
}
