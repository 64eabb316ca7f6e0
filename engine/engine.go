package engine

import (
	"fmt"
	"runtime"

	"github.com/bloeys/glribbon/assert"
	"github.com/bloeys/glribbon/config"
	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/input"
	"github.com/bloeys/glribbon/renderer"
	"github.com/bloeys/glribbon/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	isInited = false
	backend  config.Backend
)

type WindowFlags uint32

const (
	WindowFlags_NONE      WindowFlags = 0
	WindowFlags_RESIZABLE WindowFlags = 1 << 0
	WindowFlags_HIDDEN    WindowFlags = 1 << 1
)

// windowImpl is what a window backend (SDL, GLFW) provides
type windowImpl interface {
	// pollEvents passes all pending events to the input package, and calls onResize when the framebuffer size changes
	pollEvents(onResize func())
	swap()
	drawableSize() (width, height int32)
	setTitle(title string)
	setVSync(enabled bool)
	destroy() error
}

type Window struct {
	Ctx  gpu.Context
	Rend renderer.Render

	// Width and Height are the drawable (framebuffer) size, which can differ from the window size on high dpi screens
	Width  int32
	Height int32

	ResizeCallbacks []func(width, height int32)

	impl windowImpl
}

func (w *Window) handleInputs() {

	input.EventLoopStart()
	w.impl.pollEvents(w.handleWindowResize)
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.impl.drawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}

	w.Width = fbWidth
	w.Height = fbHeight
	w.Ctx.Viewport(0, 0, fbWidth, fbHeight)

	for i := 0; i < len(w.ResizeCallbacks); i++ {
		w.ResizeCallbacks[i](fbWidth, fbHeight)
	}
}

func (w *Window) SetTitle(title string) {
	w.impl.setTitle(title)
}

func (w *Window) SetVSync(enabled bool) {
	w.impl.setVSync(enabled)
}

func (w *Window) Destroy() error {
	return w.impl.destroy()
}

// Init locks the calling goroutine to its OS thread and initializes the given window backend.
// Everything touching the window or OpenGL must happen on this goroutine afterwards.
func Init(b config.Backend) error {

	runtime.LockOSThread()
	timing.Init()

	var err error
	switch b {
	case config.Backend_SDL:
		err = initSDL()
	case config.Backend_GLFW:
		err = initGLFW()
	default:
		err = fmt.Errorf("unknown window backend '%s'", b)
	}

	if err != nil {
		return err
	}

	isInited = true
	backend = b
	return nil
}

// DeInit shuts down the window backend. Windows should be destroyed first.
func DeInit() {

	if !isInited {
		return
	}

	switch backend {
	case config.Backend_SDL:
		deInitSDL()
	case config.Backend_GLFW:
		deInitGLFW()
	}

	isInited = false
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags, rend renderer.Render) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	var impl windowImpl
	var err error
	switch backend {
	case config.Backend_SDL:
		impl, err = createSDLWindow(title, width, height, flags)
	case config.Backend_GLFW:
		impl, err = createGLFWWindow(title, width, height, flags)
	default:
		err = fmt.Errorf("engine.Init() was not called")
	}

	if err != nil {
		return nil, err
	}

	ctx, err := initOpenGL()
	if err != nil {
		impl.destroy()
		return nil, err
	}

	win := newWindow(impl, ctx, rend)

	// Get rid of the blinding white startup screen
	ctx.Clear(gpu.ColorBufferBit | gpu.DepthBufferBit)
	impl.swap()

	return win, nil
}

func newWindow(impl windowImpl, ctx gpu.Context, rend renderer.Render) *Window {

	win := &Window{
		Ctx:             ctx,
		Rend:            rend,
		ResizeCallbacks: make([]func(width, height int32), 0),
		impl:            impl,
	}

	win.Width, win.Height = impl.drawableSize()
	ctx.Viewport(0, 0, win.Width, win.Height)

	return win
}

// initOpenGL loads the GL functions of the current context
func initOpenGL() (gpu.Context, error) {

	if err := gl.Init(); err != nil {
		return nil, err
	}

	ctx := gpu.NewGL()
	setDefaultGLState(ctx)

	return ctx, nil
}

// setDefaultGLState enables depth testing and sRGB output. Textures are uploaded as sRGB
// so sampling gives linear colors, which the framebuffer converts back when writing.
func setDefaultGLState(ctx gpu.Context) {
	ctx.Enable(gpu.DepthTest)
	ctx.Enable(gpu.FramebufferSRGB)
	ctx.ClearColor(0, 0, 0, 1)
}
