package engine

import (
	"github.com/bloeys/glribbon/input"
	"github.com/bloeys/glribbon/logging"
	"github.com/veandco/go-sdl2/sdl"
)

var _ windowImpl = &sdlWindow{}

type sdlWindow struct {
	SDLWin *sdl.Window
	GlCtx  sdl.GLContext
}

func (w *sdlWindow) pollEvents(onResize func()) {

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		switch e := event.(type) {

		case *sdl.KeyboardEvent:
			input.HandleKeyboardEvent(e)

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				onResize()
			}

		case *sdl.QuitEvent:
			input.HandleQuitEvent()
		}
	}
}

func (w *sdlWindow) swap() {
	w.SDLWin.GLSwap()
}

func (w *sdlWindow) drawableSize() (width, height int32) {
	return w.SDLWin.GLGetDrawableSize()
}

func (w *sdlWindow) setTitle(title string) {
	w.SDLWin.SetTitle(title)
}

func (w *sdlWindow) setVSync(enabled bool) {

	interval := 0
	if enabled {
		interval = 1
	}

	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logging.WarnLog.Printf("Failed to set vsync to %v. Err: %v\n", enabled, err)
	}
}

func (w *sdlWindow) destroy() error {
	sdl.GLDeleteContext(w.GlCtx)
	return w.SDLWin.Destroy()
}

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	sdl.GLSetAttribute(sdl.GL_FRAMEBUFFER_SRGB_CAPABLE, 1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

func deInitSDL() {
	sdl.Quit()
}

func createSDLWindow(title string, width, height int32, flags WindowFlags) (*sdlWindow, error) {

	sdlFlags := uint32(sdl.WINDOW_OPENGL)
	if flags&WindowFlags_RESIZABLE != 0 {
		sdlFlags |= sdl.WINDOW_RESIZABLE
	}

	if flags&WindowFlags_HIDDEN != 0 {
		sdlFlags |= sdl.WINDOW_HIDDEN
	}

	sdlWin, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdlFlags)
	if err != nil {
		return nil, err
	}

	glCtx, err := sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	return &sdlWindow{
		SDLWin: sdlWin,
		GlCtx:  glCtx,
	}, nil
}
