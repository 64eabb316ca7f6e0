package engine

import (
	"errors"
	"testing"

	"github.com/bloeys/glribbon/gpu"
	"github.com/bloeys/glribbon/gpu/gputest"
	"github.com/bloeys/glribbon/input"
	"github.com/bloeys/glribbon/renderer/rend3dgl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

// fakeWindow replays one batch of events per frame
type fakeWindow struct {
	width, height int32

	frames    []func(w *fakeWindow, onResize func())
	polls     int
	swaps     int
	destroyed bool
}

func (w *fakeWindow) pollEvents(onResize func()) {

	if w.polls < len(w.frames) {
		w.frames[w.polls](w, onResize)
	}
	w.polls++
}

func (w *fakeWindow) swap()                               { w.swaps++ }
func (w *fakeWindow) drawableSize() (width, height int32) { return w.width, w.height }
func (w *fakeWindow) setTitle(title string)               {}
func (w *fakeWindow) setVSync(enabled bool)               {}
func (w *fakeWindow) destroy() error                      { w.destroyed = true; return nil }

type countingGame struct {
	initErr error

	inits, updates, renders, frameEnds, deInits int
}

func (g *countingGame) Init() error { g.inits++; return g.initErr }

func (g *countingGame) Update() {
	g.updates++
	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		Quit()
	}
}

func (g *countingGame) Render()   { g.renders++ }
func (g *countingGame) FrameEnd() { g.frameEnds++ }
func (g *countingGame) DeInit()   { g.deInits++ }

func TestRunUntilQuit(t *testing.T) {

	input.ClearKeyboardState()

	impl := &fakeWindow{
		width:  600,
		height: 400,
		frames: []func(*fakeWindow, func()){
			func(*fakeWindow, func()) {},
			func(*fakeWindow, func()) {},
			func(*fakeWindow, func()) { input.HandleKey(sdl.K_ESCAPE, true, false) },
		},
	}

	rec := gputest.NewRecorder()
	win := newWindow(impl, rec, rend3dgl.NewRend3DGL())
	assert.Equal(t, [4]int32{0, 0, 600, 400}, rec.ViewportXYWH)

	g := &countingGame{}
	require.NoError(t, Run(g, win))

	assert.False(t, IsRunning())
	assert.Equal(t, 1, g.inits)
	assert.Equal(t, 3, g.updates)
	assert.Equal(t, 3, g.renders)
	assert.Equal(t, 3, g.frameEnds)
	assert.Equal(t, 1, g.deInits)
	assert.Equal(t, 3, impl.swaps)
}

func TestRunInitError(t *testing.T) {

	impl := &fakeWindow{width: 1, height: 1}
	win := newWindow(impl, gputest.NewRecorder(), rend3dgl.NewRend3DGL())

	g := &countingGame{initErr: errors.New("no shaders")}
	assert.Error(t, Run(g, win))
	assert.Zero(t, g.updates)
	assert.Zero(t, g.deInits)
	assert.Zero(t, impl.polls)
}

func TestRunQuitEvent(t *testing.T) {

	impl := &fakeWindow{
		width:  600,
		height: 400,
		frames: []func(*fakeWindow, func()){
			func(*fakeWindow, func()) { input.HandleQuitEvent() },
		},
	}
	win := newWindow(impl, gputest.NewRecorder(), rend3dgl.NewRend3DGL())

	g := &countingGame{}
	require.NoError(t, Run(g, win))
	assert.Equal(t, 1, g.updates)
}

func TestWindowResize(t *testing.T) {

	impl := &fakeWindow{width: 600, height: 400}
	rec := gputest.NewRecorder()
	win := newWindow(impl, rec, rend3dgl.NewRend3DGL())

	var gotW, gotH int32
	win.ResizeCallbacks = append(win.ResizeCallbacks, func(width, height int32) {
		gotW, gotH = width, height
	})

	impl.width, impl.height = 1280, 720
	win.handleWindowResize()
	assert.Equal(t, [4]int32{0, 0, 1280, 720}, rec.ViewportXYWH)
	assert.EqualValues(t, 1280, win.Width)
	assert.EqualValues(t, 720, win.Height)
	assert.EqualValues(t, 1280, gotW)
	assert.EqualValues(t, 720, gotH)

	// Minimizing gives a zero size, which is ignored
	impl.width, impl.height = 0, 0
	win.handleWindowResize()
	assert.Equal(t, [4]int32{0, 0, 1280, 720}, rec.ViewportXYWH)
	assert.EqualValues(t, 1280, gotW)

	require.NoError(t, win.Destroy())
	assert.True(t, impl.destroyed)
}

func TestDefaultGLState(t *testing.T) {

	rec := gputest.NewRecorder()
	setDefaultGLState(rec)

	assert.True(t, rec.Enabled[gpu.DepthTest])
	assert.True(t, rec.Enabled[gpu.FramebufferSRGB])
	assert.Equal(t, [4]float32{0, 0, 0, 1}, rec.ClearRGBA)
}

func TestGlfwKeyToSdl(t *testing.T) {

	assert.Equal(t, sdl.Keycode(sdl.K_ESCAPE), glfwKeyToSdl(glfw.KeyEscape))
	assert.Equal(t, sdl.Keycode(sdl.K_TAB), glfwKeyToSdl(glfw.KeyTab))
	assert.Equal(t, sdl.Keycode(sdl.K_a), glfwKeyToSdl(glfw.KeyA))
	assert.Equal(t, sdl.Keycode(sdl.K_r), glfwKeyToSdl(glfw.KeyR))
	assert.Equal(t, sdl.Keycode(sdl.K_z), glfwKeyToSdl(glfw.KeyZ))
	assert.Equal(t, sdl.Keycode(sdl.K_7), glfwKeyToSdl(glfw.Key7))
	assert.Equal(t, sdl.Keycode(sdl.K_UNKNOWN), glfwKeyToSdl(glfw.KeyPrintScreen))

	input.ClearKeyboardState()
	input.EventLoopStart()

	handleGlfwKey(glfw.KeyTab, glfw.Press)
	assert.True(t, input.KeyClicked(sdl.K_TAB))

	input.EventLoopStart()
	handleGlfwKey(glfw.KeyTab, glfw.Repeat)
	assert.False(t, input.KeyClicked(sdl.K_TAB))
	assert.True(t, input.KeyDown(sdl.K_TAB))

	input.EventLoopStart()
	handleGlfwKey(glfw.KeyTab, glfw.Release)
	assert.True(t, input.KeyReleased(sdl.K_TAB))
}
