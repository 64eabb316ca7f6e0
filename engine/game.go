package engine

import (
	"github.com/bloeys/glribbon/timing"
)

var (
	isRunning = false
)

type Game interface {
	Init() error

	Update()
	Render()
	FrameEnd()

	DeInit()
}

// Run calls g.Init and then runs the frame loop until Quit is called.
// g.DeInit is called once the loop exits, but not if g.Init fails.
func Run(g Game, w *Window) error {

	if err := g.Init(); err != nil {
		return err
	}

	isRunning = true
	for isRunning {

		timing.FrameStarted()
		w.handleInputs()

		g.Update()
		g.Render()
		w.impl.swap()

		g.FrameEnd()
		w.Rend.FrameEnd()
		timing.FrameEnded()
	}

	g.DeInit()
	return nil
}

// Quit makes Run exit at the end of the current frame
func Quit() {
	isRunning = false
}

func IsRunning() bool {
	return isRunning
}
