// The input package tracks keyboard state across frames, along with
// pressed/released this frame and whether the user asked to quit.
//
// Keys are identified by SDL keycodes no matter which window backend is in use.
// Backends other than SDL translate their key events before passing them to HandleKey.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	Key                 sdl.Keycode
	State               int
	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

var (
	keyMap = make(map[sdl.Keycode]keyState)

	isQuitRequested bool
)

// EventLoopStart resets per-frame state, and must be called before handling the events of a new frame
func EventLoopStart() {

	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		keyMap[k] = v
	}

	isQuitRequested = false
}

func ClearKeyboardState() {
	clear(keyMap)
}

func HandleQuitEvent() {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {
	HandleKey(e.Keysym.Sym, e.State == sdl.PRESSED, e.Repeat != 0)
}

// HandleKey records a key going down or up. Repeats keep the key down
// but don't count as a new press or release.
func HandleKey(kc sdl.Keycode, isDown, isRepeat bool) {

	ks, ok := keyMap[kc]
	if !ok {
		ks = keyState{Key: kc}
	}

	ks.State = sdl.RELEASED
	if isDown {
		ks.State = sdl.PRESSED
	}

	ks.IsPressedThisFrame = isDown && !isRepeat
	ks.IsReleasedThisFrame = !isDown && !isRepeat

	keyMap[kc] = ks
}

func KeyClicked(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.IsPressedThisFrame
}

func KeyReleased(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.IsReleasedThisFrame
}

func KeyDown(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.State == sdl.PRESSED
}

func KeyUp(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return true
	}

	return ks.State == sdl.RELEASED
}
