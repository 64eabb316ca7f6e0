//go:build nmage_debug

package assert

import (
	"github.com/bloeys/glribbon/logging"
)

const Enabled = true

func T(check bool, msg string, args ...any) {
	if !check {
		logging.ErrLog.Panicf("Assert failed: "+msg, args...)
	}
}
