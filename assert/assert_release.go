//go:build !nmage_debug

package assert

const Enabled = false

// T panics with msg when check is false. It only does so when built with the
// 'nmage_debug' tag, and is a no-op otherwise.
func T(check bool, msg string, args ...any) {
}
