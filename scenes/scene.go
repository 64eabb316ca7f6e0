// The scenes package holds the two demo scenes: a ribbon of bouncing sine curves and a textured rotating cube.
package scenes

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bloeys/glribbon/config"
	"github.com/bloeys/glribbon/logging"
	"github.com/bloeys/glribbon/renderer"
	"github.com/bloeys/glribbon/shaders"
)

type Scene interface {
	Name() string
	Init() error
	Update(dt float32)
	Render(rend renderer.Render)
	Resize(width, height int32)

	// ShaderPaths lists the shader source files the scene was built from
	ShaderPaths() []string
	// ReloadShaders rebuilds the scene shader programs from disk, keeping the old ones if the new ones fail
	ReloadShaders() error

	DeInit()
}

// checkShaderErr applies the failure policy to the result of loading a shader program.
// It returns nil if the scene can keep going with prog.
func checkShaderErr(policy config.FailurePolicy, sceneName string, prog *shaders.ShaderProgram, err error) error {

	if err == nil {
		return nil
	}

	if prog == nil || policy == config.FailurePolicy_Abort {
		return err
	}

	logging.WarnLog.Printf("Shader program of scene '%s' has errors, continuing with a degraded program. Err: %v\n", sceneName, err)
	return nil
}

// ReloadChangedShaders reloads the shaders of every scene built from one of the changed files.
// Scenes whose reload fails keep their old programs, and their errors are joined.
func ReloadChangedShaders(scs []Scene, changed []string) (reloaded int, err error) {

	changedAbs := make(map[string]struct{}, len(changed))
	for _, c := range changed {
		if abs, absErr := filepath.Abs(c); absErr == nil {
			changedAbs[abs] = struct{}{}
		}
	}

	var errs []error
	for _, s := range scs {

		if !usesAnyFile(s.ShaderPaths(), changedAbs) {
			continue
		}

		if err := s.ReloadShaders(); err != nil {
			errs = append(errs, fmt.Errorf("failed to reload shaders of scene '%s': %w", s.Name(), err))
			continue
		}

		logging.InfoLog.Printf("Reloaded shaders of scene '%s'\n", s.Name())
		reloaded++
	}

	return reloaded, errors.Join(errs...)
}

func usesAnyFile(paths []string, files map[string]struct{}) bool {

	for _, p := range paths {

		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}

		if _, ok := files[abs]; ok {
			return true
		}
	}

	return false
}
