package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/bloeys/glribbon/config"
	"github.com/bloeys/glribbon/engine"
	"github.com/bloeys/glribbon/input"
	"github.com/bloeys/glribbon/logging"
	"github.com/bloeys/glribbon/renderer/rend3dgl"
	"github.com/bloeys/glribbon/scenes"
	"github.com/bloeys/glribbon/shaders"
	"github.com/bloeys/glribbon/timing"
	"github.com/veandco/go-sdl2/sdl"
)

const titleFpsUpdateInterval = time.Second

type Game struct {
	Cfg  config.Config
	Win  *engine.Window
	Rend *rend3dgl.Rend3DGL

	Scenes      []scenes.Scene
	ActiveScene int

	// Watcher is nil unless shader watching is enabled
	Watcher *shaders.Watcher

	lastTitleUpdate time.Duration
}

func main() {

	cfg, err := loadConfig()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	err = engine.Init(cfg.Window.Backend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}
	defer engine.DeInit()

	rend := rend3dgl.NewRend3DGL()
	window, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, engine.WindowFlags_RESIZABLE, rend)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer window.Destroy()

	window.SetVSync(cfg.Window.VSync)

	game := &Game{
		Cfg:  cfg,
		Win:  window,
		Rend: rend,
	}

	err = engine.Run(game, window)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to start. Err:", err)
	}
}

// loadConfig reads the config file and applies command line overrides on top
func loadConfig() (config.Config, error) {

	configPath := flag.String("config", config.DefaultPath, "Path of the yaml config file")
	scene := flag.String("scene", "", "Scene to start with. 'ribbon' or 'cube'")
	width := flag.Int("width", 0, "Window width")
	height := flag.Int("height", 0, "Window height")
	title := flag.String("title", "", "Window title")
	backend := flag.String("backend", "", "Window backend. 'sdl' or 'glfw'")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return cfg, err
	}

	// Only flags that were passed override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *scene
		case "width":
			cfg.Window.Width = int32(*width)
		case "height":
			cfg.Window.Height = int32(*height)
		case "title":
			cfg.Window.Title = *title
		case "backend":
			cfg.Window.Backend = config.Backend(*backend)
		}
	})

	return cfg, cfg.Validate()
}

func (g *Game) Init() error {

	policy := g.Cfg.Shaders.OnFailure
	g.Scenes = []scenes.Scene{
		scenes.NewRibbon(g.Win.Ctx, g.Cfg.Ribbon, policy),
		scenes.NewCube(g.Win.Ctx, g.Cfg.Cube, policy, g.Win.Width, g.Win.Height),
	}

	g.ActiveScene = -1
	for i, s := range g.Scenes {

		if err := s.Init(); err != nil {
			return fmt.Errorf("failed to init scene '%s': %w", s.Name(), err)
		}

		if s.Name() == g.Cfg.Scene {
			g.ActiveScene = i
		}
	}

	if g.ActiveScene == -1 {
		return fmt.Errorf("unknown scene '%s'", g.Cfg.Scene)
	}

	g.Win.ResizeCallbacks = append(g.Win.ResizeCallbacks, g.handleWindowResize)

	if g.Cfg.Shaders.Watch {
		g.initShaderWatcher()
	}

	logging.InfoLog.Printf("Starting with scene '%s'. Tab switches scenes, R reloads shaders, Escape quits\n", g.Cfg.Scene)
	return nil
}

func (g *Game) initShaderWatcher() {

	var paths []string
	for _, s := range g.Scenes {
		paths = append(paths, s.ShaderPaths()...)
	}

	w, err := shaders.NewWatcher(paths...)
	if err != nil {
		logging.WarnLog.Printf("Failed to watch shader files, hot reload is disabled. Err: %v\n", err)
		return
	}

	g.Watcher = w
}

func (g *Game) handleWindowResize(width, height int32) {
	for _, s := range g.Scenes {
		s.Resize(width, height)
	}
}

func (g *Game) Update() {

	if input.IsQuitClicked() || input.KeyClicked(sdl.K_ESCAPE) {
		engine.Quit()
	}

	if input.KeyClicked(sdl.K_TAB) {
		g.ActiveScene = (g.ActiveScene + 1) % len(g.Scenes)
		logging.InfoLog.Printf("Switched to scene '%s'\n", g.Scenes[g.ActiveScene].Name())
	}

	g.reloadShaders()
	g.Scenes[g.ActiveScene].Update(timing.DT())
	g.updateTitle()
}

func (g *Game) reloadShaders() {

	var polled []string
	if g.Watcher != nil {
		polled = g.Watcher.Poll()
	}

	changed := shaderFilesToReload(polled, input.KeyClicked(sdl.K_r), g.Scenes[g.ActiveScene])
	if len(changed) == 0 {
		return
	}

	if _, err := scenes.ReloadChangedShaders(g.Scenes, changed); err != nil {
		logging.ErrLog.Println(err)
	}
}

// shaderFilesToReload adds the shaders of the active scene to the watched files that changed
// when a manual reload was requested
func shaderFilesToReload(polled []string, reloadActive bool, active scenes.Scene) []string {

	if !reloadActive {
		return polled
	}

	return append(polled, active.ShaderPaths()...)
}

func (g *Game) updateTitle() {

	now := timing.ElapsedTime()
	if now-g.lastTitleUpdate < titleFpsUpdateInterval {
		return
	}

	g.lastTitleUpdate = now
	g.Win.SetTitle(fmt.Sprintf("%s - %s - %.0f FPS", g.Cfg.Window.Title, g.Scenes[g.ActiveScene].Name(), timing.GetAvgFPS()))
}

func (g *Game) Render() {
	g.Scenes[g.ActiveScene].Render(g.Rend)
}

func (g *Game) FrameEnd() {
}

func (g *Game) DeInit() {

	if g.Watcher != nil {
		g.Watcher.Close()
	}

	for _, s := range g.Scenes {
		s.DeInit()
	}
}
