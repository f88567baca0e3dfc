package main

import (
	"log"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/aldergfx/alder/engine/colors"
	"github.com/aldergfx/alder/engine/core"
	"github.com/aldergfx/alder/engine/gfx/gldevice"
	"github.com/aldergfx/alder/engine/gfx/uirender"
	"github.com/aldergfx/alder/engine/platform"
	"github.com/aldergfx/alder/engine/profiler"
	"github.com/aldergfx/alder/engine/scratch"
	"github.com/aldergfx/alder/engine/text"
)

type App struct {
	r2d    *uirender.Renderer
	bitmap *text.BitmapFont
	sdf    *text.SDFFont // nil when the msdf assets are absent
	stats  uirender.BatchStats

	uiLayer    *UILayer
	debugLayer *DebugLayer
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10)
	scratch.Init(4 * 1024)

	var err error
	a.r2d, err = uirender.New(e.Device, uirender.DefaultMaxQuads)
	if err != nil {
		panic(err)
	}

	a.bitmap, err = text.ParseTTF(e.Device, goregular.TTF, 16)
	if err != nil {
		panic(err)
	}

	// Distance-field text needs pre-baked assets; the demo degrades to the
	// bitmap font when they are missing.
	a.sdf, err = text.LoadMSDF(e.Device, "assets/fonts/demo-msdf.json", "assets/fonts/demo-msdf.png")
	if err != nil {
		log.Printf("msdf font unavailable, using bitmap text only: %v", err)
		a.sdf = nil
	}

	a.uiLayer = &UILayer{r2d: a.r2d, bitmap: a.bitmap, sdf: a.sdf}
	e.Layers.Push(a.uiLayer)

	a.debugLayer = &DebugLayer{r2d: a.r2d, font: a.bitmap, stats: &a.stats}
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	// Snapshot after all layers drew; the overlay shows it next frame.
	a.stats = a.r2d.Stats()
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	a.bitmap.Close()
	a.r2d.Shutdown()
}

func main() {
	log.SetOutput(os.Stderr)
	cfg := core.Config{
		Title:      "alder demo",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newDevice := func(win core.Window, cfg core.Config) (core.Device, error) {
		return gldevice.New(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newDevice); err != nil {
		log.Fatal(err)
	}
}
