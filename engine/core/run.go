package core

import (
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + device and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newDevice func(Window, Config) (Device, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	dev, err := newDevice(win, cfg)
	if err != nil {
		return err
	}
	defer dev.Shutdown()

	w, h := win.FramebufferSize()
	dev.Resize(w, h)

	eng := &Engine{Window: win, Device: dev, Input: NewInput(), start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		eng.Input.Handle(ev)
		if !eng.Layers.Dispatch(eng, ev) {
			app.OnEvent(eng, ev)
		}
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw < 1 || fh < 1 {
				return
			}
			dev.Resize(fw, fh)
		}
	})

	app.OnStart(eng)
	eng.Layers.Attach(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		clear   = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		frame := now.Sub(prev)
		prev = now
		accum += frame

		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.Update(eng, dt)
			eng.Input.BeginFrame()
			accum -= tick
			steps++
		}
		alpha := float64(accum) / float64(tick)

		dev.Clear(clear[0], clear[1], clear[2], clear[3])
		eng.Layers.Render(eng, alpha)
		app.OnRender(eng, alpha)

		win.SwapBuffers()
	}

	eng.Layers.Detach(eng)
	app.OnShutdown(eng)
	log.Println("Engine exit")
	return nil
}
