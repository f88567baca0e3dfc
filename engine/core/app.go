package core

import "time"

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/device init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events (after layers)
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App and its layers.
type Engine struct {
	Window Window
	Device Device
	Input  *Input
	Layers LayerStack
	start  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	// ContentScale is the OS device-pixel-ratio for the current monitor.
	ContentScale() float32
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyTab
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA
}
