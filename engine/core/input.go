package core

// Input keeps a per-frame snapshot of keyboard and mouse state.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	pressed        map[MouseButton]bool // went down this frame
	released       map[MouseButton]bool // went up this frame
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{
		keys:     map[Key]bool{},
		buttons:  map[MouseButton]bool{},
		pressed:  map[MouseButton]bool{},
		released: map[MouseButton]bool{},
	}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
		if e.Down {
			in.pressed[e.Button] = true
		} else {
			in.released[e.Button] = true
		}
	}
}

// BeginFrame clears the edge-triggered button maps. Called once per tick.
func (in *Input) BeginFrame() {
	clear(in.pressed)
	clear(in.released)
}

func (in *Input) IsKeyDown(k Key) bool                 { return in.keys[k] }
func (in *Input) IsMouseDown(b MouseButton) bool       { return in.buttons[b] }
func (in *Input) WasMousePressed(b MouseButton) bool   { return in.pressed[b] }
func (in *Input) WasMouseReleased(b MouseButton) bool  { return in.released[b] }
func (in *Input) Mouse() (float64, float64)            { return in.mouseX, in.mouseY }
