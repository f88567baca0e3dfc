package core

// Layer is one slice of the application, e.g. the UI scene or a debug
// overlay. Updates and renders walk bottom-up so overlays paint last; events
// walk top-down and stop at the first layer that claims them.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true: consumed, propagation stops
}

// LayerStack owns the ordered layers. Index 0 is the bottom-most layer.
type LayerStack struct {
	layers []Layer
}

func (ls *LayerStack) Push(l Layer) { ls.layers = append(ls.layers, l) }

// Pop removes and returns the top-most layer.
func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(ls.layers)
	if n == 0 {
		return nil, false
	}
	l := ls.layers[n-1]
	ls.layers = ls.layers[:n-1]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.layers) }

func (ls *LayerStack) Attach(e *Engine) {
	for _, l := range ls.layers {
		l.OnAttach(e)
	}
}

func (ls *LayerStack) Detach(e *Engine) {
	for _, l := range ls.layers {
		l.OnDetach(e)
	}
}

// Update ticks every layer bottom-up at the fixed timestep.
func (ls *LayerStack) Update(e *Engine, dt float64) {
	for _, l := range ls.layers {
		l.OnUpdate(e, dt)
	}
}

// Render draws every layer bottom-up; overlays pushed last paint on top.
func (ls *LayerStack) Render(e *Engine, alpha float64) {
	for _, l := range ls.layers {
		l.OnRender(e, alpha)
	}
}

// Dispatch offers ev to the layers top-down and reports whether one of them
// consumed it.
func (ls *LayerStack) Dispatch(e *Engine, ev Event) bool {
	for i := len(ls.layers) - 1; i >= 0; i-- {
		if ls.layers[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}
