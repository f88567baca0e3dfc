// Package ui holds the widget-facing styling types consumed by callers of
// the renderer: interaction state flags and a theme that resolves them into
// concrete colors and corner rounding. Layout and hit testing live with the
// caller; the renderer only ever sees the resolved values.
package ui

import (
	"github.com/aldergfx/alder/engine/colors"
	"github.com/aldergfx/alder/engine/geom"
)

// WidgetState carries the interaction flags a widget accumulated this frame.
type WidgetState struct {
	Hovered  bool
	Pressed  bool
	Focused  bool
	Disabled bool
	Visible  bool
}

// Style is the resolved appearance of one widget.
type Style struct {
	Background  colors.Color
	Border      colors.Color
	Text        colors.Color
	Radii       geom.CornerRadii
	BorderWidth float32
}

// Theme is the palette styles are resolved from.
type Theme struct {
	Surface        colors.Color
	SurfaceHover   colors.Color
	SurfacePressed colors.Color
	Accent         colors.Color
	Outline        colors.Color
	TextPrimary    colors.Color
	TextDisabled   colors.Color
	Radius         float32
}

func DefaultTheme() Theme {
	return Theme{
		Surface:        colors.Color{0.16, 0.18, 0.21, 1},
		SurfaceHover:   colors.Color{0.22, 0.24, 0.28, 1},
		SurfacePressed: colors.Color{0.12, 0.13, 0.16, 1},
		Accent:         colors.Color{0.26, 0.52, 0.96, 1},
		Outline:        colors.Color{0.35, 0.38, 0.43, 1},
		TextPrimary:    colors.Color{0.92, 0.93, 0.95, 1},
		TextDisabled:   colors.Color{0.55, 0.57, 0.60, 1},
		Radius:         6,
	}
}

// Resolve maps interaction state to a concrete style. Precedence: disabled
// beats pressed beats hovered; focus only affects the border.
func (t Theme) Resolve(st WidgetState) Style {
	s := Style{
		Background:  t.Surface,
		Border:      t.Outline,
		Text:        t.TextPrimary,
		Radii:       geom.Radii(t.Radius),
		BorderWidth: 1,
	}
	switch {
	case st.Disabled:
		s.Background = t.Surface.Lerp(colors.Black, 0.3)
		s.Text = t.TextDisabled
	case st.Pressed:
		s.Background = t.SurfacePressed
	case st.Hovered:
		s.Background = t.SurfaceHover
	}
	if st.Focused && !st.Disabled {
		s.Border = t.Accent
		s.BorderWidth = 2
	}
	return s
}
